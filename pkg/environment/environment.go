package environment

import "strings"

// Environment represents application environment.
type Environment string

const (
	// Development for development environment.
	Development Environment = "development"
	// Staging for staging environment.
	Staging Environment = "staging"
	// Production for production environment.
	Production Environment = "production"
)

// Parse normalizes a raw environment string into one of the known values.
// Unknown values default to Production so that an accidental typo in
// deployment config never enables development-only behavior.
func Parse(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(Development), "dev", "local":
		return Development
	case string(Staging), "stage":
		return Staging
	default:
		return Production
	}
}

// IsDevelopment reports whether e is the development environment.
func (e Environment) IsDevelopment() bool {
	return e == Development || e == "dev" || e == "local"
}

// IsStaging reports whether e is the staging environment.
func (e Environment) IsStaging() bool {
	return e == Staging || e == "stage"
}

// IsProduction reports whether e is the production environment.
func (e Environment) IsProduction() bool {
	return !e.IsDevelopment() && !e.IsStaging()
}

func (e Environment) String() string {
	return string(e)
}
