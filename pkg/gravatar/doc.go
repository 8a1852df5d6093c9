// Package gravatar derives deterministic avatar URLs from email addresses
// using the Gravatar hashing protocol (md5 hex digest of the trimmed,
// lowercased address).
//
// The signup service assigns every new account an avatar this way so profiles
// have an image before the user uploads one:
//
//	avatar := gravatar.URL("john@example.com")
//	// https://gravatar.com/avatar/<md5hex>?d=mm&size=200
package gravatar
