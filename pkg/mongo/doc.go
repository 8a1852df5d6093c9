// Package mongo provides connection helpers for the MongoDB instance backing
// the citizen store: retrying Connect, a database-scoped constructor, and a
// health check for probes.
//
// Configuration comes from environment variables via the Config struct:
//
//	var cfg mongo.Config
//	config.MustLoad(&cfg)
//	db, err := mongo.NewWithDatabase(ctx, cfg, "signup")
package mongo
