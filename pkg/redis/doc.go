// Package redis provides connection helpers for the Redis instance backing
// the verification token store: retrying Connect with URL-based configuration
// and a health check for probes.
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//	client, err := redis.Connect(ctx, cfg)
package redis
