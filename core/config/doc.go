// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/mvc/core/config"
//
//	var cfg dispatcher.Config
//
//	// Load with error handling
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	// Or panic on failure (useful for startup)
//	config.MustLoad(&cfg)
//
// Parse skips the cache and keeps values already set on the target where the
// environment has none, which suits tests and layered defaults.
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 server.Config
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 server.Config
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently:
//
//	// Each type has its own cache entry
//	config.MustLoad(&server.Config{})
//	config.MustLoad(&dispatcher.Config{})
package config
