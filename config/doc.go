// Package config provides type-safe environment variable loading with
// per-type caching. Configuration structs declare their variables with
// `env:` tags and defaults with `envDefault:`; a .env file is honored on
// first use for local development.
//
//	type Config struct {
//		Port int `env:"PORT" envDefault:"8080"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
package config
