// Package config loads typed application configuration from environment
// variables.
//
// It wraps github.com/joho/godotenv, which reads optional .env files into
// the process environment, and github.com/caarlos0/env/v11, which parses the
// environment into a struct using `env` and `envDefault` tags. Parsed values
// are cached per configuration type for the lifetime of the process.
//
//	type Config struct {
//		Addr        string        `env:"HTTP_ADDR" envDefault:":8080"`
//		AutoDismiss time.Duration `env:"NOTIFY_AUTO_DISMISS" envDefault:"5s"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// ResetCache forces the next Load to re-read the environment, which is what
// tests that call t.Setenv need.
package config
