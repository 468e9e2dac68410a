// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv, which reads an optional .env file once per
// process, and github.com/caarlos0/env/v11, which parses the environment into
// tagged structs. Each configuration type is parsed once and cached.
//
//	type Config struct {
//	    Addr   string        `env:"HTTP_ADDR" envDefault:":8080"`
//	    Fade   time.Duration `env:"TOAST_FADE_DURATION" envDefault:"400ms"`
//	    Secret string        `env:"COOKIE_SECRETS,required"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Reset drops the cache so tests can reload with a different environment.
package config
