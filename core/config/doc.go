// Package config loads environment variables into typed structs.
//
// A .env file in the working directory is read once on first use, then
// caarlos0/env parses the environment into the struct tags. Each type is
// loaded once per process and served from a cache afterwards.
//
//	type Config struct {
//		Server server.Config
//		JWT    jwt.Config
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
package config
