// Package config loads typed configuration from environment variables
// with caarlos0/env, after an optional .env file read by godotenv.
package config
