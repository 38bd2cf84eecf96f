// Package config provides configuration management for the Backlog Manager.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file (via godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: MySQL connection details
//   - Log: Logging level and format
//   - Storage: S3/MinIO credentials and bucket for the artwork mirror
//   - Steam: Steam Web API credential, base URL, request timeout
//   - Sync: sync pass behavior (interval, failure policy, date policy)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
