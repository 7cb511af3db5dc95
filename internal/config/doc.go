// Package config manages application configuration for the EventMate API.
//
// The config package loads and validates configuration from environment
// variables. All configuration is centralized here to provide a single
// source of truth.
//
// # Configuration Loading
//
// Configuration is loaded from environment variables:
//
//	cfg, err := config.Load()
//
// # Configuration Groups
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS origins)
//   - DatabaseConfig: SurrealDB connection settings
//
// # Environment Variables
//
// Key environment variables:
//
//	SERVER_PORT          - HTTP server port (default: 8080)
//	SERVER_ENV           - development, production, or test
//	CORS_ALLOWED_ORIGINS - comma-separated list of allowed origins
//	DB_HOST              - SurrealDB host (default: localhost)
//	DB_PORT              - SurrealDB port (default: 8000)
//	DB_NAMESPACE         - Database namespace (default: eventmate)
//	DB_DATABASE          - Database name (default: main)
//	DB_USER              - Database username
//	DB_PASSWORD          - Database password
//
// # Default Values
//
// Sensible defaults are provided for development so the server starts
// against a local SurrealDB instance with no environment set.
package config
