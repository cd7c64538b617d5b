// Package config loads runtime configuration for the StudyHub CLI and API.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables prefixed STUDYHUB_, optionally read from a .env
//     file in the working directory (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-driver string   store backend: sqlite or postgres
//	-d string        store DSN (file path for sqlite, URL for postgres)
//	-a string        listen address of the JSON API
//	-t int           timeout for AI and video requests (seconds)
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "60s" or
// integer nanoseconds:
//
//	{
//	  "store_driver": "sqlite",
//	  "store_dsn": "studyhub.db",
//	  "http_addr": "127.0.0.1:8088",
//	  "cors_allowed_origins": ["http://localhost:5173"],
//	  "ai_base_url": "https://api.deepseek.com/v1",
//	  "ai_model": "deepseek-chat",
//	  "video_endpoint": "",
//	  "request_timeout": "60s",
//	  "s3_region": "us-east-1",
//	  "s3_base_endpoint": "http://127.0.0.1:9000",
//	  "s3_access_key": "",
//	  "s3_secret_key": ""
//	}
//
// Provider API keys are not configuration: they live in the store and are
// managed through the credential flow.
package config
