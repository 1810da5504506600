// Package config loads runtime configuration for the todomini CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-b string   storage backend: sqlite, postgres, file, memory
//	-d string   SQLite file path or PostgreSQL DSN
//	-f string   data directory for the file backend
//	-k string   storage key of the persisted record
//	-l string   log format: text, json, zap
//	-v string   log level: debug, info, warn, error
//
// # JSON schema
//
// Keys that are absent keep their previous value:
//
//	{
//	  "storage_backend": "file",
//	  "data_dir": "/var/lib/todomini",
//	  "log_format": "zap"
//	}
package config
