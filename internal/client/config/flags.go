package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/dmitrijs2005/todomini/internal/flagx"
)

// parseFlags populates Config fields from command-line flags. Only the
// flags listed here are passed to the flag set, so -c/-config never trip it.
// An unknown backend panics.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-b", "-d", "-f", "-k", "-l", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.StringVar(&cfg.StorageBackend, "b", cfg.StorageBackend, "storage backend (sqlite, postgres, file, memory)")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "SQLite path or PostgreSQL DSN")
	fs.StringVar(&cfg.DataDir, "f", cfg.DataDir, "data directory for the file backend")
	fs.StringVar(&cfg.StorageKey, "k", cfg.StorageKey, "storage key of the persisted record")
	fs.StringVar(&cfg.LogFormat, "l", cfg.LogFormat, "log format (text, json, zap)")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	switch cfg.StorageBackend {
	case BackendSQLite, BackendPostgres, BackendFile, BackendMemory:
	default:
		panic(fmt.Sprintf("unknown storage backend %q", cfg.StorageBackend))
	}
}
