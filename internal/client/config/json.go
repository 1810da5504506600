package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/todomini/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from "empty".
type JsonConfig struct {
	StorageBackend *string `json:"storage_backend"`
	DatabaseDSN    *string `json:"database_dsn"`
	DataDir        *string `json:"data_dir"`
	StorageKey     *string `json:"storage_key"`
	LogFormat      *string `json:"log_format"`
	LogLevel       *string `json:"log_level"`
}

// parseJson overlays cfg with values from the JSON file named by -c/-config.
// Without the flag it does nothing. Read or decode errors panic; the caller
// is startup code that cannot continue with a half-read config.
func parseJson(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	overlay(&cfg.StorageBackend, jc.StorageBackend)
	overlay(&cfg.DatabaseDSN, jc.DatabaseDSN)
	overlay(&cfg.DataDir, jc.DataDir)
	overlay(&cfg.StorageKey, jc.StorageKey)
	overlay(&cfg.LogFormat, jc.LogFormat)
	overlay(&cfg.LogLevel, jc.LogLevel)
}

func overlay(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
