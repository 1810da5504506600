package config

// Storage backends understood by storage.Open.
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendFile     = "file"
	BackendMemory   = "memory"
)

// DefaultStorageKey is the key under which the whole account/task record is
// stored.
const DefaultStorageKey = "todo-mini-backend-v1"

// Config holds runtime settings for the todomini CLI.
//
// Fields:
//   - StorageBackend: one of sqlite, postgres, file, memory.
//   - DatabaseDSN: SQLite path or PostgreSQL DSN, depending on the backend.
//   - DataDir: directory used by the file backend.
//   - StorageKey: key of the single persisted record.
//   - LogFormat / LogLevel: see logging.New.
type Config struct {
	StorageBackend string
	DatabaseDSN    string
	DataDir        string
	StorageKey     string
	LogFormat      string
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StorageBackend = BackendSQLite
	c.DatabaseDSN = "todomini.db"
	c.DataDir = "data"
	c.StorageKey = DefaultStorageKey
	c.LogFormat = "text"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
