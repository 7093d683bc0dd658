package config

// KeystoreConfig selects and parameterizes the key storage backend
type KeystoreConfig struct {
	// Backend is one of memory, leveldb, bolt, postgres
	Backend string `yaml:"backend"`

	// Path is the database directory (leveldb) or file (bolt)
	Path string `yaml:"path"`

	// PostgresDSN is the lib/pq connection string for the postgres backend
	PostgresDSN string `yaml:"postgres_dsn"`
}

// WalletConfig holds key-lifecycle policy
type WalletConfig struct {
	// DefaultScheme is used when /createwallet carries no scheme argument
	DefaultScheme string `yaml:"default_scheme"`

	// Recreate is reject or overwrite
	Recreate string `yaml:"recreate"`
}

// DialogConfig holds conversation policy
type DialogConfig struct {
	// Midflow is reject or reset
	Midflow string `yaml:"midflow"`
}

// BotConfig identifies the local console session used by `run`
type BotConfig struct {
	Owner    uint64 `yaml:"owner"`
	Username string `yaml:"username"`
}

// AppConfig holds the configuration from config.yml
type AppConfig struct {
	Keystore KeystoreConfig `yaml:"keystore"`
	Wallet   WalletConfig   `yaml:"wallet"`
	Dialog   DialogConfig   `yaml:"dialog"`
	Bot      BotConfig      `yaml:"bot"`
}

// ConfigFile is the top-level structure for config.yml
type ConfigFile struct {
	Config AppConfig `yaml:"config"`
}

// MetricsConfig is tuning read from the .ini file
type MetricsConfig struct {
	// Addr is the prometheus listen address; empty disables the endpoint
	Addr string `ini:"addr"`
}

// QueueConfig is tuning read from the .ini file
type QueueConfig struct {
	// OwnerDepth bounds queued actions per owner
	OwnerDepth int `ini:"owner_depth"`
}
