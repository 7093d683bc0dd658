package config

const (
	// EnvMasterKey names the env var holding the base64 32-byte key that
	// seals private keys at rest. Empty means keys are stored unsealed.
	EnvMasterKey = "WALLETBOT_MASTER_KEY"

	DefaultConfigPath = "config/config.yml"
	DefaultTuningPath = "config/tuning.ini"

	DefaultBackend     = "leveldb"
	DefaultBackendPath = "./data/keys"
	DefaultScheme      = "ed25519"
	DefaultOwner       = 1
)
