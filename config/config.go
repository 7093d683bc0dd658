package config

import (
	"log"
	"os"

	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// LoadAppConfig reads and parses the config.yml file
func LoadAppConfig(path string) (*AppConfig, error) {
	log.Printf("[config] LoadAppConfig called with path: %s", path)
	file, err := os.Open(path)
	if err != nil {
		log.Printf("[config] Failed to open file: %v", err)
		return nil, err
	}
	defer file.Close()

	var cfgFile ConfigFile
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfgFile); err != nil {
		log.Printf("[config] Failed to decode YAML: %v", err)
		return nil, err
	}

	cfg := cfgFile.Config
	applyDefaults(&cfg)
	log.Printf("[config] Loaded config: backend=%s scheme=%s recreate=%s midflow=%s",
		cfg.Keystore.Backend, cfg.Wallet.DefaultScheme, cfg.Wallet.Recreate, cfg.Dialog.Midflow)
	return &cfg, nil
}

// DefaultAppConfig returns the configuration used when no file exists
func DefaultAppConfig() *AppConfig {
	cfg := &AppConfig{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Keystore.Backend == "" {
		cfg.Keystore.Backend = DefaultBackend
	}
	if cfg.Keystore.Path == "" {
		cfg.Keystore.Path = DefaultBackendPath
	}
	if cfg.Wallet.DefaultScheme == "" {
		cfg.Wallet.DefaultScheme = DefaultScheme
	}
	if cfg.Bot.Owner == 0 {
		cfg.Bot.Owner = DefaultOwner
	}
}

// LoadMetricsConfig reads metrics tuning from an .ini file
func LoadMetricsConfig(path string) (*MetricsConfig, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	metricsSection := cfg.Section("metrics")
	metricsCfg := &MetricsConfig{}
	err = metricsSection.MapTo(metricsCfg)
	if err != nil {
		return nil, err
	}
	return metricsCfg, nil
}

// LoadQueueConfig reads queue tuning from an .ini file
func LoadQueueConfig(path string) (*QueueConfig, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	queueSection := cfg.Section("queue")
	queueCfg := &QueueConfig{}
	err = queueSection.MapTo(queueCfg)
	if err != nil {
		return nil, err
	}
	return queueCfg, nil
}

// MasterKey returns the base64 sealing key from the environment, or
// empty when sealing is disabled
func MasterKey() string {
	return os.Getenv(EnvMasterKey)
}
