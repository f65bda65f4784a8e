package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const defaultTimeout = 2 * time.Minute

// DefaultPath returns the default config file path.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "comiccards", "config.yml")
}

// Path returns the config path in effect: COMICCARDS_CONFIG or DefaultPath.
func Path() string {
	if p := os.Getenv("COMICCARDS_CONFIG"); p != "" {
		return ExpandHome(p)
	}
	return DefaultPath()
}

// Load reads the config from disk (or env). A missing file is not an error;
// credentials can come from the environment alone.
func Load() (*Config, error) {
	return LoadFile(Path())
}

// LoadFile is Load with an explicit path.
func LoadFile(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("marvel.api_base", "https://gateway.marvel.com/v1/public")
	v.SetDefault("marvel.public_key", "")
	v.SetDefault("marvel.private_key_env", "MARVEL_PRIVATE_KEY")
	v.SetDefault("imgur.api_base", "https://api.imgur.com/3")
	v.SetDefault("imgur.client_id_env", "IMGUR_CLIENT_ID")
	v.SetDefault("defaults.card_width", 48)
	v.SetDefault("defaults.timeout", defaultTimeout.String())

	v.SetEnvPrefix("COMICCARDS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		// Not finding the config file is fine.
		if !os.IsNotExist(err) {
			if _, isCfgNotFound := err.(viper.ConfigFileNotFoundError); !isCfgNotFound {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Secrets are resolved from env only, never from the file.
	if cfg.Marvel.PublicKey == "" {
		cfg.Marvel.PublicKey = os.Getenv("MARVEL_PUBLIC_KEY")
	}
	cfg.Marvel.PrivateKey = firstEnv(cfg.Marvel.EffectivePrivateKeyEnv(), "COMICCARDS_MARVEL_PRIVATE_KEY")
	cfg.Imgur.ClientID = firstEnv(cfg.Imgur.EffectiveClientIDEnv(), "COMICCARDS_IMGUR_CLIENT_ID")

	return &cfg, nil
}

// Save writes the config to path, creating parent directories.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(cfg)
}

// RequestTimeout parses defaults.timeout, falling back to two minutes.
func (c *Config) RequestTimeout() time.Duration {
	d, err := time.ParseDuration(c.Defaults.Timeout)
	if err != nil || d <= 0 {
		return defaultTimeout
	}
	return d
}

// ExpandHome expands a leading ~/ in a path.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

func firstEnv(names ...string) string {
	for _, n := range names {
		if v := os.Getenv(n); v != "" {
			return v
		}
	}
	return ""
}
