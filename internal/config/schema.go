package config

import "errors"

// Config is the top-level comiccards configuration.
type Config struct {
	Marvel   MarvelConfig   `mapstructure:"marvel" yaml:"marvel"`
	Imgur    ImgurConfig    `mapstructure:"imgur" yaml:"imgur"`
	Defaults DefaultsConfig `mapstructure:"defaults" yaml:"defaults"`
}

// MarvelConfig holds catalog API settings.
type MarvelConfig struct {
	APIBase       string `mapstructure:"api_base" yaml:"api_base"`
	PublicKey     string `mapstructure:"public_key" yaml:"public_key,omitempty"`
	PrivateKeyEnv string `mapstructure:"private_key_env" yaml:"private_key_env"`
	PrivateKey    string `mapstructure:"-" yaml:"-"` // resolved at runtime, never written
}

// ImgurConfig holds image host settings.
type ImgurConfig struct {
	APIBase     string `mapstructure:"api_base" yaml:"api_base"`
	ClientIDEnv string `mapstructure:"client_id_env" yaml:"client_id_env"`
	ClientID    string `mapstructure:"-" yaml:"-"` // resolved at runtime, never written
}

// DefaultsConfig holds default values for operations.
type DefaultsConfig struct {
	CardWidth int    `mapstructure:"card_width" yaml:"card_width"`
	Timeout   string `mapstructure:"timeout" yaml:"timeout"` // Go duration, e.g. "2m"
}

var (
	// ErrNoMarvelKeys is returned when the catalog key pair is incomplete.
	ErrNoMarvelKeys = errors.New("marvel keys not configured")
	// ErrNoImgurClientID is returned when no image host client id is set.
	ErrNoImgurClientID = errors.New("imgur client id not configured")
)

// ValidateMarvel reports whether both catalog keys are present.
func (c *Config) ValidateMarvel() error {
	if c.Marvel.PublicKey == "" || c.Marvel.PrivateKey == "" {
		return ErrNoMarvelKeys
	}
	return nil
}

// ValidateImgur reports whether the image host client id is present.
func (c *Config) ValidateImgur() error {
	if c.Imgur.ClientID == "" {
		return ErrNoImgurClientID
	}
	return nil
}

// EffectivePrivateKeyEnv returns the env var holding the catalog private key.
func (m *MarvelConfig) EffectivePrivateKeyEnv() string {
	if m.PrivateKeyEnv != "" {
		return m.PrivateKeyEnv
	}
	return "MARVEL_PRIVATE_KEY"
}

// EffectiveClientIDEnv returns the env var holding the image host client id.
func (i *ImgurConfig) EffectiveClientIDEnv() string {
	if i.ClientIDEnv != "" {
		return i.ClientIDEnv
	}
	return "IMGUR_CLIENT_ID"
}
