// Package config provides configuration loading and validation for the CLI.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/jonathan/resume-screener/internal/extraction"
)

// Provider names for the NER and embedding backends
const (
	ProviderGemini  = "gemini"
	ProviderRules   = "rules"
	ProviderHashing = "hashing"
)

// envPrefix namespaces environment overrides, e.g. SCREENER_WORKERS.
const envPrefix = "SCREENER"

// Config is the screener configuration assembled from defaults, an optional
// YAML/JSON/TOML file and SCREENER_* environment variables.
type Config struct {
	APIKey         string          `mapstructure:"api_key"`
	NER            NERConfig       `mapstructure:"ner"`
	Embedding      EmbeddingConfig `mapstructure:"embedding"`
	Workers        int             `mapstructure:"workers" validate:"gte=1,lte=64"`
	VocabularyFile string          `mapstructure:"vocabulary_file"`
	Log            LogConfig       `mapstructure:"log"`
}

// NERConfig selects the entity recognizer
type NERConfig struct {
	Provider string        `mapstructure:"provider" validate:"oneof=gemini rules"`
	Model    string        `mapstructure:"model"`
	Timeout  time.Duration `mapstructure:"timeout" validate:"gte=0"`
}

// EmbeddingConfig selects the text embedder
type EmbeddingConfig struct {
	Provider   string        `mapstructure:"provider" validate:"oneof=gemini hashing"`
	Model      string        `mapstructure:"model"`
	Dimensions int           `mapstructure:"dimensions" validate:"gte=0"`
	Timeout    time.Duration `mapstructure:"timeout" validate:"gte=0"`
}

// LogConfig controls the zap logger
type LogConfig struct {
	JSON  bool `mapstructure:"json"`
	Debug bool `mapstructure:"debug"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api_key", "")
	v.SetDefault("ner.provider", ProviderGemini)
	v.SetDefault("ner.model", "gemini-2.5-flash-lite")
	v.SetDefault("ner.timeout", 30*time.Second)
	v.SetDefault("embedding.provider", ProviderGemini)
	v.SetDefault("embedding.model", "text-embedding-004")
	v.SetDefault("embedding.dimensions", 512)
	v.SetDefault("embedding.timeout", 30*time.Second)
	v.SetDefault("workers", 4)
	v.SetDefault("vocabulary_file", "")
	v.SetDefault("log.json", false)
	v.SetDefault("log.debug", false)
}

// Load reads configuration from path (optional) and the environment, then validates it.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("api_key", envPrefix+"_API_KEY", "GEMINI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind api key env: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges and that an API key is present when a Gemini backend is selected.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if c.NeedsAPIKey() && c.APIKey == "" {
		return fmt.Errorf("config error: api key required for the gemini provider: set GEMINI_API_KEY or choose the rules/hashing providers")
	}
	return nil
}

// NeedsAPIKey reports whether any configured backend calls the Gemini API.
func (c *Config) NeedsAPIKey() bool {
	return c.NER.Provider == ProviderGemini || c.Embedding.Provider == ProviderGemini
}

// LoadVocabularyFile reads vocabulary additions (skills, aliases, keywords) from a YAML or JSON file.
func LoadVocabularyFile(path string) (extraction.Extension, error) {
	var ext extraction.Extension

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return ext, fmt.Errorf("failed to read vocabulary file %s: %w", path, err)
	}
	if err := v.Unmarshal(&ext); err != nil {
		return ext, fmt.Errorf("failed to decode vocabulary file %s: %w", path, err)
	}
	return ext, nil
}
