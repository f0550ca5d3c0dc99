// Package config loads application configuration from an optional file and
// PLANILHA_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/cheizdavi-dotcom/Entregavel-Planilha-sub000/internal/oracle"
)

// Config is the application configuration.
type Config struct {
	User           string       `mapstructure:"user"`
	PaymentMethod  string       `mapstructure:"payment_method"`
	VocabularyFile string       `mapstructure:"vocabulary_file"`
	Store          StoreConfig  `mapstructure:"store"`
	Gemini         GeminiConfig `mapstructure:"gemini"`
}

// StoreConfig selects and parameterizes the transaction store backend.
type StoreConfig struct {
	Backend string `mapstructure:"backend"` // "memory" or "bigquery"
	Project string `mapstructure:"project"`
	Dataset string `mapstructure:"dataset"`
	Table   string `mapstructure:"table"`
}

// GeminiConfig configures the classification oracle.
type GeminiConfig struct {
	Model string `mapstructure:"model"`
}

// Load reads configuration from path (optional, YAML) with environment
// overrides and defaults applied.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("user", "local")
	v.SetDefault("payment_method", "other")
	v.SetDefault("store.backend", "memory")
	v.SetDefault("store.dataset", "finance")
	v.SetDefault("store.table", "transactions")
	v.SetDefault("gemini.model", oracle.DefaultModel)

	v.SetEnvPrefix("PLANILHA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("Load: reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("Load: unmarshal config: %w", err)
	}

	if cfg.Store.Backend == "bigquery" && cfg.Store.Project == "" {
		return nil, fmt.Errorf("Load: store.project is required for the bigquery backend")
	}
	return &cfg, nil
}
