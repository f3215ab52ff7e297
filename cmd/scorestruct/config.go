package main

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ukaji3/scorestruct-go/internal/logger"
	"github.com/ukaji3/scorestruct-go/pkg/scorestruct"
	"github.com/ukaji3/scorestruct-go/pkg/scorestruct/parser"
)

// Config holds the settings resolved from flags, environment and file.
type Config struct {
	Log     logger.Config `mapstructure:"log"`
	Extract ExtractConfig `mapstructure:"extract"`
	Output  OutputConfig  `mapstructure:"output"`
}

// ExtractConfig mirrors scorestruct.Options.
type ExtractConfig struct {
	Concurrency       int  `mapstructure:"concurrency"`
	HeaderFallbackLen int  `mapstructure:"header_fallback_len"`
	FallbackSearch    bool `mapstructure:"fallback_search"`
}

// OutputConfig controls JSON writing.
type OutputConfig struct {
	Pretty bool `mapstructure:"pretty"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("extract.concurrency", scorestruct.DefaultConcurrency)
	v.SetDefault("extract.header_fallback_len", parser.DefaultHeaderFallbackLen)
	v.SetDefault("extract.fallback_search", true)
	v.SetDefault("output.pretty", false)
}

// loadConfig layers defaults, the optional config file, SCORESTRUCT_*
// environment variables and command-line flags, in increasing priority.
func loadConfig(cmd *cobra.Command, cfgFile string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("SCORESTRUCT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file is optional
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	}

	// Bind command-line flags to config keys
	flagKeys := map[string]string{
		"log-level":   "log.level",
		"concurrency": "extract.concurrency",
		"pretty":      "output.pretty",
	}
	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}
	if noFallback, _ := cmd.Flags().GetBool("no-fallback"); noFallback {
		v.Set("extract.fallback_search", false)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) options(log logger.Logger) scorestruct.Options {
	fallback := c.Extract.FallbackSearch
	return scorestruct.Options{
		Concurrency:       c.Extract.Concurrency,
		HeaderFallbackLen: c.Extract.HeaderFallbackLen,
		FallbackSearch:    &fallback,
		Logger:            log,
	}
}
