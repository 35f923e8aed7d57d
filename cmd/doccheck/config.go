package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/ukaji3/doccheck-go/pkg/doccheck/classify"
	"github.com/ukaji3/doccheck-go/pkg/doccheck/normalize"
	"github.com/ukaji3/doccheck-go/pkg/doccheck/output"
)

// appConfig holds settings resolved from flags, DOCCHECK_* environment
// variables, the config file and defaults, in that order of precedence.
type appConfig struct {
	Places   int32          `mapstructure:"places"`
	Output   string         `mapstructure:"output"`
	Format   string         `mapstructure:"format"`
	Classify classifyConfig `mapstructure:"classify"`
}

type classifyConfig struct {
	Rules    []classify.Rule `mapstructure:"rules"`
	Fallback string          `mapstructure:"fallback"`
}

// loadConfig reads configuration, binding the named flags to their keys.
func loadConfig(configFile string, flags *pflag.FlagSet, keys ...string) (*appConfig, error) {
	v := viper.New()
	v.SetConfigName("doccheck")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if configFile != "" {
		v.SetConfigFile(configFile)
	}
	v.SetEnvPrefix("DOCCHECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("places", normalize.DefaultPlaces)
	v.SetDefault("output", output.DefaultReportPath)
	v.SetDefault("format", "text")
	v.SetDefault("classify.rules", classify.DefaultRules())
	v.SetDefault("classify.fallback", classify.DefaultFallback)

	for _, key := range keys {
		if err := v.BindPFlag(key, flags.Lookup(key)); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg appConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}
