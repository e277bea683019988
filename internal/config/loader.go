package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Load reads configuration through the global viper instance so flags bound
// with viper.BindPFlag take precedence. An empty configFile searches
// ~/.siteview and the working directory for config.yaml.
func Load(configFile string) (*Config, error) {
	return LoadWithViper(viper.GetViper(), configFile)
}

// LoadWithViper layers defaults, the config file and SITEVIEW_* environment
// variables on v and unmarshals the result. A missing config file is not an
// error unless configFile names it explicitly.
func LoadWithViper(v *viper.Viper, configFile string) (*Config, error) {
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigDir())
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("fetch.timeout", DefaultFetchTimeout)
	v.SetDefault("fetch.proxy_url", "")
	v.SetDefault("fetch.insecure_skip_verify", false)
	v.SetDefault("fetch.max_body_size", DefaultMaxBodySize)

	v.SetDefault("display.format", DefaultDisplayFormat)
	v.SetDefault("display.date_layout", DefaultDateLayout)

	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
}
