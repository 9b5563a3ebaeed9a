package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Version is the tool's own release version
const Version = "v1.0.0"

// FormatterConfig holds the prettier policy knobs. The original variants of
// this tool disagreed on these defaults, so they are configuration, not
// constants.
type FormatterConfig struct {
	Semi        bool `mapstructure:"semi"`
	SingleQuote bool `mapstructure:"single_quote"`
	TabWidth    int  `mapstructure:"tab_width"`
}

// Config unifies the generator's policy choices into one explicit object:
// default answers, optional pipeline stages, formatter rules, the fastify
// companion plugin set, and a directory of additional file templates.
type Config struct {
	PackageManager  string          `mapstructure:"package_manager"`
	Framework       string          `mapstructure:"framework"`
	ResolveVersions bool            `mapstructure:"resolve_versions"`
	AutoInstall     bool            `mapstructure:"auto_install"`
	Formatter       FormatterConfig `mapstructure:"formatter"`
	FastifyPlugins  []string        `mapstructure:"fastify_plugins"`
	TemplatesDir    string          `mapstructure:"templates_dir"`
}

// Load reads configuration with precedence: defaults, then an optional
// .createnodeapi.yaml (current directory first, then home), then
// CREATE_NODE_API_* environment variables.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".createnodeapi")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}

	setDefaults(v)

	v.SetEnvPrefix("CREATE_NODE_API")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// Default returns the built-in configuration without touching disk or env
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		// Defaults are static; a decode failure here is a programming error
		panic(fmt.Sprintf("invalid built-in config defaults: %v", err))
	}
	return &cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("package_manager", "npm")
	v.SetDefault("framework", "express")
	v.SetDefault("resolve_versions", true)
	v.SetDefault("auto_install", false)
	v.SetDefault("formatter.semi", false)
	v.SetDefault("formatter.single_quote", false)
	v.SetDefault("formatter.tab_width", 2)
	v.SetDefault("fastify_plugins", []string{
		"@fastify/cors",
		"@fastify/swagger",
		"fastify-type-provider-zod",
	})
	v.SetDefault("templates_dir", "")
}
