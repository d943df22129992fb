package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Translator TranslatorConfig `mapstructure:"translator"`
	OpenAI     OpenAIConfig     `mapstructure:"openai"`
	Google     GoogleConfig     `mapstructure:"google"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	CORSOrigins     []string      `mapstructure:"cors_origins"`
}

// Addr returns host:port for net.Listen.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type TranslatorConfig struct {
	Provider string `mapstructure:"provider"`
}

type OpenAIConfig struct {
	APIKey       string `mapstructure:"api_key"`
	BaseURL      string `mapstructure:"base_url"`
	Organization string `mapstructure:"organization"`
}

type GoogleConfig struct {
	Credentials string `mapstructure:"credentials"`
}

// Load reads configuration from defaults, an optional YAML file, a .env file
// in the working directory and the process environment, in increasing order
// of precedence. Credentials are not validated here.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.llm-api")
	}

	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.cors_origins", []string{})
	v.SetDefault("translator.provider", "openai")
	v.SetDefault("openai.api_key", "")
	v.SetDefault("openai.base_url", "https://api.openai.com/v1")
	v.SetDefault("openai.organization", "")
	v.SetDefault("google.credentials", "")

	v.SetEnvPrefix("LLMAPI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Provider credentials keep the names their SDKs read.
	for key, env := range map[string]string{
		"openai.api_key":      "OPENAI_API_KEY",
		"openai.base_url":     "OPENAI_BASE_URL",
		"openai.organization": "OPENAI_ORG_ID",
		"google.credentials":  "GOOGLE_APPLICATION_CREDENTIALS",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return nil, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	return &cfg, nil
}
