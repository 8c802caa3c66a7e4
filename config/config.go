package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"tm-intent-classifier/pkg/genaihub"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// SAP AI Core credentials (client-credentials OAuth)
	AICore AICoreConfig

	// Generative AI Hub orchestration
	GenAIHub GenAIHubConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// AICoreConfig carries the SAP AI Core service-key fields. All five are
// required for live classification; when any is missing the service runs
// with the keyword fallback only.
type AICoreConfig struct {
	AuthURL       string
	ClientID      string
	ClientSecret  string
	ResourceGroup string
	BaseURL       string
}

// Complete reports whether all fields needed for live LLM calls are set.
func (c AICoreConfig) Complete() bool {
	return c.AuthURL != "" &&
		c.ClientID != "" &&
		c.ClientSecret != "" &&
		c.ResourceGroup != "" &&
		c.BaseURL != ""
}

type GenAIHubConfig struct {
	Model   string
	Timeout string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// SAP AI Core service key. The env replacer maps AICORE_AUTH_URL etc.
	cfg.AICore.AuthURL = viper.GetString("aicore.auth_url")
	cfg.AICore.ClientID = viper.GetString("aicore.client_id")
	cfg.AICore.ClientSecret = expandEnvVar(viper.GetString("aicore.client_secret"))
	cfg.AICore.ResourceGroup = viper.GetString("aicore.resource_group")
	cfg.AICore.BaseURL = viper.GetString("aicore.base_url")

	// Generative AI Hub
	cfg.GenAIHub.Model = viper.GetString("genaihub.model")
	cfg.GenAIHub.Timeout = viper.GetString("genaihub.timeout")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("aicore.resource_group", "default")
	viper.SetDefault("genaihub.model", genaihub.DefaultModel)
	viper.SetDefault("genaihub.timeout", genaihub.DefaultTimeout.String())
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}
