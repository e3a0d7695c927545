package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig
	HTTPServer  HTTPServerConfig
	Logger      LoggerConfig

	// Model gateway
	Groq GroqConfig

	// Transport hardening
	RateLimit RateLimitConfig
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

// GroqConfig holds the completion endpoint settings. APIKey and BaseURL may
// legitimately be empty: the gateway then runs in a disabled state instead
// of failing startup.
type GroqConfig struct {
	APIKey    string
	BaseURL   string
	Model     string
	Timeout   time.Duration
	CacheSize int
}

type RateLimitConfig struct {
	Enabled bool
	PerMin  int
	Burst   int
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

	// Groq completion endpoint
	cfg.Groq.APIKey = expandEnvVar(viper.GetString("groq.api_key"))
	cfg.Groq.BaseURL = expandEnvVar(viper.GetString("groq.base_url"))
	cfg.Groq.Model = viper.GetString("groq.model")
	cfg.Groq.CacheSize = viper.GetInt("groq.cache_size")

	// Flat env fallbacks kept compatible with earlier deployments.
	if key := viper.GetString("openai_api_key"); key != "" {
		cfg.Groq.APIKey = key
	}
	if base := viper.GetString("openai_api_base"); base != "" {
		cfg.Groq.BaseURL = base
	}

	timeoutStr := viper.GetString("groq.timeout")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid groq.timeout %q: %w", timeoutStr, err)
	}
	cfg.Groq.Timeout = timeout

	// Rate limiting
	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")

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

	viper.SetDefault("groq.model", "llama3-8b-8192")
	viper.SetDefault("groq.timeout", "60s")
	viper.SetDefault("groq.cache_size", 256)

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.per_min", 60)
	viper.SetDefault("rate_limit.burst", 10)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
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
