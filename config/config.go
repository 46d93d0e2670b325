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

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	Auth       AuthConfig
	Postgres   PostgresConfig

	// AI provider abstraction
	LLM      LLMConfig
	Analyzer AnalyzerConfig

	// Background context processor
	Worker WorkerConfig

	// Optional Google Calendar import
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	AllowedHosts    []string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type AuthConfig struct {
	SecretKey string
	TokenTTL  time.Duration
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DSN returns the lib/pq connection string.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LLMConfig holds configuration for the LLM provider abstraction layer.
type LLMConfig struct {
	Providers       []ProviderConfig
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      string
	MaxTotalTimeout string
}

// ProviderConfig holds configuration for a single LLM provider.
// Name is one of: openai, anthropic, gemini, local.
type ProviderConfig struct {
	Name            string
	Enabled         bool
	Priority        int
	APIKey          string
	BaseURL         string
	Model           string
	RateLimitPerMin int
}

// AnalyzerConfig tunes the AI analysis engine.
type AnalyzerConfig struct {
	Timezone            string
	ConfidenceThreshold int
}

type WorkerConfig struct {
	PollInterval time.Duration
	BatchSize    int
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
// Every key can be overridden by environment (dots become underscores).
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

	// Environment & server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = viper.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Allowed hosts for CORS; env form: ALLOWED_HOSTS=a.example.com,b.example.com
	cfg.HTTPServer.AllowedHosts = splitAndTrim(viper.GetString("allowed_hosts"))

	// Auth
	cfg.Auth.SecretKey = viper.GetString("secret_key")
	if cfg.Auth.SecretKey == "" {
		return nil, fmt.Errorf("SECRET_KEY is required")
	}
	cfg.Auth.TokenTTL = viper.GetDuration("auth.token_ttl")

	// Postgres
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")

	// LLM provider abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")
	cfg.LLM.Providers = loadProviders()

	// Flat env credentials register a provider even without a config file,
	// so OPENAI_API_KEY / ANTHROPIC_API_KEY / GEMINI_API_KEY / LOCAL_LLM_URL
	// alone are enough to switch the analyzer out of heuristic mode.
	cfg.LLM.Providers = appendEnvProviders(cfg.LLM.Providers)

	// Analyzer
	cfg.Analyzer.Timezone = viper.GetString("analyzer.timezone")
	cfg.Analyzer.ConfidenceThreshold = viper.GetInt("analyzer.confidence_threshold")

	// Worker
	cfg.Worker.PollInterval = viper.GetDuration("worker.poll_interval")
	cfg.Worker.BatchSize = viper.GetInt("worker.batch_size")

	// Google Calendar (optional)
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.rate_limit_per_min", 120)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("auth.token_ttl", "720h")

	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.password", "postgres")
	viper.SetDefault("postgres.dbname", "smart_todo")
	viper.SetDefault("postgres.sslmode", "disable")

	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 3)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")

	viper.SetDefault("analyzer.timezone", "UTC")
	viper.SetDefault("analyzer.confidence_threshold", 70)

	viper.SetDefault("worker.poll_interval", "30s")
	viper.SetDefault("worker.batch_size", 10)
}

// loadProviders reads the llm.providers list from the config file.
func loadProviders() []ProviderConfig {
	var providers []ProviderConfig

	if !viper.IsSet("llm.providers") {
		return providers
	}

	providersRaw := viper.Get("llm.providers")
	providersList, ok := providersRaw.([]interface{})
	if !ok {
		return providers
	}

	for _, p := range providersList {
		providerMap, ok := p.(map[string]interface{})
		if !ok {
			continue
		}
		providers = append(providers, ProviderConfig{
			Name:            getStringFromMap(providerMap, "name"),
			Enabled:         getBoolFromMap(providerMap, "enabled"),
			Priority:        getIntFromMap(providerMap, "priority"),
			APIKey:          expandEnvVar(getStringFromMap(providerMap, "api_key")),
			BaseURL:         getStringFromMap(providerMap, "base_url"),
			Model:           getStringFromMap(providerMap, "model"),
			RateLimitPerMin: getIntFromMap(providerMap, "rate_limit_per_min"),
		})
	}

	return providers
}

// appendEnvProviders registers providers from flat environment credentials
// when the config file did not already declare them.
func appendEnvProviders(providers []ProviderConfig) []ProviderConfig {
	declared := make(map[string]bool, len(providers))
	for _, p := range providers {
		declared[p.Name] = true
	}

	nextPriority := len(providers) + 1
	add := func(name, apiKey, baseURL, model string) {
		if declared[name] {
			return
		}
		providers = append(providers, ProviderConfig{
			Name:     name,
			Enabled:  true,
			Priority: nextPriority,
			APIKey:   apiKey,
			BaseURL:  baseURL,
			Model:    model,
		})
		nextPriority++
	}

	if key := viper.GetString("openai_api_key"); key != "" {
		add("openai", key, "", viper.GetString("openai_model"))
	}
	if key := viper.GetString("anthropic_api_key"); key != "" {
		add("anthropic", key, "", viper.GetString("anthropic_model"))
	}
	if key := viper.GetString("gemini_api_key"); key != "" {
		add("gemini", key, "", viper.GetString("gemini_model"))
	}
	if url := viper.GetString("local_llm_url"); url != "" {
		// Local endpoints need no API key.
		add("local", "local", url, viper.GetString("local_llm_model"))
	}

	return providers
}

// expandEnvVar expands values in the format ${VAR_NAME}.
func expandEnvVar(value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

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
	return value
}

func splitAndTrim(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
