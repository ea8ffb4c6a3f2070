package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Supported model providers.
const (
	ProviderGemini = "gemini"
	ProviderOllama = "ollama"
	ProviderOpenAI = "openai"
)

// defaultModels applies when llm.model is unset. Ollama has none; local models vary.
var defaultModels = map[string]string{
	ProviderGemini: "gemini-1.5-flash",
	ProviderOpenAI: "gpt-4o-mini",
}

type Config struct {
	App    AppConfig
	Server ServerConfig
	CORS   CORSConfig
	DB     DBConfig
	LLM    LLMConfig
	Cache  CacheConfig
	Redis  RedisConfig
	Logger LoggerConfig
}

type AppConfig struct {
	Name string
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	BodyLimitMB  int
}

type CORSConfig struct {
	AllowOrigin string
}

// DBConfig points at the PostgreSQL instance holding quiz results and flashcard sessions.
type DBConfig struct {
	URL          string
	CAFile       string
	MaxOpenConns int
	MaxIdleConns int
}

type LLMConfig struct {
	Provider  string
	APIKey    string
	Model     string
	ServerURL string
}

type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type LoggerConfig struct {
	Level string
	Env   string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "EduGenie")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.read_timeout", 60)
	v.SetDefault("server.write_timeout", 120)
	v.SetDefault("server.body_limit_mb", 25)
	v.SetDefault("cors.allow_origin", "http://localhost:3000")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("llm.provider", ProviderGemini)
	v.SetDefault("llm.server_url", "http://localhost:11434")
	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.ttl", 3600)
	v.SetDefault("redis.db", 0)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")
}

// bindEnv maps config keys onto environment variables. The first variable that is set wins.
func bindEnv(v *viper.Viper) error {
	bindings := map[string][]string{
		"app.name":                {"APP_NAME"},
		"server.port":             {"SERVER_PORT", "PORT"},
		"server.read_timeout":     {"SERVER_READ_TIMEOUT"},
		"server.write_timeout":    {"SERVER_WRITE_TIMEOUT"},
		"server.body_limit_mb":    {"SERVER_BODY_LIMIT_MB"},
		"cors.allow_origin":       {"CORS_ALLOW_ORIGIN"},
		"database.url":            {"DATABASE_URL"},
		"database.ca_file":        {"DATABASE_CA_FILE"},
		"database.max_open_conns": {"DATABASE_MAX_OPEN_CONNS"},
		"database.max_idle_conns": {"DATABASE_MAX_IDLE_CONNS"},
		"llm.provider":            {"LLM_PROVIDER"},
		"llm.api_key":             {"LLM_API_KEY", "GEMINI_API_KEY"},
		"llm.model":               {"LLM_MODEL"},
		"llm.server_url":          {"LLM_SERVER"},
		"cache.enabled":           {"CACHE_ENABLED"},
		"cache.ttl":               {"CACHE_TTL"},
		"redis.address":           {"REDIS_ADDRESS"},
		"redis.password":          {"REDIS_PASSWORD"},
		"redis.db":                {"REDIS_DB"},
		"logger.level":            {"LOG_LEVEL"},
		"logger.env":              {"ENV"},
	}
	for key, envs := range bindings {
		args := append([]string{key}, envs...)
		if err := v.BindEnv(args...); err != nil {
			return fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}
	return nil
}

// LoadConfig reads config.yaml (optional) and the environment, then validates the result.
// Missing required settings are reported as an error so the process can fail fast.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setDefaults(v)
	if err := bindEnv(v); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	cfg := fromViper(v)
	if cfg.LLM.Model == "" {
		cfg.LLM.Model = defaultModels[cfg.LLM.Provider]
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
		},
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  time.Duration(v.GetInt("server.read_timeout")) * time.Second,
			WriteTimeout: time.Duration(v.GetInt("server.write_timeout")) * time.Second,
			BodyLimitMB:  v.GetInt("server.body_limit_mb"),
		},
		CORS: CORSConfig{
			AllowOrigin: strings.TrimSpace(v.GetString("cors.allow_origin")),
		},
		DB: DBConfig{
			URL:          strings.TrimSpace(v.GetString("database.url")),
			CAFile:       strings.TrimSpace(v.GetString("database.ca_file")),
			MaxOpenConns: v.GetInt("database.max_open_conns"),
			MaxIdleConns: v.GetInt("database.max_idle_conns"),
		},
		LLM: LLMConfig{
			Provider:  strings.ToLower(strings.TrimSpace(v.GetString("llm.provider"))),
			APIKey:    strings.TrimSpace(v.GetString("llm.api_key")),
			Model:     strings.TrimSpace(v.GetString("llm.model")),
			ServerURL: strings.TrimSpace(v.GetString("llm.server_url")),
		},
		Cache: CacheConfig{
			Enabled: v.GetBool("cache.enabled"),
			TTL:     time.Duration(v.GetInt("cache.ttl")) * time.Second,
		},
		Redis: RedisConfig{
			Address:  strings.TrimSpace(v.GetString("redis.address")),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Logger: LoggerConfig{
			Level: strings.ToLower(v.GetString("logger.level")),
			Env:   strings.ToLower(v.GetString("logger.env")),
		},
	}
}

// Validate reports every missing or inconsistent setting at once.
func (c *Config) Validate() error {
	var errs []error
	if c.DB.URL == "" {
		errs = append(errs, errors.New("database.url (DATABASE_URL) is required"))
	}
	if c.DB.CAFile == "" {
		errs = append(errs, errors.New("database.ca_file (DATABASE_CA_FILE) is required"))
	}
	if c.CORS.AllowOrigin == "" || c.CORS.AllowOrigin == "*" {
		errs = append(errs, errors.New("cors.allow_origin must name exactly one origin"))
	}
	switch c.LLM.Provider {
	case ProviderGemini, ProviderOpenAI:
		if c.LLM.APIKey == "" {
			errs = append(errs, errors.New("llm.api_key (LLM_API_KEY or GEMINI_API_KEY) is required"))
		}
	case ProviderOllama:
		if c.LLM.ServerURL == "" {
			errs = append(errs, errors.New("llm.server_url (LLM_SERVER) is required for ollama"))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported llm.provider %q", c.LLM.Provider))
	}
	if c.LLM.Model == "" {
		errs = append(errs, fmt.Errorf("llm.model (LLM_MODEL) is required for provider %q", c.LLM.Provider))
	}
	if c.Cache.Enabled && c.Redis.Address == "" {
		errs = append(errs, errors.New("redis.address (REDIS_ADDRESS) is required when cache.enabled is set"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
