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
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig
	Metrics    MetricsConfig
	Tracing    TracingConfig

	// Model capabilities
	AzureOpenAI AzureOpenAIConfig
	LLM         LLMConfig
	Embedding   EmbeddingConfig

	// Retrieval
	Retrieval RetrievalConfig
	Qdrant    QdrantConfig
	Chromem   ChromemConfig

	// Pipeline
	Moderation ModerationConfig
	Composer   ComposerConfig
	Session    SessionConfig

	// Storage
	Postgres PostgresConfig
	Redis    RedisConfig
}

type EnvironmentConfig struct {
	Name     string
	Timezone string
}

type HTTPServerConfig struct {
	Port           int
	Mode           string
	RequestTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
	FilePath     string
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

type MetricsConfig struct {
	Enabled bool
}

// TracingConfig controls OpenTelemetry spans. Without an endpoint spans are
// still created so logs carry trace ids, but nothing is exported.
type TracingConfig struct {
	Enabled     bool
	ServiceName string
	Endpoint    string // OTLP/HTTP host:port
	Insecure    bool
	SampleRate  float64
}

// AzureOpenAIConfig is the Azure OpenAI resource the pipeline talks to.
type AzureOpenAIConfig struct {
	Endpoint                string
	APIKey                  string
	APIVersion              string
	DeploymentName          string
	EmbeddingDeploymentName string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
	Temperature     float64          `yaml:"temperature"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name       string `yaml:"name"`
	Enabled    bool   `yaml:"enabled"`
	Priority   int    `yaml:"priority"`
	APIKey     string `yaml:"api_key"`
	BaseURL    string `yaml:"base_url,omitempty"`
	APIVersion string `yaml:"api_version,omitempty"`
	Model      string `yaml:"model"`
	Timeout    string `yaml:"timeout"`
}

// EmbeddingConfig selects the embedding provider: azure, openai or voyage.
type EmbeddingConfig struct {
	Provider   string
	APIKey     string
	BaseURL    string
	APIVersion string
	Model      string
}

// RetrievalConfig controls the similarity search over canned-question templates.
type RetrievalConfig struct {
	Backend        string // qdrant or chromem
	CollectionName string
	ScoreThreshold float64
	ResultCap      int
}

type QdrantConfig struct {
	URL        string
	APIKey     string
	VectorSize int
}

type ChromemConfig struct {
	Path string // empty keeps the collection in memory
}

type ModerationConfig struct {
	Sentinel string
}

type ComposerConfig struct {
	CustomerSegments map[string]string // customer id -> tone label
}

// SessionConfig selects the chat history store: memory, postgres or redis.
type SessionConfig struct {
	Backend     string
	TTL         time.Duration
	MaxSessions int
	MaxTurns    int
}

type PostgresConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
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
	cfg.Environment.Timezone = viper.GetString("environment.timezone")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.RequestTimeout = viper.GetDuration("http_server.request_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.Logger.FilePath = viper.GetString("logger.file_path")
	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.Metrics.Enabled = viper.GetBool("metrics.enabled")
	cfg.Tracing.Enabled = viper.GetBool("tracing.enabled")
	cfg.Tracing.ServiceName = viper.GetString("tracing.service_name")
	cfg.Tracing.Endpoint = viper.GetString("tracing.endpoint")
	cfg.Tracing.Insecure = viper.GetBool("tracing.insecure")
	cfg.Tracing.SampleRate = viper.GetFloat64("tracing.sample_rate")

	// Azure OpenAI
	cfg.AzureOpenAI.Endpoint = viper.GetString("azure_openai.endpoint")
	cfg.AzureOpenAI.APIKey = expandEnvVar(viper.GetString("azure_openai.api_key"))
	cfg.AzureOpenAI.APIVersion = viper.GetString("azure_openai.api_version")
	cfg.AzureOpenAI.DeploymentName = viper.GetString("azure_openai.deployment_name")
	cfg.AzureOpenAI.EmbeddingDeploymentName = viper.GetString("azure_openai.embedding_deployment_name")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")
	cfg.LLM.Temperature = viper.GetFloat64("llm.temperature")

	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
						Name:       getStringFromMap(providerMap, "name"),
						Enabled:    getBoolFromMap(providerMap, "enabled"),
						Priority:   getIntFromMap(providerMap, "priority"),
						APIKey:     expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:    getStringFromMap(providerMap, "base_url"),
						APIVersion: getStringFromMap(providerMap, "api_version"),
						Model:      getStringFromMap(providerMap, "model"),
						Timeout:    getStringFromMap(providerMap, "timeout"),
					})
				}
			}
		}
	}

	// Without an explicit provider list, the Azure resource is the only provider.
	if len(cfg.LLM.Providers) == 0 && cfg.AzureOpenAI.Endpoint != "" {
		cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
			Name:       "azure",
			Enabled:    true,
			Priority:   1,
			APIKey:     cfg.AzureOpenAI.APIKey,
			BaseURL:    cfg.AzureOpenAI.Endpoint,
			APIVersion: cfg.AzureOpenAI.APIVersion,
			Model:      cfg.AzureOpenAI.DeploymentName,
		})
	}

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}

	// Embeddings
	cfg.Embedding.Provider = viper.GetString("embedding.provider")
	cfg.Embedding.APIKey = expandEnvVar(viper.GetString("embedding.api_key"))
	cfg.Embedding.BaseURL = viper.GetString("embedding.base_url")
	cfg.Embedding.APIVersion = viper.GetString("embedding.api_version")
	cfg.Embedding.Model = viper.GetString("embedding.model")
	if cfg.Embedding.Provider == "azure" {
		if cfg.Embedding.APIKey == "" {
			cfg.Embedding.APIKey = cfg.AzureOpenAI.APIKey
		}
		if cfg.Embedding.BaseURL == "" {
			cfg.Embedding.BaseURL = cfg.AzureOpenAI.Endpoint
		}
		if cfg.Embedding.APIVersion == "" {
			cfg.Embedding.APIVersion = cfg.AzureOpenAI.APIVersion
		}
		if cfg.Embedding.Model == "" {
			cfg.Embedding.Model = cfg.AzureOpenAI.EmbeddingDeploymentName
		}
	}

	// Retrieval
	cfg.Retrieval.Backend = viper.GetString("retrieval.backend")
	cfg.Retrieval.CollectionName = viper.GetString("retrieval.collection_name")
	cfg.Retrieval.ScoreThreshold = viper.GetFloat64("retrieval.score_threshold")
	cfg.Retrieval.ResultCap = viper.GetInt("retrieval.result_cap")
	if cfg.Retrieval.ScoreThreshold < 0 || cfg.Retrieval.ScoreThreshold > 1 {
		return nil, fmt.Errorf("retrieval.score_threshold must be within [0,1], got %v", cfg.Retrieval.ScoreThreshold)
	}
	if cfg.Retrieval.ResultCap <= 0 {
		return nil, fmt.Errorf("retrieval.result_cap must be positive, got %d", cfg.Retrieval.ResultCap)
	}

	cfg.Qdrant.URL = viper.GetString("qdrant.url")
	cfg.Qdrant.APIKey = expandEnvVar(viper.GetString("qdrant.api_key"))
	cfg.Qdrant.VectorSize = viper.GetInt("qdrant.vector_size")
	cfg.Chromem.Path = viper.GetString("chromem.path")

	// Pipeline
	cfg.Moderation.Sentinel = viper.GetString("moderation.sentinel")
	cfg.Composer.CustomerSegments = viper.GetStringMapString("composer.customer_segments")
	cfg.Session.Backend = viper.GetString("session.backend")
	cfg.Session.TTL = viper.GetDuration("session.ttl")
	cfg.Session.MaxSessions = viper.GetInt("session.max_sessions")
	cfg.Session.MaxTurns = viper.GetInt("session.max_turns")

	// Storage
	cfg.Postgres.DSN = expandEnvVar(viper.GetString("postgres.dsn"))
	cfg.Postgres.MaxOpenConns = viper.GetInt("postgres.max_open_conns")
	cfg.Postgres.MaxIdleConns = viper.GetInt("postgres.max_idle_conns")
	cfg.Postgres.ConnMaxLifetime = viper.GetDuration("postgres.conn_max_lifetime")
	cfg.Redis.Addr = viper.GetString("redis.addr")
	cfg.Redis.Password = expandEnvVar(viper.GetString("redis.password"))
	cfg.Redis.DB = viper.GetInt("redis.db")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("environment.timezone", "Asia/Taipei")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.request_timeout", "60s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 120)
	viper.SetDefault("metrics.enabled", true)
	viper.SetDefault("tracing.enabled", true)
	viper.SetDefault("tracing.service_name", "card-consumption-assistant")
	viper.SetDefault("tracing.sample_rate", 1.0)

	viper.SetDefault("azure_openai.api_version", "2024-02-01")
	viper.SetDefault("azure_openai.embedding_deployment_name", "text-embedding-3-small")

	// A single attempt with no fallback: model failures surface immediately.
	viper.SetDefault("llm.fallback_enabled", false)
	viper.SetDefault("llm.retry_attempts", 1)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")
	viper.SetDefault("llm.temperature", 0)

	viper.SetDefault("embedding.provider", "azure")

	viper.SetDefault("retrieval.backend", "qdrant")
	viper.SetDefault("retrieval.collection_name", "collect_cubelab_qa_lite")
	viper.SetDefault("retrieval.score_threshold", 0)
	viper.SetDefault("retrieval.result_cap", 1)
	viper.SetDefault("qdrant.url", "http://localhost:6333")
	viper.SetDefault("qdrant.vector_size", 1536)

	viper.SetDefault("composer.customer_segments", map[string]string{
		"A": "高端VIP用戶",
		"B": "重點關心客戶",
	})

	viper.SetDefault("session.backend", "memory")
	viper.SetDefault("session.ttl", "24h")
	viper.SetDefault("session.max_sessions", 10000)
	viper.SetDefault("session.max_turns", 20)

	viper.SetDefault("postgres.max_open_conns", 20)
	viper.SetDefault("postgres.max_idle_conns", 5)
	viper.SetDefault("postgres.conn_max_lifetime", "30m")
	viper.SetDefault("redis.addr", "localhost:6379")
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

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - set azure_openai.endpoint or add an llm.providers section to config.yaml")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}

			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
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
