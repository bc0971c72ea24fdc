package config

import (
	"time"

	"github.com/asonkiya/novel-chrome-extension/internal/contextmem"
)

// Config is the root application configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	Log         LogConfig         `yaml:"log"`
	CORS        CORSConfig        `yaml:"cors"`
	Translation TranslationConfig `yaml:"translation"`
	Context     ContextConfig     `yaml:"context"`
	Import      ImportConfig      `yaml:"import"`
}

// CORSConfig holds CORS settings. The browser extension calls the API from
// its own origin, so every origin is allowed by default.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"180s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"10485760"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Translation backends.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderEcho      = "echo"
)

// TranslationConfig selects and configures the translation backend.
type TranslationConfig struct {
	Provider        string        `yaml:"provider"          env:"TRANSLATION_PROVIDER"          env-default:"openai"`
	OpenAIAPIKey    string        `yaml:"openai_api_key"    env:"OPENAI_API_KEY"`
	OpenAIModel     string        `yaml:"openai_model"      env:"OPENAI_MODEL"                  env-default:"gpt-4.1-mini"`
	OpenAIBaseURL   string        `yaml:"openai_base_url"   env:"OPENAI_BASE_URL"`
	AnthropicAPIKey string        `yaml:"anthropic_api_key" env:"ANTHROPIC_API_KEY"`
	AnthropicModel  string        `yaml:"anthropic_model"   env:"ANTHROPIC_MODEL"               env-default:"claude-sonnet-4-5"`
	AnthropicURL    string        `yaml:"anthropic_base_url" env:"ANTHROPIC_BASE_URL"`
	Temperature     float32       `yaml:"temperature"       env:"TRANSLATION_TEMPERATURE"       env-default:"0.2"`
	MaxTokens       int           `yaml:"max_tokens"        env:"TRANSLATION_MAX_TOKENS"        env-default:"16000"`
	Timeout         time.Duration `yaml:"timeout"           env:"TRANSLATION_TIMEOUT"           env-default:"120s"`
	ConstraintsRaw  string        `yaml:"constraints"       env:"TRANSLATION_CONSTRAINTS"`

	// Constraints is parsed from ConstraintsRaw during validation. Entries
	// are separated by "|".
	Constraints []string `yaml:"-" env:"-"`
}

// ContextConfig holds context memory limits.
type ContextConfig struct {
	SliceRecentWindow     int `yaml:"slice_recent_window"      env:"CONTEXT_SLICE_RECENT_WINDOW"      env-default:"50"`
	SliceMinCount         int `yaml:"slice_min_count"          env:"CONTEXT_SLICE_MIN_COUNT"          env-default:"3"`
	SliceMaxLocks         int `yaml:"slice_max_locks"          env:"CONTEXT_SLICE_MAX_LOCKS"          env-default:"200"`
	SliceMaxEntities      int `yaml:"slice_max_entities"       env:"CONTEXT_SLICE_MAX_ENTITIES"       env-default:"300"`
	PruneKeepRecentWindow int `yaml:"prune_keep_recent_window" env:"CONTEXT_PRUNE_KEEP_RECENT_WINDOW" env-default:"200"`
	PruneMinCountKeep     int `yaml:"prune_min_count_keep"     env:"CONTEXT_PRUNE_MIN_COUNT_KEEP"     env-default:"2"`
	PruneMaxLocks         int `yaml:"prune_max_locks"          env:"CONTEXT_PRUNE_MAX_LOCKS"          env-default:"1000"`
	PruneMaxEntities      int `yaml:"prune_max_entities"       env:"CONTEXT_PRUNE_MAX_ENTITIES"       env-default:"1500"`
}

// SliceOptions converts the slice limits.
func (c ContextConfig) SliceOptions() contextmem.SliceOptions {
	return contextmem.SliceOptions{
		RecentWindow: c.SliceRecentWindow,
		MinCount:     c.SliceMinCount,
		MaxLocks:     c.SliceMaxLocks,
		MaxEntities:  c.SliceMaxEntities,
	}
}

// PruneOptions converts the prune limits.
func (c ContextConfig) PruneOptions() contextmem.PruneOptions {
	return contextmem.PruneOptions{
		KeepRecentWindow: c.PruneKeepRecentWindow,
		MinCountKeep:     c.PruneMinCountKeep,
		MaxLocks:         c.PruneMaxLocks,
		MaxEntities:      c.PruneMaxEntities,
	}
}

// ImportConfig holds chapter import settings.
type ImportConfig struct {
	FetchTimeout time.Duration `yaml:"fetch_timeout"  env:"IMPORT_FETCH_TIMEOUT"  env-default:"30s"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" env:"IMPORT_MAX_BODY_BYTES" env-default:"10485760"`
	UserAgent    string        `yaml:"user_agent"     env:"IMPORT_USER_AGENT"     env-default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"`
}
