package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	LLM      LLMConfig      `yaml:"llm"`
	TTS      TTSConfig      `yaml:"tts"`
	Image    ImageConfig    `yaml:"image"`
	Storage  StorageConfig  `yaml:"storage"`
	Vocab    VocabConfig    `yaml:"vocab"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	RatePerMinute   int           `yaml:"rate_per_minute"  env:"SERVER_RATE_PER_MINUTE"  env-default:"120"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	MigrateOnStart  bool          `yaml:"migrate_on_start"   env:"DATABASE_MIGRATE_ON_START"   env-default:"true"`
}

// AuthConfig holds settings for verifying tokens issued by the external
// identity provider. The backend never issues tokens itself.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"bolchaal-auth"`
}

// LLMConfig holds generative-text service settings.
type LLMConfig struct {
	APIKey     string        `yaml:"api_key"     env:"LLM_API_KEY"     env-required:"true"`
	Model      string        `yaml:"model"       env:"LLM_MODEL"       env-default:"claude-sonnet-4-5"`
	MaxTokens  int           `yaml:"max_tokens"  env:"LLM_MAX_TOKENS"  env-default:"2048"`
	ChatTokens int           `yaml:"chat_tokens" env:"LLM_CHAT_TOKENS" env-default:"256"`
	Timeout    time.Duration `yaml:"timeout"     env:"LLM_TIMEOUT"     env-default:"45s"`
}

// TTSConfig holds text-to-speech service settings.
type TTSConfig struct {
	APIKey  string        `yaml:"api_key"  env:"TTS_API_KEY"  env-required:"true"`
	BaseURL string        `yaml:"base_url" env:"TTS_BASE_URL" env-default:"https://texttospeech.googleapis.com/v1"`
	Timeout time.Duration `yaml:"timeout"  env:"TTS_TIMEOUT"  env-default:"20s"`
}

// ImageConfig holds cover image generation settings.
type ImageConfig struct {
	APIKey  string        `yaml:"api_key" env:"IMAGE_API_KEY" env-required:"true"`
	Timeout time.Duration `yaml:"timeout" env:"IMAGE_TIMEOUT" env-default:"90s"`
}

// StorageConfig holds blob storage (S3) settings for audio and cover assets.
type StorageConfig struct {
	Region        string        `yaml:"region"          env:"STORAGE_REGION"          env-default:"ap-south-1"`
	AudioBucketEN string        `yaml:"audio_bucket_en" env:"STORAGE_AUDIO_BUCKET_EN" env-required:"true"`
	AudioBucketHI string        `yaml:"audio_bucket_hi" env:"STORAGE_AUDIO_BUCKET_HI" env-required:"true"`
	CoverBucket   string        `yaml:"cover_bucket"    env:"STORAGE_COVER_BUCKET"    env-required:"true"`
	Timeout       time.Duration `yaml:"timeout"         env:"STORAGE_TIMEOUT"         env-default:"30s"`
}

// VocabConfig holds vocabulary tracking parameters.
type VocabConfig struct {
	// MasteryThreshold is the exposure count at which a learning term is
	// recycled back to the unseen bucket.
	MasteryThreshold int `yaml:"mastery_threshold" env:"VOCAB_MASTERY_THRESHOLD" env-default:"5"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
