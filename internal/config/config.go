package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Generation GenerationConfig `yaml:"generation"`
	Publish    PublishConfig    `yaml:"publish"`
	Scanner    ScannerConfig    `yaml:"scanner"`
	CORS       CORSConfig       `yaml:"cors"`
	Log        LogConfig        `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds token verification settings. Tokens are minted by the
// external auth collaborator; this service only verifies them.
type AuthConfig struct {
	JWTSecret  string `yaml:"jwt_secret"  env:"AUTH_JWT_SECRET"  env-required:"true"`
	JWTIssuer  string `yaml:"jwt_issuer"  env:"AUTH_JWT_ISSUER"  env-default:"postroom"`
	CronSecret string `yaml:"cron_secret" env:"AUTH_CRON_SECRET" env-required:"true"`
}

// GenerationConfig holds council generation settings.
type GenerationConfig struct {
	OpenAIAPIKey    string        `yaml:"openai_api_key"    env:"GEN_OPENAI_API_KEY"`
	OpenAIModel     string        `yaml:"openai_model"      env:"GEN_OPENAI_MODEL"      env-default:"gpt-4o"`
	GrokAPIKey      string        `yaml:"grok_api_key"      env:"GEN_GROK_API_KEY"`
	GrokModel       string        `yaml:"grok_model"        env:"GEN_GROK_MODEL"        env-default:"grok-2-latest"`
	GeminiAPIKey    string        `yaml:"gemini_api_key"    env:"GEN_GEMINI_API_KEY"`
	GeminiModel     string        `yaml:"gemini_model"      env:"GEN_GEMINI_MODEL"      env-default:"gemini-1.5-flash"`
	AnthropicAPIKey string        `yaml:"anthropic_api_key" env:"GEN_ANTHROPIC_API_KEY"`
	AnthropicModel  string        `yaml:"anthropic_model"   env:"GEN_ANTHROPIC_MODEL"   env-default:"claude-sonnet-4-20250514"`
	ProviderTimeout time.Duration `yaml:"provider_timeout"  env:"GEN_PROVIDER_TIMEOUT"  env-default:"45s"`
	JudgeTimeout    time.Duration `yaml:"judge_timeout"     env:"GEN_JUDGE_TIMEOUT"     env-default:"30s"`
	StyleExamples   int           `yaml:"style_examples"    env:"GEN_STYLE_EXAMPLES"    env-default:"3"`
}

// PublishConfig holds channel adapter credentials and publish behavior.
type PublishConfig struct {
	LinkedInAccessToken   string        `yaml:"linkedin_access_token"   env:"PUBLISH_LINKEDIN_ACCESS_TOKEN"`
	LinkedInOrganization  string        `yaml:"linkedin_organization"   env:"PUBLISH_LINKEDIN_ORGANIZATION"`
	XAPIKey               string        `yaml:"x_api_key"               env:"PUBLISH_X_API_KEY"`
	XAPISecret            string        `yaml:"x_api_secret"            env:"PUBLISH_X_API_SECRET"`
	XAccessToken          string        `yaml:"x_access_token"          env:"PUBLISH_X_ACCESS_TOKEN"`
	XAccessTokenSecret    string        `yaml:"x_access_token_secret"   env:"PUBLISH_X_ACCESS_TOKEN_SECRET"`
	Timeout               time.Duration `yaml:"timeout"                 env:"PUBLISH_TIMEOUT"                 env-default:"30s"`
	RetryDelay            time.Duration `yaml:"retry_delay"             env:"PUBLISH_RETRY_DELAY"             env-default:"5m"`
}

// ScannerConfig holds scheduled-publish sweep settings.
type ScannerConfig struct {
	Concurrency int           `yaml:"concurrency" env:"SCANNER_CONCURRENCY" env-default:"4"`
	SweepLimit  int           `yaml:"sweep_limit" env:"SCANNER_SWEEP_LIMIT" env-default:"50"`
	Timeout     time.Duration `yaml:"timeout"     env:"SCANNER_TIMEOUT"     env-default:"5m"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
