package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

type Config struct {
	Port      int    `env:"PORT,default=8080"`
	LogLevel  string `env:"LOG_LEVEL,default=info"`
	LogFormat string `env:"LOG_FORMAT,default=text"`
	AppName   string `env:"APP_NAME,default=ask-astro"`

	// Vacío => repos in-memory.
	DBDSN string `env:"DB_DSN"`
	// Vacío => contador de preguntas in-memory.
	RedisURL string `env:"REDIS_URL"`

	// Vacío => modo dev (X-Debug-User-ID, sin tokens).
	JWTSecret         string        `env:"JWT_SECRET"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,default=720h"`

	CORSOrigins string `env:"CORS_ORIGINS,default=http://localhost:5173|http://localhost:8080"`

	ChatProviderURL    string        `env:"CHAT_PROVIDER_URL"`
	ChatProviderAPIKey string        `env:"CHAT_PROVIDER_API_KEY"`
	ChatReplyDelay     time.Duration `env:"CHAT_REPLY_DELAY,default=0s"`
	SignupPromptAfter  int           `env:"SIGNUP_PROMPT_AFTER,default=3"`

	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS,default=2"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST,default=5"`

	AllowAllCapabilities bool `env:"ALLOW_ALL_CAPABILITIES,default=false"`
}

// Load lee un .env opcional y luego el entorno del proceso.
func Load(envFiles ...string) (Config, error) {
	// godotenv no pisa variables ya definidas; el .env es opcional.
	_ = godotenv.Load(envFiles...)

	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT out of range: %d", c.Port))
	}
	if c.SignupPromptAfter < 1 {
		errs = append(errs, fmt.Errorf("SIGNUP_PROMPT_AFTER must be >= 1, got %d", c.SignupPromptAfter))
	}
	if c.ChatReplyDelay < 0 {
		errs = append(errs, fmt.Errorf("CHAT_REPLY_DELAY must be >= 0, got %s", c.ChatReplyDelay))
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be > 0"))
	}
	if c.JWTSecret != "" && len(c.JWTSecret) < 16 {
		errs = append(errs, errors.New("JWT_SECRET must have at least 16 characters"))
	}
	if c.AuthTokenDuration <= 0 {
		errs = append(errs, errors.New("AUTH_TOKEN_DURATION must be > 0"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// AllowedOrigins separa CORS_ORIGINS por "|".
func (c Config) AllowedOrigins() []string {
	out := make([]string, 0)
	for _, o := range strings.Split(c.CORSOrigins, "|") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
