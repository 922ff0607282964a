package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Postgres Postgres `validate:"required"`

	Stripe  Stripe  `validate:"required"`
	Premium Premium `validate:"required"`

	Auth      Auth      `validate:"required"`
	RateLimit RateLimit `validate:"required"`

	Cache Cache `validate:"required"`

	Kafka  Kafka
	Outbox Outbox
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`

	// TrustProxy включает разбор X-Forwarded-For / X-Real-IP. Только за своим балансировщиком:
	// иначе клиент подставит любой адрес и обойдет лимит запросов.
	TrustProxy bool
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

type Stripe struct {
	SecretKey     string        `validate:"required"`
	WebhookSecret string        `validate:"required"`
	Currency      string        `validate:"required,len=3,lowercase"`
	Timeout       time.Duration `validate:"gt=0"`

	// Допустимое расхождение времени подписи вебхука.
	WebhookTolerance time.Duration `validate:"gt=0"`

	FrontendURL string `validate:"required,url"`
}

type Premium struct {
	PriceCents  int64  `validate:"gt=0"`
	Name        string `validate:"required"`
	Description string
}

type Auth struct {
	JWTSecret string `validate:"required,min=16"`
}

type RateLimit struct {
	RPS   float64 `validate:"gt=0"`
	Burst int     `validate:"gt=0"`
}

type Cache struct {
	Backend  string        `validate:"required,oneof=memory redis"`
	Capacity int           `validate:"gt=0"`
	TTL      time.Duration `validate:"gt=0"`
	RedisURL string        `validate:"required_if=Backend redis"`
}

type Kafka struct {
	Brokers      []string      `validate:"dive,hostname_port"`
	Topic        string        `validate:"required_with=Brokers"`
	BatchTimeout time.Duration `validate:"gte=0"`
}

type Outbox struct {
	Interval  time.Duration `validate:"gt=0"`
	BatchSize int           `validate:"gt=0"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),

			TrustProxy: envBool("TRUST_PROXY", false),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "storefront"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Stripe: Stripe{
			SecretKey:        env("STRIPE_SECRET_KEY", ""),
			WebhookSecret:    env("STRIPE_WEBHOOK_SECRET", ""),
			Currency:         env("STRIPE_CURRENCY", "usd"),
			Timeout:          envDuration("STRIPE_TIMEOUT", 10*time.Second),
			WebhookTolerance: envDuration("STRIPE_WEBHOOK_TOLERANCE", 5*time.Minute),
			FrontendURL:      env("FRONTEND_URL", "http://localhost:3000"),
		},

		Premium: Premium{
			PriceCents:  int64(envInt("PREMIUM_PRICE_CENTS", 999)),
			Name:        env("PREMIUM_NAME", "AI Premium - Virtual Try-On"),
			Description: env("PREMIUM_DESCRIPTION", "Unlimited access to AI-powered virtual try-on feature"),
		},

		Auth: Auth{
			JWTSecret: env("JWT_SECRET", ""),
		},

		RateLimit: RateLimit{
			RPS:   envFloat("RATE_LIMIT_RPS", 100.0/60),
			Burst: envInt("RATE_LIMIT_BURST", 50),
		},

		Cache: Cache{
			Backend:  env("CACHE_BACKEND", "memory"),
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", 10*time.Minute),
			RedisURL: env("REDIS_URL", ""),
		},

		Kafka: Kafka{
			Brokers:      envList("KAFKA_BROKERS"),
			Topic:        env("KAFKA_TOPIC", "orders.paid"),
			BatchTimeout: envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Outbox: Outbox{
			Interval:  envDuration("OUTBOX_INTERVAL", time.Second),
			BatchSize: envInt("OUTBOX_BATCH_SIZE", 100),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envList(key string) []string {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return nil
	}
	var res []string
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			res = append(res, v)
		}
	}
	return res
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		f, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
