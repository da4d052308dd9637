package config

import (
	"time"
)

// DB selects the persistence backend. Driver is "postgres", "sqlite" or "mongo".
type DB struct {
	Driver          string        `envconfig:"DRIVER" default:"postgres"`
	Url             string        `envconfig:"URL"`
	Name            string        `envconfig:"NAME" default:"autoconnect"`
	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"1h"`
}

type Jwt struct {
	Secret string        `envconfig:"SECRET" required:"true"`
	Expiry time.Duration `envconfig:"EXPIRY" default:"24h"`
}

type Auth struct {
	Jwt *Jwt `envconfig:"JWT"`
}

// Redis backs the rate limiter when URL is set.
type Redis struct {
	URL         string        `envconfig:"URL"`
	KeyPrefix   string        `envconfig:"KEY_PREFIX" default:"autoconnect:ratelimit:"`
	DialTimeout time.Duration `envconfig:"DIAL_TIMEOUT" default:"5s"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

//revive:disable
type Stripe struct {
	ApiKey        string `envconfig:"API_KEY"`
	SigningSecret string `envconfig:"SIGNING_SECRET"`
	Currency      string `envconfig:"CURRENCY" default:"inr"`
}

//revive:enable
type PaymentProviders struct {
	Stripe *Stripe `envconfig:"STRIPE"`
}

type SMTP struct {
	Host     string        `envconfig:"HOST"`
	Port     int           `envconfig:"PORT" default:"587"`
	Username string        `envconfig:"USERNAME"`
	Password string        `envconfig:"PASSWORD"`
	From     string        `envconfig:"FROM"`
	Timeout  time.Duration `envconfig:"TIMEOUT" default:"15s"`
}

// Vision configures the Azure AI Vision OCR endpoint.
type Vision struct {
	Endpoint string `envconfig:"ENDPOINT"`
	ApiKey   string `envconfig:"API_KEY"`
}

// LLM configures the OpenAI-compatible chat completion API.
type LLM struct {
	ApiKey  string `envconfig:"API_KEY"`
	Model   string `envconfig:"MODEL" default:"gpt-4o-mini"`
	BaseURL string `envconfig:"BASE_URL"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"json"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[autoconnect]"`
}

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"5000"`
}

type App struct {
	Env              string            `envconfig:"APP_ENV" default:"development"`
	FrontendURL      string            `envconfig:"FRONTEND_URL" default:"http://localhost:5173"`
	Server           *Server           `envconfig:"SERVER"`
	Log              *Log              `envconfig:"LOG"`
	DB               *DB               `envconfig:"DATABASE"`
	Auth             *Auth             `envconfig:"AUTH"`
	Redis            *Redis            `envconfig:"REDIS"`
	RateLimit        *RateLimit        `envconfig:"RATE_LIMIT"`
	PaymentProviders *PaymentProviders `envconfig:"PAYMENT_PROVIDER"`
	SMTP             *SMTP             `envconfig:"SMTP"`
	Vision           *Vision           `envconfig:"VISION"`
	LLM              *LLM              `envconfig:"LLM"`
}
