package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Values common across all environments (timeouts, schedules, limits)
// -----------------------------------------------------------------------------

type Config struct {
	Server      ServerConfig
	DB          DBConfig
	CORS        CORSConfig
	Log         LogConfig
	JWT         JWTConfig
	Cookie      CookieConfig
	Redis       RedisConfig
	RateLimit   RateLimitConfig
	ReviewSweep ReviewSweepConfig
	Purge       PurgeConfig
	Tracing     TracingConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" required:"true"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"15s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
	PublicBaseURL   string        `envconfig:"PUBLIC_BASE_URL" default:"http://localhost:3000"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Idempotent-Replayed,Retry-After"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// RedisConfig: an empty Addr falls back to per-process rate limit counters.
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:""`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type RateLimitConfig struct {
	BookingLimit int           `envconfig:"RATE_LIMIT_BOOKINGS" default:"10"`
	ReviewLimit  int           `envconfig:"RATE_LIMIT_REVIEWS" default:"5"`
	Window       time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`
	FailOpen     bool          `envconfig:"RATE_LIMIT_FAIL_OPEN" default:"true"`
	KeyPrefix    string        `envconfig:"RATE_LIMIT_KEY_PREFIX" default:"slotbook:rl"`
}

type ReviewSweepConfig struct {
	Enabled   bool   `envconfig:"REVIEW_SWEEP_ENABLED" default:"true"`
	Schedule  string `envconfig:"REVIEW_SWEEP_SCHEDULE" default:"@every 15m"`
	BatchSize int    `envconfig:"REVIEW_SWEEP_BATCH_SIZE" default:"100"`
}

// PurgeConfig schedules the removal of expired idempotency keys.
type PurgeConfig struct {
	Schedule string `envconfig:"IDEMPOTENCY_PURGE_SCHEDULE" default:"@hourly"`
}

// TracingConfig: an empty Endpoint disables export.
type TracingConfig struct {
	Endpoint    string  `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:""`
	ServiceName string  `envconfig:"OTEL_SERVICE_NAME" default:"slotbook"`
	SampleRatio float64 `envconfig:"OTEL_TRACES_SAMPLER_ARG" default:"1"`
	Insecure    bool    `envconfig:"OTEL_EXPORTER_OTLP_INSECURE" default:"true"`
}

func (c *DBConfig) BuildDSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   c.Host + ":" + c.Port,
		Path:   "/" + c.DBName,
	}
	q := url.Values{}
	q.Set("sslmode", c.SSLMode)
	q.Set("timezone", c.TimeZone)
	if c.MaxConns > 0 {
		q.Set("pool_max_conns", fmt.Sprint(c.MaxConns))
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func (c JWTConfig) TokenDuration() (time.Duration, error) {
	d, err := time.ParseDuration(c.Duration)
	if err != nil {
		return 0, fmt.Errorf("invalid JWT duration %q: %w", c.Duration, err)
	}
	return d, nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8889", // Test port
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    5 * time.Second,
			ShutdownTimeout: 5 * time.Second,
			PublicBaseURL:   "http://localhost:3000",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-jwt-signing",
			Duration: "1h",
		},
		Cookie: CookieConfig{SameSite: "Lax"},
		RateLimit: RateLimitConfig{
			BookingLimit: 10,
			ReviewLimit:  5,
			Window:       time.Minute,
			FailOpen:     true,
			KeyPrefix:    "slotbook:test:rl",
		},
		ReviewSweep: ReviewSweepConfig{
			Enabled:   false,
			Schedule:  "@every 15m",
			BatchSize: 100,
		},
		Purge:   PurgeConfig{Schedule: "@hourly"},
		Tracing: TracingConfig{ServiceName: "slotbook-test", SampleRatio: 1},
	}
}
