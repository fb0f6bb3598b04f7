package config

import (
	"fmt"
	"strings"
	"time"

	"service-marketplace/internal/pkg/errs"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	DB         DBConfig
	CORS       CORSConfig
	Log        LogConfig
	JWT        JWTConfig
	Cookie     CookieConfig
	Scheduling SchedulingConfig
	Payment    PaymentConfig
	Redis      RedisConfig
	AMQP       AMQPConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
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
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key,X-Request-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`

	// empty disables file output
	FilePath       string `envconfig:"LOG_FILE_PATH"`
	FileMaxSizeMB  int    `envconfig:"LOG_FILE_MAX_SIZE_MB" default:"100"`
	FileMaxBackups int    `envconfig:"LOG_FILE_MAX_BACKUPS" default:"5"`
	FileMaxAgeDays int    `envconfig:"LOG_FILE_MAX_AGE_DAYS" default:"28"`
	FileCompress   bool   `envconfig:"LOG_FILE_COMPRESS" default:"true"`
}

type JWTConfig struct {
	Secret               string `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration  string `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"15m"`
	RefreshTokenDuration string `envconfig:"JWT_REFRESH_TOKEN_DURATION" default:"168h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type SchedulingConfig struct {
	TimeZone        string `envconfig:"SCHEDULING_TIMEZONE" default:"UTC"`
	SlotHorizonDays int    `envconfig:"SCHEDULING_SLOT_HORIZON_DAYS" default:"30"`
}

type PaymentConfig struct {
	Methods      []string      `envconfig:"PAYMENT_METHODS" default:"stripe,paypal"`
	Timeout      time.Duration `envconfig:"PAYMENT_TIMEOUT" default:"10s"`
	PayoutMethod string        `envconfig:"PAYMENT_PAYOUT_METHOD" default:"stripe"`
}

type RedisConfig struct {
	// empty disables the slot generation cache
	Addr         string        `envconfig:"REDIS_ADDR"`
	Password     string        `envconfig:"REDIS_PASSWORD"`
	DB           int           `envconfig:"REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"REDIS_POOL_SIZE" default:"10"`
	DialTimeout  time.Duration `envconfig:"REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"REDIS_READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"REDIS_WRITE_TIMEOUT" default:"3s"`
}

type AMQPConfig struct {
	// empty disables notification publishing
	URL      string `envconfig:"AMQP_URL"`
	Exchange string `envconfig:"AMQP_EXCHANGE" default:"marketplace.notifications"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// Location resolves the canonical scheduling timezone
func (c SchedulingConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.TimeZone)
}

var knownPaymentMethods = map[string]bool{"stripe": true, "paypal": true}

func (c Config) Validate() error {
	if _, err := c.Scheduling.Location(); err != nil {
		return errs.Wrapf(err, "invalid SCHEDULING_TIMEZONE %q", c.Scheduling.TimeZone)
	}
	if c.Scheduling.SlotHorizonDays <= 0 {
		return errs.Newf("SCHEDULING_SLOT_HORIZON_DAYS must be positive, got %d", c.Scheduling.SlotHorizonDays)
	}
	if len(c.Payment.Methods) == 0 {
		return errs.New("PAYMENT_METHODS must list at least one method")
	}
	for _, m := range c.Payment.Methods {
		if !knownPaymentMethods[strings.ToLower(strings.TrimSpace(m))] {
			return errs.Newf("unsupported payment method %q in PAYMENT_METHODS", m)
		}
	}
	if !knownPaymentMethods[strings.ToLower(c.Payment.PayoutMethod)] {
		return errs.Newf("unsupported PAYMENT_PAYOUT_METHOD %q", c.Payment.PayoutMethod)
	}
	if c.Payment.Timeout <= 0 {
		return errs.New("PAYMENT_TIMEOUT must be positive")
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, errs.Wrap(err, "process env config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errs.Wrap(err, "invalid config")
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
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
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:               "test-secret-key-for-unit-tests-only",
			AccessTokenDuration:  "15m",
			RefreshTokenDuration: "168h",
		},
		Cookie: CookieConfig{
			Secure:   false,
			SameSite: "Lax",
		},
		Scheduling: SchedulingConfig{
			TimeZone:        "UTC",
			SlotHorizonDays: 30,
		},
		Payment: PaymentConfig{
			Methods:      []string{"stripe", "paypal"},
			Timeout:      2 * time.Second,
			PayoutMethod: "stripe",
		},
		AMQP: AMQPConfig{
			Exchange: "marketplace.notifications",
		},
	}
}
