package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/ozzus/hotetec-gateway/internal/domain/models"
)

type Config struct {
	Env               string        `yaml:"env" env:"ENV" env-default:"local"`
	SessionTTL        time.Duration `yaml:"session_ttl" env:"SESSION_TTL" env-default:"30m"`
	HotelInfoCacheTTL time.Duration `yaml:"hotel_info_cache_ttl" env:"HOTEL_INFO_CACHE_TTL" env-default:"6h"`
	Log               LogConfig     `yaml:"log"`
	HTTP              HTTPConfig    `yaml:"http"`
	Hotetec           HotetecConfig `yaml:"hotetec"`
	Redis             RedisConfig   `yaml:"redis"`
	DB                DBConfig      `yaml:"db"`
	Tracing           TracingConfig `yaml:"tracing"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

type HTTPConfig struct {
	Host            string        `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port            int           `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"90s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

func (c HTTPConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type HotetecConfig struct {
	Endpoint          string        `yaml:"endpoint" env:"HOTETEC_ENDPOINT" env-default:"https://hotel.hotetec.com/publisher/xmlservice.srv"`
	AgencyCode        string        `yaml:"agency_code" env:"HOTETEC_AGENCY_CODE"`
	Username          string        `yaml:"username" env:"HOTETEC_USERNAME"`
	Password          string        `yaml:"password" env:"HOTETEC_PASSWORD"`
	SystemCode        string        `yaml:"system_code" env:"HOTETEC_SYSTEM_CODE" env-default:"XML"`
	Language          string        `yaml:"language" env:"HOTETEC_LANGUAGE" env-default:"ES"`
	Currency          string        `yaml:"currency" env:"HOTETEC_CURRENCY" env-default:"USD"`
	Timeout           time.Duration `yaml:"timeout" env:"HOTETEC_TIMEOUT" env-default:"30s"`
	Retries           int           `yaml:"retries" env:"HOTETEC_RETRIES" env-default:"2"`
	RetryBackoff      time.Duration `yaml:"retry_backoff" env:"HOTETEC_RETRY_BACKOFF" env-default:"500ms"`
	RateLimit         float64       `yaml:"rate_limit" env:"HOTETEC_RATE_LIMIT" env-default:"0"`
	Burst             int           `yaml:"burst" env:"HOTETEC_BURST" env-default:"1"`
	SessionErrorCodes []string      `yaml:"session_error_codes" env:"HOTETEC_SESSION_ERROR_CODES" env-separator:","`
	// SessionID resumes a session opened by an earlier run.
	SessionID         string        `yaml:"session_id" env:"HOTETEC_SESSION_ID"`
}

func (c HotetecConfig) Session() models.SessionConfig {
	return models.SessionConfig{
		AgencyCode: c.AgencyCode,
		Username:   c.Username,
		Password:   c.Password,
		SystemCode: c.SystemCode,
		Language:   c.Language,
		Currency:   c.Currency,
	}
}

type RedisConfig struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

func (c RedisConfig) Enabled() bool {
	return strings.TrimSpace(c.Addr) != ""
}

type DBConfig struct {
	DSN      string `yaml:"dsn" env:"DB_DSN"`
	Host     string `yaml:"host" env:"DB_HOST"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	Name     string `yaml:"name" env:"DB_NAME"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"require"`
	Migrate  bool   `yaml:"migrate" env:"DB_MIGRATE" env-default:"true"`
}

// Enabled reports whether a reservation ledger is configured.
func (c DBConfig) Enabled() bool {
	return strings.TrimSpace(c.DSN) != "" || strings.TrimSpace(c.Host) != ""
}

func (c DBConfig) DatabaseURL() string {
	if c.DSN != "" {
		return c.DSN
	}

	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "require"
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:   c.Name,
	}

	q := u.Query()
	q.Set("sslmode", sslMode)
	u.RawQuery = q.Encode()

	return u.String()
}

type TracingConfig struct {
	Enabled     bool   `yaml:"enabled" env:"TRACING_ENABLED" env-default:"false"`
	PrettyPrint bool   `yaml:"pretty_print" env:"TRACING_PRETTY_PRINT" env-default:"false"`
	ServiceName string `yaml:"service_name" env:"TRACING_SERVICE_NAME" env-default:"hotetec-gateway"`
}

// MustLoad reads the config file chosen by ResolvePath.
func MustLoad(explicitPath string) *Config {
	path := ResolvePath(explicitPath)
	if path == "" {
		panic("config path is empty")
	}
	return MustLoadByPath(path)
}

func MustLoadByPath(configPath string) *Config {
	cfg, err := LoadByPath(configPath)
	if err != nil {
		panic(err.Error())
	}
	return cfg
}

func LoadByPath(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exists: %s", configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read the config: %w", err)
	}

	return &cfg, nil
}

// ResolvePath picks the --config value, then CONFIG_PATH, then the local default.
func ResolvePath(explicitPath string) string {
	res := strings.TrimSpace(explicitPath)
	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}
	if res == "" {
		res = "config/local.yaml"
	}

	return res
}
