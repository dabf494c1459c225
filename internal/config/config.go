package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Log      LogConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Batch    BatchConfig
	Catalog  CatalogConfig
	Notify   NotifyConfig
}

type AppConfig struct {
	Name        string
	Environment string
	HTTPPort    string
}

type LogConfig struct {
	Level  string
	Format string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string

	ConnectTimeout      time.Duration
	PoolMaxConns        int32
	PoolMinConns        int32
	PoolMaxConnLifetime time.Duration
	PoolMaxConnIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

type JWTConfig struct {
	Secret    string
	ExpiresIn time.Duration
}

type BatchConfig struct {
	// Workers bounds the pool used when one employee is scored against all
	// open positions.
	Workers int
}

type CatalogConfig struct {
	// SyncAPIKeyHash is the bcrypt hash the sync-completed callback key is
	// checked against.
	SyncAPIKeyHash  string
	SyncCallbackURL string
	SyncAPIKey      string
	ScrapeRPS       int
	ScrapeWorkers   int
}

type NotifyConfig struct {
	// Interview notifications go out via SES when all three fields are set.
	SESRegion string
	FromEmail string
	HREmail   string
}

var errMissingRequired = errors.New("missing required configuration")

// Load reads configuration from the environment, with an optional .env file
// for local development. Defaults cover everything except the database name
// and the JWT secret.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("app.name", "skill-fit")
	v.SetDefault("app.env", "development")
	v.SetDefault("http.port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.connect.timeout", "5s")
	v.SetDefault("db.pool.maxconns", 8)
	v.SetDefault("db.pool.minconns", 0)
	v.SetDefault("db.pool.maxconnlifetime", "30m")
	v.SetDefault("db.pool.maxconnidletime", "5m")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.ttl", "10m")

	v.SetDefault("jwt.expiresin", "1h")

	v.SetDefault("batch.workers", 8)

	v.SetDefault("catalog.scrape.rps", 4)
	v.SetDefault("catalog.scrape.workers", 4)

	cfg := Config{
		App: AppConfig{
			Name:        v.GetString("app.name"),
			Environment: v.GetString("app.env"),
			HTTPPort:    v.GetString("http.port"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		Database: DatabaseConfig{
			Host:                v.GetString("db.host"),
			Port:                v.GetString("db.port"),
			Name:                v.GetString("db.name"),
			User:                v.GetString("db.user"),
			Password:            v.GetString("db.password"),
			SSLMode:             v.GetString("db.sslmode"),
			ConnectTimeout:      v.GetDuration("db.connect.timeout"),
			PoolMaxConns:        v.GetInt32("db.pool.maxconns"),
			PoolMinConns:        v.GetInt32("db.pool.minconns"),
			PoolMaxConnLifetime: v.GetDuration("db.pool.maxconnlifetime"),
			PoolMaxConnIdleTime: v.GetDuration("db.pool.maxconnidletime"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("redis.host"),
			Port:     v.GetString("redis.port"),
			Password: v.GetString("redis.password"),
			TTL:      v.GetDuration("redis.ttl"),
		},
		JWT: JWTConfig{
			Secret:    v.GetString("jwt.secret"),
			ExpiresIn: v.GetDuration("jwt.expiresin"),
		},
		Batch: BatchConfig{
			Workers: v.GetInt("batch.workers"),
		},
		Catalog: CatalogConfig{
			SyncAPIKeyHash:  v.GetString("catalog.sync.apikey.hash"),
			SyncCallbackURL: v.GetString("catalog.sync.callback.url"),
			SyncAPIKey:      v.GetString("catalog.sync.apikey"),
			ScrapeRPS:       v.GetInt("catalog.scrape.rps"),
			ScrapeWorkers:   v.GetInt("catalog.scrape.workers"),
		},
		Notify: NotifyConfig{
			SESRegion: v.GetString("notify.ses.region"),
			FromEmail: v.GetString("notify.from.email"),
			HREmail:   v.GetString("notify.hr.email"),
		},
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	var missing []string
	if strings.TrimSpace(cfg.Database.Name) == "" {
		missing = append(missing, "DB_NAME")
	}
	if strings.TrimSpace(cfg.JWT.Secret) == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", errMissingRequired, strings.Join(missing, ", "))
	}
	if cfg.Batch.Workers <= 0 {
		return fmt.Errorf("%w: BATCH_WORKERS must be positive", errMissingRequired)
	}
	return nil
}
