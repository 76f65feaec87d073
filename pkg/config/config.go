package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Analysis     AnalysisConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"STOREPULSE_APP_ENV" required:"true"`
	Port         string `envconfig:"STOREPULSE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"STOREPULSE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"STOREPULSE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"STOREPULSE_DB_DSN"`
	Driver string `envconfig:"STOREPULSE_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"STOREPULSE_DB_HOST"`
	LegacyPort     int    `envconfig:"STOREPULSE_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"STOREPULSE_DB_USER"`
	LegacyPassword string `envconfig:"STOREPULSE_DB_PASSWORD"`
	LegacyName     string `envconfig:"STOREPULSE_DB_NAME"`
	LegacySSLMode  string `envconfig:"STOREPULSE_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"STOREPULSE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"STOREPULSE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"STOREPULSE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"STOREPULSE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"STOREPULSE_REDIS_URL" required:"true"`
	Address      string        `envconfig:"STOREPULSE_REDIS_ADDR"`
	Password     string        `envconfig:"STOREPULSE_REDIS_PASSWORD"`
	DB           int           `envconfig:"STOREPULSE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"STOREPULSE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"STOREPULSE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"STOREPULSE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"STOREPULSE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"STOREPULSE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// AnalysisConfig tunes the correlation analysis endpoint.
type AnalysisConfig struct {
	SLATimeout     time.Duration `envconfig:"STOREPULSE_ANALYSIS_SLA_TIMEOUT" default:"5s"`
	CacheTTL       time.Duration `envconfig:"STOREPULSE_ANALYSIS_CACHE_TTL" default:"5m"`
	MaxWindowDays  int           `envconfig:"STOREPULSE_ANALYSIS_MAX_WINDOW_DAYS" default:"366"`
	DefaultPreset  string        `envconfig:"STOREPULSE_ANALYSIS_DEFAULT_PRESET" default:"30d"`
	CacheDisabled  bool          `envconfig:"STOREPULSE_ANALYSIS_CACHE_DISABLED" default:"false"`
	IngestBatchMax int           `envconfig:"STOREPULSE_INGEST_BATCH_MAX" default:"1000"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"STOREPULSE_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
