package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	Analytics     AnalyticsConfig
	FeatureFlags  FeatureFlagsConfig
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
	Env          string `envconfig:"VOGANT_APP_ENV" required:"true"`
	Port         string `envconfig:"VOGANT_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"VOGANT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"VOGANT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"VOGANT_DB_DSN"`
	Driver string `envconfig:"VOGANT_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"VOGANT_DB_HOST"`
	LegacyPort     int    `envconfig:"VOGANT_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"VOGANT_DB_USER"`
	LegacyPassword string `envconfig:"VOGANT_DB_PASSWORD"`
	LegacyName     string `envconfig:"VOGANT_DB_NAME"`
	LegacySSLMode  string `envconfig:"VOGANT_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"VOGANT_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"VOGANT_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"VOGANT_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"VOGANT_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"VOGANT_REDIS_URL" required:"true"`
	Address      string        `envconfig:"VOGANT_REDIS_ADDR"`
	Password     string        `envconfig:"VOGANT_REDIS_PASSWORD"`
	DB           int           `envconfig:"VOGANT_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"VOGANT_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"VOGANT_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"VOGANT_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"VOGANT_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"VOGANT_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"VOGANT_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"VOGANT_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"VOGANT_JWT_EXPIRATION_MINUTES" default:"60"`
}

// Expiration returns the access token lifetime.
func (j JWTConfig) Expiration() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"VOGANT_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"VOGANT_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"VOGANT_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"VOGANT_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"VOGANT_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow     time.Duration `envconfig:"VOGANT_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit int           `envconfig:"VOGANT_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit    int           `envconfig:"VOGANT_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
}

// AnalyticsConfig carries the reporting policy knobs. The GST figure is a
// flat percentage applied to revenue, not a per-item tax computation.
type AnalyticsConfig struct {
	GSTRatePercent    float64 `envconfig:"VOGANT_ANALYTICS_GST_RATE_PERCENT" default:"5"`
	StoreLabel        string  `envconfig:"VOGANT_ANALYTICS_STORE_LABEL" default:"VOGANT Saree and Dhoti Store"`
	LowStockThreshold int     `envconfig:"VOGANT_ANALYTICS_LOW_STOCK_THRESHOLD" default:"10"`
	CriticalThreshold int     `envconfig:"VOGANT_ANALYTICS_CRITICAL_THRESHOLD" default:"5"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"VOGANT_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"VOGANT_AUTO_MIGRATE" default:"false"`
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
