package config

// EnvPrefix scopes every environment variable the backend reads.
const EnvPrefix = "VOGANT"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Environment variable names referenced outside struct tags.
const (
	EnvAppEnv     = "VOGANT_APP_ENV"
	EnvPort       = "VOGANT_APP_PORT"
	EnvDBDSN      = "VOGANT_DB_DSN"
	EnvDBHost     = "VOGANT_DB_HOST"
	EnvDBUser     = "VOGANT_DB_USER"
	EnvDBName     = "VOGANT_DB_NAME"
	EnvRedisURL   = "VOGANT_REDIS_URL"
	EnvJWTSecret  = "VOGANT_JWT_SECRET"
	EnvJWTIssuer  = "VOGANT_JWT_ISSUER"
	EnvJWTExpMins = "VOGANT_JWT_EXPIRATION_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
