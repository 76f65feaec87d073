package config

const EnvPrefix = "STOREPULSE"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv   = "STOREPULSE_APP_ENV"
	EnvPort     = "STOREPULSE_APP_PORT"
	EnvDBDSN    = "STOREPULSE_DB_DSN"
	EnvDBHost   = "STOREPULSE_DB_HOST"
	EnvDBUser   = "STOREPULSE_DB_USER"
	EnvDBName   = "STOREPULSE_DB_NAME"
	EnvRedisURL = "STOREPULSE_REDIS_URL"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
