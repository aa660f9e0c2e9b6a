package config

const (
	// DefaultDatabasePath is the default SQLite file used for development.
	DefaultDatabasePath = "./langschool.db"

	DefaultJWTIssuer = "langschool-api"

	// MinJWTSecretLength is the shortest HS256 secret accepted in local auth mode.
	MinJWTSecretLength = 32
)
