package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Auth   AuthConfig   `mapstructure:"auth"   validate:"required"`
	Upload UploadConfig `mapstructure:"upload" validate:"required"`
	CORS   CORSConfig   `mapstructure:"cors"   validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// AuthConfig contains all authentication and session settings.
type AuthConfig struct {
	// SessionTTLMinutes is how long an issued session token stays valid.
	SessionTTLMinutes int `mapstructure:"session_ttl_minutes" validate:"required,gt=0"`

	// BcryptCost is the cost used when hashing the seeded directory
	// passwords at startup. bcrypt accepts 4 through 31.
	BcryptCost int `mapstructure:"bcrypt_cost" validate:"required,gte=4,lte=31"`
}

// UploadConfig contains the restrictions enforced by the upload endpoint.
type UploadConfig struct {
	MaxSizeMB    int      `mapstructure:"max_size_mb"   validate:"required,gt=0"`
	AllowedTypes []string `mapstructure:"allowed_types" validate:"required,min=1"`
}

// CORSConfig contains the cross-origin settings applied by the CORS
// middleware.
type CORSConfig struct {
	AllowedOrigin string `mapstructure:"allowed_origin"  validate:"required"`
	MaxAgeSeconds int    `mapstructure:"max_age_seconds" validate:"required,gt=0"`
}
