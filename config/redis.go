package config

// RedisConfig contains Redis configuration for the session store.
// All variables carry the REDIS_ prefix.
type RedisConfig struct {
	URI      string `env:"URI"      envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`
}
