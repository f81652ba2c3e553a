package lock

// Config holds configuration for the cross-process run lock.
type Config struct {
	// Enabled turns on the redis lock. When false, runs are only coalesced in-process.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// RedisAddr is the host:port of the redis server.
	RedisAddr string `mapstructure:"redis_addr" default:"localhost:6379"`
	// RedisPassword authenticates against redis.
	RedisPassword string `mapstructure:"redis_password" default:""`
	// RedisDB selects the redis database.
	RedisDB int `mapstructure:"redis_db" default:"0"`
	// TTLSeconds bounds how long a crashed run can hold the lock.
	TTLSeconds int `mapstructure:"ttl_seconds" default:"600"`
	// Key is the redis key holding the lock token.
	Key string `mapstructure:"key" default:"listing-sync:run"`
}
