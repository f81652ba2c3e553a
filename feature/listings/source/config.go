package source

import "time"

// Config holds configuration for the listing feed.
type Config struct {
	// URL is the address of the XML feed.
	URL string `mapstructure:"url" default:""`
	// TimeoutSeconds bounds a whole fetch, body included.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// RetryMax is the number of retries on transport errors and 5xx. 0 disables retrying.
	RetryMax int `mapstructure:"retry_max" default:"0"`
	// MaxBodyBytes caps the feed payload size.
	MaxBodyBytes int64 `mapstructure:"max_body_bytes" default:"67108864"`
}

// Timeout returns the fetch timeout, 30s when unset.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c Config) maxBody() int64 {
	if c.MaxBodyBytes <= 0 {
		return 64 << 20
	}
	return c.MaxBodyBytes
}
