// Package config provides configuration management for listing-sync.
//
// Values come from the process environment, optionally seeded from a .env
// file, and are decoded with Viper. Defaults are declared on the section
// structs with `default:"..."` tags next to their `mapstructure` keys.
//
// # Configuration Structure
//
//   - Server: HTTP port, API key and timeouts
//   - Feed: listing feed URL, timeout, retries and body cap
//   - Database: driver (mysql, postgres, sqlite) and connection details
//   - Storage: MinIO credentials and export bucket
//   - Lock: optional redis run lock
//   - Sync: schedule interval and baseline strictness
//   - Log: level and format
//
// Nested keys map to upper-case variables with "." replaced by "_", so
// feed.timeout_seconds is read from FEED_TIMEOUT_SECONDS.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Feed.URL)
package config
