package ranking

import "time"

// Config holds configuration for the ranking feature.
type Config struct {
	// CacheTTLSeconds keeps the item snapshot in memory between requests.
	// 0 reads the full table on every request.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"0"`
}

// CacheTTL returns the snapshot TTL as a duration.
func (c Config) CacheTTL() time.Duration {
	if c.CacheTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(c.CacheTTLSeconds) * time.Second
}
