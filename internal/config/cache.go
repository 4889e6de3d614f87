package config

// CacheConfig holds settings for the persistent perft cache.
type CacheConfig struct {
	// Dir is the database directory; empty disables the cache
	Dir string
}

// NewCacheConfig creates a CacheConfig with default values.
func NewCacheConfig() *CacheConfig {
	return &CacheConfig{}
}

// Enabled reports whether a cache directory is configured.
func (c *CacheConfig) Enabled() bool {
	return c.Dir != ""
}
