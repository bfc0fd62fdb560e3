package curriculum

import "time"

// Config holds curriculum feature settings.
type Config struct {
	// ExportPrefix is the object key prefix published exports are written under.
	ExportPrefix string `mapstructure:"export_prefix" default:"exports/curriculum"`
	// ExportCacheSeconds is how long a rendered export is served from memory. 0 disables the cache.
	ExportCacheSeconds int `mapstructure:"export_cache_seconds" default:"60"`
}

// ExportCacheTTL returns ExportCacheSeconds as a duration.
func (c Config) ExportCacheTTL() time.Duration {
	if c.ExportCacheSeconds <= 0 {
		return 0
	}
	return time.Duration(c.ExportCacheSeconds) * time.Second
}

// ExportKey returns the object key of the published export of domainID.
func (c Config) ExportKey(domainID string) string {
	prefix := c.ExportPrefix
	if prefix == "" {
		return domainID + ".json"
	}
	return prefix + "/" + domainID + ".json"
}
