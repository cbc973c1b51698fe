package utils

// Cache key prefixes.
const (
	AuthCachePrefix         = "auth:"
	CurrentScheduleCacheKey = "schedule:current"
)
