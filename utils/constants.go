// File: utils/constants.go
package utils

// RecommendCachePrefix is the prefix used for Redis recommendation cache keys.
const RecommendCachePrefix = "recommend:"
