package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 10 * time.Minute

// PermCachePrefix is the prefix used for Redis permission cache keys.
const PermCachePrefix = "perm:"

// PermCacheTTL is the time-to-live for cached permission records.
const PermCacheTTL = 5 * time.Minute
