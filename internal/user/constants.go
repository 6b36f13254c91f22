package user

import "time"

// CacheSchemaVersion is the current version of the cache schema
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

// DefaultCacheSize is the default maximum number of cache entries
const DefaultCacheSize = 1000

// DefaultCacheTTL is the default time-to-live for cache entries
const DefaultCacheTTL = 5 * time.Minute

// usernameRules are the validator tags applied to new usernames
const usernameRules = "required,min=3,max=80,printascii,excludesall= "

// Log messages
const (
	LogMsgUserRegistered = "User registered"
	LogMsgPublishFailed  = "Failed to publish user registration event"
	LogMsgCacheHit       = "Username cache hit"
)

// Error contexts
const (
	ErrContextCreateUser = "failed to create user"
	ErrContextGetUser    = "failed to get user"
)
