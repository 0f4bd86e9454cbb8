package config

import (
	"fmt"
)

// AuthSessionKey is the store key holding the persisted {user, token} pair.
const AuthSessionKey = "auth"

type CacheKeyStruct struct {
	namespace string
}

func NewCacheKeyStruct(namespace string) *CacheKeyStruct {
	return &CacheKeyStruct{namespace: namespace}
}

// SessionKey returns the Redis key a client session entry is stored under.
func (r *CacheKeyStruct) SessionKey(key string) string {
	return fmt.Sprintf("%s:%s", r.namespace, key)
}

var CacheKey = NewCacheKeyStruct("student-dashboard")
