package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

const (
	GlobalKeyPrefix = "edugenie"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// GenerationResponseKey keys a raw model reply by the model that produced it and the
// SHA-256 of its prompt. model is "<provider>/<model name>".
func GenerationResponseKey(model, prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return GenerateCacheKey("generation", "response", model, hex.EncodeToString(sum[:]))
}
