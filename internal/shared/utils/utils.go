package utils

import (
	"fmt"
	"os"

	"github.com/google/uuid"
)

// GetEnvVariable reads an environment variable with a fallback.
func GetEnvVariable(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// ParseStringToUUID parses s, returning uuid.Nil on any failure.
func ParseStringToUUID(s string) uuid.UUID {
	uid, err := uuid.Parse(s)
	if err != nil || s == "" {
		return uuid.Nil
	}
	return uid
}

// IsValidUUID reports whether u is a well-formed UUID string.
func IsValidUUID(u string) bool {
	if len(u) != 36 {
		return false
	}
	_, err := uuid.Parse(u)
	return err == nil
}

// =====================================================
// CACHE KEYS
// =====================================================

// ProductCacheKey is the cache key for a product detail payload.
func ProductCacheKey(productID uuid.UUID) string {
	return fmt.Sprintf("product:%s", productID)
}

// ReviewHelpfulVotersKey is the set key tracking which users already
// voted a review helpful.
func ReviewHelpfulVotersKey(reviewID uuid.UUID) string {
	return fmt.Sprintf("review:%s:helpful-voters", reviewID)
}
