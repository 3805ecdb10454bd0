// Package security holds stand-ins for password hashing and session tokens.
// Nothing here is cryptographic; do not use it to protect real credentials.
package security

import (
	"strconv"
	"time"
)

const (
	hashPrefix  = "hashed_"
	tokenPrefix = "token_"
)

// HashPassword returns password behind a fixed marker prefix. It is not a hash.
func HashPassword(password string) string {
	return hashPrefix + password
}

// GenerateToken returns a token stamped with the current Unix time in seconds.
// Two calls within the same second return the same token.
func GenerateToken() string {
	return TokenAt(time.Now())
}

// TokenAt returns the token GenerateToken would produce at t.
func TokenAt(t time.Time) string {
	return tokenPrefix + strconv.FormatInt(t.Unix(), 10)
}
