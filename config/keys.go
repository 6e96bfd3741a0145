package config

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"os"
)

// GenerateRandomKey returns the JWT signing key: JWT_KEY from the
// environment if set, otherwise a random 32-byte hex key. A random key
// invalidates existing sessions on restart.
func GenerateRandomKey() string {
	if key := os.Getenv("JWT_KEY"); key != "" {
		return key
	}
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		log.Fatalf("Failed to generate JWT key: %v", err)
	}
	return hex.EncodeToString(b)
}
