// Copyright (c) 2026 Linkhive. All rights reserved.
// Author: dev@linkhive.app

package sec

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// GenerateSecureToken returns a hex-encoded random token of byteLength
// entropy bytes, suitable for password-reset links.
//
// Failure here means the platform's entropy source is exhausted, which is a
// fatal condition rather than a user-facing one.
func GenerateSecureToken(byteLength int) (string, error) {
	buf := make([]byte, byteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("auth: failed to generate secure token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// HashToken returns the hex-encoded SHA-256 digest of a token.
//
// Volatile stores keep only this digest so that a leaked store snapshot
// cannot be replayed as live tokens.
func HashToken(token string) string {
	digest := sha256.Sum256([]byte(token))
	return hex.EncodeToString(digest[:])
}
