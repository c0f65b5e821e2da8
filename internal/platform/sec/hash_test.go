// Copyright (c) 2026 Linkhive. All rights reserved.
// Author: dev@linkhive.app

package sec_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkhive/api/internal/platform/sec"
)

/*
TestHashPassword_RoundTrip verifies the core hasher contract: the original
password verifies against its own hash, any other password does not.
*/
func TestHashPassword_RoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"simple", "pw1"},
		{"long_passphrase", "correct horse battery staple"},
		{"unicode", "pässwörd-日本語"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := sec.HashPassword(tt.password)
			require.NoError(t, err)

			assert.True(t, sec.CheckPasswordHash(tt.password, hash))
			assert.False(t, sec.CheckPasswordHash(tt.password+"x", hash))
			assert.False(t, sec.CheckPasswordHash("", hash))
		})
	}
}

/*
TestHashPassword_NeverPlaintext asserts the hash is salted: it never contains
the plaintext and two hashes of the same password differ.
*/
func TestHashPassword_NeverPlaintext(t *testing.T) {
	const password = "hunter2-hunter2"

	first, err := sec.HashPassword(password)
	require.NoError(t, err)
	second, err := sec.HashPassword(password)
	require.NoError(t, err)

	assert.False(t, strings.Contains(first, password))
	assert.NotEqual(t, first, second, "bcrypt must embed a fresh salt per hash")

	// Both independently salted hashes still verify.
	assert.True(t, sec.CheckPasswordHash(password, first))
	assert.True(t, sec.CheckPasswordHash(password, second))
}

/*
TestCheckPasswordHash_GarbageHash verifies that a corrupted stored hash is a
mismatch, not a panic or error.
*/
func TestCheckPasswordHash_GarbageHash(t *testing.T) {
	assert.False(t, sec.CheckPasswordHash("pw1", "not-a-bcrypt-hash"))
	assert.False(t, sec.CheckPasswordHash("pw1", ""))
}
