// Copyright (c) 2026 Linkhive. All rights reserved.
// Author: dev@linkhive.app

package sec_test

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkhive/api/internal/platform/sec"
)

const (
	testSecret = "0123456789abcdef0123456789abcdef"
	testIssuer = "linkhive.test"
)

func newTokenService(t *testing.T) *sec.TokenService {
	t.Helper()
	service, err := sec.NewTokenService(testSecret, testIssuer, 15*time.Minute)
	require.NoError(t, err)
	return service
}

/*
TestNewTokenService_EmptySecret asserts that a missing signing secret is a
construction-time failure, never a per-request one.
*/
func TestNewTokenService_EmptySecret(t *testing.T) {
	_, err := sec.NewTokenService("", testIssuer, 15*time.Minute)
	assert.Error(t, err)

	_, err = sec.NewTokenService(testSecret, testIssuer, 0)
	assert.Error(t, err)
}

/*
TestTokenService_IssueVerify checks that issuing then verifying yields claims
whose identity matches the issued subject, across a range of user ids.
*/
func TestTokenService_IssueVerify(t *testing.T) {
	service := newTokenService(t)

	for _, userID := range []int64{1, 42, 987654321} {
		token, err := service.Issue(userID, "a@x.com", 15*time.Minute)
		require.NoError(t, err)

		claims, err := service.Verify(token)
		require.NoError(t, err)

		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "a@x.com", claims.Email)
		assert.Equal(t, strconv.FormatInt(userID, 10), claims.Subject)
		assert.Equal(t, testIssuer, claims.Issuer)
	}
}

/*
TestTokenService_Expired verifies that a token past its expiry instant fails
with the Expired kind, not a generic failure.
*/
func TestTokenService_Expired(t *testing.T) {
	service := newTokenService(t)

	token, err := service.Issue(7, "a@x.com", -1*time.Minute)
	require.NoError(t, err)

	_, err = service.Verify(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, sec.ErrTokenExpired)
}

/*
TestTokenService_TamperedSignature flips a character of the signature segment
and expects the SignatureInvalid kind.
*/
func TestTokenService_TamperedSignature(t *testing.T) {
	service := newTokenService(t)

	token, err := service.Issue(7, "a@x.com", 15*time.Minute)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = service.Verify(tampered)
	require.Error(t, err)
	assert.ErrorIs(t, err, sec.ErrTokenSignatureInvalid)
}

/*
TestTokenService_WrongSecret verifies a token minted under a different
process secret is rejected as SignatureInvalid.
*/
func TestTokenService_WrongSecret(t *testing.T) {
	service := newTokenService(t)

	other, err := sec.NewTokenService("another-secret-another-secret!!!", testIssuer, 15*time.Minute)
	require.NoError(t, err)

	token, err := other.Issue(7, "a@x.com", 15*time.Minute)
	require.NoError(t, err)

	_, err = service.Verify(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, sec.ErrTokenSignatureInvalid)
}

/*
TestTokenService_Malformed covers strings that cannot be parsed at all.
*/
func TestTokenService_Malformed(t *testing.T) {
	service := newTokenService(t)

	for _, raw := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		_, err := service.Verify(raw)
		require.Error(t, err, "input %q", raw)
		assert.ErrorIs(t, err, sec.ErrTokenMalformed, "input %q", raw)
	}
}

/*
TestTokenService_AlgorithmPinned verifies that an unsigned ("none" algorithm)
token is rejected even though it parses.
*/
func TestTokenService_AlgorithmPinned(t *testing.T) {
	service := newTokenService(t)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "7",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = service.Verify(token)
	assert.Error(t, err)
}

/*
TestGenerateSecureToken checks entropy length and uniqueness of reset tokens.
*/
func TestGenerateSecureToken(t *testing.T) {
	first, err := sec.GenerateSecureToken(32)
	require.NoError(t, err)
	second, err := sec.GenerateSecureToken(32)
	require.NoError(t, err)

	assert.Len(t, first, 64) // 32 bytes hex-encoded
	assert.NotEqual(t, first, second)

	// Digest is stable and never the raw token.
	assert.Equal(t, sec.HashToken(first), sec.HashToken(first))
	assert.NotEqual(t, first, sec.HashToken(first))
}
