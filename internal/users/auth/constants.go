// Copyright (c) 2026 Linkhive. All rights reserved.
// Author: dev@linkhive.app

package auth

import "time"

// # Authentication Constraints

const (
	// ResetTokenTTL is the duration a password reset token remains valid.
	// Short-lived (1 hour) for security.
	ResetTokenTTL = 1 * time.Hour

	// ResetTokenLength is the byte length of the random password reset token.
	ResetTokenLength = 32

	// PasswordMinLength is the minimum accepted password length, enforced at
	// the HTTP boundary before the service is ever invoked.
	PasswordMinLength = 8
)
