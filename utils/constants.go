// File: utils/constants.go
package utils

import "time"

// Gin context keys.
const (
	RequestIDKey = "requestId"
	IdentityKey  = "identity"
)

// RevokedTokenPrefix is the prefix used for Redis keys of revoked token hashes.
const RevokedTokenPrefix = "revoked:"

// Token lifetimes.
const (
	TokenTTL           = 7 * 24 * time.Hour
	RememberMeTokenTTL = 30 * 24 * time.Hour
	// PasswordResetTokenTTL bounds how long a forgot-password link stays usable.
	PasswordResetTokenTTL = time.Hour
)
