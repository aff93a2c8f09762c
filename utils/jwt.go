package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"justnest/models"

	"github.com/golang-jwt/jwt"
)

// ErrInvalidToken is returned for malformed, expired or wrongly signed tokens.
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenTypePasswordReset marks tokens that can only reset a password. They are
// never accepted as bearer tokens.
const TokenTypePasswordReset = "password-reset"

// TokenManager signs and verifies HS256 bearer tokens.
type TokenManager struct {
	secret []byte
	now    func() time.Time
}

// NewTokenManager returns a TokenManager using secret for signing.
func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret), now: time.Now}
}

// GenerateToken creates a signed JWT for the identity that expires after ttl.
func (m *TokenManager) GenerateToken(id models.Identity, ttl time.Duration) (string, error) {
	now := m.now()
	claims := jwt.MapClaims{
		"sub":   id.UserID,
		"email": id.Email,
		"name":  id.Name,
		"role":  id.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// GenerateResetToken creates a password-reset token for userID.
func (m *TokenManager) GenerateResetToken(userID string, ttl time.Duration) (string, error) {
	now := m.now()
	claims := jwt.MapClaims{
		"sub":  userID,
		"type": TokenTypePasswordReset,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ParseToken validates a bearer tokenString and returns the identity and expiry it carries.
func (m *TokenManager) ParseToken(tokenString string) (models.Identity, time.Time, error) {
	claims, err := m.parseClaims(tokenString)
	if err != nil {
		return models.Identity{}, time.Time{}, err
	}
	if typ, _ := claims["type"].(string); typ != "" {
		return models.Identity{}, time.Time{}, ErrInvalidToken
	}
	id := models.Identity{}
	id.UserID, _ = claims["sub"].(string)
	id.Email, _ = claims["email"].(string)
	id.Name, _ = claims["name"].(string)
	id.Role, _ = claims["role"].(string)
	return id, expiryOf(claims), nil
}

// ParseResetToken validates a password-reset token and returns its user id and expiry.
func (m *TokenManager) ParseResetToken(tokenString string) (string, time.Time, error) {
	claims, err := m.parseClaims(tokenString)
	if err != nil {
		return "", time.Time{}, err
	}
	if typ, _ := claims["type"].(string); typ != TokenTypePasswordReset {
		return "", time.Time{}, ErrInvalidToken
	}
	sub, _ := claims["sub"].(string)
	return sub, expiryOf(claims), nil
}

func (m *TokenManager) parseClaims(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	if sub, _ := claims["sub"].(string); sub == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func expiryOf(claims jwt.MapClaims) time.Time {
	if exp, ok := claims["exp"].(float64); ok {
		return time.Unix(int64(exp), 0)
	}
	return time.Time{}
}

// HashToken computes a SHA-256 hash of the token string.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
