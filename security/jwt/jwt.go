// Package jwt issues and verifies the signed session tokens.
package jwt

import (
	"errors"
	"time"

	jwtstd "github.com/golang-jwt/jwt/v5"
)

// TokenError represents JWT token related errors
type TokenError string

func (e TokenError) Error() string {
	return string(e)
}

const (
	// DefaultSessionExpire is the session token lifetime.
	DefaultSessionExpire = time.Hour * 24

	ErrNeedSigningKey = TokenError("cannot sign token without signing key")
	ErrInvalidToken   = TokenError("invalid token")
	ErrTokenExpired   = TokenError("token expired")
	ErrTokenParsing   = TokenError("token parsing error")
)

// SessionClaims is the identity claim set carried by a session token.
type SessionClaims struct {
	UserID string
	Email  string
	Expiry time.Time
}

// TokenManager handles session token operations. It is safe for
// concurrent use; the key is set once and read-only thereafter.
type TokenManager struct {
	key string
}

// NewTokenManager creates a new TokenManager instance
func NewTokenManager(key string) *TokenManager {
	return &TokenManager{key: key}
}

// validateKey validates the signing key
func (tm *TokenManager) validateKey() error {
	if tm.key == "" {
		return ErrNeedSigningKey
	}
	return nil
}

// Generate signs a session token carrying the user identity, expiring
// after the given duration.
func (tm *TokenManager) Generate(userID, email string, expire time.Duration) (string, error) {
	if err := tm.validateKey(); err != nil {
		return "", err
	}

	claims := jwtstd.MapClaims{
		"id":    userID,
		"email": email,
		"exp":   time.Now().Add(expire).Unix(),
	}

	t := jwtstd.NewWithClaims(jwtstd.SigningMethodHS256, claims)
	return t.SignedString([]byte(tm.key))
}

// Decode verifies signature and expiry and returns the session claims.
// Expired tokens yield ErrTokenExpired; any other failure yields
// ErrInvalidToken.
func (tm *TokenManager) Decode(tokenString string) (*SessionClaims, error) {
	if err := tm.validateKey(); err != nil {
		return nil, err
	}

	token, err := jwtstd.Parse(tokenString, func(token *jwtstd.Token) (any, error) {
		return []byte(tm.key), nil
	}, jwtstd.WithValidMethods([]string{jwtstd.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwtstd.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwtstd.MapClaims)
	if !ok {
		return nil, ErrTokenParsing
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, ErrTokenParsing
	}

	sc := &SessionClaims{
		Expiry: time.Unix(int64(exp), 0),
	}
	if id, ok := claims["id"].(string); ok {
		sc.UserID = id
	}
	if email, ok := claims["email"].(string); ok {
		sc.Email = email
	}
	if sc.UserID == "" {
		return nil, ErrInvalidToken
	}

	return sc, nil
}

// GetTokenExpiryTime extracts the expiration time from a token
func (tm *TokenManager) GetTokenExpiryTime(tokenString string) (time.Time, error) {
	claims, err := tm.Decode(tokenString)
	if err != nil {
		return time.Time{}, err
	}
	return claims.Expiry, nil
}

// IsTokenExpired checks if a token is expired
func (tm *TokenManager) IsTokenExpired(tokenString string) (bool, error) {
	expiryTime, err := tm.GetTokenExpiryTime(tokenString)
	if err != nil {
		if errors.Is(err, ErrTokenExpired) {
			return true, nil
		}
		return true, err
	}
	return expiryTime.Before(time.Now()), nil
}
