package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session token policy.
const (
	// SessionExpiry is how long session tokens are valid. The browser
	// cookie carrying the token uses the same lifetime.
	SessionExpiry = 24 * time.Hour
)

// Predefined session token errors.
var (
	ErrInvalidSessionToken = errors.New("invalid session token")
	ErrSessionExpired      = errors.New("session has expired")
)

// SessionClaims represents the claims in a session token.
type SessionClaims struct {
	jwt.RegisteredClaims

	// Name is the account display name, carried so the UI can greet the
	// user without a profile round trip.
	Name string `json:"name"`
}

// SessionService issues and validates signed session tokens.
type SessionService struct {
	signingKey []byte
}

// SessionConfig holds configuration for the session service.
type SessionConfig struct {
	// SigningKey is the secret key used to sign session tokens.
	SigningKey string
}

// NewSessionService creates a new session service.
func NewSessionService(cfg SessionConfig) *SessionService {
	return &SessionService{signingKey: []byte(cfg.SigningKey)}
}

// Issue creates a signed session token.
func (s *SessionService) Issue(session Session) (string, error) {
	now := time.Now()

	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   session.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionExpiry)),
		},
		Name: session.Name,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("signing session token: %w", err)
	}
	return signed, nil
}

// Validate parses a session token and returns the session it carries.
func (s *SessionService) Validate(tokenString string) (*Session, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.signingKey, nil
	}, jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithExpirationRequired(),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrSessionExpired
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidSessionToken, err.Error())
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidSessionToken
	}

	return &Session{UserID: claims.Subject, Name: claims.Name}, nil
}
