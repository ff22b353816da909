package auth

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims carries the actor identity stamped into every mutation
// (moderated_by, granted_by, reviewed_by) plus the role used to gate
// admin routes.
type Claims struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email,omitempty"`
	UserType string `json:"user_type"`

	jwtlib.RegisteredClaims
}

// Service signs and validates HMAC access tokens.
type Service struct {
	secret    []byte
	expiresIn time.Duration
	now       func() time.Time
}

// NewService creates a token service with the given signing secret and
// token lifetime.
func NewService(secret string, expiresIn time.Duration) *Service {
	return &Service{
		secret:    []byte(secret),
		expiresIn: expiresIn,
		now:       time.Now,
	}
}

// GenerateToken issues an access token for the given account.
func (s *Service) GenerateToken(userID, email, userType string) (string, error) {
	now := s.now()

	claims := Claims{
		UserID:   userID,
		Email:    email,
		UserType: userType,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwtlib.NewNumericDate(now.UTC()),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(s.expiresIn).UTC()),
		},
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken parses and verifies an access token, returning its claims.
func (s *Service) ValidateToken(tokenString string) (Claims, error) {
	parser := jwtlib.NewParser(jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}))

	var claims Claims
	token, err := parser.ParseWithClaims(tokenString, &claims, func(t *jwtlib.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}
	if !token.Valid {
		return Claims{}, ErrTokenInvalid
	}

	return claims, nil
}
