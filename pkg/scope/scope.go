package scope

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Payload is the authenticated identity carried in a token.
type Payload struct {
	UserID string
	Email  string
}

// Manager issues and verifies signed access tokens.
type Manager interface {
	Generate(payload Payload) (string, error)
	Verify(token string) (Payload, error)
}

type jwtManager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager creates an HS256 JWT manager. ttl bounds token lifetime.
func NewManager(secret string, ttl time.Duration) Manager {
	return &jwtManager{secret: []byte(secret), ttl: ttl}
}

func (m *jwtManager) Generate(payload Payload) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   payload.UserID,
		"email": payload.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(m.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

func (m *jwtManager) Verify(token string) (Payload, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Payload{}, ErrExpiredToken
		}
		return Payload{}, ErrInvalidToken
	}
	if !parsed.Valid {
		return Payload{}, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Payload{}, ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return Payload{}, ErrInvalidToken
	}
	email, _ := claims["email"].(string)

	return Payload{UserID: sub, Email: email}, nil
}
