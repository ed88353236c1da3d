package auth

import (
	"errors"
	"strings"

	"contacts_backend/internal/models"
	"contacts_backend/internal/repositories"

	"gorm.io/gorm"
)

var (
	ErrUnauthenticated = errors.New("missing credentials")
	ErrUserNotFound    = errors.New("token owner not found")
	ErrTokenRevoked    = errors.New("token revoked")
)

const bearerPrefix = "Bearer "

// UserFinder is the part of the user store the gate needs.
type UserFinder interface {
	FindByID(db *gorm.DB, id string) (*models.User, error)
}

// Gate resolves a bearer credential to the user holding it.
type Gate struct {
	tokens *TokenManager
	users  UserFinder
}

func NewGate(tokens *TokenManager, users UserFinder) *Gate {
	return &Gate{tokens: tokens, users: users}
}

// Authenticate checks rawHeader (an Authorization header value) and returns its user.
// Store failures other than "not found" are returned as is.
func (g *Gate) Authenticate(db *gorm.DB, rawHeader string) (*models.User, error) {
	token := ExtractToken(rawHeader)
	if token == "" {
		return nil, ErrUnauthenticated
	}

	claims, err := g.tokens.Parse(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	user, err := g.users.FindByID(db, claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !user.HasToken(token) {
		return nil, ErrTokenRevoked
	}

	return user, nil
}

// ExtractToken strips an optional "Bearer " prefix. A bare token is accepted as is.
func ExtractToken(rawHeader string) string {
	v := strings.TrimSpace(rawHeader)
	if strings.EqualFold(v, strings.TrimSpace(bearerPrefix)) {
		return ""
	}
	if len(v) >= len(bearerPrefix) && strings.EqualFold(v[:len(bearerPrefix)], bearerPrefix) {
		v = strings.TrimSpace(v[len(bearerPrefix):])
	}
	return v
}

// IsAuthError reports whether err is one of the gate's rejection reasons.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrUnauthenticated) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrTokenRevoked)
}
