package usecase

import (
	"hostel-booking/internal/pkg/errs"
	"hostel-booking/internal/pkg/jwt"

	"github.com/google/uuid"
)

// Role comes from the external identity provider's token claims.
type Role string

const (
	RoleGuest Role = "guest"
	RoleStaff Role = "staff"
	RoleAdmin Role = "admin"
)

var ErrUnknownRole = errs.New("unknown role")

func NewRole(s string) (Role, error) {
	switch Role(s) {
	case RoleGuest, RoleStaff, RoleAdmin:
		return Role(s), nil
	default:
		return "", ErrUnknownRole
	}
}

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, Role, error)
}

type tokenValidatorImpl struct {
	verifier *jwt.Verifier
}

func NewTokenValidator(verifier *jwt.Verifier) TokenValidator {
	return &tokenValidatorImpl{verifier: verifier}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, Role, error) {
	claims, err := t.verifier.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}

	role, err := NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", err
	}

	return claims.UserID, role, nil
}
