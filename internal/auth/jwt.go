// Package auth verifies the HS256 access tokens minted by the external
// auth collaborator. This service never issues tokens itself.
package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/postroom/postroom-backend/internal/domain"
)

// Verifier validates JWT access tokens and extracts the caller identity.
type Verifier struct {
	secret []byte
	issuer string
}

// NewVerifier creates a new token verifier.
// secret must be at least 32 characters for HS256 security.
func NewVerifier(secret string, issuer string) *Verifier {
	return &Verifier{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// accessClaims extends standard JWT claims with the user's profile fields.
type accessClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// VerifyAccessToken parses and validates a JWT access token.
// Returns the caller identity if valid.
func (v *Verifier) VerifyAccessToken(tokenString string) (domain.Identity, error) {
	if tokenString == "" {
		return domain.Identity{}, fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return domain.Identity{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return domain.Identity{}, fmt.Errorf("invalid token claims")
	}

	if claims.Issuer != v.issuer {
		return domain.Identity{}, fmt.Errorf("invalid issuer: expected %s, got %s", v.issuer, claims.Issuer)
	}
	if claims.Email == "" {
		return domain.Identity{}, fmt.Errorf("token has no email claim")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("invalid subject UUID: %w", err)
	}

	return domain.Identity{
		UserID: &userID,
		Email:  claims.Email,
		Name:   claims.Name,
	}, nil
}
