package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bolchaal/bolchaal-backend/internal/domain"
)

// Verifier validates HS256 access tokens issued by the external identity
// provider and extracts the user's email. This service never issues tokens.
type Verifier struct {
	secret []byte
	issuer string
}

// NewVerifier creates a token verifier.
// secret must be at least 32 characters for HS256 security.
func NewVerifier(secret, issuer string) *Verifier {
	return &Verifier{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// accessClaims extends standard JWT claims with the email the identity
// provider places in the token.
type accessClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// VerifyToken parses and validates an access token and returns the email it
// carries. All failures map to domain.ErrUnauthorized so callers never leak
// parser detail to clients.
func (v *Verifier) VerifyToken(tokenString string) (string, error) {
	if tokenString == "" {
		return "", fmt.Errorf("%w: empty token", domain.ErrUnauthorized)
	}

	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("%w: invalid claims", domain.ErrUnauthorized)
	}

	if v.issuer != "" && claims.Issuer != v.issuer {
		return "", fmt.Errorf("%w: unexpected issuer %q", domain.ErrUnauthorized, claims.Issuer)
	}

	email := claims.Email
	if email == "" {
		// Some providers put the email in the subject instead.
		email = claims.Subject
	}
	if email == "" {
		return "", fmt.Errorf("%w: token carries no email", domain.ErrUnauthorized)
	}

	return email, nil
}
