package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-store-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token.
//
// The token carries the user's id and email and the standard claims:
//   - IssuedAt  (iat): issuedAt
//   - ExpiresAt (exp): issuedAt plus tokenDuration
//
// Returns an error if tokenDuration is not positive, signKey is empty or
// signing fails.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(userID, "a@x.com", time.Hour, "secret", time.Now())
func GenerateJWTToken(userID, email string, tokenDuration time.Duration, signKey string, issuedAt time.Time) (models.Token, error) {
	if tokenDuration <= 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	claims := models.Claims{
		ID:    userID,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(tokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken verifies tokenString and extracts its claims.
//
// Validation includes:
//   - Signature verification with signKey (HS256 only)
//   - Presence and validity of the exp claim
//   - Presence of the id claim
//
// Example usage:
//
//	token, err := utils.ValidateAndParseJWTToken(rawToken, "secret")
//	if err != nil {
//	    // handle invalid or expired token
//	}
func ValidateAndParseJWTToken(tokenString, signKey string) (models.Token, error) {
	if signKey == "" {
		return models.Token{}, errors.New("empty token sign key")
	}

	var claims models.Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.ID == "" {
		return models.Token{}, errors.New("empty id claim")
	}

	return models.Token{Token: token, Claims: claims, SignedString: tokenString}, nil
}
