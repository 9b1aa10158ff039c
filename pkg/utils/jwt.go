package utils

import (
	"time"

	"github.com/fprevidi/Blabbo/config"
	models "github.com/fprevidi/Blabbo/internal/user/model"
	"github.com/fprevidi/Blabbo/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

func GenerateJWTToken(user *models.User, cfg *config.Config) (string, error) {
	expiry := time.Duration(cfg.JWT.ExpiredIn) * time.Minute
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}

	claims := Claims{
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.Secret))
}

// ParseJWTClaims checks the signature and expiry and returns the claims.
func ParseJWTClaims(tokenString string, cfg *config.Config) (*Claims, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Unauthorized("unexpected signing method")
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.Unauthorized("invalid token")
	}
	return claims, nil
}

// ValidateJWTToken is the common case: verify and hand back the user ID from
// the subject claim.
func ValidateJWTToken(tokenString string, cfg *config.Config) (uuid.UUID, error) {
	claims, err := ParseJWTClaims(tokenString, cfg)
	if err != nil {
		return uuid.Nil, err
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, errors.Unauthorized("invalid token subject")
	}
	return userID, nil
}
