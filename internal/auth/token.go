package auth

import (
	"time"

	"app/internal/domain/model"

	"github.com/golang-jwt/jwt/v4"
)

// セッショントークン（JWT）を発行する約束
type TokenIssuer interface {
	Issue(u model.User, now time.Time) (token string, expiresAt time.Time, err error)
}

// HS256のJWT発行
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
}

// DI
func NewJWTIssuer(secret string, ttl time.Duration) *JWTIssuer {
	return &JWTIssuer{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (i *JWTIssuer) Issue(u model.User, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.ttl)

	claims := jwt.MapClaims{
		"sub":       u.ID,
		"name":      u.Name,
		"email":     u.Email,
		"is_seller": u.IsSeller,
		"iat":       now.Unix(),
		"exp":       expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}
