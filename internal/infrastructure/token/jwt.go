package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/soufianez0uhair/shopsmart-api/internal/core/domain"
)

// ErrInvalidToken is returned for tokens that fail parsing, signature
// verification, or are missing the email claim.
var ErrInvalidToken = errors.New("invalid token")

const defaultTTL = 24 * time.Hour

// JWTIssuer signs and reads HS256 bearer tokens carrying the user's email.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTIssuer(secret string, ttl time.Duration) *JWTIssuer {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &JWTIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the user. The email claim is the identity the rest
// of the system keys on; role names ride along for the transport layer.
func (i *JWTIssuer) Issue(user *domain.User) (string, error) {
	roles := make([]string, 0, len(user.Roles))
	for _, r := range user.Roles {
		roles = append(roles, r.Name)
	}

	claims := jwt.MapClaims{
		"email": user.Email,
		"roles": roles,
		"exp":   time.Now().Add(i.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}

// ExtractEmail verifies the token and returns the email it encodes.
func (i *JWTIssuer) ExtractEmail(tokenString string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil || !tkn.Valid {
		return "", ErrInvalidToken
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return "", ErrInvalidToken
	}
	return email, nil
}
