package ports

import "github.com/soufianez0uhair/shopsmart-api/internal/core/domain"

// TokenIssuer produces and reads opaque bearer tokens. Tokens encode at
// least the user's email.
type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
	ExtractEmail(token string) (string, error)
}
