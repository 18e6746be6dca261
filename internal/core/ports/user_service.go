package ports

import (
	"context"

	"github.com/soufianez0uhair/shopsmart-api/internal/core/domain"
)

// UserService exposes the registration and login flows. Inputs are expected
// to have passed validation already.
type UserService interface {
	// Register persists a new user with the default customer role and
	// returns an issued token for it.
	Register(ctx context.Context, user *domain.User) (string, error)
	// Login authenticates an email/password pair and returns an issued token.
	Login(ctx context.Context, email, password string) (string, error)
	// Profile returns the user owning the given email.
	Profile(ctx context.Context, email string) (*domain.User, error)
}
