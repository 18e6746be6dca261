package ports

import (
	"context"

	"github.com/soufianez0uhair/shopsmart-api/internal/core/domain"
)

// UserRepository is the persistence boundary for user records. The store owns
// the email uniqueness invariant: a concurrent insert racing past the
// service-level duplicate check must still fail with domain.ErrEmailInUse.
type UserRepository interface {
	// FindByEmail returns domain.ErrUserNotFound when no user has the email.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Create inserts the user, assigning ID and CreatedAt.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// RoleRepository looks up pre-seeded roles by name.
type RoleRepository interface {
	// FindByName returns domain.ErrRoleNotFound when the role does not exist.
	FindByName(ctx context.Context, name string) (*domain.Role, error)
}
