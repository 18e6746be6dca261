package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/soufianez0uhair/shopsmart-api/internal/core/domain"
	"github.com/soufianez0uhair/shopsmart-api/internal/core/ports"
)

// UserService implements registration and login on top of the user store,
// role store, and token issuer collaborators.
type UserService struct {
	users  ports.UserRepository
	roles  ports.RoleRepository
	tokens ports.TokenIssuer
	log    zerolog.Logger
}

func NewUserService(users ports.UserRepository, roles ports.RoleRepository, tokens ports.TokenIssuer, log zerolog.Logger) *UserService {
	return &UserService{users: users, roles: roles, tokens: tokens, log: log}
}

// Register persists a validated user with the customer role and issues a
// token for the stored identity. Each collaborator call runs only if the
// previous step succeeded: duplicate check, role lookup, insert, issue.
func (s *UserService) Register(ctx context.Context, user *domain.User) (string, error) {
	_, err := s.users.FindByEmail(ctx, user.Email)
	switch {
	case err == nil:
		return "", domain.ErrEmailInUse
	case !errors.Is(err, domain.ErrUserNotFound):
		return "", fmt.Errorf("find user by email: %w", err)
	}

	role, err := s.roles.FindByName(ctx, domain.RoleCustomer)
	if err != nil {
		return "", fmt.Errorf("find role %q: %w", domain.RoleCustomer, err)
	}
	user.AddRole(*role)

	created, err := s.users.Create(ctx, user)
	if err != nil {
		// The store's unique email index closes the race between the check
		// above and this insert.
		if errors.Is(err, domain.ErrEmailInUse) {
			return "", domain.ErrEmailInUse
		}
		return "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.Issue(created)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	s.log.Info().Str("email", created.Email).Str("user_id", created.ID).Msg("user registered")
	return token, nil
}

// Login authenticates an email/password pair and issues a token on success.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrEmailNotRegistered
		}
		return "", fmt.Errorf("find user by email: %w", err)
	}

	// Passwords are stored and compared verbatim. Known defect of the
	// contract being reproduced; see DESIGN.md.
	if user.Password != password {
		return "", domain.ErrIncorrectPassword
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	s.log.Info().Str("email", user.Email).Msg("user logged in")
	return token, nil
}

// Profile returns the user record behind an authenticated email.
func (s *UserService) Profile(ctx context.Context, email string) (*domain.User, error) {
	return s.users.FindByEmail(ctx, email)
}
