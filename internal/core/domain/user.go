package domain

import (
	"errors"
	"time"
)

// RoleCustomer is the role every registered user receives. Roles are
// pre-seeded and read-only at runtime.
const RoleCustomer = "customer"

// Sentinel errors surfaced to the client verbatim through the error mapper.
var (
	ErrEmailInUse         = errors.New("Email is already in use")
	ErrEmailNotRegistered = errors.New("Email is not linked to any account")
	ErrIncorrectPassword  = errors.New("Incorrect password")
	ErrUserNotFound       = errors.New("user not found")
	ErrRoleNotFound       = errors.New("role not found")
)

// User is the identity record persisted by the user store. The store assigns
// ID and CreatedAt on insert; Email is unique across all users and the store
// enforces that with its own unique index.
type User struct {
	ID          string    `json:"id,omitempty"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	Password    string    `json:"-"`
	CreatedAt   time.Time `json:"createdAt"`
	Roles       []Role    `json:"roles,omitempty"`
}

// Role is a named permission group.
type Role struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// AddRole assigns a role to the user. Adding an already-present role is a
// no-op and a nil role set is initialised first.
func (u *User) AddRole(role Role) {
	if u.Roles == nil {
		u.Roles = []Role{}
	}
	for _, r := range u.Roles {
		if r.Name == role.Name {
			return
		}
	}
	u.Roles = append(u.Roles, role)
}
