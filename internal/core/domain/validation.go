package domain

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError carries the message of the first violated constraint.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

const maxEmailLength = 256

var (
	namePattern = regexp.MustCompile(`^[a-zA-Z]{0,45}$`)
	validate    = validator.New()
)

// rule is a single (field, predicate, message) constraint. Rules are kept in
// explicit slices because their evaluation order is part of the API contract:
// the first violated rule's message is the one the client sees, even when
// several fields are invalid at once.
type rule struct {
	field   string
	ok      func(u *User) bool
	message string
}

// Group 1: presence and format checks, in fixed field order. A field's
// presence rule always precedes its format rule.
var registrationRules = []rule{
	{"firstName", func(u *User) bool { return !isBlank(u.FirstName) }, "First name is required"},
	{"firstName", func(u *User) bool { return namePattern.MatchString(u.FirstName) }, "Please use a valid first name"},
	{"lastName", func(u *User) bool { return !isBlank(u.LastName) }, "Last name is required"},
	{"lastName", func(u *User) bool { return namePattern.MatchString(u.LastName) }, "Please use a valid last name"},
	{"email", func(u *User) bool { return !isBlank(u.Email) }, "Email is required"},
	{"email", func(u *User) bool { return isEmail(u.Email) }, "Please use a valid email"},
	{"phoneNumber", func(u *User) bool { return !isBlank(u.PhoneNumber) }, "Phone number is required"},
	{"password", func(u *User) bool { return !isBlank(u.Password) }, "Password is required"},
	{"password", func(u *User) bool { return len(u.Password) <= 20 }, "Password must not exceed 20 characters length"},
}

// Group 2: evaluated only once every group-1 rule has passed.
var registrationRulesSecondPass = []rule{
	{"password", func(u *User) bool { return len(u.Password) >= 8 }, "Password must be at least 8 characters long"},
}

// ValidateRegistration checks a registration payload against the ordered
// constraint groups and returns the first violation, or nil when the payload
// is valid.
func ValidateRegistration(u *User) error {
	for _, group := range [][]rule{registrationRules, registrationRulesSecondPass} {
		for _, r := range group {
			if !r.ok(u) {
				return &ValidationError{Message: r.message}
			}
		}
	}
	return nil
}

// ValidateLogin applies the lighter login rule: the email must be
// syntactically valid. The password has no format constraint at login.
func ValidateLogin(email string) error {
	if isBlank(email) || !isEmail(email) {
		return &ValidationError{Message: "Invalid email"}
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func isEmail(s string) bool {
	return len(s) <= maxEmailLength && validate.Var(s, "email") == nil
}
