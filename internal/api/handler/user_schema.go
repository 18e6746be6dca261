package handler

import "github.com/soufianez0uhair/shopsmart-api/internal/core/domain"

// --- Request / Response types ---

type registerRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authResponse wraps the single issued token string.
type authResponse struct {
	Token string `json:"token"`
}

func (r registerRequest) toDomain() *domain.User {
	return &domain.User{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		Password:    r.Password,
	}
}
