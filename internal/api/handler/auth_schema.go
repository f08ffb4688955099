package handler

import "github.com/fitengage/gym-manager/internal/core/domain"

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenRequest struct {
	Token string `json:"token"`
}

type registerResponse struct {
	envelope
	UserID uint `json:"userId,omitempty"`
}

type loginResponse struct {
	envelope
	User         *domain.User `json:"user,omitempty"`
	SessionToken string       `json:"sessionToken,omitempty"`
}

type userResponse struct {
	envelope
	User *domain.User `json:"user,omitempty"`
}

type activeSessionResponse struct {
	UserID       uint   `json:"userId"`
	SessionToken string `json:"sessionToken"`
}
