package response

import (
	"time"

	"tractus/internal/domain/entities"
	"tractus/internal/usecase"
)

type UserResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Ativo     bool      `json:"ativo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Nome:      u.Nome,
		Email:     u.Email,
		Role:      string(u.Role),
		Ativo:     u.Ativo,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func FromUsers(users []entities.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, FromUser(u))
	}
	return out
}

type LoginResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"token_type"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

func FromLogin(r usecase.LoginResult) LoginResponse {
	return LoginResponse{
		Token:     r.Token,
		TokenType: "Bearer",
		ExpiresAt: r.ExpiresAt,
		User:      FromUser(r.User),
	}
}
