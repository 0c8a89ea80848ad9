package request

import (
	"tractus/internal/domain/entities"
	"tractus/internal/usecase"
)

type CreateUserRequest struct {
	Nome       string  `json:"nome" binding:"required"`
	Email      string  `json:"email" binding:"required,email"`
	Senha      string  `json:"senha" binding:"required,min=6"`
	Role       string  `json:"role" binding:"required,oneof=ADMIN GERENTE VENDEDOR TECNICO"`
	Telefone   string  `json:"telefone"`
	MetaMensal float64 `json:"meta_mensal" binding:"gte=0"`
}

func (r CreateUserRequest) ToCommand() usecase.CreateUserCommand {
	return usecase.CreateUserCommand{
		Nome:       r.Nome,
		Email:      r.Email,
		Senha:      r.Senha,
		Role:       entities.Role(r.Role),
		Telefone:   r.Telefone,
		MetaMensal: r.MetaMensal,
	}
}

// UpdateUserRequest leaves empty fields untouched.
type UpdateUserRequest struct {
	Nome  string `json:"nome"`
	Senha string `json:"senha" binding:"omitempty,min=6"`
	Role  string `json:"role" binding:"omitempty,oneof=ADMIN GERENTE VENDEDOR TECNICO"`
	Ativo *bool  `json:"ativo"`
}

func (r UpdateUserRequest) ToCommand() usecase.UpdateUserCommand {
	return usecase.UpdateUserCommand{
		Nome:  r.Nome,
		Senha: r.Senha,
		Role:  entities.Role(r.Role),
		Ativo: r.Ativo,
	}
}

type UpdateVendedorRequest struct {
	Telefone   *string  `json:"telefone"`
	MetaMensal *float64 `json:"meta_mensal"`
}

func (r UpdateVendedorRequest) ToCommand() usecase.UpdateVendedorCommand {
	return usecase.UpdateVendedorCommand{Telefone: r.Telefone, MetaMensal: r.MetaMensal}
}
