package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"tractus/internal/domain/entities"
	"tractus/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrUserEmailTaken       = errors.New("email already registered")
	ErrInvalidUserNome      = errors.New("invalid nome")
	ErrInvalidUserEmail     = errors.New("invalid email")
	ErrInvalidUserSenha     = errors.New("senha must have at least 6 characters")
	ErrInvalidUserRole      = errors.New("invalid role")
	ErrRoleChangeNotAllowed = errors.New("role change to or from VENDEDOR is not allowed")
	ErrInvalidUserID        = errors.New("invalid user id")
	ErrVendedorNotFound     = errors.New("vendedor not found")
	ErrInvalidVendedorID    = errors.New("invalid vendedor id")
	ErrInvalidVendedorMeta  = errors.New("meta_mensal must not be negative")
)

const minSenhaLen = 6

var bcryptCost = bcrypt.DefaultCost

type CreateUserCommand struct {
	Nome       string
	Email      string
	Senha      string
	Role       entities.Role
	Telefone   string
	MetaMensal float64
}

// UpdateUserCommand leaves a field untouched when it is empty/nil.
type UpdateUserCommand struct {
	Nome  string
	Senha string
	Role  entities.Role
	Ativo *bool
}

type IUserUseCase interface {
	Create(ctx context.Context, cmd CreateUserCommand) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	List(ctx context.Context) ([]entities.User, error)
	Update(ctx context.Context, id string, cmd UpdateUserCommand) (entities.User, error)
	Deactivate(ctx context.Context, id string) (entities.User, error)
	EnsureAdmin(ctx context.Context, email string, senha string) (bool, error)
}

type UserUseCase struct {
	repo         interfaces.IUserRepository
	vendedorRepo interfaces.IVendedorRepository
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository, vendedorRepo interfaces.IVendedorRepository) *UserUseCase {
	return &UserUseCase{repo: repo, vendedorRepo: vendedorRepo}
}

func (u *UserUseCase) Create(ctx context.Context, cmd CreateUserCommand) (entities.User, error) {
	nome := strings.TrimSpace(cmd.Nome)
	email := normalizeEmail(cmd.Email)
	switch {
	case nome == "":
		return entities.User{}, ErrInvalidUserNome
	case !strings.Contains(email, "@"):
		return entities.User{}, ErrInvalidUserEmail
	case len(cmd.Senha) < minSenhaLen:
		return entities.User{}, ErrInvalidUserSenha
	case !cmd.Role.Valid():
		return entities.User{}, ErrInvalidUserRole
	case cmd.MetaMensal < 0:
		return entities.User{}, ErrInvalidVendedorMeta
	}

	if existing, err := u.repo.GetByEmail(ctx, email); err != nil {
		return entities.User{}, err
	} else if existing.ID != "" {
		return entities.User{}, ErrUserEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Senha), bcryptCost)
	if err != nil {
		return entities.User{}, fmt.Errorf("hash senha: %w", err)
	}

	user := entities.User{
		ID:        uuid.NewString(),
		Nome:      nome,
		Email:     email,
		SenhaHash: string(hash),
		Role:      cmd.Role,
		Ativo:     true,
	}

	var vendedor *entities.Vendedor
	if cmd.Role == entities.RoleVendedor {
		vendedor = &entities.Vendedor{
			ID:         uuid.NewString(),
			UserID:     user.ID,
			Nome:       nome,
			Telefone:   strings.TrimSpace(cmd.Telefone),
			MetaMensal: cmd.MetaMensal,
			Ativo:      true,
		}
	}

	created, err := u.repo.Create(ctx, user, vendedor)
	if err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			return entities.User{}, ErrUserEmailTaken
		}
		return entities.User{}, err
	}
	zap.L().Info("user created", zap.String("scope", "user"), zap.String("user_id", created.ID), zap.String("role", string(created.Role)))
	return created, nil
}

func (u *UserUseCase) GetByID(ctx context.Context, id string) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrInvalidUserID
	}
	user, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}

func (u *UserUseCase) List(ctx context.Context) ([]entities.User, error) {
	return u.repo.List(ctx)
}

func (u *UserUseCase) Update(ctx context.Context, id string, cmd UpdateUserCommand) (entities.User, error) {
	user, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}

	if nome := strings.TrimSpace(cmd.Nome); nome != "" {
		user.Nome = nome
	}
	if cmd.Role != "" {
		if !cmd.Role.Valid() {
			return entities.User{}, ErrInvalidUserRole
		}
		if cmd.Role != user.Role && (cmd.Role == entities.RoleVendedor || user.Role == entities.RoleVendedor) {
			return entities.User{}, ErrRoleChangeNotAllowed
		}
		user.Role = cmd.Role
	}
	if cmd.Senha != "" {
		if len(cmd.Senha) < minSenhaLen {
			return entities.User{}, ErrInvalidUserSenha
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Senha), bcryptCost)
		if err != nil {
			return entities.User{}, fmt.Errorf("hash senha: %w", err)
		}
		user.SenhaHash = string(hash)
	}
	if cmd.Ativo != nil {
		user.Ativo = *cmd.Ativo
	}

	return u.save(ctx, user)
}

// Deactivate keeps the row (clients and expenses reference the salesperson).
func (u *UserUseCase) Deactivate(ctx context.Context, id string) (entities.User, error) {
	user, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	user.Ativo = false
	return u.save(ctx, user)
}

func (u *UserUseCase) save(ctx context.Context, user entities.User) (entities.User, error) {
	updated, err := u.repo.Update(ctx, user)
	if err != nil {
		return entities.User{}, err
	}
	if user.Role != entities.RoleVendedor || u.vendedorRepo == nil {
		return updated, nil
	}

	v, err := u.vendedorRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		return entities.User{}, err
	}
	if v.ID != "" && (v.Ativo != user.Ativo || v.Nome != user.Nome) {
		v.Ativo = user.Ativo
		v.Nome = user.Nome
		if _, err := u.vendedorRepo.Update(ctx, v); err != nil {
			return entities.User{}, err
		}
	}
	return updated, nil
}

// EnsureAdmin creates an ADMIN account for email unless one already exists.
func (u *UserUseCase) EnsureAdmin(ctx context.Context, email string, senha string) (bool, error) {
	email = normalizeEmail(email)
	if email == "" {
		return false, nil
	}
	existing, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if existing.ID != "" {
		return false, nil
	}
	_, err = u.Create(ctx, CreateUserCommand{Nome: "Administrador", Email: email, Senha: senha, Role: entities.RoleAdmin})
	if err != nil {
		return false, err
	}
	return true, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type UpdateVendedorCommand struct {
	Telefone   *string
	MetaMensal *float64
}

type IVendedorUseCase interface {
	List(ctx context.Context) ([]entities.Vendedor, error)
	GetByID(ctx context.Context, id string) (entities.Vendedor, error)
	Update(ctx context.Context, id string, cmd UpdateVendedorCommand) (entities.Vendedor, error)
}

type VendedorUseCase struct {
	repo interfaces.IVendedorRepository
}

var _ IVendedorUseCase = (*VendedorUseCase)(nil)

func NewVendedorUseCase(repo interfaces.IVendedorRepository) *VendedorUseCase {
	return &VendedorUseCase{repo: repo}
}

func (u *VendedorUseCase) List(ctx context.Context) ([]entities.Vendedor, error) {
	return u.repo.List(ctx)
}

func (u *VendedorUseCase) GetByID(ctx context.Context, id string) (entities.Vendedor, error) {
	return getVendedor(ctx, u.repo, id)
}

func (u *VendedorUseCase) Update(ctx context.Context, id string, cmd UpdateVendedorCommand) (entities.Vendedor, error) {
	v, err := getVendedor(ctx, u.repo, id)
	if err != nil {
		return entities.Vendedor{}, err
	}
	if cmd.Telefone != nil {
		v.Telefone = strings.TrimSpace(*cmd.Telefone)
	}
	if cmd.MetaMensal != nil {
		if *cmd.MetaMensal < 0 {
			return entities.Vendedor{}, ErrInvalidVendedorMeta
		}
		v.MetaMensal = *cmd.MetaMensal
	}
	return u.repo.Update(ctx, v)
}

func getVendedor(ctx context.Context, repo interfaces.IVendedorRepository, id string) (entities.Vendedor, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Vendedor{}, ErrInvalidVendedorID
	}
	v, err := repo.GetByID(ctx, id)
	if err != nil {
		return entities.Vendedor{}, err
	}
	if v.ID == "" {
		return entities.Vendedor{}, ErrVendedorNotFound
	}
	return v, nil
}
