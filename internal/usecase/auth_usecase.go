package usecase

import (
	"context"
	"errors"
	"strings"
	"time"
	"tractus/internal/domain/entities"
	"tractus/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      entities.User
}

type IAuthUseCase interface {
	Login(ctx context.Context, email string, senha string) (LoginResult, error)
	Me(ctx context.Context, userID string) (entities.User, error)
}

type AuthUseCase struct {
	repo   interfaces.IUserRepository
	tokens interfaces.ITokenIssuer
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(repo interfaces.IUserRepository, tokens interfaces.ITokenIssuer) *AuthUseCase {
	return &AuthUseCase{repo: repo, tokens: tokens}
}

// Login answers ErrInvalidCredentials for unknown, inactive or wrong-password users alike.
func (u *AuthUseCase) Login(ctx context.Context, email string, senha string) (LoginResult, error) {
	email = normalizeEmail(email)
	if email == "" || senha == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	user, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return LoginResult{}, err
	}
	if user.ID == "" || !user.Ativo {
		zap.L().Warn("login rejected", zap.String("scope", "auth"), zap.String("email", email))
		return LoginResult{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.SenhaHash), []byte(senha)); err != nil {
		zap.L().Warn("login rejected", zap.String("scope", "auth"), zap.String("email", email))
		return LoginResult{}, ErrInvalidCredentials
	}

	token, exp, err := u.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{Token: token, ExpiresAt: exp, User: user}, nil
}

func (u *AuthUseCase) Me(ctx context.Context, userID string) (entities.User, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.User{}, ErrInvalidUserID
	}
	user, err := u.repo.GetByID(ctx, userID)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}
