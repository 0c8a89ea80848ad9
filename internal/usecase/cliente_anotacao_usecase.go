package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"tractus/internal/domain/entities"
	"tractus/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrAnotacaoNotFound    = errors.New("anotacao not found")
	ErrInvalidAnotacaoID   = errors.New("invalid anotacao id")
	ErrClienteSemAnotacoes = errors.New("cliente has no anotacoes")
)

type ResumoAnotacoes struct {
	Resumo      string
	GeradoPorIA bool
	Quantidade  int
}

type IClienteAnotacaoUseCase interface {
	Create(ctx context.Context, clienteID string, autorID string, texto string) (entities.ClienteAnotacao, error)
	List(ctx context.Context, clienteID string) ([]entities.ClienteAnotacao, error)
	Delete(ctx context.Context, clienteID string, id string) error
	Resumir(ctx context.Context, clienteID string) (ResumoAnotacoes, error)
}

type ClienteAnotacaoUseCase struct {
	repo        interfaces.IClienteAnotacaoRepository
	clienteRepo interfaces.IClienteRepository
	assistant   interfaces.ITextAssistant
}

var _ IClienteAnotacaoUseCase = (*ClienteAnotacaoUseCase)(nil)

func NewClienteAnotacaoUseCase(repo interfaces.IClienteAnotacaoRepository, clienteRepo interfaces.IClienteRepository, assistant interfaces.ITextAssistant) *ClienteAnotacaoUseCase {
	return &ClienteAnotacaoUseCase{repo: repo, clienteRepo: clienteRepo, assistant: assistant}
}

func (u *ClienteAnotacaoUseCase) Create(ctx context.Context, clienteID string, autorID string, texto string) (entities.ClienteAnotacao, error) {
	if err := validateTexto(texto); err != nil {
		return entities.ClienteAnotacao{}, err
	}
	c, err := getCliente(ctx, u.clienteRepo, clienteID)
	if err != nil {
		return entities.ClienteAnotacao{}, err
	}

	a := entities.ClienteAnotacao{
		ID:        uuid.NewString(),
		ClienteID: c.ID,
		AutorID:   strings.TrimSpace(autorID),
		Texto:     strings.TrimSpace(texto),
		CreatedAt: time.Now().UTC(),
	}
	return u.repo.Create(ctx, a)
}

func (u *ClienteAnotacaoUseCase) List(ctx context.Context, clienteID string) ([]entities.ClienteAnotacao, error) {
	c, err := getCliente(ctx, u.clienteRepo, clienteID)
	if err != nil {
		return nil, err
	}
	return u.repo.ListByClienteID(ctx, c.ID)
}

func (u *ClienteAnotacaoUseCase) Delete(ctx context.Context, clienteID string, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidAnotacaoID
	}
	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if a.ID == "" || a.ClienteID != strings.TrimSpace(clienteID) {
		return ErrAnotacaoNotFound
	}
	return u.repo.Delete(ctx, a.ID)
}

func (u *ClienteAnotacaoUseCase) Resumir(ctx context.Context, clienteID string) (ResumoAnotacoes, error) {
	notas, err := u.List(ctx, clienteID)
	if err != nil {
		return ResumoAnotacoes{}, err
	}
	if len(notas) == 0 {
		return ResumoAnotacoes{}, ErrClienteSemAnotacoes
	}

	textos := make([]string, 0, len(notas))
	for _, n := range notas {
		textos = append(textos, n.Texto)
	}
	resumo, ia := resumirComFallback(ctx, u.assistant, textos)
	return ResumoAnotacoes{Resumo: resumo, GeradoPorIA: ia, Quantidade: len(notas)}, nil
}
