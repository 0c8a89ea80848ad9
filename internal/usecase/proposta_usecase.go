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
)

var (
	ErrPropostaNotFound          = errors.New("proposta not found")
	ErrInvalidPropostaID         = errors.New("invalid proposta id")
	ErrInvalidPropostaTitulo     = errors.New("invalid titulo")
	ErrInvalidPropostaItem       = errors.New("invalid proposta item")
	ErrPropostaSemItens          = errors.New("proposta requires at least one item with positive total")
	ErrInvalidPropostaStatus     = errors.New("invalid proposta status")
	ErrTransicaoPropostaInvalida = errors.New("proposta status transition not allowed")
	ErrPropostaNaoEditavel       = errors.New("proposta can no longer be edited")
	ErrPropostaAprovada          = errors.New("approved proposta cannot be deleted")
)

type IPropostaUseCase interface {
	Create(ctx context.Context, p entities.Proposta) (entities.Proposta, error)
	GetByID(ctx context.Context, id string) (entities.Proposta, error)
	List(ctx context.Context, filter entities.PropostaFilter) ([]entities.Proposta, error)
	Update(ctx context.Context, id string, p entities.Proposta) (entities.Proposta, error)
	UpdateStatus(ctx context.Context, id string, status entities.PropostaStatus) (entities.Proposta, error)
	Delete(ctx context.Context, id string) error
}

type PropostaUseCase struct {
	repo        interfaces.IPropostaRepository
	clienteRepo interfaces.IClienteRepository
}

var _ IPropostaUseCase = (*PropostaUseCase)(nil)

func NewPropostaUseCase(repo interfaces.IPropostaRepository, clienteRepo interfaces.IClienteRepository) *PropostaUseCase {
	return &PropostaUseCase{repo: repo, clienteRepo: clienteRepo}
}

func (u *PropostaUseCase) Create(ctx context.Context, p entities.Proposta) (entities.Proposta, error) {
	p.Titulo = strings.TrimSpace(p.Titulo)
	if p.Titulo == "" {
		return entities.Proposta{}, ErrInvalidPropostaTitulo
	}
	c, err := getCliente(ctx, u.clienteRepo, p.ClienteID)
	if err != nil {
		return entities.Proposta{}, err
	}

	p.ID = uuid.NewString()
	if err := normalizeItens(&p); err != nil {
		return entities.Proposta{}, err
	}
	p.ClienteID = c.ID
	if strings.TrimSpace(p.VendedorID) == "" {
		p.VendedorID = c.VendedorID
	}
	p.Descricao = strings.TrimSpace(p.Descricao)
	p.Status = entities.PropostaStatusRascunho

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Proposta{}, err
	}
	zap.L().Info("proposta created", zap.String("scope", "proposta"), zap.String("proposta_id", created.ID), zap.String("numero", created.Numero), zap.Float64("valor_total", created.ValorTotal))
	return created, nil
}

func (u *PropostaUseCase) GetByID(ctx context.Context, id string) (entities.Proposta, error) {
	return getProposta(ctx, u.repo, id)
}

func (u *PropostaUseCase) List(ctx context.Context, filter entities.PropostaFilter) ([]entities.Proposta, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, ErrInvalidPropostaStatus
	}
	return u.repo.List(ctx, filter)
}

func (u *PropostaUseCase) Update(ctx context.Context, id string, p entities.Proposta) (entities.Proposta, error) {
	existing, err := getProposta(ctx, u.repo, id)
	if err != nil {
		return entities.Proposta{}, err
	}
	if !existing.Status.Editable() {
		return entities.Proposta{}, ErrPropostaNaoEditavel
	}

	titulo := strings.TrimSpace(p.Titulo)
	if titulo == "" {
		return entities.Proposta{}, ErrInvalidPropostaTitulo
	}
	existing.Titulo = titulo
	existing.Descricao = strings.TrimSpace(p.Descricao)
	existing.Validade = p.Validade
	existing.Itens = p.Itens
	if err := normalizeItens(&existing); err != nil {
		return entities.Proposta{}, err
	}
	return u.repo.Update(ctx, existing)
}

func (u *PropostaUseCase) UpdateStatus(ctx context.Context, id string, status entities.PropostaStatus) (entities.Proposta, error) {
	if !status.Valid() {
		return entities.Proposta{}, ErrInvalidPropostaStatus
	}
	existing, err := getProposta(ctx, u.repo, id)
	if err != nil {
		return entities.Proposta{}, err
	}
	if !existing.Status.CanTransitionTo(status) {
		return entities.Proposta{}, fmt.Errorf("%w: %s -> %s", ErrTransicaoPropostaInvalida, existing.Status, status)
	}

	updated, err := u.repo.UpdateStatus(ctx, existing.ID, status)
	if err != nil {
		return entities.Proposta{}, err
	}
	if updated.ID == "" {
		return entities.Proposta{}, ErrPropostaNotFound
	}
	zap.L().Info("proposta status changed", zap.String("scope", "proposta"), zap.String("proposta_id", updated.ID), zap.String("from", string(existing.Status)), zap.String("to", string(status)))
	return updated, nil
}

func (u *PropostaUseCase) Delete(ctx context.Context, id string) error {
	existing, err := getProposta(ctx, u.repo, id)
	if err != nil {
		return err
	}
	if existing.Status == entities.PropostaStatusAprovada {
		return ErrPropostaAprovada
	}
	return u.repo.Delete(ctx, existing.ID)
}

// normalizeItens validates every line, renumbers Ordem and recomputes ValorTotal.
func normalizeItens(p *entities.Proposta) error {
	itens := make([]entities.PropostaItem, 0, len(p.Itens))
	for i, it := range p.Itens {
		it.Descricao = strings.TrimSpace(it.Descricao)
		if it.Descricao == "" || it.Quantidade <= 0 || it.ValorUnitario < 0 {
			return fmt.Errorf("%w: linha %d", ErrInvalidPropostaItem, i+1)
		}
		it.ID = uuid.NewString()
		it.PropostaID = p.ID
		it.Ordem = i + 1
		itens = append(itens, it)
	}
	total := entities.CalcularTotal(itens)
	if total <= 0 {
		return ErrPropostaSemItens
	}
	p.Itens = itens
	p.ValorTotal = total
	return nil
}

func getProposta(ctx context.Context, repo interfaces.IPropostaRepository, id string) (entities.Proposta, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Proposta{}, ErrInvalidPropostaID
	}
	p, err := repo.GetByID(ctx, id)
	if err != nil {
		return entities.Proposta{}, err
	}
	if p.ID == "" {
		return entities.Proposta{}, ErrPropostaNotFound
	}
	return p, nil
}
