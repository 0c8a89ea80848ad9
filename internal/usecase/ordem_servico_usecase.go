package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"tractus/internal/domain/entities"
	"tractus/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrOrdemServicoNotFound      = errors.New("ordem de servico not found")
	ErrInvalidOrdemServicoID     = errors.New("invalid ordem de servico id")
	ErrOrdemServicoJaExiste      = errors.New("proposta already has an ordem de servico")
	ErrPropostaNaoAprovada       = errors.New("proposta is not approved")
	ErrInvalidOrdemServicoStatus = errors.New("invalid ordem de servico status")
	ErrTransicaoOrdemInvalida    = errors.New("ordem de servico status transition not allowed")
	ErrOrdemServicoNaoEditavel   = errors.New("ordem de servico can no longer be edited")
	ErrOrdemServicoNaoRemovivel  = errors.New("only ABERTA ordens de servico can be deleted")
	ErrInvalidOrdemServicoValor  = errors.New("valor must be positive")
)

type UpdateOrdemServicoCommand struct {
	Descricao *string
	Valor     *float64
}

type IOrdemServicoUseCase interface {
	CreateFromProposta(ctx context.Context, propostaID string, descricao string) (entities.OrdemServico, error)
	GetByID(ctx context.Context, id string) (entities.OrdemServico, error)
	List(ctx context.Context, filter entities.OrdemServicoFilter) ([]entities.OrdemServico, error)
	Update(ctx context.Context, id string, cmd UpdateOrdemServicoCommand) (entities.OrdemServico, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrdemServicoStatus) (entities.OrdemServico, error)
	Delete(ctx context.Context, id string) error
}

type OrdemServicoUseCase struct {
	repo         interfaces.IOrdemServicoRepository
	propostaRepo interfaces.IPropostaRepository
}

var _ IOrdemServicoUseCase = (*OrdemServicoUseCase)(nil)

func NewOrdemServicoUseCase(repo interfaces.IOrdemServicoRepository, propostaRepo interfaces.IPropostaRepository) *OrdemServicoUseCase {
	return &OrdemServicoUseCase{repo: repo, propostaRepo: propostaRepo}
}

// CreateFromProposta enforces 1 OS per approved proposta.
func (u *OrdemServicoUseCase) CreateFromProposta(ctx context.Context, propostaID string, descricao string) (entities.OrdemServico, error) {
	p, err := getProposta(ctx, u.propostaRepo, propostaID)
	if err != nil {
		return entities.OrdemServico{}, err
	}
	if p.Status != entities.PropostaStatusAprovada {
		return entities.OrdemServico{}, ErrPropostaNaoAprovada
	}

	if existing, err := u.repo.GetByPropostaID(ctx, p.ID); err != nil {
		return entities.OrdemServico{}, err
	} else if existing.ID != "" {
		return entities.OrdemServico{}, ErrOrdemServicoJaExiste
	}

	descricao = strings.TrimSpace(descricao)
	if descricao == "" {
		descricao = p.Titulo
		if p.Descricao != "" {
			descricao += "\n" + p.Descricao
		}
	}

	os := entities.OrdemServico{
		ID:         uuid.NewString(),
		PropostaID: p.ID,
		ClienteID:  p.ClienteID,
		VendedorID: p.VendedorID,
		Descricao:  descricao,
		Valor:      p.ValorTotal,
		Status:     entities.OrdemServicoStatusAberta,
	}
	created, err := u.repo.Create(ctx, os)
	if err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			return entities.OrdemServico{}, ErrOrdemServicoJaExiste
		}
		return entities.OrdemServico{}, err
	}
	zap.L().Info("ordem de servico created", zap.String("scope", "ordem_servico"), zap.String("os_id", created.ID), zap.String("numero", created.Numero), zap.String("proposta_id", p.ID))
	return created, nil
}

func (u *OrdemServicoUseCase) GetByID(ctx context.Context, id string) (entities.OrdemServico, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.OrdemServico{}, ErrInvalidOrdemServicoID
	}
	os, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.OrdemServico{}, err
	}
	if os.ID == "" {
		return entities.OrdemServico{}, ErrOrdemServicoNotFound
	}
	return os, nil
}

func (u *OrdemServicoUseCase) List(ctx context.Context, filter entities.OrdemServicoFilter) ([]entities.OrdemServico, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, ErrInvalidOrdemServicoStatus
	}
	return u.repo.List(ctx, filter)
}

func (u *OrdemServicoUseCase) Update(ctx context.Context, id string, cmd UpdateOrdemServicoCommand) (entities.OrdemServico, error) {
	os, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.OrdemServico{}, err
	}
	if os.Status != entities.OrdemServicoStatusAberta && os.Status != entities.OrdemServicoStatusEmExecucao {
		return entities.OrdemServico{}, ErrOrdemServicoNaoEditavel
	}
	if cmd.Descricao != nil {
		os.Descricao = strings.TrimSpace(*cmd.Descricao)
	}
	if cmd.Valor != nil {
		if *cmd.Valor <= 0 {
			return entities.OrdemServico{}, ErrInvalidOrdemServicoValor
		}
		os.Valor = *cmd.Valor
	}
	return u.repo.Update(ctx, os)
}

// UpdateStatus moves the order one step. FATURADA also emits the Venda.
func (u *OrdemServicoUseCase) UpdateStatus(ctx context.Context, id string, status entities.OrdemServicoStatus) (entities.OrdemServico, error) {
	if !status.Valid() {
		return entities.OrdemServico{}, ErrInvalidOrdemServicoStatus
	}
	os, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.OrdemServico{}, err
	}
	if !os.Status.CanTransitionTo(status) {
		return entities.OrdemServico{}, fmt.Errorf("%w: %s -> %s", ErrTransicaoOrdemInvalida, os.Status, status)
	}

	now := time.Now().UTC()
	from := os.Status
	os.Status = status

	switch status {
	case entities.OrdemServicoStatusConcluida:
		os.DataConclusao = &now
	case entities.OrdemServicoStatusFaturada:
		os.DataFaturamento = &now
		venda := entities.Venda{
			ID:              uuid.NewString(),
			OrdemServicoID:  os.ID,
			ClienteID:       os.ClienteID,
			VendedorID:      os.VendedorID,
			Valor:           os.Valor,
			DataVenda:       now,
			StatusPagamento: entities.PagamentoStatusPendente,
		}
		faturada, v, err := u.repo.Faturar(ctx, os, venda)
		if err != nil {
			if errors.Is(err, interfaces.ErrConflict) {
				return entities.OrdemServico{}, fmt.Errorf("%w: venda already generated", ErrTransicaoOrdemInvalida)
			}
			return entities.OrdemServico{}, err
		}
		zap.L().Info("ordem de servico billed", zap.String("scope", "ordem_servico"), zap.String("os_id", faturada.ID), zap.String("venda_id", v.ID), zap.Float64("valor", v.Valor))
		return faturada, nil
	}

	updated, err := u.repo.Update(ctx, os)
	if err != nil {
		return entities.OrdemServico{}, err
	}
	zap.L().Info("ordem de servico status changed", zap.String("scope", "ordem_servico"), zap.String("os_id", updated.ID), zap.String("from", string(from)), zap.String("to", string(status)))
	return updated, nil
}

func (u *OrdemServicoUseCase) Delete(ctx context.Context, id string) error {
	os, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if os.Status != entities.OrdemServicoStatusAberta {
		return ErrOrdemServicoNaoRemovivel
	}
	return u.repo.Delete(ctx, os.ID)
}
