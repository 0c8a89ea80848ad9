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
	ErrVisitaNotFound               = errors.New("visita not found")
	ErrInvalidVisitaID              = errors.New("invalid visita id")
	ErrInvalidVisitaData            = errors.New("data_agendada is required")
	ErrInvalidVisitaStatus          = errors.New("invalid visita status")
	ErrTransicaoVisitaInvalida      = errors.New("visita status transition not allowed")
	ErrVisitaRealizadaNaoCancelavel = errors.New("realized visita cannot be cancelled")
	ErrVisitaFinalizada             = errors.New("visita is finished and can no longer be edited")
	ErrVisitaRealizadaNaoRemovivel  = errors.New("realized visita cannot be deleted")
	ErrVisitaPossuiLaudo            = errors.New("visita has an inspection report")
)

type IVisitaTecnicaUseCase interface {
	Create(ctx context.Context, v entities.VisitaTecnica) (entities.VisitaTecnica, error)
	GetByID(ctx context.Context, id string) (entities.VisitaTecnica, error)
	List(ctx context.Context, filter entities.VisitaFilter) ([]entities.VisitaTecnica, error)
	Update(ctx context.Context, id string, v entities.VisitaTecnica) (entities.VisitaTecnica, error)
	UpdateStatus(ctx context.Context, id string, status entities.VisitaStatus, motivo string) (entities.VisitaTecnica, error)
	Delete(ctx context.Context, id string) error
}

type VisitaTecnicaUseCase struct {
	repo        interfaces.IVisitaTecnicaRepository
	clienteRepo interfaces.IClienteRepository
	laudoRepo   interfaces.ILaudoRepository
}

var _ IVisitaTecnicaUseCase = (*VisitaTecnicaUseCase)(nil)

func NewVisitaTecnicaUseCase(repo interfaces.IVisitaTecnicaRepository, clienteRepo interfaces.IClienteRepository, laudoRepo interfaces.ILaudoRepository) *VisitaTecnicaUseCase {
	return &VisitaTecnicaUseCase{repo: repo, clienteRepo: clienteRepo, laudoRepo: laudoRepo}
}

func (u *VisitaTecnicaUseCase) Create(ctx context.Context, v entities.VisitaTecnica) (entities.VisitaTecnica, error) {
	if v.DataAgendada.IsZero() {
		return entities.VisitaTecnica{}, ErrInvalidVisitaData
	}
	c, err := getCliente(ctx, u.clienteRepo, v.ClienteID)
	if err != nil {
		return entities.VisitaTecnica{}, err
	}

	v.ID = uuid.NewString()
	v.Numero = nil
	v.ClienteID = c.ID
	if strings.TrimSpace(v.VendedorID) == "" {
		v.VendedorID = c.VendedorID
	}
	v.Endereco = strings.TrimSpace(v.Endereco)
	if v.Endereco == "" {
		v.Endereco = c.Endereco
	}
	v.Objetivo = strings.TrimSpace(v.Objetivo)
	v.Observacoes = strings.TrimSpace(v.Observacoes)
	v.Status = entities.VisitaStatusPendente
	v.MotivoCancelamento = ""

	created, err := u.repo.Create(ctx, v)
	if err != nil {
		return entities.VisitaTecnica{}, err
	}
	zap.L().Info("visita scheduled", zap.String("scope", "visita"), zap.String("visita_id", created.ID), zap.Time("data_agendada", created.DataAgendada))
	return created, nil
}

func (u *VisitaTecnicaUseCase) GetByID(ctx context.Context, id string) (entities.VisitaTecnica, error) {
	return getVisita(ctx, u.repo, id)
}

func (u *VisitaTecnicaUseCase) List(ctx context.Context, filter entities.VisitaFilter) ([]entities.VisitaTecnica, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, ErrInvalidVisitaStatus
	}
	return u.repo.List(ctx, filter)
}

func (u *VisitaTecnicaUseCase) Update(ctx context.Context, id string, v entities.VisitaTecnica) (entities.VisitaTecnica, error) {
	existing, err := getVisita(ctx, u.repo, id)
	if err != nil {
		return entities.VisitaTecnica{}, err
	}
	if existing.Status.Terminal() {
		return entities.VisitaTecnica{}, ErrVisitaFinalizada
	}
	if v.DataAgendada.IsZero() {
		return entities.VisitaTecnica{}, ErrInvalidVisitaData
	}

	existing.DataAgendada = v.DataAgendada
	existing.TecnicoID = strings.TrimSpace(v.TecnicoID)
	if vendedor := strings.TrimSpace(v.VendedorID); vendedor != "" {
		existing.VendedorID = vendedor
	}
	if endereco := strings.TrimSpace(v.Endereco); endereco != "" {
		existing.Endereco = endereco
	}
	existing.Objetivo = strings.TrimSpace(v.Objetivo)
	existing.Observacoes = strings.TrimSpace(v.Observacoes)
	return u.repo.Update(ctx, existing)
}

func (u *VisitaTecnicaUseCase) UpdateStatus(ctx context.Context, id string, status entities.VisitaStatus, motivo string) (entities.VisitaTecnica, error) {
	if !status.Valid() {
		return entities.VisitaTecnica{}, ErrInvalidVisitaStatus
	}
	existing, err := getVisita(ctx, u.repo, id)
	if err != nil {
		return entities.VisitaTecnica{}, err
	}
	if existing.Status == entities.VisitaStatusRealizada && status == entities.VisitaStatusCancelada {
		return entities.VisitaTecnica{}, ErrVisitaRealizadaNaoCancelavel
	}
	if !existing.Status.CanTransitionTo(status) {
		return entities.VisitaTecnica{}, fmt.Errorf("%w: %s -> %s", ErrTransicaoVisitaInvalida, existing.Status, status)
	}

	from := existing.Status
	existing.Status = status
	if status == entities.VisitaStatusCancelada {
		existing.MotivoCancelamento = strings.TrimSpace(motivo)
	}
	updated, err := u.repo.Update(ctx, existing)
	if err != nil {
		return entities.VisitaTecnica{}, err
	}
	zap.L().Info("visita status changed", zap.String("scope", "visita"), zap.String("visita_id", updated.ID), zap.String("from", string(from)), zap.String("to", string(status)))
	return updated, nil
}

func (u *VisitaTecnicaUseCase) Delete(ctx context.Context, id string) error {
	existing, err := getVisita(ctx, u.repo, id)
	if err != nil {
		return err
	}
	if existing.Status == entities.VisitaStatusRealizada {
		return ErrVisitaRealizadaNaoRemovivel
	}
	laudo, err := u.laudoRepo.GetByVisitaID(ctx, existing.ID)
	if err != nil {
		return err
	}
	if laudo.ID != "" {
		return ErrVisitaPossuiLaudo
	}
	return u.repo.Delete(ctx, existing.ID)
}

func getVisita(ctx context.Context, repo interfaces.IVisitaTecnicaRepository, id string) (entities.VisitaTecnica, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.VisitaTecnica{}, ErrInvalidVisitaID
	}
	v, err := repo.GetByID(ctx, id)
	if err != nil {
		return entities.VisitaTecnica{}, err
	}
	if v.ID == "" {
		return entities.VisitaTecnica{}, ErrVisitaNotFound
	}
	return v, nil
}
