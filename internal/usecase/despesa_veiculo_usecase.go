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
	ErrDespesaNotFound          = errors.New("despesa not found")
	ErrInvalidDespesaID         = errors.New("invalid despesa id")
	ErrInvalidDespesaData       = errors.New("data is required")
	ErrInvalidDespesaTipo       = errors.New("invalid despesa tipo")
	ErrInvalidDespesaValor      = errors.New("valor must be greater than zero")
	ErrInvalidDespesaOdometro   = errors.New("odometro must not be negative")
	ErrInvalidDespesaStatus     = errors.New("invalid despesa status")
	ErrInvalidDespesaMes        = errors.New("mes must be YYYY-MM")
	ErrInvalidDespesaAno        = errors.New("invalid ano")
	ErrOdometroInferior         = errors.New("odometro lower than the last reading")
	ErrDespesaNaoPendente       = errors.New("despesa is no longer pending")
	ErrTransicaoDespesaInvalida = errors.New("despesa status transition not allowed")
	ErrMotivoObrigatorio        = errors.New("motivo is required")
)

type IDespesaVeiculoUseCase interface {
	Create(ctx context.Context, d entities.DespesaVeiculo) (entities.DespesaVeiculo, error)
	GetByID(ctx context.Context, id string) (entities.DespesaVeiculo, error)
	List(ctx context.Context, filter entities.DespesaFilter) ([]entities.DespesaVeiculo, error)
	Update(ctx context.Context, id string, d entities.DespesaVeiculo) (entities.DespesaVeiculo, error)
	UpdateStatus(ctx context.Context, id string, status entities.DespesaStatus, motivo, aprovadorID string) (entities.DespesaVeiculo, error)
	Delete(ctx context.Context, id string) error
	Resumo(ctx context.Context, filter entities.ResumoDespesaFilter) ([]entities.ResumoDespesa, error)
}

type DespesaVeiculoUseCase struct {
	repo         interfaces.IDespesaVeiculoRepository
	vendedorRepo interfaces.IVendedorRepository
}

var _ IDespesaVeiculoUseCase = (*DespesaVeiculoUseCase)(nil)

func NewDespesaVeiculoUseCase(repo interfaces.IDespesaVeiculoRepository, vendedorRepo interfaces.IVendedorRepository) *DespesaVeiculoUseCase {
	return &DespesaVeiculoUseCase{repo: repo, vendedorRepo: vendedorRepo}
}

func (u *DespesaVeiculoUseCase) Create(ctx context.Context, d entities.DespesaVeiculo) (entities.DespesaVeiculo, error) {
	if err := validateDespesa(&d); err != nil {
		return entities.DespesaVeiculo{}, err
	}
	vendedor, err := getVendedor(ctx, u.vendedorRepo, d.VendedorID)
	if err != nil {
		return entities.DespesaVeiculo{}, err
	}
	d.VendedorID = vendedor.ID
	if err := u.checkOdometro(ctx, d.VendedorID, "", d.Odometro); err != nil {
		return entities.DespesaVeiculo{}, err
	}

	d.ID = uuid.NewString()
	d.Status = entities.DespesaStatusPendente
	d.MotivoReprovacao = ""
	d.AprovadoPor = ""

	created, err := u.repo.Create(ctx, d)
	if err != nil {
		return entities.DespesaVeiculo{}, err
	}
	zap.L().Info("despesa registered", zap.String("scope", "despesa"), zap.String("despesa_id", created.ID), zap.String("vendedor_id", created.VendedorID), zap.Int64("odometro", created.Odometro))
	return created, nil
}

func (u *DespesaVeiculoUseCase) GetByID(ctx context.Context, id string) (entities.DespesaVeiculo, error) {
	return u.get(ctx, id)
}

func (u *DespesaVeiculoUseCase) List(ctx context.Context, filter entities.DespesaFilter) ([]entities.DespesaVeiculo, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, ErrInvalidDespesaStatus
	}
	if filter.Tipo != "" && !filter.Tipo.Valid() {
		return nil, ErrInvalidDespesaTipo
	}
	if filter.Mes != "" && !validMes(filter.Mes) {
		return nil, ErrInvalidDespesaMes
	}
	return u.repo.List(ctx, filter)
}

func (u *DespesaVeiculoUseCase) Update(ctx context.Context, id string, d entities.DespesaVeiculo) (entities.DespesaVeiculo, error) {
	existing, err := u.get(ctx, id)
	if err != nil {
		return entities.DespesaVeiculo{}, err
	}
	if existing.Status != entities.DespesaStatusPendente {
		return entities.DespesaVeiculo{}, ErrDespesaNaoPendente
	}
	d.VendedorID = existing.VendedorID
	if err := validateDespesa(&d); err != nil {
		return entities.DespesaVeiculo{}, err
	}
	if err := u.checkOdometro(ctx, existing.VendedorID, existing.ID, d.Odometro); err != nil {
		return entities.DespesaVeiculo{}, err
	}

	existing.Data = d.Data
	existing.Tipo = d.Tipo
	existing.Valor = d.Valor
	existing.Odometro = d.Odometro
	existing.Descricao = d.Descricao
	return u.save(ctx, existing)
}

// save maps a lost race on the PENDENTE guard to ErrDespesaNaoPendente.
func (u *DespesaVeiculoUseCase) save(ctx context.Context, d entities.DespesaVeiculo) (entities.DespesaVeiculo, error) {
	updated, err := u.repo.Update(ctx, d)
	if errors.Is(err, interfaces.ErrConflict) {
		return entities.DespesaVeiculo{}, ErrDespesaNaoPendente
	}
	if err != nil {
		return entities.DespesaVeiculo{}, err
	}
	if updated.ID == "" {
		return entities.DespesaVeiculo{}, ErrDespesaNotFound
	}
	return updated, nil
}

// UpdateStatus approves or rejects a pending expense.
func (u *DespesaVeiculoUseCase) UpdateStatus(ctx context.Context, id string, status entities.DespesaStatus, motivo, aprovadorID string) (entities.DespesaVeiculo, error) {
	if !status.Valid() {
		return entities.DespesaVeiculo{}, ErrInvalidDespesaStatus
	}
	if status == entities.DespesaStatusPendente {
		return entities.DespesaVeiculo{}, ErrTransicaoDespesaInvalida
	}
	motivo = strings.TrimSpace(motivo)
	if status == entities.DespesaStatusReprovada && motivo == "" {
		return entities.DespesaVeiculo{}, ErrMotivoObrigatorio
	}
	existing, err := u.get(ctx, id)
	if err != nil {
		return entities.DespesaVeiculo{}, err
	}
	if existing.Status != entities.DespesaStatusPendente {
		return entities.DespesaVeiculo{}, fmt.Errorf("%w: %s -> %s", ErrTransicaoDespesaInvalida, existing.Status, status)
	}

	existing.Status = status
	existing.AprovadoPor = aprovadorID
	if status == entities.DespesaStatusReprovada {
		existing.MotivoReprovacao = motivo
	}
	updated, err := u.save(ctx, existing)
	if err != nil {
		return entities.DespesaVeiculo{}, err
	}
	zap.L().Info("despesa reviewed", zap.String("scope", "despesa"), zap.String("despesa_id", updated.ID), zap.String("status", string(status)), zap.String("aprovador_id", aprovadorID))
	return updated, nil
}

func (u *DespesaVeiculoUseCase) Delete(ctx context.Context, id string) error {
	existing, err := u.get(ctx, id)
	if err != nil {
		return err
	}
	if existing.Status != entities.DespesaStatusPendente {
		return ErrDespesaNaoPendente
	}
	if err := u.repo.Delete(ctx, existing.ID); errors.Is(err, interfaces.ErrConflict) {
		return ErrDespesaNaoPendente
	} else if err != nil {
		return err
	}
	return nil
}

// Resumo groups expenses per month and type.
func (u *DespesaVeiculoUseCase) Resumo(ctx context.Context, filter entities.ResumoDespesaFilter) ([]entities.ResumoDespesa, error) {
	if filter.Ano != 0 && (filter.Ano < 2000 || filter.Ano > 9999) {
		return nil, ErrInvalidDespesaAno
	}
	return u.repo.Resumo(ctx, filter)
}

func (u *DespesaVeiculoUseCase) checkOdometro(ctx context.Context, vendedorID, excludeID string, odometro int64) error {
	last, err := u.repo.MaxOdometro(ctx, vendedorID, excludeID)
	if err != nil {
		return err
	}
	if odometro < last {
		return fmt.Errorf("%w: ultimo registro %d km", ErrOdometroInferior, last)
	}
	return nil
}

func (u *DespesaVeiculoUseCase) get(ctx context.Context, id string) (entities.DespesaVeiculo, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.DespesaVeiculo{}, ErrInvalidDespesaID
	}
	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.DespesaVeiculo{}, err
	}
	if d.ID == "" {
		return entities.DespesaVeiculo{}, ErrDespesaNotFound
	}
	return d, nil
}

func validateDespesa(d *entities.DespesaVeiculo) error {
	if strings.TrimSpace(d.VendedorID) == "" {
		return ErrInvalidVendedorID
	}
	if d.Data.IsZero() {
		return ErrInvalidDespesaData
	}
	if !d.Tipo.Valid() {
		return ErrInvalidDespesaTipo
	}
	if d.Valor <= 0 {
		return ErrInvalidDespesaValor
	}
	if d.Odometro < 0 {
		return ErrInvalidDespesaOdometro
	}
	d.Descricao = strings.TrimSpace(d.Descricao)
	return nil
}
