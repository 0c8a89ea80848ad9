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
	ErrLaudoNotFound            = errors.New("laudo not found")
	ErrInvalidLaudoID           = errors.New("invalid laudo id")
	ErrInvalidLaudoEquipamento  = errors.New("equipamento is required")
	ErrInvalidLaudoComponente   = errors.New("invalid componente")
	ErrInvalidLaudoStatus       = errors.New("invalid laudo status")
	ErrVisitaCancelada          = errors.New("visita is cancelled")
	ErrLaudoJaExiste            = errors.New("visita already has an inspection report")
	ErrLaudoEnviado             = errors.New("laudo already sent and can no longer be changed")
	ErrLaudoJaEnviado           = errors.New("laudo already sent")
	ErrInvalidLaudoHorimetro    = errors.New("horimetro must not be negative")
	ErrLaudoVisitaNaoEncontrada = errors.New("visita of laudo not found")
)

type ILaudoUseCase interface {
	Create(ctx context.Context, l entities.LaudoInspecao) (entities.LaudoInspecao, error)
	GetByID(ctx context.Context, id string) (entities.LaudoInspecao, error)
	List(ctx context.Context, filter entities.LaudoFilter) ([]entities.LaudoInspecao, error)
	Update(ctx context.Context, id string, l entities.LaudoInspecao) (entities.LaudoInspecao, error)
	Delete(ctx context.Context, id string) error
	Enviar(ctx context.Context, id string) (entities.LaudoInspecao, error)
}

type LaudoUseCase struct {
	repo       interfaces.ILaudoRepository
	visitaRepo interfaces.IVisitaTecnicaRepository
}

var _ ILaudoUseCase = (*LaudoUseCase)(nil)

func NewLaudoUseCase(repo interfaces.ILaudoRepository, visitaRepo interfaces.IVisitaTecnicaRepository) *LaudoUseCase {
	return &LaudoUseCase{repo: repo, visitaRepo: visitaRepo}
}

// Create opens the inspection report of a visit and numbers the visit on first use.
func (u *LaudoUseCase) Create(ctx context.Context, l entities.LaudoInspecao) (entities.LaudoInspecao, error) {
	visita, err := getVisita(ctx, u.visitaRepo, l.VisitaID)
	if err != nil {
		return entities.LaudoInspecao{}, err
	}
	if visita.Status == entities.VisitaStatusCancelada {
		return entities.LaudoInspecao{}, ErrVisitaCancelada
	}
	existing, err := u.repo.GetByVisitaID(ctx, visita.ID)
	if err != nil {
		return entities.LaudoInspecao{}, err
	}
	if existing.ID != "" {
		return entities.LaudoInspecao{}, ErrLaudoJaExiste
	}

	l.ID = uuid.NewString()
	if err := normalizeLaudo(&l); err != nil {
		return entities.LaudoInspecao{}, err
	}
	l.VisitaID = visita.ID
	l.ClienteID = visita.ClienteID
	l.Status = entities.LaudoStatusRascunho
	l.DataEnvio = nil

	created, err := u.repo.CreateForVisita(ctx, l, time.Now())
	if err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			return entities.LaudoInspecao{}, ErrLaudoJaExiste
		}
		return entities.LaudoInspecao{}, err
	}
	zap.L().Info("laudo created", zap.String("scope", "laudo"), zap.String("laudo_id", created.ID), zap.String("visita_id", created.VisitaID), zap.String("numero", created.Numero))
	return created, nil
}

func (u *LaudoUseCase) GetByID(ctx context.Context, id string) (entities.LaudoInspecao, error) {
	return getLaudo(ctx, u.repo, id)
}

func (u *LaudoUseCase) List(ctx context.Context, filter entities.LaudoFilter) ([]entities.LaudoInspecao, error) {
	if filter.Status != "" && filter.Status != entities.LaudoStatusRascunho && filter.Status != entities.LaudoStatusEnviado {
		return nil, ErrInvalidLaudoStatus
	}
	return u.repo.List(ctx, filter)
}

// Update replaces the header fields and the whole component list.
func (u *LaudoUseCase) Update(ctx context.Context, id string, l entities.LaudoInspecao) (entities.LaudoInspecao, error) {
	existing, err := getLaudo(ctx, u.repo, id)
	if err != nil {
		return entities.LaudoInspecao{}, err
	}
	if existing.Enviado() {
		return entities.LaudoInspecao{}, ErrLaudoEnviado
	}

	l.ID = existing.ID
	if err := normalizeLaudo(&l); err != nil {
		return entities.LaudoInspecao{}, err
	}
	existing.Equipamento = l.Equipamento
	existing.Modelo = l.Modelo
	existing.NumeroSerie = l.NumeroSerie
	existing.Horimetro = l.Horimetro
	existing.Conclusao = l.Conclusao
	existing.Recomendacoes = l.Recomendacoes
	existing.Componentes = l.Componentes
	updated, err := u.repo.Update(ctx, existing)
	if errors.Is(err, interfaces.ErrConflict) {
		return entities.LaudoInspecao{}, ErrLaudoEnviado
	}
	if err != nil {
		return entities.LaudoInspecao{}, err
	}
	if updated.ID == "" {
		return entities.LaudoInspecao{}, ErrLaudoNotFound
	}
	return updated, nil
}

func (u *LaudoUseCase) Delete(ctx context.Context, id string) error {
	existing, err := getLaudo(ctx, u.repo, id)
	if err != nil {
		return err
	}
	if existing.Enviado() {
		return ErrLaudoEnviado
	}
	if err := u.repo.Delete(ctx, existing.ID); errors.Is(err, interfaces.ErrConflict) {
		return ErrLaudoEnviado
	} else if err != nil {
		return err
	}
	return nil
}

// Enviar submits the report. The parent visit becomes REALIZADA in the same write.
func (u *LaudoUseCase) Enviar(ctx context.Context, id string) (entities.LaudoInspecao, error) {
	existing, err := getLaudo(ctx, u.repo, id)
	if err != nil {
		return entities.LaudoInspecao{}, err
	}
	if existing.Enviado() {
		return entities.LaudoInspecao{}, ErrLaudoJaEnviado
	}
	visita, err := u.visitaRepo.GetByID(ctx, existing.VisitaID)
	if err != nil {
		return entities.LaudoInspecao{}, err
	}
	if visita.ID == "" {
		return entities.LaudoInspecao{}, ErrLaudoVisitaNaoEncontrada
	}
	if visita.Status == entities.VisitaStatusCancelada {
		return entities.LaudoInspecao{}, ErrVisitaCancelada
	}

	sent, err := u.repo.Enviar(ctx, existing.ID, time.Now())
	if err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			return entities.LaudoInspecao{}, ErrLaudoJaEnviado
		}
		return entities.LaudoInspecao{}, err
	}
	if sent.ID == "" {
		return entities.LaudoInspecao{}, ErrLaudoNotFound
	}
	zap.L().Info("laudo sent", zap.String("scope", "laudo"), zap.String("laudo_id", sent.ID), zap.String("visita_id", sent.VisitaID))
	return sent, nil
}

func normalizeLaudo(l *entities.LaudoInspecao) error {
	l.Equipamento = strings.TrimSpace(l.Equipamento)
	if l.Equipamento == "" {
		return ErrInvalidLaudoEquipamento
	}
	if l.Horimetro < 0 {
		return ErrInvalidLaudoHorimetro
	}
	l.Modelo = strings.TrimSpace(l.Modelo)
	l.NumeroSerie = strings.TrimSpace(l.NumeroSerie)
	l.Conclusao = strings.TrimSpace(l.Conclusao)
	l.Recomendacoes = strings.TrimSpace(l.Recomendacoes)

	componentes := make([]entities.ComponenteInspecao, 0, len(l.Componentes))
	for i, c := range l.Componentes {
		c.Nome = strings.TrimSpace(c.Nome)
		if c.Nome == "" || !c.Condicao.Valid() {
			return fmt.Errorf("%w: linha %d", ErrInvalidLaudoComponente, i+1)
		}
		c.ID = uuid.NewString()
		c.LaudoID = l.ID
		c.Ordem = i + 1
		c.Observacao = strings.TrimSpace(c.Observacao)
		componentes = append(componentes, c)
	}
	l.Componentes = componentes
	return nil
}

func getLaudo(ctx context.Context, repo interfaces.ILaudoRepository, id string) (entities.LaudoInspecao, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.LaudoInspecao{}, ErrInvalidLaudoID
	}
	l, err := repo.GetByID(ctx, id)
	if err != nil {
		return entities.LaudoInspecao{}, err
	}
	if l.ID == "" {
		return entities.LaudoInspecao{}, ErrLaudoNotFound
	}
	return l, nil
}
