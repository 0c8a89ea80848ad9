package interfaces

import (
	"context"
	"tractus/internal/domain/entities"
)

// IPropostaRepository assigns Numero on Create.
type IPropostaRepository interface {
	Create(ctx context.Context, p entities.Proposta) (entities.Proposta, error)
	GetByID(ctx context.Context, id string) (entities.Proposta, error)
	List(ctx context.Context, filter entities.PropostaFilter) ([]entities.Proposta, error)
	Update(ctx context.Context, p entities.Proposta) (entities.Proposta, error)
	UpdateStatus(ctx context.Context, id string, status entities.PropostaStatus) (entities.Proposta, error)
	Delete(ctx context.Context, id string) error
}
