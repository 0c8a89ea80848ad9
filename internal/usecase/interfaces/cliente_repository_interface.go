package interfaces

import (
	"context"
	"tractus/internal/domain/entities"
)

type IClienteRepository interface {
	Create(ctx context.Context, c entities.Cliente) (entities.Cliente, error)
	GetByID(ctx context.Context, id string) (entities.Cliente, error)
	GetByDocumento(ctx context.Context, documento string) (entities.Cliente, error)
	List(ctx context.Context, filter entities.ClienteFilter) ([]entities.Cliente, error)
	Update(ctx context.Context, c entities.Cliente) (entities.Cliente, error)
	Delete(ctx context.Context, id string) error
	CountPropostas(ctx context.Context, clienteID string) (int64, error)
}

// IClienteAnotacaoRepository is implemented both on the relational store and on DynamoDB.
type IClienteAnotacaoRepository interface {
	Create(ctx context.Context, a entities.ClienteAnotacao) (entities.ClienteAnotacao, error)
	GetByID(ctx context.Context, id string) (entities.ClienteAnotacao, error)
	ListByClienteID(ctx context.Context, clienteID string) ([]entities.ClienteAnotacao, error)
	Delete(ctx context.Context, id string) error
}
