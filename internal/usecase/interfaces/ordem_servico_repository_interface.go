package interfaces

import (
	"context"
	"tractus/internal/domain/entities"
)

// IOrdemServicoRepository assigns Numero on Create.
//
// Faturar persists the FATURADA order and its sale atomically.
type IOrdemServicoRepository interface {
	Create(ctx context.Context, os entities.OrdemServico) (entities.OrdemServico, error)
	GetByID(ctx context.Context, id string) (entities.OrdemServico, error)
	GetByPropostaID(ctx context.Context, propostaID string) (entities.OrdemServico, error)
	List(ctx context.Context, filter entities.OrdemServicoFilter) ([]entities.OrdemServico, error)
	Update(ctx context.Context, os entities.OrdemServico) (entities.OrdemServico, error)
	Faturar(ctx context.Context, os entities.OrdemServico, venda entities.Venda) (entities.OrdemServico, entities.Venda, error)
	Delete(ctx context.Context, id string) error
}

type IVendaRepository interface {
	GetByID(ctx context.Context, id string) (entities.Venda, error)
	GetByOrdemServicoID(ctx context.Context, ordemServicoID string) (entities.Venda, error)
	List(ctx context.Context, filter entities.VendaFilter) ([]entities.Venda, error)
	MarkPaid(ctx context.Context, id string, pagamentoID string, payload string) (entities.Venda, error)
}
