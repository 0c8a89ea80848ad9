package interfaces

import (
	"context"
	"tractus/internal/domain/entities"
)

type IDespesaVeiculoRepository interface {
	Create(ctx context.Context, d entities.DespesaVeiculo) (entities.DespesaVeiculo, error)
	GetByID(ctx context.Context, id string) (entities.DespesaVeiculo, error)
	List(ctx context.Context, filter entities.DespesaFilter) ([]entities.DespesaVeiculo, error)
	Update(ctx context.Context, d entities.DespesaVeiculo) (entities.DespesaVeiculo, error)
	Delete(ctx context.Context, id string) error
	// MaxOdometro ignores REPROVADA lines and the line excludeID (may be empty).
	MaxOdometro(ctx context.Context, vendedorID string, excludeID string) (int64, error)
	ListByVendedor(ctx context.Context, vendedorID string) ([]entities.DespesaVeiculo, error)
	Resumo(ctx context.Context, filter entities.ResumoDespesaFilter) ([]entities.ResumoDespesa, error)
}

type IConfiguracaoManutencaoRepository interface {
	List(ctx context.Context) ([]entities.ConfiguracaoManutencao, error)
	GetByTipo(ctx context.Context, tipo entities.TipoDespesa) (entities.ConfiguracaoManutencao, error)
	Upsert(ctx context.Context, c entities.ConfiguracaoManutencao) (entities.ConfiguracaoManutencao, error)
	Count(ctx context.Context) (int64, error)
}
