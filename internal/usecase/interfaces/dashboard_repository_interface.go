package interfaces

import (
	"context"
	"time"
	"tractus/internal/domain/entities"
)

type IDashboardRepository interface {
	Resumo(ctx context.Context, vendasDesde time.Time) (entities.DashboardResumo, error)
}
