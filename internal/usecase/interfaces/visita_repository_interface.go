package interfaces

import (
	"context"
	"time"
	"tractus/internal/domain/entities"
)

type IVisitaTecnicaRepository interface {
	Create(ctx context.Context, v entities.VisitaTecnica) (entities.VisitaTecnica, error)
	GetByID(ctx context.Context, id string) (entities.VisitaTecnica, error)
	List(ctx context.Context, filter entities.VisitaFilter) ([]entities.VisitaTecnica, error)
	Update(ctx context.Context, v entities.VisitaTecnica) (entities.VisitaTecnica, error)
	Delete(ctx context.Context, id string) error
}

// ILaudoRepository owns the report/visit multi-row writes.
//
//   - CreateForVisita numbers the visit (when still unnumbered) using day, copies the
//     number to the report and inserts report + components in one transaction.
//   - Enviar marks the report ENVIADO and the visit REALIZADA in one transaction.
type ILaudoRepository interface {
	CreateForVisita(ctx context.Context, l entities.LaudoInspecao, day time.Time) (entities.LaudoInspecao, error)
	GetByID(ctx context.Context, id string) (entities.LaudoInspecao, error)
	GetByVisitaID(ctx context.Context, visitaID string) (entities.LaudoInspecao, error)
	List(ctx context.Context, filter entities.LaudoFilter) ([]entities.LaudoInspecao, error)
	Update(ctx context.Context, l entities.LaudoInspecao) (entities.LaudoInspecao, error)
	Delete(ctx context.Context, id string) error
	Enviar(ctx context.Context, id string, at time.Time) (entities.LaudoInspecao, error)
}
