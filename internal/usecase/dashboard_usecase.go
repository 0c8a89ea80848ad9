package usecase

import (
	"context"
	"time"
	"tractus/internal/domain/entities"
	"tractus/internal/usecase/interfaces"
)

// MesesDashboard is the sales window of the dashboard, current month included.
const MesesDashboard = 12

type IDashboardUseCase interface {
	Resumo(ctx context.Context) (entities.DashboardResumo, error)
}

type DashboardUseCase struct {
	repo interfaces.IDashboardRepository
	now  func() time.Time
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(repo interfaces.IDashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, now: time.Now}
}

// Resumo aggregates the dashboard; months without sales are reported with zero totals.
func (u *DashboardUseCase) Resumo(ctx context.Context) (entities.DashboardResumo, error) {
	now := u.now().UTC()
	since := firstOfMonth(now, -(MesesDashboard - 1))

	r, err := u.repo.Resumo(ctx, since)
	if err != nil {
		return entities.DashboardResumo{}, err
	}

	byMes := make(map[string]entities.MesTotal, len(r.VendasPorMes))
	for _, m := range r.VendasPorMes {
		byMes[m.Mes] = m
	}
	meses := make([]entities.MesTotal, 0, MesesDashboard)
	for i := 0; i < MesesDashboard; i++ {
		mes := since.AddDate(0, i, 0).Format("2006-01")
		m, ok := byMes[mes]
		if !ok {
			m = entities.MesTotal{Mes: mes}
		}
		meses = append(meses, m)
	}
	r.VendasPorMes = meses
	return r, nil
}

// firstOfMonth returns 00:00 UTC of the first day of t's month shifted by months.
func firstOfMonth(t time.Time, months int) time.Time {
	return time.Date(t.Year(), t.Month()+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
}
