package usecase

import (
	"context"
	"testing"
	"time"

	"tractus/internal/domain/entities"
	mock_interfaces "tractus/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDashboardUseCase_Resumo_FillsMonths(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIDashboardRepository(ctrl)
	uc := NewDashboardUseCase(repo)
	uc.now = func() time.Time { return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC) }

	since := time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC)
	repo.EXPECT().Resumo(gomock.Any(), since).Return(entities.DashboardResumo{
		VendasPorMes:      []entities.MesTotal{{Mes: "2023-06", Quantidade: 2, Total: 5000}, {Mes: "2024-03", Quantidade: 1, Total: 700}},
		DespesasPendentes: 120,
	}, nil)

	got, err := uc.Resumo(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.VendasPorMes) != MesesDashboard {
		t.Fatalf("expected %d months, got %d", MesesDashboard, len(got.VendasPorMes))
	}
	if got.VendasPorMes[0].Mes != "2023-04" || got.VendasPorMes[11].Mes != "2024-03" {
		t.Fatalf("unexpected window: %+v", got.VendasPorMes)
	}
	if got.VendasPorMes[2].Total != 5000 || got.VendasPorMes[11].Total != 700 || got.VendasPorMes[1].Total != 0 {
		t.Fatalf("unexpected totals: %+v", got.VendasPorMes)
	}
	if got.DespesasPendentes != 120 {
		t.Fatalf("unexpected despesas pendentes: %v", got.DespesasPendentes)
	}
}
