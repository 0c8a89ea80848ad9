package repository

import (
	"context"
	"time"

	"tractus/internal/domain/entities"
	"tractus/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type DashboardGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IDashboardRepository = (*DashboardGormRepository)(nil)

func NewDashboardGormRepository(db *gorm.DB) *DashboardGormRepository {
	return &DashboardGormRepository{db: db}
}

// Resumo returns only the months that had sales since vendasDesde; gaps are filled by the caller.
func (r *DashboardGormRepository) Resumo(ctx context.Context, vendasDesde time.Time) (entities.DashboardResumo, error) {
	db := r.db.WithContext(ctx)
	var (
		out entities.DashboardResumo
		err error
	)

	if out.ClientesPorStatus, err = porStatus(db, &entities.Cliente{}, "0"); err != nil {
		return entities.DashboardResumo{}, err
	}
	if out.PropostasPorStatus, err = porStatus(db, &entities.Proposta{}, "valor_total"); err != nil {
		return entities.DashboardResumo{}, err
	}
	if out.OrdensPorStatus, err = porStatus(db, &entities.OrdemServico{}, "valor"); err != nil {
		return entities.DashboardResumo{}, err
	}

	mes := monthExpr(r.db, "data_venda")
	err = db.Model(&entities.Venda{}).
		Select(mes+" AS mes, COUNT(*) AS quantidade, COALESCE(SUM(valor), 0) AS total").
		Where("data_venda >= ?", vendasDesde).
		Group(mes).
		Order("mes").
		Scan(&out.VendasPorMes).Error
	if err != nil {
		return entities.DashboardResumo{}, err
	}

	err = db.Model(&entities.DespesaVeiculo{}).
		Select("COALESCE(SUM(valor), 0)").
		Where("status = ?", entities.DespesaStatusPendente).
		Scan(&out.DespesasPendentes).Error
	if err != nil {
		return entities.DashboardResumo{}, err
	}
	return out, nil
}

func porStatus(db *gorm.DB, model any, valueColumn string) ([]entities.StatusTotal, error) {
	var out []entities.StatusTotal
	err := db.Model(model).
		Select("status, COUNT(*) AS quantidade, COALESCE(SUM(" + valueColumn + "), 0) AS total").
		Group("status").
		Order("status").
		Scan(&out).Error
	return out, err
}
