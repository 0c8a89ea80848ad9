package repository

import (
	"context"
	"time"

	"tractus/internal/domain/entities"
	"tractus/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DespesaVeiculoGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IDespesaVeiculoRepository = (*DespesaVeiculoGormRepository)(nil)

func NewDespesaVeiculoGormRepository(db *gorm.DB) *DespesaVeiculoGormRepository {
	return &DespesaVeiculoGormRepository{db: db}
}

func (r *DespesaVeiculoGormRepository) Create(ctx context.Context, d entities.DespesaVeiculo) (entities.DespesaVeiculo, error) {
	if err := r.db.WithContext(ctx).Create(&d).Error; err != nil {
		return entities.DespesaVeiculo{}, translate(err)
	}
	return d, nil
}

func (r *DespesaVeiculoGormRepository) GetByID(ctx context.Context, id string) (entities.DespesaVeiculo, error) {
	return first[entities.DespesaVeiculo](ctx, r.db, "id = ?", id)
}

func (r *DespesaVeiculoGormRepository) List(ctx context.Context, filter entities.DespesaFilter) ([]entities.DespesaVeiculo, error) {
	q := r.db.WithContext(ctx).Model(&entities.DespesaVeiculo{})
	if filter.VendedorID != "" {
		q = q.Where("vendedor_id = ?", filter.VendedorID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Tipo != "" {
		q = q.Where("tipo = ?", filter.Tipo)
	}
	if filter.Mes != "" {
		start, end, err := monthRange(filter.Mes)
		if err != nil {
			return nil, err
		}
		q = q.Where("data >= ? AND data < ?", start, end)
	}
	var out []entities.DespesaVeiculo
	err := q.Order("data DESC").Order("odometro DESC").Find(&out).Error
	return out, err
}

// Update rewrites a PENDENTE expense, including its review outcome. It returns a zero expense
// when id is unknown and ErrConflict when the expense was reviewed meanwhile.
func (r *DespesaVeiculoGormRepository) Update(ctx context.Context, d entities.DespesaVeiculo) (entities.DespesaVeiculo, error) {
	var out entities.DespesaVeiculo
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.DespesaVeiculo{}).
			Where("id = ? AND status = ?", d.ID, entities.DespesaStatusPendente).
			Updates(map[string]any{
				"data":              d.Data,
				"tipo":              d.Tipo,
				"valor":             d.Valor,
				"odometro":          d.Odometro,
				"descricao":         d.Descricao,
				"status":            d.Status,
				"aprovado_por":      d.AprovadoPor,
				"motivo_reprovacao": d.MotivoReprovacao,
				"updated_at":        time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return missOrConflict(tx, &entities.DespesaVeiculo{}, d.ID)
		}
		var err error
		out, err = first[entities.DespesaVeiculo](ctx, tx, "id = ?", d.ID)
		return err
	})
	if err != nil {
		return entities.DespesaVeiculo{}, translate(err)
	}
	return out, nil
}

// Delete removes a PENDENTE expense; ErrConflict when it was decided meanwhile.
func (r *DespesaVeiculoGormRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND status = ?", id, entities.DespesaStatusPendente).Delete(&entities.DespesaVeiculo{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return missOrConflict(tx, &entities.DespesaVeiculo{}, id)
		}
		return nil
	})
}

func (r *DespesaVeiculoGormRepository) MaxOdometro(ctx context.Context, vendedorID string, excludeID string) (int64, error) {
	q := r.db.WithContext(ctx).Model(&entities.DespesaVeiculo{}).
		Where("vendedor_id = ? AND status <> ?", vendedorID, entities.DespesaStatusReprovada)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	var max int64
	err := q.Select("COALESCE(MAX(odometro), 0)").Scan(&max).Error
	return max, err
}

// ListByVendedor is ordered by odometer, oldest reading first.
func (r *DespesaVeiculoGormRepository) ListByVendedor(ctx context.Context, vendedorID string) ([]entities.DespesaVeiculo, error) {
	var out []entities.DespesaVeiculo
	err := r.db.WithContext(ctx).
		Where("vendedor_id = ?", vendedorID).
		Order("odometro").Order("data").
		Find(&out).Error
	return out, err
}

// Resumo groups non-rejected lines by month and type.
func (r *DespesaVeiculoGormRepository) Resumo(ctx context.Context, filter entities.ResumoDespesaFilter) ([]entities.ResumoDespesa, error) {
	mes := monthExpr(r.db, "data")
	q := r.db.WithContext(ctx).Model(&entities.DespesaVeiculo{}).
		Select(mes+" AS mes, tipo, COUNT(*) AS quantidade, COALESCE(SUM(valor), 0) AS total").
		Where("status <> ?", entities.DespesaStatusReprovada)
	if filter.VendedorID != "" {
		q = q.Where("vendedor_id = ?", filter.VendedorID)
	}
	if filter.Ano != 0 {
		start := time.Date(filter.Ano, time.January, 1, 0, 0, 0, 0, time.UTC)
		q = q.Where("data >= ? AND data < ?", start, start.AddDate(1, 0, 0))
	}
	var out []entities.ResumoDespesa
	err := q.Group(mes + ", tipo").Order("mes").Order("tipo").Scan(&out).Error
	return out, err
}

type ConfiguracaoManutencaoGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IConfiguracaoManutencaoRepository = (*ConfiguracaoManutencaoGormRepository)(nil)

func NewConfiguracaoManutencaoGormRepository(db *gorm.DB) *ConfiguracaoManutencaoGormRepository {
	return &ConfiguracaoManutencaoGormRepository{db: db}
}

func (r *ConfiguracaoManutencaoGormRepository) List(ctx context.Context) ([]entities.ConfiguracaoManutencao, error) {
	var out []entities.ConfiguracaoManutencao
	err := r.db.WithContext(ctx).Order("tipo_despesa").Find(&out).Error
	return out, err
}

func (r *ConfiguracaoManutencaoGormRepository) GetByTipo(ctx context.Context, tipo entities.TipoDespesa) (entities.ConfiguracaoManutencao, error) {
	return first[entities.ConfiguracaoManutencao](ctx, r.db, "tipo_despesa = ?", tipo)
}

// Upsert keys on tipo_despesa and keeps the stored id on conflict.
func (r *ConfiguracaoManutencaoGormRepository) Upsert(ctx context.Context, c entities.ConfiguracaoManutencao) (entities.ConfiguracaoManutencao, error) {
	db := r.db.WithContext(ctx)
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tipo_despesa"}},
		DoUpdates: clause.AssignmentColumns([]string{"intervalo_km", "descricao", "updated_at"}),
	}).Create(&c).Error
	if err != nil {
		return entities.ConfiguracaoManutencao{}, err
	}
	return r.GetByTipo(ctx, c.TipoDespesa)
}

func (r *ConfiguracaoManutencaoGormRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&entities.ConfiguracaoManutencao{}).Count(&n).Error
	return n, err
}
