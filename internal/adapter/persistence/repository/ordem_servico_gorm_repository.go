package repository

import (
	"context"
	"time"

	"tractus/internal/domain/entities"
	"tractus/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type OrdemServicoGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IOrdemServicoRepository = (*OrdemServicoGormRepository)(nil)

func NewOrdemServicoGormRepository(db *gorm.DB) *OrdemServicoGormRepository {
	return &OrdemServicoGormRepository{db: db}
}

func (r *OrdemServicoGormRepository) Create(ctx context.Context, os entities.OrdemServico) (entities.OrdemServico, error) {
	err := withNumero(ctx, r.db, &entities.OrdemServico{}, entities.PrefixoOrdemServico, func(tx *gorm.DB, seq int64) error {
		var n int64
		if err := tx.Model(&entities.OrdemServico{}).Where("proposta_id = ?", os.PropostaID).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return interfaces.ErrConflict
		}
		os.Numero = entities.FormatNumeroOrdemServico(seq)
		return numberedInsert(tx, &os)
	})
	if err != nil {
		return entities.OrdemServico{}, translate(err)
	}
	return os, nil
}

func (r *OrdemServicoGormRepository) GetByID(ctx context.Context, id string) (entities.OrdemServico, error) {
	return first[entities.OrdemServico](ctx, r.db, "id = ?", id)
}

func (r *OrdemServicoGormRepository) GetByPropostaID(ctx context.Context, propostaID string) (entities.OrdemServico, error) {
	return first[entities.OrdemServico](ctx, r.db, "proposta_id = ?", propostaID)
}

func (r *OrdemServicoGormRepository) List(ctx context.Context, filter entities.OrdemServicoFilter) ([]entities.OrdemServico, error) {
	q := r.db.WithContext(ctx).Model(&entities.OrdemServico{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.ClienteID != "" {
		q = q.Where("cliente_id = ?", filter.ClienteID)
	}
	if filter.VendedorID != "" {
		q = q.Where("vendedor_id = ?", filter.VendedorID)
	}
	var out []entities.OrdemServico
	err := q.Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *OrdemServicoGormRepository) Update(ctx context.Context, os entities.OrdemServico) (entities.OrdemServico, error) {
	if err := r.db.WithContext(ctx).Save(&os).Error; err != nil {
		return entities.OrdemServico{}, translate(err)
	}
	return os, nil
}

// Faturar only moves a CONCLUIDA order; a concurrent billing loses with ErrConflict.
func (r *OrdemServicoGormRepository) Faturar(ctx context.Context, os entities.OrdemServico, venda entities.Venda) (entities.OrdemServico, entities.Venda, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.OrdemServico{}).
			Where("id = ? AND status = ?", os.ID, entities.OrdemServicoStatusConcluida).
			Updates(map[string]any{
				"status":           entities.OrdemServicoStatusFaturada,
				"data_faturamento": os.DataFaturamento,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return interfaces.ErrConflict
		}
		return tx.Create(&venda).Error
	})
	if err != nil {
		return entities.OrdemServico{}, entities.Venda{}, translate(err)
	}
	os.Status = entities.OrdemServicoStatusFaturada
	return os, venda, nil
}

func (r *OrdemServicoGormRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entities.OrdemServico{}, "id = ?", id).Error
}

type VendaGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IVendaRepository = (*VendaGormRepository)(nil)

func NewVendaGormRepository(db *gorm.DB) *VendaGormRepository {
	return &VendaGormRepository{db: db}
}

func (r *VendaGormRepository) GetByID(ctx context.Context, id string) (entities.Venda, error) {
	return first[entities.Venda](ctx, r.db, "id = ?", id)
}

func (r *VendaGormRepository) GetByOrdemServicoID(ctx context.Context, ordemServicoID string) (entities.Venda, error) {
	return first[entities.Venda](ctx, r.db, "ordem_servico_id = ?", ordemServicoID)
}

func (r *VendaGormRepository) List(ctx context.Context, filter entities.VendaFilter) ([]entities.Venda, error) {
	q := r.db.WithContext(ctx).Model(&entities.Venda{})
	if filter.VendedorID != "" {
		q = q.Where("vendedor_id = ?", filter.VendedorID)
	}
	if filter.Mes != "" {
		start, end, err := monthRange(filter.Mes)
		if err != nil {
			return nil, err
		}
		q = q.Where("data_venda >= ? AND data_venda < ?", start, end)
	}
	var out []entities.Venda
	err := q.Order("data_venda DESC").Find(&out).Error
	return out, err
}

// MarkPaid returns a zero Venda when id is unknown and ErrConflict when it is no longer PENDENTE.
func (r *VendaGormRepository) MarkPaid(ctx context.Context, id string, pagamentoID string, payload string) (entities.Venda, error) {
	var out entities.Venda
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.Venda{}).
			Where("id = ? AND status_pagamento = ?", id, entities.PagamentoStatusPendente).
			Updates(map[string]any{
				"status_pagamento":  entities.PagamentoStatusPago,
				"pagamento_id":      pagamentoID,
				"pagamento_payload": payload,
				"updated_at":        time.Now().UTC(),
			})
		if res.Error != nil {
			return res.Error
		}
		if err := tx.Where("id = ?", id).Limit(1).Find(&out).Error; err != nil {
			return err
		}
		if res.RowsAffected == 0 && out.ID != "" {
			return interfaces.ErrConflict
		}
		return nil
	})
	if err != nil {
		return entities.Venda{}, err
	}
	return out, nil
}
