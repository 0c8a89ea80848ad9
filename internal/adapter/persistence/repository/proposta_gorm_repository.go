package repository

import (
	"context"

	"tractus/internal/domain/entities"
	"tractus/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PropostaGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IPropostaRepository = (*PropostaGormRepository)(nil)

func NewPropostaGormRepository(db *gorm.DB) *PropostaGormRepository {
	return &PropostaGormRepository{db: db}
}

func (r *PropostaGormRepository) Create(ctx context.Context, p entities.Proposta) (entities.Proposta, error) {
	err := withNumero(ctx, r.db, &entities.Proposta{}, entities.PrefixoProposta, func(tx *gorm.DB, seq int64) error {
		p.Numero = entities.FormatNumeroProposta(seq)
		return numberedInsert(tx, &p)
	})
	if err != nil {
		return entities.Proposta{}, translate(err)
	}
	return p, nil
}

func (r *PropostaGormRepository) GetByID(ctx context.Context, id string) (entities.Proposta, error) {
	return r.load(r.db.WithContext(ctx), id)
}

func (r *PropostaGormRepository) List(ctx context.Context, filter entities.PropostaFilter) ([]entities.Proposta, error) {
	q := r.db.WithContext(ctx).Model(&entities.Proposta{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.ClienteID != "" {
		q = q.Where("cliente_id = ?", filter.ClienteID)
	}
	if filter.VendedorID != "" {
		q = q.Where("vendedor_id = ?", filter.VendedorID)
	}
	var out []entities.Proposta
	err := q.Preload("Itens", orderByOrdem).Order("created_at DESC").Find(&out).Error
	return out, err
}

// Update replaces the item list.
func (r *PropostaGormRepository) Update(ctx context.Context, p entities.Proposta) (entities.Proposta, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("proposta_id = ?", p.ID).Delete(&entities.PropostaItem{}).Error; err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Save(&p).Error; err != nil {
			return err
		}
		if len(p.Itens) == 0 {
			return nil
		}
		return tx.Create(&p.Itens).Error
	})
	if err != nil {
		return entities.Proposta{}, translate(err)
	}
	return p, nil
}

func (r *PropostaGormRepository) UpdateStatus(ctx context.Context, id string, status entities.PropostaStatus) (entities.Proposta, error) {
	db := r.db.WithContext(ctx)
	if err := db.Model(&entities.Proposta{}).Where("id = ?", id).Update("status", status).Error; err != nil {
		return entities.Proposta{}, err
	}
	return r.load(db, id)
}

func (r *PropostaGormRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("proposta_id = ?", id).Delete(&entities.PropostaItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Proposta{}, "id = ?", id).Error
	})
}

func (r *PropostaGormRepository) load(db *gorm.DB, id string) (entities.Proposta, error) {
	var p entities.Proposta
	err := db.Preload("Itens", orderByOrdem).Where("id = ?", id).Limit(1).Find(&p).Error
	return p, err
}

func orderByOrdem(db *gorm.DB) *gorm.DB {
	return db.Order("ordem")
}
