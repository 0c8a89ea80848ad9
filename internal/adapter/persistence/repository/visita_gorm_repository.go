package repository

import (
	"context"
	"errors"
	"time"

	"tractus/internal/domain/entities"
	"tractus/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type VisitaTecnicaGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IVisitaTecnicaRepository = (*VisitaTecnicaGormRepository)(nil)

func NewVisitaTecnicaGormRepository(db *gorm.DB) *VisitaTecnicaGormRepository {
	return &VisitaTecnicaGormRepository{db: db}
}

func (r *VisitaTecnicaGormRepository) Create(ctx context.Context, v entities.VisitaTecnica) (entities.VisitaTecnica, error) {
	if err := r.db.WithContext(ctx).Create(&v).Error; err != nil {
		return entities.VisitaTecnica{}, translate(err)
	}
	return v, nil
}

func (r *VisitaTecnicaGormRepository) GetByID(ctx context.Context, id string) (entities.VisitaTecnica, error) {
	return first[entities.VisitaTecnica](ctx, r.db, "id = ?", id)
}

func (r *VisitaTecnicaGormRepository) List(ctx context.Context, filter entities.VisitaFilter) ([]entities.VisitaTecnica, error) {
	q := r.db.WithContext(ctx).Model(&entities.VisitaTecnica{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.VendedorID != "" {
		q = q.Where("vendedor_id = ?", filter.VendedorID)
	}
	if filter.ClienteID != "" {
		q = q.Where("cliente_id = ?", filter.ClienteID)
	}
	if filter.Data != nil {
		d := *filter.Data
		start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
		q = q.Where("data_agendada >= ? AND data_agendada < ?", start, start.AddDate(0, 0, 1))
	}
	var out []entities.VisitaTecnica
	err := q.Order("data_agendada").Find(&out).Error
	return out, err
}

// Update never touches numero, which is owned by the report flow.
func (r *VisitaTecnicaGormRepository) Update(ctx context.Context, v entities.VisitaTecnica) (entities.VisitaTecnica, error) {
	if err := r.db.WithContext(ctx).Omit("numero").Save(&v).Error; err != nil {
		return entities.VisitaTecnica{}, translate(err)
	}
	return r.GetByID(ctx, v.ID)
}

func (r *VisitaTecnicaGormRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entities.VisitaTecnica{}, "id = ?", id).Error
}

type LaudoGormRepository struct {
	db *gorm.DB
}

var _ interfaces.ILaudoRepository = (*LaudoGormRepository)(nil)

func NewLaudoGormRepository(db *gorm.DB) *LaudoGormRepository {
	return &LaudoGormRepository{db: db}
}

func (r *LaudoGormRepository) CreateForVisita(ctx context.Context, l entities.LaudoInspecao, day time.Time) (entities.LaudoInspecao, error) {
	err := withNumero(ctx, r.db, &entities.VisitaTecnica{}, entities.PrefixoNumeroVisita(day), func(tx *gorm.DB, seq int64) error {
		var n int64
		if err := tx.Model(&entities.LaudoInspecao{}).Where("visita_id = ?", l.VisitaID).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return interfaces.ErrConflict
		}

		var visita entities.VisitaTecnica
		if err := tx.Where("id = ?", l.VisitaID).First(&visita).Error; err != nil {
			return err
		}
		if visita.Numero == nil {
			numero := entities.FormatNumeroVisita(day, seq)
			err := tx.Model(&entities.VisitaTecnica{}).Where("id = ?", visita.ID).Update("numero", numero).Error
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return errNumeroTaken
			}
			if err != nil {
				return err
			}
			visita.Numero = &numero
		}

		l.Numero = *visita.Numero
		return tx.Create(&l).Error
	})
	if err != nil {
		return entities.LaudoInspecao{}, translate(err)
	}
	return l, nil
}

func (r *LaudoGormRepository) GetByID(ctx context.Context, id string) (entities.LaudoInspecao, error) {
	return r.load(r.db.WithContext(ctx), "id = ?", id)
}

func (r *LaudoGormRepository) GetByVisitaID(ctx context.Context, visitaID string) (entities.LaudoInspecao, error) {
	return r.load(r.db.WithContext(ctx), "visita_id = ?", visitaID)
}

func (r *LaudoGormRepository) List(ctx context.Context, filter entities.LaudoFilter) ([]entities.LaudoInspecao, error) {
	q := r.db.WithContext(ctx).Model(&entities.LaudoInspecao{})
	if filter.VisitaID != "" {
		q = q.Where("visita_id = ?", filter.VisitaID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	var out []entities.LaudoInspecao
	err := q.Preload("Componentes", orderByOrdem).Order("created_at DESC").Find(&out).Error
	return out, err
}

// Update rewrites a RASCUNHO report and replaces its component list. It returns a zero report
// when id is unknown and ErrConflict when the report was sent meanwhile.
func (r *LaudoGormRepository) Update(ctx context.Context, l entities.LaudoInspecao) (entities.LaudoInspecao, error) {
	var out entities.LaudoInspecao
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.LaudoInspecao{}).
			Where("id = ? AND status = ?", l.ID, entities.LaudoStatusRascunho).
			Updates(map[string]any{
				"equipamento":   l.Equipamento,
				"modelo":        l.Modelo,
				"numero_serie":  l.NumeroSerie,
				"horimetro":     l.Horimetro,
				"conclusao":     l.Conclusao,
				"recomendacoes": l.Recomendacoes,
				"updated_at":    time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return missOrConflict(tx, &entities.LaudoInspecao{}, l.ID)
		}

		if err := tx.Where("laudo_id = ?", l.ID).Delete(&entities.ComponenteInspecao{}).Error; err != nil {
			return err
		}
		if len(l.Componentes) > 0 {
			if err := tx.Create(&l.Componentes).Error; err != nil {
				return err
			}
		}
		var err error
		out, err = r.load(tx, "id = ?", l.ID)
		return err
	})
	if err != nil {
		return entities.LaudoInspecao{}, translate(err)
	}
	return out, nil
}

// Delete removes a RASCUNHO report; ErrConflict when it was sent meanwhile.
func (r *LaudoGormRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("laudo_id = ?", id).Delete(&entities.ComponenteInspecao{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ? AND status = ?", id, entities.LaudoStatusRascunho).Delete(&entities.LaudoInspecao{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return missOrConflict(tx, &entities.LaudoInspecao{}, id)
		}
		return nil
	})
}

// Enviar returns a zero report when id is unknown and ErrConflict when it was already sent.
func (r *LaudoGormRepository) Enviar(ctx context.Context, id string, at time.Time) (entities.LaudoInspecao, error) {
	var out entities.LaudoInspecao
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.LaudoInspecao{}).
			Where("id = ? AND status = ?", id, entities.LaudoStatusRascunho).
			Updates(map[string]any{
				"status":     entities.LaudoStatusEnviado,
				"data_envio": at,
			})
		if res.Error != nil {
			return res.Error
		}

		var err error
		out, err = r.load(tx, "id = ?", id)
		if err != nil {
			return err
		}
		if out.ID == "" {
			return nil
		}
		if res.RowsAffected == 0 {
			return interfaces.ErrConflict
		}

		return tx.Model(&entities.VisitaTecnica{}).
			Where("id = ?", out.VisitaID).
			Update("status", entities.VisitaStatusRealizada).Error
	})
	if err != nil {
		return entities.LaudoInspecao{}, err
	}
	return out, nil
}

func (r *LaudoGormRepository) load(db *gorm.DB, query string, arg any) (entities.LaudoInspecao, error) {
	var l entities.LaudoInspecao
	err := db.Preload("Componentes", orderByOrdem).Where(query, arg).Limit(1).Find(&l).Error
	return l, err
}
