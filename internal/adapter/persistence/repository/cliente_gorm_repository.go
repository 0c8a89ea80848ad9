package repository

import (
	"context"

	"tractus/internal/domain/entities"
	"tractus/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type ClienteGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IClienteRepository = (*ClienteGormRepository)(nil)

func NewClienteGormRepository(db *gorm.DB) *ClienteGormRepository {
	return &ClienteGormRepository{db: db}
}

func (r *ClienteGormRepository) Create(ctx context.Context, c entities.Cliente) (entities.Cliente, error) {
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return entities.Cliente{}, translate(err)
	}
	return c, nil
}

func (r *ClienteGormRepository) GetByID(ctx context.Context, id string) (entities.Cliente, error) {
	return first[entities.Cliente](ctx, r.db, "id = ?", id)
}

func (r *ClienteGormRepository) GetByDocumento(ctx context.Context, documento string) (entities.Cliente, error) {
	return first[entities.Cliente](ctx, r.db, "documento = ?", documento)
}

// List matches Busca (already folded) against the folded name and the document digits.
func (r *ClienteGormRepository) List(ctx context.Context, filter entities.ClienteFilter) ([]entities.Cliente, error) {
	q := r.db.WithContext(ctx).Model(&entities.Cliente{})
	if filter.Busca != "" {
		like := "%" + filter.Busca + "%"
		q = q.Where("nome_busca LIKE ? OR documento LIKE ?", like, like)
	}
	if filter.VendedorID != "" {
		q = q.Where("vendedor_id = ?", filter.VendedorID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	var out []entities.Cliente
	err := q.Order("nome").Find(&out).Error
	return out, err
}

func (r *ClienteGormRepository) Update(ctx context.Context, c entities.Cliente) (entities.Cliente, error) {
	if err := r.db.WithContext(ctx).Save(&c).Error; err != nil {
		return entities.Cliente{}, translate(err)
	}
	return c, nil
}

func (r *ClienteGormRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entities.Cliente{}, "id = ?", id).Error
}

func (r *ClienteGormRepository) CountPropostas(ctx context.Context, clienteID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&entities.Proposta{}).Where("cliente_id = ?", clienteID).Count(&n).Error
	return n, err
}

// ClienteAnotacaoGormRepository is the relational notes backend.
type ClienteAnotacaoGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IClienteAnotacaoRepository = (*ClienteAnotacaoGormRepository)(nil)

func NewClienteAnotacaoGormRepository(db *gorm.DB) *ClienteAnotacaoGormRepository {
	return &ClienteAnotacaoGormRepository{db: db}
}

func (r *ClienteAnotacaoGormRepository) Create(ctx context.Context, a entities.ClienteAnotacao) (entities.ClienteAnotacao, error) {
	if err := r.db.WithContext(ctx).Create(&a).Error; err != nil {
		return entities.ClienteAnotacao{}, err
	}
	return a, nil
}

func (r *ClienteAnotacaoGormRepository) GetByID(ctx context.Context, id string) (entities.ClienteAnotacao, error) {
	return first[entities.ClienteAnotacao](ctx, r.db, "id = ?", id)
}

func (r *ClienteAnotacaoGormRepository) ListByClienteID(ctx context.Context, clienteID string) ([]entities.ClienteAnotacao, error) {
	var out []entities.ClienteAnotacao
	err := r.db.WithContext(ctx).Where("cliente_id = ?", clienteID).Order("created_at").Find(&out).Error
	return out, err
}

func (r *ClienteAnotacaoGormRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entities.ClienteAnotacao{}, "id = ?", id).Error
}
