package repository

import (
	"context"

	"tractus/internal/domain/entities"
	"tractus/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type UserGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IUserRepository = (*UserGormRepository)(nil)

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

// Create inserts the user and, for salespeople, its Vendedor row in one transaction.
func (r *UserGormRepository) Create(ctx context.Context, u entities.User, vendedor *entities.Vendedor) (entities.User, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&u).Error; err != nil {
			return err
		}
		if vendedor != nil {
			vendedor.UserID = u.ID
			return tx.Create(vendedor).Error
		}
		return nil
	})
	if err != nil {
		return entities.User{}, translate(err)
	}
	return u, nil
}

func (r *UserGormRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	return first[entities.User](ctx, r.db, "id = ?", id)
}

func (r *UserGormRepository) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	return first[entities.User](ctx, r.db, "email = ?", email)
}

func (r *UserGormRepository) List(ctx context.Context) ([]entities.User, error) {
	var out []entities.User
	err := r.db.WithContext(ctx).Order("nome").Find(&out).Error
	return out, err
}

func (r *UserGormRepository) Update(ctx context.Context, u entities.User) (entities.User, error) {
	if err := r.db.WithContext(ctx).Save(&u).Error; err != nil {
		return entities.User{}, translate(err)
	}
	return u, nil
}

type VendedorGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IVendedorRepository = (*VendedorGormRepository)(nil)

func NewVendedorGormRepository(db *gorm.DB) *VendedorGormRepository {
	return &VendedorGormRepository{db: db}
}

func (r *VendedorGormRepository) GetByID(ctx context.Context, id string) (entities.Vendedor, error) {
	return first[entities.Vendedor](ctx, r.db, "id = ?", id)
}

func (r *VendedorGormRepository) GetByUserID(ctx context.Context, userID string) (entities.Vendedor, error) {
	return first[entities.Vendedor](ctx, r.db, "user_id = ?", userID)
}

func (r *VendedorGormRepository) List(ctx context.Context) ([]entities.Vendedor, error) {
	var out []entities.Vendedor
	err := r.db.WithContext(ctx).Order("nome").Find(&out).Error
	return out, err
}

func (r *VendedorGormRepository) Update(ctx context.Context, v entities.Vendedor) (entities.Vendedor, error) {
	if err := r.db.WithContext(ctx).Save(&v).Error; err != nil {
		return entities.Vendedor{}, err
	}
	return v, nil
}
