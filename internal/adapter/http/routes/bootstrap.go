package routes

import (
	"context"
	"errors"
	"os"

	"tractus/internal/adapter/persistence/repository"
	"tractus/internal/infrastructure/config"
	"tractus/internal/infrastructure/seed"
	"tractus/internal/usecase"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Bootstrap seeds the default maintenance intervals and the first ADMIN account.
// Both steps are no-ops once data exists.
func Bootstrap(ctx context.Context, cfg config.Config, db *gorm.DB) error {
	logger := zap.L().With(zap.String("scope", "bootstrap"))
	vendedorRepo := repository.NewVendedorGormRepository(db)

	defaults, err := seed.LoadManutencao(cfg.MaintenanceSeedFile)
	switch {
	case errors.Is(err, os.ErrNotExist):
		logger.Warn("maintenance seed file not found", zap.String("path", cfg.MaintenanceSeedFile))
	case err != nil:
		return err
	default:
		manutencao := usecase.NewManutencaoUseCase(repository.NewConfiguracaoManutencaoGormRepository(db), repository.NewDespesaVeiculoGormRepository(db), vendedorRepo)
		if _, err := manutencao.SeedDefaults(ctx, defaults); err != nil {
			return err
		}
	}

	if cfg.AdminEmail == "" {
		return nil
	}
	users := usecase.NewUserUseCase(repository.NewUserGormRepository(db), vendedorRepo)
	created, err := users.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		return err
	}
	if created {
		logger.Info("admin account created", zap.String("email", cfg.AdminEmail))
	}
	return nil
}
