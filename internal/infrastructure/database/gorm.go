package database

import (
	"context"
	"fmt"
	"time"

	"tractus/internal/domain/entities"
	"tractus/internal/infrastructure/config"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Models lists every table owned by the relational store, in dependency order.
func Models() []any {
	return []any{
		&entities.User{},
		&entities.Vendedor{},
		&entities.Cliente{},
		&entities.ClienteAnotacao{},
		&entities.Proposta{},
		&entities.PropostaItem{},
		&entities.OrdemServico{},
		&entities.Venda{},
		&entities.VisitaTecnica{},
		&entities.LaudoInspecao{},
		&entities.ComponenteInspecao{},
		&entities.DespesaVeiculo{},
		&entities.ConfiguracaoManutencao{},
	}
}

// Open connects with the configured driver. Unique violations surface as gorm.ErrDuplicatedKey.
func Open(cfg config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DatabaseDriver {
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DatabaseURL)
	case config.DriverSQLite:
		dsn := cfg.DatabaseURL
		if dsn == "" {
			dsn = "file:tractus.db?_foreign_keys=on"
		}
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DatabaseDriver)
	}
	return OpenDialector(dialector)
}

func OpenDialector(dialector gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	zap.L().Info("database connected", zap.String("scope", "database"), zap.String("dialect", dialector.Name()))
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// Ping checks connectivity for the liveness endpoint.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return sqlDB.PingContext(ctx)
}
