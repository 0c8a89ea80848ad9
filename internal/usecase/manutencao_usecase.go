package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"tractus/internal/domain/entities"
	"tractus/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidIntervaloKm    = errors.New("intervalo_km must be greater than zero")
	ErrInvalidTipoManutencao = errors.New("invalid tipo_despesa")
)

type IManutencaoUseCase interface {
	ListConfiguracoes(ctx context.Context) ([]entities.ConfiguracaoManutencao, error)
	UpsertConfiguracao(ctx context.Context, tipo entities.TipoDespesa, intervaloKm int64, descricao string) (entities.ConfiguracaoManutencao, error)
	// SeedDefaults stores defaults only when no configuration exists yet.
	SeedDefaults(ctx context.Context, defaults []entities.ConfiguracaoManutencao) (int, error)
	Alertas(ctx context.Context, vendedorID string) ([]entities.AlertaManutencao, error)
}

type ManutencaoUseCase struct {
	configRepo   interfaces.IConfiguracaoManutencaoRepository
	despesaRepo  interfaces.IDespesaVeiculoRepository
	vendedorRepo interfaces.IVendedorRepository
}

var _ IManutencaoUseCase = (*ManutencaoUseCase)(nil)

func NewManutencaoUseCase(configRepo interfaces.IConfiguracaoManutencaoRepository, despesaRepo interfaces.IDespesaVeiculoRepository, vendedorRepo interfaces.IVendedorRepository) *ManutencaoUseCase {
	return &ManutencaoUseCase{configRepo: configRepo, despesaRepo: despesaRepo, vendedorRepo: vendedorRepo}
}

func (u *ManutencaoUseCase) ListConfiguracoes(ctx context.Context) ([]entities.ConfiguracaoManutencao, error) {
	return u.configRepo.List(ctx)
}

func (u *ManutencaoUseCase) UpsertConfiguracao(ctx context.Context, tipo entities.TipoDespesa, intervaloKm int64, descricao string) (entities.ConfiguracaoManutencao, error) {
	tipo = entities.TipoDespesa(strings.ToUpper(strings.TrimSpace(string(tipo))))
	if !tipo.Valid() {
		return entities.ConfiguracaoManutencao{}, ErrInvalidTipoManutencao
	}
	if intervaloKm <= 0 {
		return entities.ConfiguracaoManutencao{}, ErrInvalidIntervaloKm
	}

	cfg, err := u.configRepo.GetByTipo(ctx, tipo)
	if err != nil {
		return entities.ConfiguracaoManutencao{}, err
	}
	if cfg.ID == "" {
		cfg = entities.ConfiguracaoManutencao{ID: uuid.NewString(), TipoDespesa: tipo}
	}
	cfg.IntervaloKm = intervaloKm
	cfg.Descricao = strings.TrimSpace(descricao)

	saved, err := u.configRepo.Upsert(ctx, cfg)
	if err != nil {
		return entities.ConfiguracaoManutencao{}, err
	}
	zap.L().Info("maintenance interval saved", zap.String("scope", "manutencao"), zap.String("tipo", string(tipo)), zap.Int64("intervalo_km", intervaloKm))
	return saved, nil
}

func (u *ManutencaoUseCase) SeedDefaults(ctx context.Context, defaults []entities.ConfiguracaoManutencao) (int, error) {
	n, err := u.configRepo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}
	seeded := 0
	for _, d := range defaults {
		if _, err := u.UpsertConfiguracao(ctx, d.TipoDespesa, d.IntervaloKm, d.Descricao); err != nil {
			return seeded, err
		}
		seeded++
	}
	zap.L().Info("maintenance defaults seeded", zap.String("scope", "manutencao"), zap.Int("count", seeded))
	return seeded, nil
}

// Alertas recomputes every configured interval from the salesperson's full expense history.
//
// REPROVADA lines never count. When a type was never serviced, the earliest reading is the baseline.
func (u *ManutencaoUseCase) Alertas(ctx context.Context, vendedorID string) ([]entities.AlertaManutencao, error) {
	vendedor, err := getVendedor(ctx, u.vendedorRepo, vendedorID)
	if err != nil {
		return nil, err
	}
	configs, err := u.configRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	despesas, err := u.despesaRepo.ListByVendedor(ctx, vendedor.ID)
	if err != nil {
		return nil, err
	}

	var (
		atual, primeiro int64
		seen            bool
		ultimo          = make(map[entities.TipoDespesa]int64)
	)
	for _, d := range despesas {
		if d.Status == entities.DespesaStatusReprovada {
			continue
		}
		if !seen || d.Odometro < primeiro {
			primeiro = d.Odometro
		}
		if !seen || d.Odometro > atual {
			atual = d.Odometro
		}
		seen = true
		if km, ok := ultimo[d.Tipo]; !ok || d.Odometro > km {
			ultimo[d.Tipo] = d.Odometro
		}
	}

	alertas := make([]entities.AlertaManutencao, 0, len(configs))
	for _, cfg := range configs {
		if cfg.IntervaloKm <= 0 {
			continue
		}
		base, ok := ultimo[cfg.TipoDespesa]
		if !ok {
			base = primeiro
		}
		alertas = append(alertas, entities.CalcularAlerta(cfg, atual, base))
	}
	sort.SliceStable(alertas, func(i, j int) bool {
		return alertas[i].Percentual > alertas[j].Percentual
	})
	return alertas, nil
}
