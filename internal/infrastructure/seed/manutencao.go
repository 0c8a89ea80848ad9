package seed

import (
	"fmt"
	"os"
	"strings"

	"tractus/internal/domain/entities"

	"gopkg.in/yaml.v3"
)

type manutencaoFile struct {
	Configuracoes []entities.ConfiguracaoManutencao `yaml:"configuracoes"`
}

// LoadManutencao reads the default maintenance intervals from a YAML file.
func LoadManutencao(path string) ([]entities.ConfiguracaoManutencao, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return ParseManutencao(raw)
}

func ParseManutencao(raw []byte) ([]entities.ConfiguracaoManutencao, error) {
	var f manutencaoFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse maintenance seed: %w", err)
	}
	seen := make(map[entities.TipoDespesa]bool, len(f.Configuracoes))
	for i, c := range f.Configuracoes {
		c.TipoDespesa = entities.TipoDespesa(strings.ToUpper(strings.TrimSpace(string(c.TipoDespesa))))
		if !c.TipoDespesa.Valid() {
			return nil, fmt.Errorf("entry %d: unknown tipo_despesa %q", i+1, c.TipoDespesa)
		}
		if c.IntervaloKm <= 0 {
			return nil, fmt.Errorf("entry %d: intervalo_km must be positive", i+1)
		}
		if seen[c.TipoDespesa] {
			return nil, fmt.Errorf("entry %d: duplicated tipo_despesa %s", i+1, c.TipoDespesa)
		}
		seen[c.TipoDespesa] = true
		f.Configuracoes[i] = c
	}
	return f.Configuracoes, nil
}
