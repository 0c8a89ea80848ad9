package entities

import (
	"math"
	"testing"
)

func TestCalcularAlerta_Limiares(t *testing.T) {
	cfg := ConfiguracaoManutencao{TipoDespesa: TipoDespesaTrocaOleo, IntervaloKm: 10000}

	cases := []struct {
		name   string
		atual  int64
		ultimo int64
		status AlertaStatus
		pct    float64
	}{
		{"just below proximo", 17999, 10000, AlertaStatusOK, 79.99},
		{"exactly 80", 18000, 10000, AlertaStatusProximo, 80},
		{"just below vencido", 19999, 10000, AlertaStatusProximo, 99.99},
		{"exactly 100", 20000, 10000, AlertaStatusVencido, 100},
		{"past due", 25000, 10000, AlertaStatusVencido, 150},
		{"fresh service", 10000, 10000, AlertaStatusOK, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := CalcularAlerta(cfg, tc.atual, tc.ultimo)
			if a.Status != tc.status {
				t.Fatalf("expected %s, got %s (%.2f%%)", tc.status, a.Status, a.Percentual)
			}
			if math.Abs(a.Percentual-tc.pct) > 1e-9 {
				t.Fatalf("expected %.2f, got %.2f", tc.pct, a.Percentual)
			}
			if a.KmDesdeServico != tc.atual-tc.ultimo {
				t.Fatalf("unexpected km: %d", a.KmDesdeServico)
			}
		})
	}
}

func TestCalcularAlerta_NegativeDistanceClamped(t *testing.T) {
	a := CalcularAlerta(ConfiguracaoManutencao{IntervaloKm: 5000}, 100, 200)
	if a.KmDesdeServico != 0 || a.Status != AlertaStatusOK {
		t.Fatalf("unexpected alert: %+v", a)
	}
}
