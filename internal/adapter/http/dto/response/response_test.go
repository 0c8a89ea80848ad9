package response

import (
	"testing"
	"time"

	"tractus/internal/domain/entities"
	"tractus/internal/usecase"
)

func TestFromProposta(t *testing.T) {
	now := time.Now().UTC()
	p := entities.Proposta{
		ID:         "p-1",
		Numero:     "PROP-000001",
		ClienteID:  "c-1",
		Titulo:     "Revisão escavadeira",
		ValorTotal: 1234.56,
		Status:     entities.PropostaStatusRascunho,
		Itens: []entities.PropostaItem{
			{ID: "i-1", Ordem: 1, Descricao: "Filtro", Quantidade: 2, ValorUnitario: 17.28},
		},
		CreatedAt: now,
	}

	res := FromProposta(p)
	if res.ValorFormatado != "R$ 1.234,56" {
		t.Fatalf("unexpected valor_formatado: %q", res.ValorFormatado)
	}
	if len(res.Itens) != 1 || res.Itens[0].Total != 34.56 {
		t.Fatalf("unexpected itens: %+v", res.Itens)
	}
	if res.Status != "RASCUNHO" || !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
}

func TestFromDespesa(t *testing.T) {
	d := entities.DespesaVeiculo{
		ID:       "d-1",
		Data:     time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Tipo:     entities.TipoDespesaCombustivel,
		Valor:    250,
		Odometro: 10500,
		Status:   entities.DespesaStatusPendente,
	}

	res := FromDespesa(d)
	if res.Data != "2026-03-10" || res.ValorFormatado != "R$ 250,00" {
		t.Fatalf("unexpected despesa response: %+v", res)
	}
}

func TestFromLogin(t *testing.T) {
	exp := time.Now().Add(time.Hour).UTC()
	res := FromLogin(usecase.LoginResult{
		Token:     "tok",
		ExpiresAt: exp,
		User:      entities.User{ID: "u-1", Email: "a@b.com", Role: entities.RoleAdmin, SenhaHash: "hash"},
	})
	if res.TokenType != "Bearer" || res.User.Role != "ADMIN" || !res.ExpiresAt.Equal(exp) {
		t.Fatalf("unexpected login response: %+v", res)
	}
}

func TestFromVendas_EmptyIsNotNil(t *testing.T) {
	if got := FromVendas(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice, got %#v", got)
	}
}

func TestFromDashboard(t *testing.T) {
	res := FromDashboard(entities.DashboardResumo{
		PropostasPorStatus: []entities.StatusTotal{{Status: "APROVADA", Quantidade: 2, Total: 1500}},
		VendasPorMes:       []entities.MesTotal{{Mes: "2026-03", Quantidade: 1, Total: 99.9}},
		DespesasPendentes:  10,
	})
	if res.PropostasPorStatus[0].TotalFormatado != "R$ 1.500,00" {
		t.Fatalf("unexpected status total: %+v", res.PropostasPorStatus)
	}
	if res.VendasPorMes[0].TotalFormatado != "R$ 99,90" || res.DespesasPendentesFormatado != "R$ 10,00" {
		t.Fatalf("unexpected dashboard: %+v", res)
	}
	if res.ClientesPorStatus == nil {
		t.Fatalf("expected empty slice for missing statuses")
	}
}
