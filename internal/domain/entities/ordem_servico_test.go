package entities

import "testing"

func TestOrdemServicoStatus_CanTransitionTo(t *testing.T) {
	allowed := map[[2]OrdemServicoStatus]bool{
		{OrdemServicoStatusAberta, OrdemServicoStatusEmExecucao}:    true,
		{OrdemServicoStatusAberta, OrdemServicoStatusCancelada}:     true,
		{OrdemServicoStatusEmExecucao, OrdemServicoStatusConcluida}: true,
		{OrdemServicoStatusEmExecucao, OrdemServicoStatusCancelada}: true,
		{OrdemServicoStatusConcluida, OrdemServicoStatusFaturada}:   true,
	}
	all := []OrdemServicoStatus{
		OrdemServicoStatusAberta, OrdemServicoStatusEmExecucao, OrdemServicoStatusConcluida,
		OrdemServicoStatusFaturada, OrdemServicoStatusCancelada,
	}
	for _, from := range all {
		for _, to := range all {
			want := allowed[[2]OrdemServicoStatus{from, to}]
			if got := from.CanTransitionTo(to); got != want {
				t.Errorf("%s -> %s: expected %v, got %v", from, to, want, got)
			}
		}
	}
}

func TestFormatNumeros(t *testing.T) {
	if got := FormatNumeroOrdemServico(123); got != "OS-000123" {
		t.Fatalf("unexpected %q", got)
	}
	if got := FormatNumeroProposta(1); got != "PROP-000001" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestPropostaStatus(t *testing.T) {
	if !PropostaStatusRascunho.CanTransitionTo(PropostaStatusEnviada) {
		t.Fatalf("expected RASCUNHO -> ENVIADA")
	}
	if PropostaStatusRascunho.CanTransitionTo(PropostaStatusAprovada) {
		t.Fatalf("approval requires a sent proposal")
	}
	if PropostaStatusAprovada.CanTransitionTo(PropostaStatusCancelada) {
		t.Fatalf("APROVADA is terminal")
	}
	if PropostaStatusAprovada.Editable() || !PropostaStatusEnviada.Editable() {
		t.Fatalf("unexpected editable flags")
	}
}

func TestCalcularTotal(t *testing.T) {
	itens := []PropostaItem{
		{Quantidade: 2, ValorUnitario: 150},
		{Quantidade: 1, ValorUnitario: 99.5},
		{Quantidade: 0, ValorUnitario: 10},
		{Quantidade: 3, ValorUnitario: -1},
	}
	if got := CalcularTotal(itens); got != 399.5 {
		t.Fatalf("expected 399.5, got %v", got)
	}
}
