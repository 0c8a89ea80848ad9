package request

import (
	"errors"
	"testing"

	"tractus/internal/domain/entities"
)

func TestPropostaRequest_ToEntity(t *testing.T) {
	r := PropostaRequest{
		ClienteID: "c-1",
		Titulo:    "Revisão",
		Validade:  "2026-04-30",
		Itens:     []PropostaItemRequest{{Descricao: "Óleo", Quantidade: 3, ValorUnitario: 40}},
	}
	p, err := r.ToEntity()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Validade == nil || p.Validade.Day() != 30 {
		t.Fatalf("unexpected validade: %v", p.Validade)
	}
	if len(p.Itens) != 1 || p.Itens[0].ValorUnitario != 40 {
		t.Fatalf("unexpected itens: %+v", p.Itens)
	}

	r.Validade = "30/04/2026"
	if _, err := r.ToEntity(); !errors.Is(err, ErrInvalidValidade) {
		t.Fatalf("expected ErrInvalidValidade, got %v", err)
	}
}

func TestDespesaRequest_ToEntity(t *testing.T) {
	km := int64(40100)
	d, err := DespesaRequest{VendedorID: "v-1", Data: "2026-03-01", Tipo: "PNEUS", Valor: 900, Odometro: &km}.ToEntity()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Tipo != entities.TipoDespesaPneus || d.Data.Month() != 3 || d.Odometro != 40100 {
		t.Fatalf("unexpected despesa: %+v", d)
	}

	if _, err := (DespesaRequest{Data: "ontem"}).ToEntity(); !errors.Is(err, ErrInvalidData) {
		t.Fatalf("expected ErrInvalidData, got %v", err)
	}
	if _, err := (DespesaRequest{Data: "2026-03-01"}).ToEntity(); !errors.Is(err, ErrOdometroObrigatorio) {
		t.Fatalf("expected ErrOdometroObrigatorio, got %v", err)
	}
}

func TestLaudoRequest_ToEntity(t *testing.T) {
	l := LaudoRequest{
		VisitaID:    "vis-1",
		Equipamento: "Escavadeira",
		Componentes: []ComponenteRequest{{Nome: "Esteira", Condicao: "RUIM"}},
	}.ToEntity()
	if l.VisitaID != "vis-1" || len(l.Componentes) != 1 || l.Componentes[0].Condicao != entities.CondicaoRuim {
		t.Fatalf("unexpected laudo: %+v", l)
	}
}
