package request

import (
	"errors"
	"strings"
	"time"

	"tractus/internal/domain/entities"
)

var ErrInvalidValidade = errors.New("validade must be YYYY-MM-DD")

type PropostaItemRequest struct {
	Descricao     string  `json:"descricao" binding:"required"`
	Quantidade    float64 `json:"quantidade" binding:"gt=0"`
	ValorUnitario float64 `json:"valor_unitario" binding:"gte=0"`
}

type PropostaRequest struct {
	ClienteID  string                `json:"cliente_id" binding:"required"`
	VendedorID string                `json:"vendedor_id"`
	Titulo     string                `json:"titulo" binding:"required"`
	Descricao  string                `json:"descricao"`
	Validade   string                `json:"validade"`
	Itens      []PropostaItemRequest `json:"itens" binding:"required,min=1,dive"`
}

func (r PropostaRequest) ToEntity() (entities.Proposta, error) {
	p := entities.Proposta{
		ClienteID:  r.ClienteID,
		VendedorID: r.VendedorID,
		Titulo:     r.Titulo,
		Descricao:  r.Descricao,
	}
	if v := strings.TrimSpace(r.Validade); v != "" {
		t, err := time.Parse(time.DateOnly, v)
		if err != nil {
			return entities.Proposta{}, ErrInvalidValidade
		}
		p.Validade = &t
	}
	for _, it := range r.Itens {
		p.Itens = append(p.Itens, entities.PropostaItem{
			Descricao:     it.Descricao,
			Quantidade:    it.Quantidade,
			ValorUnitario: it.ValorUnitario,
		})
	}
	return p, nil
}

// StatusRequest drives every PATCH .../status route; Motivo is used by visits and expenses.
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
	Motivo string `json:"motivo"`
}
