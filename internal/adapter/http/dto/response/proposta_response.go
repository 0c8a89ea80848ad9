package response

import (
	"time"

	"tractus/internal/domain/entities"
	"tractus/pkg/ptbr"
)

type PropostaItemResponse struct {
	ID            string  `json:"id"`
	Ordem         int     `json:"ordem"`
	Descricao     string  `json:"descricao"`
	Quantidade    float64 `json:"quantidade"`
	ValorUnitario float64 `json:"valor_unitario"`
	Total         float64 `json:"total"`
}

type PropostaResponse struct {
	ID             string                 `json:"id"`
	Numero         string                 `json:"numero"`
	ClienteID      string                 `json:"cliente_id"`
	VendedorID     string                 `json:"vendedor_id"`
	Titulo         string                 `json:"titulo"`
	Descricao      string                 `json:"descricao"`
	Itens          []PropostaItemResponse `json:"itens"`
	ValorTotal     float64                `json:"valor_total"`
	ValorFormatado string                 `json:"valor_formatado"`
	Validade       *time.Time             `json:"validade,omitempty"`
	Status         string                 `json:"status"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

func FromProposta(p entities.Proposta) PropostaResponse {
	itens := make([]PropostaItemResponse, 0, len(p.Itens))
	for _, it := range p.Itens {
		itens = append(itens, PropostaItemResponse{
			ID:            it.ID,
			Ordem:         it.Ordem,
			Descricao:     it.Descricao,
			Quantidade:    it.Quantidade,
			ValorUnitario: it.ValorUnitario,
			Total:         it.Quantidade * it.ValorUnitario,
		})
	}
	return PropostaResponse{
		ID:             p.ID,
		Numero:         p.Numero,
		ClienteID:      p.ClienteID,
		VendedorID:     p.VendedorID,
		Titulo:         p.Titulo,
		Descricao:      p.Descricao,
		Itens:          itens,
		ValorTotal:     p.ValorTotal,
		ValorFormatado: ptbr.FormatBRL(p.ValorTotal),
		Validade:       p.Validade,
		Status:         string(p.Status),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func FromPropostas(ps []entities.Proposta) []PropostaResponse {
	out := make([]PropostaResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProposta(p))
	}
	return out
}
