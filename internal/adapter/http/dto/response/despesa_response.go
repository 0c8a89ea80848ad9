package response

import (
	"time"

	"tractus/internal/domain/entities"
	"tractus/pkg/ptbr"
)

type DespesaResponse struct {
	ID               string    `json:"id"`
	VendedorID       string    `json:"vendedor_id"`
	Data             string    `json:"data"`
	Tipo             string    `json:"tipo"`
	Valor            float64   `json:"valor"`
	ValorFormatado   string    `json:"valor_formatado"`
	Odometro         int64     `json:"odometro"`
	Descricao        string    `json:"descricao"`
	Status           string    `json:"status"`
	MotivoReprovacao string    `json:"motivo_reprovacao,omitempty"`
	AprovadoPor      string    `json:"aprovado_por,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromDespesa(d entities.DespesaVeiculo) DespesaResponse {
	return DespesaResponse{
		ID:               d.ID,
		VendedorID:       d.VendedorID,
		Data:             d.Data.Format(time.DateOnly),
		Tipo:             string(d.Tipo),
		Valor:            d.Valor,
		ValorFormatado:   ptbr.FormatBRL(d.Valor),
		Odometro:         d.Odometro,
		Descricao:        d.Descricao,
		Status:           string(d.Status),
		MotivoReprovacao: d.MotivoReprovacao,
		AprovadoPor:      d.AprovadoPor,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

func FromDespesas(ds []entities.DespesaVeiculo) []DespesaResponse {
	out := make([]DespesaResponse, 0, len(ds))
	for _, d := range ds {
		out = append(out, FromDespesa(d))
	}
	return out
}
