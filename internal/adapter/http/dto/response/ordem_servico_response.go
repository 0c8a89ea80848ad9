package response

import (
	"time"

	"tractus/internal/domain/entities"
	"tractus/pkg/ptbr"
)

type OrdemServicoResponse struct {
	ID              string     `json:"id"`
	Numero          string     `json:"numero"`
	PropostaID      string     `json:"proposta_id"`
	ClienteID       string     `json:"cliente_id"`
	VendedorID      string     `json:"vendedor_id"`
	Descricao       string     `json:"descricao"`
	Valor           float64    `json:"valor"`
	ValorFormatado  string     `json:"valor_formatado"`
	Status          string     `json:"status"`
	DataConclusao   *time.Time `json:"data_conclusao,omitempty"`
	DataFaturamento *time.Time `json:"data_faturamento,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func FromOrdemServico(o entities.OrdemServico) OrdemServicoResponse {
	return OrdemServicoResponse{
		ID:              o.ID,
		Numero:          o.Numero,
		PropostaID:      o.PropostaID,
		ClienteID:       o.ClienteID,
		VendedorID:      o.VendedorID,
		Descricao:       o.Descricao,
		Valor:           o.Valor,
		ValorFormatado:  ptbr.FormatBRL(o.Valor),
		Status:          string(o.Status),
		DataConclusao:   o.DataConclusao,
		DataFaturamento: o.DataFaturamento,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func FromOrdensServico(os []entities.OrdemServico) []OrdemServicoResponse {
	out := make([]OrdemServicoResponse, 0, len(os))
	for _, o := range os {
		out = append(out, FromOrdemServico(o))
	}
	return out
}

type VendaResponse struct {
	ID              string    `json:"id"`
	OrdemServicoID  string    `json:"ordem_servico_id"`
	ClienteID       string    `json:"cliente_id"`
	VendedorID      string    `json:"vendedor_id"`
	Valor           float64   `json:"valor"`
	ValorFormatado  string    `json:"valor_formatado"`
	DataVenda       time.Time `json:"data_venda"`
	StatusPagamento string    `json:"status_pagamento"`
	PagamentoID     string    `json:"pagamento_id,omitempty"`
}

func FromVenda(v entities.Venda) VendaResponse {
	return VendaResponse{
		ID:              v.ID,
		OrdemServicoID:  v.OrdemServicoID,
		ClienteID:       v.ClienteID,
		VendedorID:      v.VendedorID,
		Valor:           v.Valor,
		ValorFormatado:  ptbr.FormatBRL(v.Valor),
		DataVenda:       v.DataVenda,
		StatusPagamento: string(v.StatusPagamento),
		PagamentoID:     v.PagamentoID,
	}
}

func FromVendas(vs []entities.Venda) []VendaResponse {
	out := make([]VendaResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromVenda(v))
	}
	return out
}
