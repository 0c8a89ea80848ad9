package entities

import (
	"fmt"
	"time"
)

type OrdemServicoStatus string

const (
	OrdemServicoStatusAberta     OrdemServicoStatus = "ABERTA"
	OrdemServicoStatusEmExecucao OrdemServicoStatus = "EM_EXECUCAO"
	OrdemServicoStatusConcluida  OrdemServicoStatus = "CONCLUIDA"
	OrdemServicoStatusFaturada   OrdemServicoStatus = "FATURADA"
	OrdemServicoStatusCancelada  OrdemServicoStatus = "CANCELADA"
)

// One step forward at a time; cancel only before completion.
var ordemServicoTransitions = map[OrdemServicoStatus][]OrdemServicoStatus{
	OrdemServicoStatusAberta:     {OrdemServicoStatusEmExecucao, OrdemServicoStatusCancelada},
	OrdemServicoStatusEmExecucao: {OrdemServicoStatusConcluida, OrdemServicoStatusCancelada},
	OrdemServicoStatusConcluida:  {OrdemServicoStatusFaturada},
}

func (s OrdemServicoStatus) Valid() bool {
	switch s {
	case OrdemServicoStatusAberta, OrdemServicoStatusEmExecucao, OrdemServicoStatusConcluida,
		OrdemServicoStatusFaturada, OrdemServicoStatusCancelada:
		return true
	}
	return false
}

func (s OrdemServicoStatus) CanTransitionTo(next OrdemServicoStatus) bool {
	for _, allowed := range ordemServicoTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// OrdemServico is the work order derived from an approved Proposta.
type OrdemServico struct {
	ID              string             `json:"id" gorm:"primaryKey;size:36"`
	Numero          string             `json:"numero" gorm:"size:20;not null;uniqueIndex"`
	PropostaID      string             `json:"proposta_id" gorm:"size:36;not null;uniqueIndex"`
	ClienteID       string             `json:"cliente_id" gorm:"size:36;not null;index"`
	VendedorID      string             `json:"vendedor_id" gorm:"size:36;index"`
	Descricao       string             `json:"descricao" gorm:"type:text"`
	Valor           float64            `json:"valor"`
	Status          OrdemServicoStatus `json:"status" gorm:"size:20;not null;index"`
	DataConclusao   *time.Time         `json:"data_conclusao,omitempty"`
	DataFaturamento *time.Time         `json:"data_faturamento,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

func (OrdemServico) TableName() string { return "ordens_servico" }

type OrdemServicoFilter struct {
	Status     OrdemServicoStatus
	ClienteID  string
	VendedorID string
}

const PrefixoOrdemServico = "OS-"

func FormatNumeroOrdemServico(seq int64) string {
	return fmt.Sprintf("%s%06d", PrefixoOrdemServico, seq)
}

type PagamentoStatus string

const (
	PagamentoStatusPendente PagamentoStatus = "PENDENTE"
	PagamentoStatusPago     PagamentoStatus = "PAGO"
)

// Venda is the sales record created when an OrdemServico is billed.
//
// Storage model: unique ordem_servico_id guarantees one sale per order.
type Venda struct {
	ID               string          `json:"id" gorm:"primaryKey;size:36"`
	OrdemServicoID   string          `json:"ordem_servico_id" gorm:"size:36;not null;uniqueIndex"`
	ClienteID        string          `json:"cliente_id" gorm:"size:36;not null;index"`
	VendedorID       string          `json:"vendedor_id" gorm:"size:36;index"`
	Valor            float64         `json:"valor"`
	DataVenda        time.Time       `json:"data_venda" gorm:"index"`
	StatusPagamento  PagamentoStatus `json:"status_pagamento" gorm:"size:20;not null"`
	PagamentoID      string          `json:"pagamento_id,omitempty" gorm:"size:64"`
	PagamentoPayload string          `json:"-" gorm:"type:text"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func (Venda) TableName() string { return "vendas" }

type VendaFilter struct {
	VendedorID string
	// Mes is YYYY-MM.
	Mes string
}
