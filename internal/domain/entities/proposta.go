package entities

import (
	"fmt"
	"time"
)

type PropostaStatus string

const (
	PropostaStatusRascunho  PropostaStatus = "RASCUNHO"
	PropostaStatusEnviada   PropostaStatus = "ENVIADA"
	PropostaStatusAprovada  PropostaStatus = "APROVADA"
	PropostaStatusRejeitada PropostaStatus = "REJEITADA"
	PropostaStatusCancelada PropostaStatus = "CANCELADA"
)

var propostaTransitions = map[PropostaStatus][]PropostaStatus{
	PropostaStatusRascunho: {PropostaStatusEnviada, PropostaStatusCancelada},
	PropostaStatusEnviada:  {PropostaStatusAprovada, PropostaStatusRejeitada, PropostaStatusCancelada},
}

func (s PropostaStatus) Valid() bool {
	switch s {
	case PropostaStatusRascunho, PropostaStatusEnviada, PropostaStatusAprovada, PropostaStatusRejeitada, PropostaStatusCancelada:
		return true
	}
	return false
}

func (s PropostaStatus) CanTransitionTo(next PropostaStatus) bool {
	for _, allowed := range propostaTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Editable reports whether items and texts may still change.
func (s PropostaStatus) Editable() bool {
	return s == PropostaStatusRascunho || s == PropostaStatusEnviada
}

// Proposta is a sales quote. At most one OrdemServico is derived from an approved quote.
type Proposta struct {
	ID         string         `json:"id" gorm:"primaryKey;size:36"`
	Numero     string         `json:"numero" gorm:"size:20;not null;uniqueIndex"`
	ClienteID  string         `json:"cliente_id" gorm:"size:36;not null;index"`
	VendedorID string         `json:"vendedor_id" gorm:"size:36;index"`
	Titulo     string         `json:"titulo" gorm:"size:160;not null"`
	Descricao  string         `json:"descricao" gorm:"type:text"`
	Itens      []PropostaItem `json:"itens" gorm:"foreignKey:PropostaID;constraint:OnDelete:CASCADE"`
	ValorTotal float64        `json:"valor_total"`
	Validade   *time.Time     `json:"validade,omitempty"`
	Status     PropostaStatus `json:"status" gorm:"size:20;not null;index"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

func (Proposta) TableName() string { return "propostas" }

type PropostaItem struct {
	ID            string  `json:"id" gorm:"primaryKey;size:36"`
	PropostaID    string  `json:"proposta_id" gorm:"size:36;not null;index"`
	Ordem         int     `json:"ordem"`
	Descricao     string  `json:"descricao" gorm:"size:255;not null"`
	Quantidade    float64 `json:"quantidade"`
	ValorUnitario float64 `json:"valor_unitario"`
}

func (PropostaItem) TableName() string { return "proposta_itens" }

// CalcularTotal ignores lines without a positive quantity and unit price.
func CalcularTotal(itens []PropostaItem) float64 {
	total := 0.0
	for _, it := range itens {
		if it.Quantidade > 0 && it.ValorUnitario > 0 {
			total += it.Quantidade * it.ValorUnitario
		}
	}
	return total
}

type PropostaFilter struct {
	Status     PropostaStatus
	ClienteID  string
	VendedorID string
}

const PrefixoProposta = "PROP-"

func FormatNumeroProposta(seq int64) string {
	return fmt.Sprintf("%s%06d", PrefixoProposta, seq)
}
