package entities

import "time"

type TipoDespesa string

const (
	TipoDespesaCombustivel TipoDespesa = "COMBUSTIVEL"
	TipoDespesaTrocaOleo   TipoDespesa = "TROCA_OLEO"
	TipoDespesaPneus       TipoDespesa = "PNEUS"
	TipoDespesaRevisao     TipoDespesa = "REVISAO"
	TipoDespesaFreios      TipoDespesa = "FREIOS"
	TipoDespesaPedagio     TipoDespesa = "PEDAGIO"
	TipoDespesaAlimentacao TipoDespesa = "ALIMENTACAO"
	TipoDespesaHospedagem  TipoDespesa = "HOSPEDAGEM"
	TipoDespesaOutros      TipoDespesa = "OUTROS"
)

func (t TipoDespesa) Valid() bool {
	switch t {
	case TipoDespesaCombustivel, TipoDespesaTrocaOleo, TipoDespesaPneus, TipoDespesaRevisao, TipoDespesaFreios,
		TipoDespesaPedagio, TipoDespesaAlimentacao, TipoDespesaHospedagem, TipoDespesaOutros:
		return true
	}
	return false
}

type DespesaStatus string

const (
	DespesaStatusPendente  DespesaStatus = "PENDENTE"
	DespesaStatusAprovada  DespesaStatus = "APROVADA"
	DespesaStatusReprovada DespesaStatus = "REPROVADA"
)

func (s DespesaStatus) Valid() bool {
	switch s {
	case DespesaStatusPendente, DespesaStatusAprovada, DespesaStatusReprovada:
		return true
	}
	return false
}

// DespesaVeiculo is a vehicle expense line of a salesperson.
//
// Odometro is in km and never decreases per salesperson (REPROVADA lines excluded).
type DespesaVeiculo struct {
	ID               string        `json:"id" gorm:"primaryKey;size:36"`
	VendedorID       string        `json:"vendedor_id" gorm:"size:36;not null;index"`
	Data             time.Time     `json:"data" gorm:"not null;index"`
	Tipo             TipoDespesa   `json:"tipo" gorm:"size:20;not null;index"`
	Valor            float64       `json:"valor"`
	Odometro         int64         `json:"odometro"`
	Descricao        string        `json:"descricao" gorm:"type:text"`
	Status           DespesaStatus `json:"status" gorm:"size:20;not null;index"`
	MotivoReprovacao string        `json:"motivo_reprovacao,omitempty" gorm:"type:text"`
	AprovadoPor      string        `json:"aprovado_por,omitempty" gorm:"size:36"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

func (DespesaVeiculo) TableName() string { return "despesas_veiculo" }

type DespesaFilter struct {
	VendedorID string
	Status     DespesaStatus
	Tipo       TipoDespesa
	// Mes is YYYY-MM.
	Mes string
}

type ResumoDespesaFilter struct {
	VendedorID string
	Ano        int
}

// ResumoDespesa is one (month, type) bucket of the expense report.
type ResumoDespesa struct {
	Mes        string      `json:"mes"`
	Tipo       TipoDespesa `json:"tipo"`
	Quantidade int64       `json:"quantidade"`
	Total      float64     `json:"total"`
}
