package entities

import "time"

type LaudoStatus string

const (
	LaudoStatusRascunho LaudoStatus = "RASCUNHO"
	LaudoStatusEnviado  LaudoStatus = "ENVIADO"
)

type CondicaoComponente string

const (
	CondicaoBom     CondicaoComponente = "BOM"
	CondicaoRegular CondicaoComponente = "REGULAR"
	CondicaoRuim    CondicaoComponente = "RUIM"
	CondicaoCritico CondicaoComponente = "CRITICO"
)

func (c CondicaoComponente) Valid() bool {
	switch c {
	case CondicaoBom, CondicaoRegular, CondicaoRuim, CondicaoCritico:
		return true
	}
	return false
}

// LaudoInspecao is the inspection report of a VisitaTecnica (1:1).
// ENVIADO is terminal.
type LaudoInspecao struct {
	ID            string               `json:"id" gorm:"primaryKey;size:36"`
	VisitaID      string               `json:"visita_id" gorm:"size:36;not null;uniqueIndex"`
	Numero        string               `json:"numero" gorm:"size:20;index"`
	ClienteID     string               `json:"cliente_id" gorm:"size:36;index"`
	Equipamento   string               `json:"equipamento" gorm:"size:160;not null"`
	Modelo        string               `json:"modelo" gorm:"size:120"`
	NumeroSerie   string               `json:"numero_serie" gorm:"size:80"`
	Horimetro     float64              `json:"horimetro"`
	Conclusao     string               `json:"conclusao" gorm:"type:text"`
	Recomendacoes string               `json:"recomendacoes" gorm:"type:text"`
	Status        LaudoStatus          `json:"status" gorm:"size:20;not null;index"`
	DataEnvio     *time.Time           `json:"data_envio,omitempty"`
	Componentes   []ComponenteInspecao `json:"componentes" gorm:"foreignKey:LaudoID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

func (LaudoInspecao) TableName() string { return "laudos_inspecao" }

func (l LaudoInspecao) Enviado() bool {
	return l.Status == LaudoStatusEnviado
}

type ComponenteInspecao struct {
	ID         string             `json:"id" gorm:"primaryKey;size:36"`
	LaudoID    string             `json:"laudo_id" gorm:"size:36;not null;index"`
	Ordem      int                `json:"ordem" gorm:"not null"`
	Nome       string             `json:"nome" gorm:"size:120;not null"`
	Condicao   CondicaoComponente `json:"condicao" gorm:"size:20;not null"`
	Observacao string             `json:"observacao" gorm:"type:text"`
}

func (ComponenteInspecao) TableName() string { return "componentes_inspecao" }

type LaudoFilter struct {
	VisitaID string
	Status   LaudoStatus
}
