package entities

import "time"

type ClienteStatus string

const (
	ClienteStatusProspect ClienteStatus = "PROSPECT"
	ClienteStatusAtivo    ClienteStatus = "ATIVO"
	ClienteStatusInativo  ClienteStatus = "INATIVO"
)

func (s ClienteStatus) Valid() bool {
	switch s {
	case ClienteStatusProspect, ClienteStatusAtivo, ClienteStatusInativo:
		return true
	}
	return false
}

// Cliente is a customer of the company.
//
// NomeBusca keeps the accent-folded, lower-case name used by the list search.
type Cliente struct {
	ID         string        `json:"id" gorm:"primaryKey;size:36"`
	VendedorID string        `json:"vendedor_id" gorm:"size:36;index"`
	Nome       string        `json:"nome" gorm:"size:160;not null"`
	NomeBusca  string        `json:"-" gorm:"size:160;index"`
	Documento  string        `json:"documento" gorm:"size:20;index"`
	Email      string        `json:"email" gorm:"size:160"`
	Telefone   string        `json:"telefone" gorm:"size:30"`
	Cidade     string        `json:"cidade" gorm:"size:80"`
	UF         string        `json:"uf" gorm:"size:2"`
	Endereco   string        `json:"endereco" gorm:"size:255"`
	Segmento   string        `json:"segmento" gorm:"size:80"`
	Status     ClienteStatus `json:"status" gorm:"size:20;not null;index"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

func (Cliente) TableName() string { return "clientes" }

// ClienteAnotacao is a free-text note attached to a client.
type ClienteAnotacao struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	ClienteID string    `json:"cliente_id" gorm:"size:36;not null;index"`
	AutorID   string    `json:"autor_id" gorm:"size:36"`
	Texto     string    `json:"texto" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (ClienteAnotacao) TableName() string { return "cliente_anotacoes" }

type ClienteFilter struct {
	Busca      string
	VendedorID string
	Status     ClienteStatus
}
