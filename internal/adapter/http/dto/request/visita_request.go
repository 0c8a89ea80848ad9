package request

import (
	"time"

	"tractus/internal/domain/entities"
)

type VisitaRequest struct {
	ClienteID    string    `json:"cliente_id" binding:"required"`
	VendedorID   string    `json:"vendedor_id"`
	TecnicoID    string    `json:"tecnico_id"`
	DataAgendada time.Time `json:"data_agendada" binding:"required"`
	Endereco     string    `json:"endereco"`
	Objetivo     string    `json:"objetivo"`
	Observacoes  string    `json:"observacoes"`
}

func (r VisitaRequest) ToEntity() entities.VisitaTecnica {
	return entities.VisitaTecnica{
		ClienteID:    r.ClienteID,
		VendedorID:   r.VendedorID,
		TecnicoID:    r.TecnicoID,
		DataAgendada: r.DataAgendada,
		Endereco:     r.Endereco,
		Objetivo:     r.Objetivo,
		Observacoes:  r.Observacoes,
	}
}

// UpdateVisitaRequest rebooks a visit. The client cannot change after creation.
type UpdateVisitaRequest struct {
	VendedorID   string    `json:"vendedor_id"`
	TecnicoID    string    `json:"tecnico_id"`
	DataAgendada time.Time `json:"data_agendada" binding:"required"`
	Endereco     string    `json:"endereco"`
	Objetivo     string    `json:"objetivo"`
	Observacoes  string    `json:"observacoes"`
}

func (r UpdateVisitaRequest) ToEntity() entities.VisitaTecnica {
	return entities.VisitaTecnica{
		VendedorID:   r.VendedorID,
		TecnicoID:    r.TecnicoID,
		DataAgendada: r.DataAgendada,
		Endereco:     r.Endereco,
		Objetivo:     r.Objetivo,
		Observacoes:  r.Observacoes,
	}
}
