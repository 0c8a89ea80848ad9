package entities

import (
	"fmt"
	"time"
)

type VisitaStatus string

const (
	VisitaStatusPendente   VisitaStatus = "PENDENTE"
	VisitaStatusConfirmada VisitaStatus = "CONFIRMADA"
	VisitaStatusRealizada  VisitaStatus = "REALIZADA"
	VisitaStatusCancelada  VisitaStatus = "CANCELADA"
)

func (s VisitaStatus) Valid() bool {
	switch s {
	case VisitaStatusPendente, VisitaStatusConfirmada, VisitaStatusRealizada, VisitaStatusCancelada:
		return true
	}
	return false
}

// Terminal visits accept no further transition, edit or cancellation.
func (s VisitaStatus) Terminal() bool {
	return s == VisitaStatusRealizada || s == VisitaStatusCancelada
}

func (s VisitaStatus) rank() int {
	switch s {
	case VisitaStatusPendente:
		return 0
	case VisitaStatusConfirmada:
		return 1
	case VisitaStatusRealizada:
		return 2
	}
	return -1
}

// CanTransitionTo allows forward moves along PENDENTE -> CONFIRMADA -> REALIZADA
// and cancellation from any non-terminal state.
func (s VisitaStatus) CanTransitionTo(next VisitaStatus) bool {
	if s.Terminal() || !next.Valid() {
		return false
	}
	if next == VisitaStatusCancelada {
		return true
	}
	return next.rank() > s.rank()
}

// VisitaTecnica is a scheduled technical visit.
//
// Numero is assigned when the first inspection report is created.
type VisitaTecnica struct {
	ID                 string       `json:"id" gorm:"primaryKey;size:36"`
	Numero             *string      `json:"numero,omitempty" gorm:"size:20;uniqueIndex"`
	ClienteID          string       `json:"cliente_id" gorm:"size:36;not null;index"`
	VendedorID         string       `json:"vendedor_id" gorm:"size:36;index"`
	TecnicoID          string       `json:"tecnico_id" gorm:"size:36;index"`
	DataAgendada       time.Time    `json:"data_agendada" gorm:"not null;index"`
	Endereco           string       `json:"endereco" gorm:"size:255"`
	Objetivo           string       `json:"objetivo" gorm:"type:text"`
	Observacoes        string       `json:"observacoes" gorm:"type:text"`
	Status             VisitaStatus `json:"status" gorm:"size:20;not null;index"`
	MotivoCancelamento string       `json:"motivo_cancelamento,omitempty" gorm:"type:text"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}

func (VisitaTecnica) TableName() string { return "visitas_tecnicas" }

type VisitaFilter struct {
	Status     VisitaStatus
	VendedorID string
	ClienteID  string
	// Data restricts to visits scheduled on that calendar day.
	Data *time.Time
}

// PrefixoNumeroVisita is the DD/MM/YYYY- prefix shared by every visit numbered on day.
func PrefixoNumeroVisita(day time.Time) string {
	return day.Format("02/01/2006") + "-"
}

func FormatNumeroVisita(day time.Time, seq int64) string {
	return fmt.Sprintf("%s%04d", PrefixoNumeroVisita(day), seq)
}
