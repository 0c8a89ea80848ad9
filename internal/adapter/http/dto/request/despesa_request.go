package request

import (
	"errors"
	"time"

	"tractus/internal/domain/entities"
)

var (
	ErrInvalidData         = errors.New("data must be YYYY-MM-DD")
	ErrOdometroObrigatorio = errors.New("odometro is required")
)

type DespesaRequest struct {
	VendedorID string  `json:"vendedor_id" binding:"required"`
	Data       string  `json:"data" binding:"required"`
	Tipo       string  `json:"tipo" binding:"required"`
	Valor      float64 `json:"valor" binding:"required"`
	Odometro   *int64  `json:"odometro" binding:"required,gte=0"`
	Descricao  string  `json:"descricao"`
}

func (r DespesaRequest) ToEntity() (entities.DespesaVeiculo, error) {
	data, err := time.Parse(time.DateOnly, r.Data)
	if err != nil {
		return entities.DespesaVeiculo{}, ErrInvalidData
	}
	if r.Odometro == nil {
		return entities.DespesaVeiculo{}, ErrOdometroObrigatorio
	}
	return entities.DespesaVeiculo{
		VendedorID: r.VendedorID,
		Data:       data,
		Tipo:       entities.TipoDespesa(r.Tipo),
		Valor:      r.Valor,
		Odometro:   *r.Odometro,
		Descricao:  r.Descricao,
	}, nil
}

type ConfiguracaoManutencaoRequest struct {
	IntervaloKm int64  `json:"intervalo_km" binding:"required"`
	Descricao   string `json:"descricao"`
}
