package request

import "tractus/internal/domain/entities"

type ComponenteRequest struct {
	Nome       string `json:"nome" binding:"required"`
	Condicao   string `json:"condicao" binding:"required,oneof=BOM REGULAR RUIM CRITICO"`
	Observacao string `json:"observacao"`
}

// LaudoRequest serves both create and update; VisitaID is ignored on update.
type LaudoRequest struct {
	VisitaID      string              `json:"visita_id"`
	Equipamento   string              `json:"equipamento" binding:"required"`
	Modelo        string              `json:"modelo"`
	NumeroSerie   string              `json:"numero_serie"`
	Horimetro     float64             `json:"horimetro" binding:"gte=0"`
	Conclusao     string              `json:"conclusao"`
	Recomendacoes string              `json:"recomendacoes"`
	Componentes   []ComponenteRequest `json:"componentes" binding:"dive"`
}

func (r LaudoRequest) ToEntity() entities.LaudoInspecao {
	l := entities.LaudoInspecao{
		VisitaID:      r.VisitaID,
		Equipamento:   r.Equipamento,
		Modelo:        r.Modelo,
		NumeroSerie:   r.NumeroSerie,
		Horimetro:     r.Horimetro,
		Conclusao:     r.Conclusao,
		Recomendacoes: r.Recomendacoes,
	}
	for _, c := range r.Componentes {
		l.Componentes = append(l.Componentes, entities.ComponenteInspecao{
			Nome:       c.Nome,
			Condicao:   entities.CondicaoComponente(c.Condicao),
			Observacao: c.Observacao,
		})
	}
	return l
}
