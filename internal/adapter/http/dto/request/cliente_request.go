package request

import "tractus/internal/domain/entities"

type ClienteRequest struct {
	Nome       string `json:"nome" binding:"required"`
	VendedorID string `json:"vendedor_id"`
	Documento  string `json:"documento"`
	Email      string `json:"email" binding:"omitempty,email"`
	Telefone   string `json:"telefone"`
	Cidade     string `json:"cidade"`
	UF         string `json:"uf"`
	Endereco   string `json:"endereco"`
	Segmento   string `json:"segmento"`
	Status     string `json:"status"`
}

func (r ClienteRequest) ToEntity() entities.Cliente {
	return entities.Cliente{
		Nome:       r.Nome,
		VendedorID: r.VendedorID,
		Documento:  r.Documento,
		Email:      r.Email,
		Telefone:   r.Telefone,
		Cidade:     r.Cidade,
		UF:         r.UF,
		Endereco:   r.Endereco,
		Segmento:   r.Segmento,
		Status:     entities.ClienteStatus(r.Status),
	}
}

// TextoRequest is the body of note creation and of the correction endpoints.
type TextoRequest struct {
	Texto string `json:"texto" binding:"required"`
}
