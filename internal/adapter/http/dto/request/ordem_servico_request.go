package request

import "tractus/internal/usecase"

type CreateOrdemServicoRequest struct {
	PropostaID string `json:"proposta_id" binding:"required"`
	Descricao  string `json:"descricao"`
}

type UpdateOrdemServicoRequest struct {
	Descricao *string  `json:"descricao"`
	Valor     *float64 `json:"valor"`
}

func (r UpdateOrdemServicoRequest) ToCommand() usecase.UpdateOrdemServicoCommand {
	return usecase.UpdateOrdemServicoCommand{Descricao: r.Descricao, Valor: r.Valor}
}
