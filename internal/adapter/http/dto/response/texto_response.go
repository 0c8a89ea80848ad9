package response

import "tractus/internal/usecase"

type CorrecaoResponse struct {
	Original  string `json:"texto_original"`
	Corrigido string `json:"texto_corrigido"`
	Alterado  bool   `json:"corrigido"`
}

func FromCorrecao(c usecase.CorrecaoTexto) CorrecaoResponse {
	return CorrecaoResponse{Original: c.Original, Corrigido: c.Corrigido, Alterado: c.Alterado}
}

type ResumoResponse struct {
	Resumo      string `json:"resumo"`
	GeradoPorIA bool   `json:"gerado_por_ia"`
	Quantidade  int    `json:"quantidade_anotacoes"`
}

func FromResumo(r usecase.ResumoAnotacoes) ResumoResponse {
	return ResumoResponse{Resumo: r.Resumo, GeradoPorIA: r.GeradoPorIA, Quantidade: r.Quantidade}
}
