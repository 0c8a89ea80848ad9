package response

import (
	"tractus/internal/domain/entities"
	"tractus/pkg/ptbr"
)

type StatusTotalResponse struct {
	Status         string  `json:"status"`
	Quantidade     int64   `json:"quantidade"`
	Total          float64 `json:"total"`
	TotalFormatado string  `json:"total_formatado"`
}

type MesTotalResponse struct {
	Mes            string  `json:"mes"`
	Quantidade     int64   `json:"quantidade"`
	Total          float64 `json:"total"`
	TotalFormatado string  `json:"total_formatado"`
}

type DashboardResponse struct {
	ClientesPorStatus          []StatusTotalResponse `json:"clientes_por_status"`
	PropostasPorStatus         []StatusTotalResponse `json:"propostas_por_status"`
	OrdensPorStatus            []StatusTotalResponse `json:"ordens_por_status"`
	VendasPorMes               []MesTotalResponse    `json:"vendas_por_mes"`
	DespesasPendentes          float64               `json:"despesas_pendentes"`
	DespesasPendentesFormatado string                `json:"despesas_pendentes_formatado"`
}

func FromDashboard(d entities.DashboardResumo) DashboardResponse {
	meses := make([]MesTotalResponse, 0, len(d.VendasPorMes))
	for _, m := range d.VendasPorMes {
		meses = append(meses, MesTotalResponse{
			Mes:            m.Mes,
			Quantidade:     m.Quantidade,
			Total:          m.Total,
			TotalFormatado: ptbr.FormatBRL(m.Total),
		})
	}
	return DashboardResponse{
		ClientesPorStatus:          fromStatusTotals(d.ClientesPorStatus),
		PropostasPorStatus:         fromStatusTotals(d.PropostasPorStatus),
		OrdensPorStatus:            fromStatusTotals(d.OrdensPorStatus),
		VendasPorMes:               meses,
		DespesasPendentes:          d.DespesasPendentes,
		DespesasPendentesFormatado: ptbr.FormatBRL(d.DespesasPendentes),
	}
}

func fromStatusTotals(in []entities.StatusTotal) []StatusTotalResponse {
	out := make([]StatusTotalResponse, 0, len(in))
	for _, s := range in {
		out = append(out, StatusTotalResponse{
			Status:         s.Status,
			Quantidade:     s.Quantidade,
			Total:          s.Total,
			TotalFormatado: ptbr.FormatBRL(s.Total),
		})
	}
	return out
}
