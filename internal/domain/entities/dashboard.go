package entities

// StatusTotal is a count/sum bucket keyed by a status value.
type StatusTotal struct {
	Status     string  `json:"status"`
	Quantidade int64   `json:"quantidade"`
	Total      float64 `json:"total"`
}

type MesTotal struct {
	Mes        string  `json:"mes"`
	Quantidade int64   `json:"quantidade"`
	Total      float64 `json:"total"`
}

type DashboardResumo struct {
	ClientesPorStatus  []StatusTotal `json:"clientes_por_status"`
	PropostasPorStatus []StatusTotal `json:"propostas_por_status"`
	OrdensPorStatus    []StatusTotal `json:"ordens_por_status"`
	VendasPorMes       []MesTotal    `json:"vendas_por_mes"`
	DespesasPendentes  float64       `json:"despesas_pendentes"`
}
