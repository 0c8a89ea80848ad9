package entities

import "time"

// ConfiguracaoManutencao is the service interval of one expense type.
type ConfiguracaoManutencao struct {
	ID          string      `json:"id" gorm:"primaryKey;size:36"`
	TipoDespesa TipoDespesa `json:"tipo_despesa" yaml:"tipo_despesa" gorm:"size:20;not null;uniqueIndex"`
	IntervaloKm int64       `json:"intervalo_km" yaml:"intervalo_km"`
	Descricao   string      `json:"descricao" yaml:"descricao" gorm:"size:160"`
	CreatedAt   time.Time   `json:"created_at" yaml:"-"`
	UpdatedAt   time.Time   `json:"updated_at" yaml:"-"`
}

func (ConfiguracaoManutencao) TableName() string { return "configuracoes_manutencao" }

type AlertaStatus string

const (
	AlertaStatusOK      AlertaStatus = "OK"
	AlertaStatusProximo AlertaStatus = "PROXIMO"
	AlertaStatusVencido AlertaStatus = "VENCIDO"
)

const (
	LimiarProximo = 80.0
	LimiarVencido = 100.0
)

type AlertaManutencao struct {
	TipoDespesa           TipoDespesa  `json:"tipo_despesa"`
	Descricao             string       `json:"descricao"`
	IntervaloKm           int64        `json:"intervalo_km"`
	OdometroAtual         int64        `json:"odometro_atual"`
	OdometroUltimoServico int64        `json:"odometro_ultimo_servico"`
	KmDesdeServico        int64        `json:"km_desde_servico"`
	Percentual            float64      `json:"percentual"`
	Status                AlertaStatus `json:"status"`
}

func ClassificarPercentual(pct float64) AlertaStatus {
	switch {
	case pct >= LimiarVencido:
		return AlertaStatusVencido
	case pct >= LimiarProximo:
		return AlertaStatusProximo
	default:
		return AlertaStatusOK
	}
}

// CalcularAlerta expects cfg.IntervaloKm > 0.
func CalcularAlerta(cfg ConfiguracaoManutencao, odometroAtual, odometroUltimoServico int64) AlertaManutencao {
	km := odometroAtual - odometroUltimoServico
	if km < 0 {
		km = 0
	}
	pct := float64(km) / float64(cfg.IntervaloKm) * 100
	return AlertaManutencao{
		TipoDespesa:           cfg.TipoDespesa,
		Descricao:             cfg.Descricao,
		IntervaloKm:           cfg.IntervaloKm,
		OdometroAtual:         odometroAtual,
		OdometroUltimoServico: odometroUltimoServico,
		KmDesdeServico:        km,
		Percentual:            pct,
		Status:                ClassificarPercentual(pct),
	}
}
