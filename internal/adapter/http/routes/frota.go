package routes

import (
	"tractus/internal/adapter/http/middleware"
	"tractus/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathDespesas   = "/despesas-veiculo"
	PathManutencao = "/manutencao"
)

func addFrotaRoutes(rg *gin.RouterGroup, h Handlers) {
	gestores := middleware.RequireRoles(entities.RoleAdmin, entities.RoleGerente)

	despesas := rg.Group(PathDespesas)
	{
		despesas.GET("", h.Despesa.List)
		despesas.POST("", h.Despesa.Create)
		despesas.GET("/:id", h.Despesa.GetByID)
		despesas.PUT("/:id", h.Despesa.Update)
		despesas.DELETE("/:id", h.Despesa.Delete)
		despesas.PATCH("/:id/status", gestores, h.Despesa.UpdateStatus)
	}
	rg.GET("/relatorios/despesas", h.Despesa.Resumo)

	manutencao := rg.Group(PathManutencao)
	{
		manutencao.GET("/configuracoes", h.Manutencao.ListConfiguracoes)
		manutencao.PUT("/configuracoes/:tipo", gestores, h.Manutencao.UpsertConfiguracao)
		manutencao.GET("/alertas/:vendedor_id", h.Manutencao.Alertas)
	}
}
