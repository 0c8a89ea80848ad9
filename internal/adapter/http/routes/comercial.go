package routes

import "github.com/gin-gonic/gin"

const (
	PathClientes      = "/clientes"
	PathPropostas     = "/propostas"
	PathOrdensServico = "/ordens-servico"
	PathVendas        = "/vendas"
)

func addComercialRoutes(rg *gin.RouterGroup, h Handlers, aiLimit gin.HandlerFunc) {
	clientes := rg.Group(PathClientes)
	{
		clientes.GET("", h.Cliente.List)
		clientes.POST("", h.Cliente.Create)
		clientes.GET("/:id", h.Cliente.GetByID)
		clientes.PUT("/:id", h.Cliente.Update)
		clientes.DELETE("/:id", h.Cliente.Delete)

		clientes.GET("/:id/anotacoes", h.Cliente.ListAnotacoes)
		clientes.POST("/:id/anotacoes", h.Cliente.CreateAnotacao)
		clientes.DELETE("/:id/anotacoes/:anotacao_id", h.Cliente.DeleteAnotacao)
		clientes.POST("/:id/anotacoes/corrigir", aiLimit, h.Cliente.CorrigirAnotacao)
		clientes.POST("/:id/anotacoes/resumo", aiLimit, h.Cliente.ResumirAnotacoes)
	}

	propostas := rg.Group(PathPropostas)
	{
		propostas.GET("", h.Proposta.List)
		propostas.POST("", h.Proposta.Create)
		propostas.GET("/:id", h.Proposta.GetByID)
		propostas.PUT("/:id", h.Proposta.Update)
		propostas.DELETE("/:id", h.Proposta.Delete)
		propostas.PATCH("/:id/status", h.Proposta.UpdateStatus)
	}

	ordens := rg.Group(PathOrdensServico)
	{
		ordens.GET("", h.OrdemServico.List)
		ordens.POST("", h.OrdemServico.Create)
		ordens.GET("/:id", h.OrdemServico.GetByID)
		ordens.PUT("/:id", h.OrdemServico.Update)
		ordens.DELETE("/:id", h.OrdemServico.Delete)
		ordens.PATCH("/:id/status", h.OrdemServico.UpdateStatus)
	}

	vendas := rg.Group(PathVendas)
	{
		vendas.GET("", h.Venda.List)
		vendas.GET("/:id", h.Venda.GetByID)
		vendas.POST("/:id/pagamento", h.Venda.RegistrarPagamento)
	}
}
