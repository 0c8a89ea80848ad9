package routes

import (
	"tractus/internal/adapter/http/middleware"
	"tractus/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathUsuarios   = "/usuarios"
	PathVendedores = "/vendedores"
)

func addAdminRoutes(rg *gin.RouterGroup, h Handlers) {
	rg.GET("/auth/me", h.Auth.Me)
	rg.GET("/dashboard/resumo", h.Dashboard.Resumo)

	usuarios := rg.Group(PathUsuarios, middleware.RequireRoles(entities.RoleAdmin))
	{
		usuarios.GET("", h.User.List)
		usuarios.POST("", h.User.Create)
		usuarios.GET("/:id", h.User.GetByID)
		usuarios.PUT("/:id", h.User.Update)
		usuarios.DELETE("/:id", h.User.Delete)
	}

	vendedores := rg.Group(PathVendedores)
	{
		vendedores.GET("", h.Vendedor.List)
		vendedores.GET("/:id", h.Vendedor.GetByID)
		vendedores.PUT("/:id", middleware.RequireRoles(entities.RoleAdmin, entities.RoleGerente), h.Vendedor.Update)
	}
}
