package routes

import "github.com/gin-gonic/gin"

const (
	PathVisitas = "/visitas-tecnicas"
	PathLaudos  = "/laudos"
)

func addCampoRoutes(rg *gin.RouterGroup, h Handlers, aiLimit gin.HandlerFunc) {
	visitas := rg.Group(PathVisitas)
	{
		visitas.GET("", h.Visita.List)
		visitas.POST("", h.Visita.Create)
		visitas.GET("/:id", h.Visita.GetByID)
		visitas.PUT("/:id", h.Visita.Update)
		visitas.DELETE("/:id", h.Visita.Delete)
		visitas.PATCH("/:id/status", h.Visita.UpdateStatus)
	}

	laudos := rg.Group(PathLaudos)
	{
		laudos.GET("", h.Laudo.List)
		laudos.POST("", h.Laudo.Create)
		laudos.POST("/corrigir-texto", aiLimit, h.Laudo.CorrigirTexto)
		laudos.GET("/:id", h.Laudo.GetByID)
		laudos.PUT("/:id", h.Laudo.Update)
		laudos.DELETE("/:id", h.Laudo.Delete)
		laudos.PATCH("/:id/enviar", h.Laudo.Enviar)
	}
}
