package handlers

import (
	"errors"
	"net/http"

	"tractus/internal/adapter/http/dto/request"
	"tractus/internal/adapter/http/dto/response"
	"tractus/internal/domain/entities"
	"tractus/internal/usecase"
	"tractus/pkg"

	"github.com/gin-gonic/gin"
)

type ManutencaoHandler struct {
	usecase usecase.IManutencaoUseCase
}

func NewManutencaoHandler(uc usecase.IManutencaoUseCase) *ManutencaoHandler {
	return &ManutencaoHandler{usecase: uc}
}

func (h *ManutencaoHandler) ListConfiguracoes(c *gin.Context) {
	configs, err := h.usecase.ListConfiguracoes(c.Request.Context())
	if err != nil {
		respondError(c, "manutencao", mapManutencaoError(err))
		return
	}
	if configs == nil {
		configs = []entities.ConfiguracaoManutencao{}
	}
	c.JSON(http.StatusOK, configs)
}

func (h *ManutencaoHandler) UpsertConfiguracao(c *gin.Context) {
	var req request.ConfiguracaoManutencaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, "manutencao", invalidRequest(err))
		return
	}
	cfg, err := h.usecase.UpsertConfiguracao(c.Request.Context(), entities.TipoDespesa(c.Param("tipo")), req.IntervaloKm, req.Descricao)
	if err != nil {
		respondError(c, "manutencao", mapManutencaoError(err))
		return
	}
	c.JSON(http.StatusOK, cfg)
}

func (h *ManutencaoHandler) Alertas(c *gin.Context) {
	alertas, err := h.usecase.Alertas(c.Request.Context(), c.Param("vendedor_id"))
	if err != nil {
		respondError(c, "manutencao", mapManutencaoError(err))
		return
	}
	if alertas == nil {
		alertas = []entities.AlertaManutencao{}
	}
	c.JSON(http.StatusOK, alertas)
}

func mapManutencaoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidIntervaloKm), errors.Is(err, usecase.ErrInvalidTipoManutencao):
		return pkg.NewDomainError("INVALID_MANUTENCAO_INPUT", err.Error(), err, http.StatusBadRequest)
	default:
		return mapCommonError(err)
	}
}

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

func (h *DashboardHandler) Resumo(c *gin.Context) {
	resumo, err := h.usecase.Resumo(c.Request.Context())
	if err != nil {
		respondError(c, "dashboard", mapCommonError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDashboard(resumo))
}
