package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"tractus/internal/adapter/http/dto/request"
	"tractus/internal/adapter/http/dto/response"
	"tractus/internal/adapter/http/middleware"
	"tractus/internal/domain/entities"
	"tractus/internal/usecase"
	"tractus/pkg"

	"github.com/gin-gonic/gin"
)

type DespesaVeiculoHandler struct {
	usecase usecase.IDespesaVeiculoUseCase
}

func NewDespesaVeiculoHandler(uc usecase.IDespesaVeiculoUseCase) *DespesaVeiculoHandler {
	return &DespesaVeiculoHandler{usecase: uc}
}

func (h *DespesaVeiculoHandler) Create(c *gin.Context) {
	d, ok := bindDespesa(c)
	if !ok {
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), d)
	if err != nil {
		respondError(c, "despesa", mapDespesaError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromDespesa(created))
}

func (h *DespesaVeiculoHandler) List(c *gin.Context) {
	despesas, err := h.usecase.List(c.Request.Context(), entities.DespesaFilter{
		VendedorID: c.Query("vendedor_id"),
		Status:     entities.DespesaStatus(c.Query("status")),
		Tipo:       entities.TipoDespesa(c.Query("tipo")),
		Mes:        c.Query("mes"),
	})
	if err != nil {
		respondError(c, "despesa", mapDespesaError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDespesas(despesas))
}

func (h *DespesaVeiculoHandler) GetByID(c *gin.Context) {
	d, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "despesa", mapDespesaError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDespesa(d))
}

func (h *DespesaVeiculoHandler) Update(c *gin.Context) {
	d, ok := bindDespesa(c)
	if !ok {
		return
	}
	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), d)
	if err != nil {
		respondError(c, "despesa", mapDespesaError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDespesa(updated))
}

// UpdateStatus approves or rejects the expense; the caller is recorded as approver.
func (h *DespesaVeiculoHandler) UpdateStatus(c *gin.Context) {
	var req request.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, "despesa", invalidRequest(err))
		return
	}
	d, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.DespesaStatus(req.Status), req.Motivo, middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, "despesa", mapDespesaError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDespesa(d))
}

func (h *DespesaVeiculoHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "despesa", mapDespesaError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// Resumo serves GET /relatorios/despesas.
func (h *DespesaVeiculoHandler) Resumo(c *gin.Context) {
	filter := entities.ResumoDespesaFilter{VendedorID: c.Query("vendedor_id")}
	if raw := c.Query("ano"); raw != "" {
		ano, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, "despesa", mapDespesaError(usecase.ErrInvalidDespesaAno))
			return
		}
		filter.Ano = ano
	}
	resumo, err := h.usecase.Resumo(c.Request.Context(), filter)
	if err != nil {
		respondError(c, "despesa", mapDespesaError(err))
		return
	}
	if resumo == nil {
		resumo = []entities.ResumoDespesa{}
	}
	c.JSON(http.StatusOK, resumo)
}

func bindDespesa(c *gin.Context) (entities.DespesaVeiculo, bool) {
	var req request.DespesaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, "despesa", invalidRequest(err))
		return entities.DespesaVeiculo{}, false
	}
	d, err := req.ToEntity()
	if err != nil {
		respondError(c, "despesa", invalidRequest(err))
		return entities.DespesaVeiculo{}, false
	}
	return d, true
}

func mapDespesaError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrDespesaNotFound):
		return pkg.NewDomainErrorSimple("DESPESA_NOT_FOUND", "Despesa not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidDespesaID),
		errors.Is(err, usecase.ErrInvalidDespesaData),
		errors.Is(err, usecase.ErrInvalidDespesaTipo),
		errors.Is(err, usecase.ErrInvalidDespesaValor),
		errors.Is(err, usecase.ErrInvalidDespesaOdometro),
		errors.Is(err, usecase.ErrInvalidDespesaStatus),
		errors.Is(err, usecase.ErrInvalidDespesaMes),
		errors.Is(err, usecase.ErrInvalidDespesaAno):
		return pkg.NewDomainError("INVALID_DESPESA_INPUT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOdometroInferior):
		return pkg.NewDomainErrorSimple("ODOMETRO_INFERIOR", "Odometro lower than the last reading", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDespesaNaoPendente):
		return pkg.NewDomainErrorSimple("DESPESA_NAO_PENDENTE", "Despesa is no longer pending", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTransicaoDespesaInvalida):
		return pkg.NewDomainErrorSimple("TRANSICAO_INVALIDA", "Despesa status transition not allowed", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMotivoObrigatorio):
		return pkg.NewDomainErrorSimple("MOTIVO_OBRIGATORIO", "Motivo is required to reject", http.StatusBadRequest)
	default:
		return mapCommonError(err)
	}
}
