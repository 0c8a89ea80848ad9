package handlers

import (
	"errors"
	"net/http"
	"time"

	"tractus/internal/adapter/http/dto/request"
	"tractus/internal/domain/entities"
	"tractus/internal/usecase"
	"tractus/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidDataFilter = errors.New("data must be YYYY-MM-DD")

type VisitaTecnicaHandler struct {
	usecase usecase.IVisitaTecnicaUseCase
}

func NewVisitaTecnicaHandler(uc usecase.IVisitaTecnicaUseCase) *VisitaTecnicaHandler {
	return &VisitaTecnicaHandler{usecase: uc}
}

func (h *VisitaTecnicaHandler) Create(c *gin.Context) {
	var req request.VisitaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, "visita", invalidRequest(err))
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		respondError(c, "visita", mapVisitaError(err))
		return
	}
	c.JSON(http.StatusCreated, created)
}

// List filters by status, vendedor_id, cliente_id and data (a single calendar day).
func (h *VisitaTecnicaHandler) List(c *gin.Context) {
	filter := entities.VisitaFilter{
		Status:     entities.VisitaStatus(c.Query("status")),
		VendedorID: c.Query("vendedor_id"),
		ClienteID:  c.Query("cliente_id"),
	}
	if raw := c.Query("data"); raw != "" {
		day, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			respondError(c, "visita", invalidRequest(errInvalidDataFilter))
			return
		}
		filter.Data = &day
	}

	visitas, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, "visita", mapVisitaError(err))
		return
	}
	if visitas == nil {
		visitas = []entities.VisitaTecnica{}
	}
	c.JSON(http.StatusOK, visitas)
}

func (h *VisitaTecnicaHandler) GetByID(c *gin.Context) {
	v, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "visita", mapVisitaError(err))
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *VisitaTecnicaHandler) Update(c *gin.Context) {
	var req request.UpdateVisitaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, "visita", invalidRequest(err))
		return
	}
	v, err := h.usecase.Update(c.Request.Context(), c.Param("id"), req.ToEntity())
	if err != nil {
		respondError(c, "visita", mapVisitaError(err))
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *VisitaTecnicaHandler) UpdateStatus(c *gin.Context) {
	var req request.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, "visita", invalidRequest(err))
		return
	}
	v, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.VisitaStatus(req.Status), req.Motivo)
	if err != nil {
		respondError(c, "visita", mapVisitaError(err))
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *VisitaTecnicaHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "visita", mapVisitaError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapVisitaError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidVisitaData), errors.Is(err, usecase.ErrInvalidVisitaStatus):
		return pkg.NewDomainError("INVALID_VISITA_INPUT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTransicaoVisitaInvalida):
		return pkg.NewDomainErrorSimple("TRANSICAO_INVALIDA", "Visita status transition not allowed", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVisitaRealizadaNaoCancelavel):
		return pkg.NewDomainErrorSimple("VISITA_REALIZADA", "Realized visita cannot be cancelled", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVisitaFinalizada):
		return pkg.NewDomainErrorSimple("VISITA_FINALIZADA", "Visita is finished and can no longer be edited", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVisitaRealizadaNaoRemovivel):
		return pkg.NewDomainErrorSimple("VISITA_REALIZADA", "Realized visita cannot be deleted", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVisitaPossuiLaudo):
		return pkg.NewDomainErrorSimple("VISITA_POSSUI_LAUDO", "Visita has an inspection report", http.StatusBadRequest)
	default:
		return mapCommonError(err)
	}
}
