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

type LaudoHandler struct {
	usecase usecase.ILaudoUseCase
	texto   usecase.ITextoUseCase
}

func NewLaudoHandler(uc usecase.ILaudoUseCase, texto usecase.ITextoUseCase) *LaudoHandler {
	return &LaudoHandler{usecase: uc, texto: texto}
}

func (h *LaudoHandler) Create(c *gin.Context) {
	var req request.LaudoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, "laudo", invalidRequest(err))
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		respondError(c, "laudo", mapLaudoError(err))
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *LaudoHandler) List(c *gin.Context) {
	laudos, err := h.usecase.List(c.Request.Context(), entities.LaudoFilter{
		VisitaID: c.Query("visita_id"),
		Status:   entities.LaudoStatus(c.Query("status")),
	})
	if err != nil {
		respondError(c, "laudo", mapLaudoError(err))
		return
	}
	if laudos == nil {
		laudos = []entities.LaudoInspecao{}
	}
	c.JSON(http.StatusOK, laudos)
}

func (h *LaudoHandler) GetByID(c *gin.Context) {
	l, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "laudo", mapLaudoError(err))
		return
	}
	c.JSON(http.StatusOK, l)
}

func (h *LaudoHandler) Update(c *gin.Context) {
	var req request.LaudoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, "laudo", invalidRequest(err))
		return
	}
	l, err := h.usecase.Update(c.Request.Context(), c.Param("id"), req.ToEntity())
	if err != nil {
		respondError(c, "laudo", mapLaudoError(err))
		return
	}
	c.JSON(http.StatusOK, l)
}

func (h *LaudoHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "laudo", mapLaudoError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// Enviar submits the report and marks its visit REALIZADA.
func (h *LaudoHandler) Enviar(c *gin.Context) {
	l, err := h.usecase.Enviar(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "laudo", mapLaudoError(err))
		return
	}
	c.JSON(http.StatusOK, l)
}

func (h *LaudoHandler) CorrigirTexto(c *gin.Context) {
	var req request.TextoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, "laudo", invalidRequest(err))
		return
	}
	res, err := h.texto.Corrigir(c.Request.Context(), req.Texto)
	if err != nil {
		respondError(c, "laudo", mapLaudoError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCorrecao(res))
}

func mapLaudoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrLaudoNotFound):
		return pkg.NewDomainErrorSimple("LAUDO_NOT_FOUND", "Laudo not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLaudoVisitaNaoEncontrada):
		return pkg.NewDomainErrorSimple("VISITA_NOT_FOUND", "Visita of laudo not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidLaudoID),
		errors.Is(err, usecase.ErrInvalidLaudoEquipamento),
		errors.Is(err, usecase.ErrInvalidLaudoComponente),
		errors.Is(err, usecase.ErrInvalidLaudoHorimetro),
		errors.Is(err, usecase.ErrInvalidLaudoStatus):
		return pkg.NewDomainError("INVALID_LAUDO_INPUT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVisitaCancelada):
		return pkg.NewDomainErrorSimple("VISITA_CANCELADA", "Visita is cancelled", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLaudoJaExiste):
		return pkg.NewDomainErrorSimple("LAUDO_JA_EXISTE", "Visita already has an inspection report", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLaudoEnviado):
		return pkg.NewDomainErrorSimple("LAUDO_ENVIADO", "Laudo already sent and can no longer be changed", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLaudoJaEnviado):
		return pkg.NewDomainErrorSimple("LAUDO_JA_ENVIADO", "Laudo already sent", http.StatusBadRequest)
	default:
		return mapCommonError(err)
	}
}
