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

type PropostaHandler struct {
	usecase usecase.IPropostaUseCase
}

func NewPropostaHandler(uc usecase.IPropostaUseCase) *PropostaHandler {
	return &PropostaHandler{usecase: uc}
}

func (h *PropostaHandler) Create(c *gin.Context) {
	p, ok := bindProposta(c)
	if !ok {
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), p)
	if err != nil {
		respondError(c, "proposta", mapPropostaError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromProposta(created))
}

func (h *PropostaHandler) List(c *gin.Context) {
	propostas, err := h.usecase.List(c.Request.Context(), entities.PropostaFilter{
		Status:     entities.PropostaStatus(c.Query("status")),
		ClienteID:  c.Query("cliente_id"),
		VendedorID: c.Query("vendedor_id"),
	})
	if err != nil {
		respondError(c, "proposta", mapPropostaError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPropostas(propostas))
}

func (h *PropostaHandler) GetByID(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "proposta", mapPropostaError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProposta(p))
}

func (h *PropostaHandler) Update(c *gin.Context) {
	p, ok := bindProposta(c)
	if !ok {
		return
	}
	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), p)
	if err != nil {
		respondError(c, "proposta", mapPropostaError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProposta(updated))
}

func (h *PropostaHandler) UpdateStatus(c *gin.Context) {
	var req request.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, "proposta", invalidRequest(err))
		return
	}
	updated, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.PropostaStatus(req.Status))
	if err != nil {
		respondError(c, "proposta", mapPropostaError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProposta(updated))
}

func (h *PropostaHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "proposta", mapPropostaError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func bindProposta(c *gin.Context) (entities.Proposta, bool) {
	var req request.PropostaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, "proposta", invalidRequest(err))
		return entities.Proposta{}, false
	}
	p, err := req.ToEntity()
	if err != nil {
		respondError(c, "proposta", invalidRequest(err))
		return entities.Proposta{}, false
	}
	return p, true
}

func mapPropostaError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPropostaTitulo),
		errors.Is(err, usecase.ErrInvalidPropostaItem),
		errors.Is(err, usecase.ErrPropostaSemItens),
		errors.Is(err, usecase.ErrInvalidPropostaStatus):
		return pkg.NewDomainError("INVALID_PROPOSTA_INPUT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTransicaoPropostaInvalida):
		return pkg.NewDomainErrorSimple("TRANSICAO_INVALIDA", "Proposta status transition not allowed", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPropostaNaoEditavel):
		return pkg.NewDomainErrorSimple("PROPOSTA_NAO_EDITAVEL", "Proposta can no longer be edited", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPropostaAprovada):
		return pkg.NewDomainErrorSimple("PROPOSTA_APROVADA", "Approved proposta cannot be deleted", http.StatusBadRequest)
	default:
		return mapCommonError(err)
	}
}
