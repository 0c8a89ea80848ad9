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

type OrdemServicoHandler struct {
	usecase usecase.IOrdemServicoUseCase
}

func NewOrdemServicoHandler(uc usecase.IOrdemServicoUseCase) *OrdemServicoHandler {
	return &OrdemServicoHandler{usecase: uc}
}

func (h *OrdemServicoHandler) Create(c *gin.Context) {
	var req request.CreateOrdemServicoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, "ordem_servico", invalidRequest(err))
		return
	}
	created, err := h.usecase.CreateFromProposta(c.Request.Context(), req.PropostaID, req.Descricao)
	if err != nil {
		respondError(c, "ordem_servico", mapOrdemServicoError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromOrdemServico(created))
}

func (h *OrdemServicoHandler) List(c *gin.Context) {
	ordens, err := h.usecase.List(c.Request.Context(), entities.OrdemServicoFilter{
		Status:     entities.OrdemServicoStatus(c.Query("status")),
		ClienteID:  c.Query("cliente_id"),
		VendedorID: c.Query("vendedor_id"),
	})
	if err != nil {
		respondError(c, "ordem_servico", mapOrdemServicoError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrdensServico(ordens))
}

func (h *OrdemServicoHandler) GetByID(c *gin.Context) {
	o, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "ordem_servico", mapOrdemServicoError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrdemServico(o))
}

func (h *OrdemServicoHandler) Update(c *gin.Context) {
	var req request.UpdateOrdemServicoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, "ordem_servico", invalidRequest(err))
		return
	}
	o, err := h.usecase.Update(c.Request.Context(), c.Param("id"), req.ToCommand())
	if err != nil {
		respondError(c, "ordem_servico", mapOrdemServicoError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrdemServico(o))
}

// UpdateStatus moving an order to FATURADA also records its Venda.
func (h *OrdemServicoHandler) UpdateStatus(c *gin.Context) {
	var req request.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, "ordem_servico", invalidRequest(err))
		return
	}
	o, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.OrdemServicoStatus(req.Status))
	if err != nil {
		respondError(c, "ordem_servico", mapOrdemServicoError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrdemServico(o))
}

func (h *OrdemServicoHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "ordem_servico", mapOrdemServicoError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapOrdemServicoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrOrdemServicoNotFound):
		return pkg.NewDomainErrorSimple("ORDEM_SERVICO_NOT_FOUND", "Ordem de servico not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidOrdemServicoID):
		return pkg.NewDomainErrorSimple("INVALID_ORDEM_SERVICO_ID", "Invalid ordem de servico id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrdemServicoJaExiste):
		return pkg.NewDomainErrorSimple("ORDEM_SERVICO_JA_EXISTE", "Proposta already has an ordem de servico", http.StatusConflict)
	case errors.Is(err, usecase.ErrPropostaNaoAprovada):
		return pkg.NewDomainErrorSimple("PROPOSTA_NAO_APROVADA", "Proposta is not approved", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidOrdemServicoStatus), errors.Is(err, usecase.ErrInvalidOrdemServicoValor):
		return pkg.NewDomainError("INVALID_ORDEM_SERVICO_INPUT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTransicaoOrdemInvalida):
		return pkg.NewDomainErrorSimple("TRANSICAO_INVALIDA", "Ordem de servico status transition not allowed", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrdemServicoNaoEditavel):
		return pkg.NewDomainErrorSimple("ORDEM_SERVICO_NAO_EDITAVEL", "Ordem de servico can no longer be edited", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrdemServicoNaoRemovivel):
		return pkg.NewDomainErrorSimple("ORDEM_SERVICO_NAO_REMOVIVEL", "Only ABERTA ordens de servico can be deleted", http.StatusBadRequest)
	default:
		return mapCommonError(err)
	}
}
