package handlers

import (
	"errors"
	"net/http"

	"tractus/internal/adapter/http/dto/request"
	"tractus/internal/adapter/http/dto/response"
	"tractus/internal/adapter/http/middleware"
	"tractus/internal/domain/entities"
	"tractus/internal/usecase"
	"tractus/pkg"

	"github.com/gin-gonic/gin"
)

type ClienteHandler struct {
	usecase   usecase.IClienteUseCase
	anotacoes usecase.IClienteAnotacaoUseCase
	texto     usecase.ITextoUseCase
}

func NewClienteHandler(uc usecase.IClienteUseCase, anotacoes usecase.IClienteAnotacaoUseCase, texto usecase.ITextoUseCase) *ClienteHandler {
	return &ClienteHandler{usecase: uc, anotacoes: anotacoes, texto: texto}
}

func (h *ClienteHandler) Create(c *gin.Context) {
	var req request.ClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, "cliente", invalidRequest(err))
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		respondError(c, "cliente", mapClienteError(err))
		return
	}
	c.JSON(http.StatusCreated, created)
}

// List accepts q (accent-insensitive name search), vendedor_id and status.
func (h *ClienteHandler) List(c *gin.Context) {
	clientes, err := h.usecase.List(c.Request.Context(), entities.ClienteFilter{
		Busca:      c.Query("q"),
		VendedorID: c.Query("vendedor_id"),
		Status:     entities.ClienteStatus(c.Query("status")),
	})
	if err != nil {
		respondError(c, "cliente", mapClienteError(err))
		return
	}
	if clientes == nil {
		clientes = []entities.Cliente{}
	}
	c.JSON(http.StatusOK, clientes)
}

func (h *ClienteHandler) GetByID(c *gin.Context) {
	cliente, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "cliente", mapClienteError(err))
		return
	}
	c.JSON(http.StatusOK, cliente)
}

func (h *ClienteHandler) Update(c *gin.Context) {
	var req request.ClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, "cliente", invalidRequest(err))
		return
	}
	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), req.ToEntity())
	if err != nil {
		respondError(c, "cliente", mapClienteError(err))
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ClienteHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "cliente", mapClienteError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ClienteHandler) CreateAnotacao(c *gin.Context) {
	var req request.TextoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, "anotacao", invalidRequest(err))
		return
	}
	a, err := h.anotacoes.Create(c.Request.Context(), c.Param("id"), middleware.CurrentUserID(c), req.Texto)
	if err != nil {
		respondError(c, "anotacao", mapClienteError(err))
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *ClienteHandler) ListAnotacoes(c *gin.Context) {
	anotacoes, err := h.anotacoes.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "anotacao", mapClienteError(err))
		return
	}
	if anotacoes == nil {
		anotacoes = []entities.ClienteAnotacao{}
	}
	c.JSON(http.StatusOK, anotacoes)
}

func (h *ClienteHandler) DeleteAnotacao(c *gin.Context) {
	if err := h.anotacoes.Delete(c.Request.Context(), c.Param("id"), c.Param("anotacao_id")); err != nil {
		respondError(c, "anotacao", mapClienteError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// CorrigirAnotacao corrects a draft note before it is saved; the client must exist.
func (h *ClienteHandler) CorrigirAnotacao(c *gin.Context) {
	var req request.TextoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, "anotacao", invalidRequest(err))
		return
	}
	if _, err := h.usecase.GetByID(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "anotacao", mapClienteError(err))
		return
	}
	res, err := h.texto.Corrigir(c.Request.Context(), req.Texto)
	if err != nil {
		respondError(c, "anotacao", mapClienteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCorrecao(res))
}

func (h *ClienteHandler) ResumirAnotacoes(c *gin.Context) {
	res, err := h.anotacoes.Resumir(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "anotacao", mapClienteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromResumo(res))
}

func mapClienteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClienteNome),
		errors.Is(err, usecase.ErrInvalidClienteStatus),
		errors.Is(err, usecase.ErrInvalidClienteUF),
		errors.Is(err, usecase.ErrInvalidClienteDocumento):
		return pkg.NewDomainError("INVALID_CLIENTE_INPUT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClienteDocumentoDuplicado):
		return pkg.NewDomainErrorSimple("DOCUMENTO_DUPLICADO", "Documento already registered", http.StatusConflict)
	case errors.Is(err, usecase.ErrClienteHasPropostas):
		return pkg.NewDomainErrorSimple("CLIENTE_HAS_PROPOSTAS", "Cliente has propostas and cannot be deleted", http.StatusConflict)
	case errors.Is(err, usecase.ErrAnotacaoNotFound):
		return pkg.NewDomainErrorSimple("ANOTACAO_NOT_FOUND", "Anotacao not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidAnotacaoID):
		return pkg.NewDomainErrorSimple("INVALID_ANOTACAO_ID", "Invalid anotacao id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClienteSemAnotacoes):
		return pkg.NewDomainErrorSimple("CLIENTE_SEM_ANOTACOES", "Cliente has no anotacoes to summarize", http.StatusBadRequest)
	default:
		return mapCommonError(err)
	}
}
