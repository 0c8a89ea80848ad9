package handlers

import (
	"errors"
	"net/http"

	"tractus/internal/usecase"
	"tractus/internal/usecase/interfaces"
	"tractus/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func invalidRequest(err error) *pkg.AppError {
	return pkg.NewDomainError("INVALID_REQUEST", "Invalid request: "+err.Error(), err, http.StatusBadRequest)
}

// respondError writes the AppError body; 5xx causes are logged and never returned.
func respondError(c *gin.Context, scope string, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("scope", scope),
			zap.String("route", c.FullPath()),
			zap.Error(appErr),
		)
	}
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapCommonError covers lookups shared by several resources and the generic fallbacks.
func mapCommonError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrClienteNotFound):
		return pkg.NewDomainErrorSimple("CLIENTE_NOT_FOUND", "Cliente not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidClienteID):
		return pkg.NewDomainErrorSimple("INVALID_CLIENTE_ID", "Invalid cliente id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVendedorNotFound):
		return pkg.NewDomainErrorSimple("VENDEDOR_NOT_FOUND", "Vendedor not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidVendedorID):
		return pkg.NewDomainErrorSimple("INVALID_VENDEDOR_ID", "Invalid vendedor id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPropostaNotFound):
		return pkg.NewDomainErrorSimple("PROPOSTA_NOT_FOUND", "Proposta not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidPropostaID):
		return pkg.NewDomainErrorSimple("INVALID_PROPOSTA_ID", "Invalid proposta id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVisitaNotFound):
		return pkg.NewDomainErrorSimple("VISITA_NOT_FOUND", "Visita not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidVisitaID):
		return pkg.NewDomainErrorSimple("INVALID_VISITA_ID", "Invalid visita id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTextoVazio):
		return pkg.NewDomainErrorSimple("TEXTO_VAZIO", "Texto is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTextoMuitoLongo):
		return pkg.NewDomainErrorSimple("TEXTO_MUITO_LONGO", "Texto exceeds 5000 characters", http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrConflict):
		return pkg.NewDomainError("CONFLICT", "Conflicting record", err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
