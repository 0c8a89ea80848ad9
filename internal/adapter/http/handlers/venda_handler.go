package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"tractus/internal/adapter/http/dto/request"
	"tractus/internal/adapter/http/dto/response"
	"tractus/internal/domain/entities"
	"tractus/internal/usecase"
	"tractus/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type VendaHandler struct {
	usecase  usecase.IVendaUseCase
	mockMode bool
}

// In mockMode an unreadable payment body degrades to an empty payload.
func NewVendaHandler(uc usecase.IVendaUseCase, mockMode bool) *VendaHandler {
	return &VendaHandler{usecase: uc, mockMode: mockMode}
}

func (h *VendaHandler) List(c *gin.Context) {
	vendas, err := h.usecase.List(c.Request.Context(), entities.VendaFilter{
		VendedorID: c.Query("vendedor_id"),
		Mes:        c.Query("mes"),
	})
	if err != nil {
		respondError(c, "venda", mapVendaError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromVendas(vendas))
}

func (h *VendaHandler) GetByID(c *gin.Context) {
	v, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "venda", mapVendaError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromVenda(v))
}

// RegistrarPagamento charges the sale through Mercado Pago.
// @Summary Registers the payment of a sale
// @Tags vendas
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "venda id"
// @Param body body request.PagamentoRequest false "Mercado Pago payload"
// @Success 200 {object} response.VendaResponse
// @Failure 402 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /vendas/{id}/pagamento [post]
func (h *VendaHandler) RegistrarPagamento(c *gin.Context) {
	id := c.Param("id")
	logger := zap.L().With(zap.String("scope", "venda"), zap.String("venda_id", id))

	payload, err := readMPPayload(c)
	if err != nil {
		if !h.mockMode {
			logger.Warn("invalid payment payload", zap.Error(err))
			respondError(c, "venda", invalidRequest(err))
			return
		}
		logger.Info("invalid payload in mock mode; using empty payload", zap.Error(err))
		payload = json.RawMessage("{}")
	}

	v, err := h.usecase.RegistrarPagamento(c.Request.Context(), id, payload)
	if err != nil {
		respondError(c, "venda", mapVendaError(err))
		return
	}
	logger.Info("payment registered", zap.String("pagamento_id", v.PagamentoID))
	c.JSON(http.StatusOK, response.FromVenda(v))
}

// readMPPayload accepts either {"mp_payload": {...}} or the bare provider body.
func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope request.PagamentoRequest
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.MPPayload != nil {
		wrapped := bytes.TrimSpace(envelope.MPPayload)
		if len(wrapped) == 0 || string(wrapped) == "null" {
			return nil, errors.New("mp_payload cannot be empty")
		}
		return json.RawMessage(wrapped), nil
	}
	return json.RawMessage(raw), nil
}

func mapVendaError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrVendaNotFound):
		return pkg.NewDomainErrorSimple("VENDA_NOT_FOUND", "Venda not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidVendaID), errors.Is(err, usecase.ErrInvalidVendaMes), errors.Is(err, usecase.ErrInvalidPagamentoPayload):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVendaJaPaga):
		return pkg.NewDomainErrorSimple("VENDA_JA_PAGA", "Venda already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPagamentoNaoAprovado):
		return pkg.NewDomainErrorSimple("PAGAMENTO_NAO_APROVADO", "Payment not approved by provider", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", err, http.StatusServiceUnavailable)
	default:
		return mapCommonError(err)
	}
}
