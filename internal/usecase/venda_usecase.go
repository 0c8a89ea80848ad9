package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"tractus/internal/domain/entities"
	"tractus/internal/usecase/interfaces"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

var (
	ErrVendaNotFound                  = errors.New("venda not found")
	ErrInvalidVendaID                 = errors.New("invalid venda id")
	ErrInvalidVendaMes                = errors.New("mes must be YYYY-MM")
	ErrVendaJaPaga                    = errors.New("venda already paid")
	ErrInvalidPagamentoPayload        = errors.New("invalid payment payload")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPagamentoNaoAprovado           = errors.New("payment not approved by provider")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

type IVendaUseCase interface {
	GetByID(ctx context.Context, id string) (entities.Venda, error)
	List(ctx context.Context, filter entities.VendaFilter) ([]entities.Venda, error)
	RegistrarPagamento(ctx context.Context, id string, payload json.RawMessage) (entities.Venda, error)
}

type VendaUseCase struct {
	repo    interfaces.IVendaRepository
	gateway interfaces.IPaymentGateway
}

var _ IVendaUseCase = (*VendaUseCase)(nil)

func NewVendaUseCase(repo interfaces.IVendaRepository, gateway interfaces.IPaymentGateway) *VendaUseCase {
	return &VendaUseCase{repo: repo, gateway: gateway}
}

func (u *VendaUseCase) GetByID(ctx context.Context, id string) (entities.Venda, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Venda{}, ErrInvalidVendaID
	}
	v, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Venda{}, err
	}
	if v.ID == "" {
		return entities.Venda{}, ErrVendaNotFound
	}
	return v, nil
}

func (u *VendaUseCase) List(ctx context.Context, filter entities.VendaFilter) ([]entities.Venda, error) {
	if filter.Mes != "" && !validMes(filter.Mes) {
		return nil, ErrInvalidVendaMes
	}
	return u.repo.List(ctx, filter)
}

// RegistrarPagamento charges the sale through the payment gateway.
//
// The amount always comes from the stored Venda, whatever the payload says.
func (u *VendaUseCase) RegistrarPagamento(ctx context.Context, id string, payload json.RawMessage) (entities.Venda, error) {
	logger := zap.L().With(zap.String("scope", "venda"), zap.String("venda_id", id))
	logger.Info("payment start", zap.Int("payload_len", len(payload)))

	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if !json.Valid(payload) {
		return entities.Venda{}, ErrInvalidPagamentoPayload
	}
	if u.gateway == nil {
		logger.Warn("payment gateway not configured")
		return entities.Venda{}, ErrPaymentGatewayNotConfigured
	}

	venda, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Venda{}, err
	}
	if venda.StatusPagamento == entities.PagamentoStatusPago {
		return entities.Venda{}, ErrVendaJaPaga
	}

	var req map[string]any
	if err := json.Unmarshal(payload, &req); err != nil || req == nil {
		return entities.Venda{}, ErrInvalidPagamentoPayload
	}
	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = venda.ID
	}
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("Venda %s (OS %s)", venda.ID, venda.OrdemServicoID)
	}
	req["transaction_amount"] = venda.Valor
	enriched, err := json.Marshal(req)
	if err != nil {
		return entities.Venda{}, err
	}

	res, err := u.gateway.Charge(ctx, enriched)
	if err != nil {
		logger.Warn("payment gateway failed", zap.Error(err))
		return entities.Venda{}, classifyGatewayError(err)
	}
	detail := res.StatusDetail
	if detail == "" {
		detail = gjson.GetBytes(res.Raw, "status_detail").String()
	}
	logger.Info("payment gateway answered",
		zap.String("provider_payment_id", res.ProviderID),
		zap.String("provider_status", res.Status),
		zap.String("status_detail", detail),
	)

	if !res.Approved() {
		return entities.Venda{}, fmt.Errorf("%w: %s", ErrPagamentoNaoAprovado, res.Status)
	}

	paid, err := u.repo.MarkPaid(ctx, venda.ID, res.ProviderID, string(res.Raw))
	if err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			return entities.Venda{}, ErrVendaJaPaga
		}
		return entities.Venda{}, err
	}
	if paid.ID == "" {
		return entities.Venda{}, ErrVendaNotFound
	}
	logger.Info("payment registered", zap.String("provider_payment_id", res.ProviderID))
	return paid, nil
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

// validMes accepts YYYY-MM.
func validMes(mes string) bool {
	if len(mes) != 7 || mes[4] != '-' {
		return false
	}
	for i, r := range mes {
		if i == 4 {
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}
	return mes[5:] >= "01" && mes[5:] <= "12"
}
