package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"tractus/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway charges sales through the Mercado Pago payments API.
// In mock mode every payment is approved locally.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
	now      func() time.Time
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, mockMode bool) (*MercadoPagoGateway, error) {
	log := zap.L().With(zap.String("scope", "payment_gateway"))
	if mockMode {
		log.Info("mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, now: time.Now}, nil
	}

	if accessToken == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercado pago config: %w", err)
	}
	log.Info("mercado pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), now: time.Now}, nil
}

// Charge posts payload to /v1/payments. Provider errors are returned unwrapped so the
// caller can classify them by message.
func (g *MercadoPagoGateway) Charge(ctx context.Context, payload json.RawMessage) (interfaces.PaymentResult, error) {
	log := zap.L().With(zap.String("scope", "payment_gateway"))
	if g != nil && g.mockMode {
		return g.mockCharge(payload)
	}
	if g == nil || g.client == nil {
		return interfaces.PaymentResult{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Debug("charge start", zap.Int("payload_len", len(payload)))

	var req payment.Request
	if err := json.Unmarshal(payload, &req); err != nil {
		return interfaces.PaymentResult{}, fmt.Errorf("bad_request: %w", err)
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Warn("sdk create failed", zap.Error(err))
		return interfaces.PaymentResult{}, err
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return interfaces.PaymentResult{}, fmt.Errorf("marshal provider response: %w", err)
	}
	res := interfaces.PaymentResult{
		ProviderID:   fmt.Sprint(resp.ID),
		Status:       resp.Status,
		StatusDetail: resp.StatusDetail,
		Raw:          raw,
	}
	log.Info("charge answered", zap.String("provider_payment_id", res.ProviderID), zap.String("provider_status", res.Status))
	return res, nil
}

// mockCharge echoes the payload back as an approved payment with a time based id.
func (g *MercadoPagoGateway) mockCharge(payload json.RawMessage) (interfaces.PaymentResult, error) {
	body := map[string]any{}
	if len(payload) > 0 && json.Valid(payload) {
		if err := json.Unmarshal(payload, &body); err != nil {
			body = map[string]any{"request_payload_raw": string(payload)}
		}
	}

	now := g.now().UTC()
	id := strconv.FormatInt(now.UnixNano(), 10)
	body["id"] = id
	body["status"] = "approved"
	body["status_detail"] = "accredited"
	if _, ok := body["date_created"]; !ok {
		body["date_created"] = now.Format(time.RFC3339Nano)
	}
	if _, ok := body["date_approved"]; !ok {
		body["date_approved"] = now.Format(time.RFC3339Nano)
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return interfaces.PaymentResult{}, err
	}
	zap.L().Info("mock charge approved", zap.String("scope", "payment_gateway"), zap.String("provider_payment_id", id))
	return interfaces.PaymentResult{ProviderID: id, Status: "approved", StatusDetail: "accredited", Raw: raw}, nil
}
