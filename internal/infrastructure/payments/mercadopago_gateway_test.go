package payments

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestNewMercadoPagoGateway(t *testing.T) {
	_, err := NewMercadoPagoGateway("", false)
	require.ErrorIs(t, err, ErrMissingMercadoPagoAccessToken)

	g, err := NewMercadoPagoGateway("", true)
	require.NoError(t, err)
	require.True(t, g.mockMode)
}

func TestChargeMock(t *testing.T) {
	g, err := NewMercadoPagoGateway("", true)
	require.NoError(t, err)
	fixed := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return fixed }

	payload := json.RawMessage(`{"transaction_amount":1500.5,"external_reference":"venda-1","date_created":"2026-01-01T00:00:00Z"}`)
	res, err := g.Charge(context.Background(), payload)
	require.NoError(t, err)
	require.True(t, res.Approved())
	require.NotEmpty(t, res.ProviderID)

	body := gjson.ParseBytes(res.Raw)
	require.Equal(t, res.ProviderID, body.Get("id").String())
	require.Equal(t, "accredited", body.Get("status_detail").String())
	require.Equal(t, "venda-1", body.Get("external_reference").String())
	require.Equal(t, 1500.5, body.Get("transaction_amount").Float())
	require.Equal(t, "2026-01-01T00:00:00Z", body.Get("date_created").String())
	require.Equal(t, fixed.Format(time.RFC3339Nano), body.Get("date_approved").String())
}

func TestChargeNotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	_, err := g.Charge(context.Background(), json.RawMessage(`{}`))
	require.ErrorIs(t, err, ErrMercadoPagoGatewayNotConfigured)
}
