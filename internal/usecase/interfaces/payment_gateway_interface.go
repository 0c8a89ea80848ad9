package interfaces

import (
	"context"
	"encoding/json"
	"strings"
)

// PaymentResult is the provider answer to a charge. Raw is stored on the Venda.
type PaymentResult struct {
	ProviderID   string
	Status       string
	StatusDetail string
	Raw          json.RawMessage
}

func (r PaymentResult) Approved() bool {
	return strings.EqualFold(r.Status, "approved")
}

// IPaymentGateway charges a sale with a provider specific payload (Mercado Pago).
type IPaymentGateway interface {
	Charge(ctx context.Context, payload json.RawMessage) (PaymentResult, error)
}
