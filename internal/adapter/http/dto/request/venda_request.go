package request

import "encoding/json"

// PagamentoRequest accepts the Mercado Pago payment body either bare or wrapped in mp_payload.
// transaction_amount is always overwritten with the stored sale value.
type PagamentoRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
