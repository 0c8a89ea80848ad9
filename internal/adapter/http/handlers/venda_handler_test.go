package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"tractus/internal/adapter/http/handlers/mocks"
	"tractus/internal/domain/entities"
	"tractus/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestVendaHandler_RegistrarPagamento(t *testing.T) {
	newRouter := func(t *testing.T, mockMode bool) (*gin.Engine, *mocks.MockIVendaUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIVendaUseCase(ctrl)
		h := NewVendaHandler(uc, mockMode)

		r := gin.New()
		r.POST("/v1/vendas/:id/pagamento", h.RegistrarPagamento)
		return r, uc
	}

	t.Run("invalid payload", func(t *testing.T) {
		r, _ := newRouter(t, false)
		if w := perform(r, http.MethodPost, "/v1/vendas/v-1/pagamento", "{"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid payload in mock mode falls back to empty", func(t *testing.T) {
		r, uc := newRouter(t, true)
		uc.EXPECT().RegistrarPagamento(gomock.Any(), "v-1", json.RawMessage("{}")).
			Return(entities.Venda{ID: "v-1", StatusPagamento: entities.PagamentoStatusPago}, nil)
		if w := perform(r, http.MethodPost, "/v1/vendas/v-1/pagamento", "{"); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("envelope is unwrapped", func(t *testing.T) {
		r, uc := newRouter(t, false)
		uc.EXPECT().RegistrarPagamento(gomock.Any(), "v-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, payload json.RawMessage) (entities.Venda, error) {
				if string(payload) != `{"payment_method_id":"pix"}` {
					t.Fatalf("unexpected payload: %s", payload)
				}
				return entities.Venda{ID: "v-1"}, nil
			})
		if w := perform(r, http.MethodPost, "/v1/vendas/v-1/pagamento", `{"mp_payload":{"payment_method_id":"pix"}}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("null envelope", func(t *testing.T) {
		r, _ := newRouter(t, false)
		if w := perform(r, http.MethodPost, "/v1/vendas/v-1/pagamento", `{"mp_payload":null}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		r, uc := newRouter(t, false)
		uc.EXPECT().RegistrarPagamento(gomock.Any(), "v-1", gomock.Any()).Return(entities.Venda{}, usecase.ErrVendaJaPaga)
		if w := perform(r, http.MethodPost, "/v1/vendas/v-1/pagamento", `{"payment_method_id":"pix"}`); w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("provider unauthorized", func(t *testing.T) {
		r, uc := newRouter(t, false)
		uc.EXPECT().RegistrarPagamento(gomock.Any(), "v-1", gomock.Any()).Return(entities.Venda{}, usecase.ErrPaymentGatewayUnauthorized)
		if w := perform(r, http.MethodPost, "/v1/vendas/v-1/pagamento", ""); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestVendaHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIVendaUseCase(ctrl)
	h := NewVendaHandler(uc, false)

	r := gin.New()
	r.GET("/v1/vendas", h.List)

	uc.EXPECT().List(gomock.Any(), entities.VendaFilter{Mes: "2026-13"}).Return(nil, usecase.ErrInvalidVendaMes)
	if w := perform(r, http.MethodGet, "/v1/vendas?mes=2026-13", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	uc.EXPECT().List(gomock.Any(), entities.VendaFilter{VendedorID: "v-1", Mes: "2026-03"}).Return([]entities.Venda{{ID: "s-1", Valor: 10}}, nil)
	w := perform(r, http.MethodGet, "/v1/vendas?vendedor_id=v-1&mes=2026-03", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || len(body) != 1 || body[0]["valor_formatado"] != "R$ 10,00" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
