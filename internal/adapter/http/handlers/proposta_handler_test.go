package handlers

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"tractus/internal/adapter/http/handlers/mocks"
	"tractus/internal/domain/entities"
	"tractus/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newPropostaRouter(t *testing.T) (*gin.Engine, *mocks.MockIPropostaUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPropostaUseCase(ctrl)
	h := NewPropostaHandler(uc)

	r := gin.New()
	r.POST("/v1/propostas", h.Create)
	r.GET("/v1/propostas", h.List)
	r.PUT("/v1/propostas/:id", h.Update)
	r.PATCH("/v1/propostas/:id/status", h.UpdateStatus)
	r.DELETE("/v1/propostas/:id", h.Delete)
	return r, uc
}

func TestPropostaHandler_Create(t *testing.T) {
	t.Run("requires items", func(t *testing.T) {
		r, _ := newPropostaRouter(t)
		if w := perform(r, http.MethodPost, "/v1/propostas", `{"cliente_id":"c-1","titulo":"Revisão","itens":[]}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid validade", func(t *testing.T) {
		r, _ := newPropostaRouter(t)
		body := `{"cliente_id":"c-1","titulo":"Revisão","validade":"31/12/2026","itens":[{"descricao":"Filtro","quantidade":1,"valor_unitario":10}]}`
		if w := perform(r, http.MethodPost, "/v1/propostas", body); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown client", func(t *testing.T) {
		r, uc := newPropostaRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Proposta{}, usecase.ErrClienteNotFound)
		body := `{"cliente_id":"c-404","titulo":"Revisão","itens":[{"descricao":"Filtro","quantidade":1,"valor_unitario":10}]}`
		if w := perform(r, http.MethodPost, "/v1/propostas", body); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newPropostaRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Proposta) (entities.Proposta, error) {
			if p.Validade == nil || len(p.Itens) != 2 {
				t.Fatalf("unexpected proposta: %+v", p)
			}
			p.ID = "p-1"
			p.Numero = "PROP-000001"
			p.ValorTotal = 1234.56
			p.Status = entities.PropostaStatusRascunho
			return p, nil
		})
		body := `{"cliente_id":"c-1","titulo":"Revisão","validade":"2026-12-31","itens":[{"descricao":"Filtro","quantidade":2,"valor_unitario":17.28},{"descricao":"Mão de obra","quantidade":1,"valor_unitario":1200}]}`
		w := perform(r, http.MethodPost, "/v1/propostas", body)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"valor_formatado":"R$ 1.234,56"`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPropostaHandler_StatusAndDelete(t *testing.T) {
	r, uc := newPropostaRouter(t)

	if w := perform(r, http.MethodPatch, "/v1/propostas/p-1/status", `{}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing status, got %d", w.Code)
	}

	uc.EXPECT().UpdateStatus(gomock.Any(), "p-1", entities.PropostaStatusAprovada).Return(entities.Proposta{}, usecase.ErrTransicaoPropostaInvalida)
	if w := perform(r, http.MethodPatch, "/v1/propostas/p-1/status", `{"status":"APROVADA"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	uc.EXPECT().Delete(gomock.Any(), "p-1").Return(usecase.ErrPropostaAprovada)
	if w := perform(r, http.MethodDelete, "/v1/propostas/p-1", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	uc.EXPECT().Update(gomock.Any(), "p-2", gomock.Any()).Return(entities.Proposta{}, usecase.ErrPropostaNotFound)
	body := `{"cliente_id":"c-1","titulo":"Revisão","itens":[{"descricao":"Filtro","quantidade":1,"valor_unitario":10}]}`
	if w := perform(r, http.MethodPut, "/v1/propostas/p-2", body); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestPropostaHandler_ListFilters(t *testing.T) {
	r, uc := newPropostaRouter(t)
	uc.EXPECT().List(gomock.Any(), entities.PropostaFilter{Status: entities.PropostaStatusEnviada, ClienteID: "c-1"}).Return(nil, nil)
	w := perform(r, http.MethodGet, "/v1/propostas?status=ENVIADA&cliente_id=c-1", "")
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}
