package handlers

import (
	"net/http"
	"strings"
	"testing"

	"tractus/internal/adapter/http/handlers/mocks"
	"tractus/internal/domain/entities"
	"tractus/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestOrdemServicoHandler(t *testing.T) {
	newRouter := func(t *testing.T) (*gin.Engine, *mocks.MockIOrdemServicoUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrdemServicoUseCase(ctrl)
		h := NewOrdemServicoHandler(uc)

		r := gin.New()
		r.POST("/v1/ordens-servico", h.Create)
		r.GET("/v1/ordens-servico/:id", h.GetByID)
		r.PUT("/v1/ordens-servico/:id", h.Update)
		r.PATCH("/v1/ordens-servico/:id/status", h.UpdateStatus)
		r.DELETE("/v1/ordens-servico/:id", h.Delete)
		return r, uc
	}

	t.Run("missing proposta_id", func(t *testing.T) {
		r, _ := newRouter(t)
		if w := perform(r, http.MethodPost, "/v1/ordens-servico", `{}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("second order for the same proposta", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().CreateFromProposta(gomock.Any(), "p-1", "").Return(entities.OrdemServico{}, usecase.ErrOrdemServicoJaExiste)
		if w := perform(r, http.MethodPost, "/v1/ordens-servico", `{"proposta_id":"p-1"}`); w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("proposta not approved", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().CreateFromProposta(gomock.Any(), "p-2", "urgente").Return(entities.OrdemServico{}, usecase.ErrPropostaNaoAprovada)
		if w := perform(r, http.MethodPost, "/v1/ordens-servico", `{"proposta_id":"p-2","descricao":"urgente"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().CreateFromProposta(gomock.Any(), "p-3", "").Return(entities.OrdemServico{ID: "os-1", Numero: "OS-000001", Valor: 5000, Status: entities.OrdemServicoStatusAberta}, nil)
		w := perform(r, http.MethodPost, "/v1/ordens-servico", `{"proposta_id":"p-3"}`)
		if w.Code != http.StatusCreated || !strings.Contains(w.Body.String(), `"numero":"OS-000001"`) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("update passes optional fields", func(t *testing.T) {
		r, uc := newRouter(t)
		valor := 7500.0
		uc.EXPECT().Update(gomock.Any(), "os-1", usecase.UpdateOrdemServicoCommand{Valor: &valor}).Return(entities.OrdemServico{ID: "os-1", Valor: valor}, nil)
		if w := perform(r, http.MethodPut, "/v1/ordens-servico/os-1", `{"valor":7500}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("status transitions", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().UpdateStatus(gomock.Any(), "os-1", entities.OrdemServicoStatusFaturada).Return(entities.OrdemServico{}, usecase.ErrTransicaoOrdemInvalida)
		if w := perform(r, http.MethodPatch, "/v1/ordens-servico/os-1/status", `{"status":"FATURADA"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("delete only when open", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().Delete(gomock.Any(), "os-1").Return(usecase.ErrOrdemServicoNaoRemovivel)
		if w := perform(r, http.MethodDelete, "/v1/ordens-servico/os-1", ""); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "os-404").Return(entities.OrdemServico{}, usecase.ErrOrdemServicoNotFound)
		if w := perform(r, http.MethodGet, "/v1/ordens-servico/os-404", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
