package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"tractus/internal/adapter/http/handlers/mocks"
	"tractus/internal/domain/entities"
	"tractus/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newVisitaRouter(t *testing.T) (*gin.Engine, *mocks.MockIVisitaTecnicaUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIVisitaTecnicaUseCase(ctrl)
	h := NewVisitaTecnicaHandler(uc)

	r := gin.New()
	r.POST("/v1/visitas-tecnicas", h.Create)
	r.GET("/v1/visitas-tecnicas", h.List)
	r.PUT("/v1/visitas-tecnicas/:id", h.Update)
	r.PATCH("/v1/visitas-tecnicas/:id/status", h.UpdateStatus)
	r.DELETE("/v1/visitas-tecnicas/:id", h.Delete)
	return r, uc
}

func TestVisitaTecnicaHandler_Create(t *testing.T) {
	t.Run("missing cliente", func(t *testing.T) {
		r, _ := newVisitaRouter(t)
		if w := perform(r, http.MethodPost, "/v1/visitas-tecnicas", `{"data_agendada":"2026-03-10T09:00:00Z"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created as pending", func(t *testing.T) {
		r, uc := newVisitaRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, v entities.VisitaTecnica) (entities.VisitaTecnica, error) {
			want := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
			if v.ClienteID != "c-1" || !v.DataAgendada.Equal(want) {
				t.Fatalf("unexpected visita: %+v", v)
			}
			v.ID = "vis-1"
			v.Status = entities.VisitaStatusPendente
			return v, nil
		})
		if w := perform(r, http.MethodPost, "/v1/visitas-tecnicas", `{"cliente_id":"c-1","data_agendada":"2026-03-10T09:00:00Z"}`); w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestVisitaTecnicaHandler_Update(t *testing.T) {
	t.Run("rebook without cliente", func(t *testing.T) {
		r, uc := newVisitaRouter(t)
		uc.EXPECT().Update(gomock.Any(), "vis-1", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, v entities.VisitaTecnica) (entities.VisitaTecnica, error) {
			want := time.Date(2026, 3, 12, 14, 0, 0, 0, time.UTC)
			if v.ClienteID != "" || v.TecnicoID != "t-2" || !v.DataAgendada.Equal(want) {
				t.Fatalf("unexpected visita: %+v", v)
			}
			v.ID = "vis-1"
			v.ClienteID = "c-1"
			return v, nil
		})
		if w := perform(r, http.MethodPut, "/v1/visitas-tecnicas/vis-1", `{"tecnico_id":"t-2","data_agendada":"2026-03-12T14:00:00Z"}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("missing data", func(t *testing.T) {
		r, _ := newVisitaRouter(t)
		if w := perform(r, http.MethodPut, "/v1/visitas-tecnicas/vis-1", `{"tecnico_id":"t-2"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestVisitaTecnicaHandler_ListByDay(t *testing.T) {
	r, uc := newVisitaRouter(t)

	if w := perform(r, http.MethodGet, "/v1/visitas-tecnicas?data=10/03/2026", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	uc.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, f entities.VisitaFilter) ([]entities.VisitaTecnica, error) {
		if f.Data == nil || f.Data.Format(time.DateOnly) != "2026-03-10" || f.Status != entities.VisitaStatusConfirmada {
			t.Fatalf("unexpected filter: %+v", f)
		}
		return nil, nil
	})
	w := perform(r, http.MethodGet, "/v1/visitas-tecnicas?data=2026-03-10&status=CONFIRMADA", "")
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}

func TestVisitaTecnicaHandler_StateRules(t *testing.T) {
	r, uc := newVisitaRouter(t)

	uc.EXPECT().UpdateStatus(gomock.Any(), "vis-1", entities.VisitaStatusCancelada, "cliente desistiu").Return(entities.VisitaTecnica{}, usecase.ErrVisitaRealizadaNaoCancelavel)
	if w := perform(r, http.MethodPatch, "/v1/visitas-tecnicas/vis-1/status", `{"status":"CANCELADA","motivo":"cliente desistiu"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	uc.EXPECT().Delete(gomock.Any(), "vis-1").Return(usecase.ErrVisitaRealizadaNaoRemovivel)
	if w := perform(r, http.MethodDelete, "/v1/visitas-tecnicas/vis-1", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	uc.EXPECT().Delete(gomock.Any(), "vis-404").Return(usecase.ErrVisitaNotFound)
	if w := perform(r, http.MethodDelete, "/v1/visitas-tecnicas/vis-404", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
