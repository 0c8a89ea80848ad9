package handlers

import (
	"net/http"
	"testing"

	"tractus/internal/adapter/http/handlers/mocks"
	"tractus/internal/domain/entities"
	"tractus/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newLaudoRouter(t *testing.T) (*gin.Engine, *mocks.MockILaudoUseCase, *mocks.MockITextoUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockILaudoUseCase(ctrl)
	texto := mocks.NewMockITextoUseCase(ctrl)
	h := NewLaudoHandler(uc, texto)

	r := gin.New()
	r.POST("/v1/laudos", h.Create)
	r.PUT("/v1/laudos/:id", h.Update)
	r.DELETE("/v1/laudos/:id", h.Delete)
	r.PATCH("/v1/laudos/:id/enviar", h.Enviar)
	r.POST("/v1/laudos/corrigir-texto", h.CorrigirTexto)
	return r, uc, texto
}

func TestLaudoHandler_Create(t *testing.T) {
	body := `{"visita_id":"vis-1","equipamento":"Escavadeira 320","horimetro":1200,"componentes":[{"nome":"Esteira","condicao":"RUIM"}]}`

	t.Run("invalid condicao", func(t *testing.T) {
		r, _, _ := newLaudoRouter(t)
		bad := `{"visita_id":"vis-1","equipamento":"Escavadeira","componentes":[{"nome":"Esteira","condicao":"PESSIMO"}]}`
		if w := perform(r, http.MethodPost, "/v1/laudos", bad); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("visit not found", func(t *testing.T) {
		r, uc, _ := newLaudoRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.LaudoInspecao{}, usecase.ErrVisitaNotFound)
		if w := perform(r, http.MethodPost, "/v1/laudos", body); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("visit already has a report", func(t *testing.T) {
		r, uc, _ := newLaudoRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.LaudoInspecao{}, usecase.ErrLaudoJaExiste)
		if w := perform(r, http.MethodPost, "/v1/laudos", body); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("cancelled visit", func(t *testing.T) {
		r, uc, _ := newLaudoRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.LaudoInspecao{}, usecase.ErrVisitaCancelada)
		if w := perform(r, http.MethodPost, "/v1/laudos", body); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestLaudoHandler_Enviar(t *testing.T) {
	r, uc, _ := newLaudoRouter(t)

	uc.EXPECT().Enviar(gomock.Any(), "l-1").Return(entities.LaudoInspecao{ID: "l-1", Status: entities.LaudoStatusEnviado}, nil)
	if w := perform(r, http.MethodPatch, "/v1/laudos/l-1/enviar", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	uc.EXPECT().Enviar(gomock.Any(), "l-1").Return(entities.LaudoInspecao{}, usecase.ErrLaudoJaEnviado)
	if w := perform(r, http.MethodPatch, "/v1/laudos/l-1/enviar", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 on second submission, got %d", w.Code)
	}

	uc.EXPECT().Delete(gomock.Any(), "l-1").Return(usecase.ErrLaudoEnviado)
	if w := perform(r, http.MethodDelete, "/v1/laudos/l-1", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestLaudoHandler_CorrigirTexto(t *testing.T) {
	r, _, texto := newLaudoRouter(t)

	if w := perform(r, http.MethodPost, "/v1/laudos/corrigir-texto", `{}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	texto.EXPECT().Corrigir(gomock.Any(), "x").Return(usecase.CorrecaoTexto{}, usecase.ErrTextoMuitoLongo)
	if w := perform(r, http.MethodPost, "/v1/laudos/corrigir-texto", `{"texto":"x"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	texto.EXPECT().Corrigir(gomock.Any(), "mangueira vasando").
		Return(usecase.CorrecaoTexto{Original: "mangueira vasando", Corrigido: "mangueira vazando", Alterado: true}, nil)
	if w := perform(r, http.MethodPost, "/v1/laudos/corrigir-texto", `{"texto":"mangueira vasando"}`); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
