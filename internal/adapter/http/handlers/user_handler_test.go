package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"tractus/internal/adapter/http/handlers/mocks"
	"tractus/internal/domain/entities"
	"tractus/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestUserHandler_Create(t *testing.T) {
	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewUserHandler(uc)

		r := gin.New()
		r.POST("/v1/usuarios", h.Create)

		w := perform(r, http.MethodPost, "/v1/usuarios", `{"nome":"Ana"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("email taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewUserHandler(uc)

		r := gin.New()
		r.POST("/v1/usuarios", h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.User{}, usecase.ErrUserEmailTaken)

		w := perform(r, http.MethodPost, "/v1/usuarios", `{"nome":"Ana","email":"ana@tractus.com","senha":"123456","role":"VENDEDOR"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success maps command", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewUserHandler(uc)

		r := gin.New()
		r.POST("/v1/usuarios", h.Create)

		uc.EXPECT().Create(gomock.Any(), usecase.CreateUserCommand{
			Nome:       "Ana",
			Email:      "ana@tractus.com",
			Senha:      "123456",
			Role:       entities.RoleVendedor,
			MetaMensal: 50000,
		}).Return(entities.User{ID: "u-1", Role: entities.RoleVendedor}, nil)

		w := perform(r, http.MethodPost, "/v1/usuarios", `{"nome":"Ana","email":"ana@tractus.com","senha":"123456","role":"VENDEDOR","meta_mensal":50000}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestUserHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIUserUseCase(ctrl)
	h := NewUserHandler(uc)

	r := gin.New()
	r.DELETE("/v1/usuarios/:id", h.Delete)

	uc.EXPECT().Deactivate(gomock.Any(), "missing").Return(entities.User{}, usecase.ErrUserNotFound)
	if w := perform(r, http.MethodDelete, "/v1/usuarios/missing", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	uc.EXPECT().Deactivate(gomock.Any(), "u-1").Return(entities.User{ID: "u-1", Ativo: false}, nil)
	w := perform(r, http.MethodDelete, "/v1/usuarios/u-1", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"ativo":false`) {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}

func TestUserHandler_InternalErrorHidesCause(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIUserUseCase(ctrl)
	h := NewUserHandler(uc)

	r := gin.New()
	r.GET("/v1/usuarios", h.List)

	uc.EXPECT().List(gomock.Any()).Return(nil, errors.New("connection refused"))

	w := perform(r, http.MethodGet, "/v1/usuarios", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "connection refused") {
		t.Fatalf("cause leaked: %s", w.Body.String())
	}
}

func TestVendedorHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIVendedorUseCase(ctrl)
	h := NewVendedorHandler(uc)

	r := gin.New()
	r.GET("/v1/vendedores", h.List)
	r.PUT("/v1/vendedores/:id", h.Update)

	uc.EXPECT().List(gomock.Any()).Return(nil, nil)
	w := perform(r, http.MethodGet, "/v1/vendedores", "")
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}

	uc.EXPECT().Update(gomock.Any(), "v-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, cmd usecase.UpdateVendedorCommand) (entities.Vendedor, error) {
			if cmd.MetaMensal == nil || *cmd.MetaMensal != -1 || cmd.Telefone != nil {
				t.Fatalf("unexpected command: %+v", cmd)
			}
			return entities.Vendedor{}, usecase.ErrInvalidVendedorMeta
		})
	if w := perform(r, http.MethodPut, "/v1/vendedores/v-1", `{"meta_mensal":-1}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
