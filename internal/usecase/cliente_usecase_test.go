package usecase

import (
	"context"
	"errors"
	"testing"

	"tractus/internal/domain/entities"
	mock_interfaces "tractus/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestClienteUseCase_Create(t *testing.T) {
	t.Run("missing nome", func(t *testing.T) {
		uc := NewClienteUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), entities.Cliente{Nome: " "})
		if !errors.Is(err, ErrInvalidClienteNome) {
			t.Fatalf("expected ErrInvalidClienteNome, got %v", err)
		}
	})

	t.Run("invalid documento", func(t *testing.T) {
		uc := NewClienteUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), entities.Cliente{Nome: "Agro Sul", Documento: "123.456"})
		if !errors.Is(err, ErrInvalidClienteDocumento) {
			t.Fatalf("expected ErrInvalidClienteDocumento, got %v", err)
		}
	})

	t.Run("invalid uf", func(t *testing.T) {
		uc := NewClienteUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), entities.Cliente{Nome: "Agro Sul", UF: "RGS"})
		if !errors.Is(err, ErrInvalidClienteUF) {
			t.Fatalf("expected ErrInvalidClienteUF, got %v", err)
		}
	})

	t.Run("duplicate documento", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClienteRepository(ctrl)
		uc := NewClienteUseCase(repo, nil, nil)

		repo.EXPECT().GetByDocumento(gomock.Any(), "12345678000190").Return(entities.Cliente{ID: "c-0"}, nil)

		_, err := uc.Create(context.Background(), entities.Cliente{Nome: "Agro Sul", Documento: "12.345.678/0001-90"})
		if !errors.Is(err, ErrClienteDocumentoDuplicado) {
			t.Fatalf("expected ErrClienteDocumentoDuplicado, got %v", err)
		}
	})

	t.Run("unknown vendedor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClienteRepository(ctrl)
		vendRepo := mock_interfaces.NewMockIVendedorRepository(ctrl)
		uc := NewClienteUseCase(repo, vendRepo, nil)

		vendRepo.EXPECT().GetByID(gomock.Any(), "v-9").Return(entities.Vendedor{}, nil)

		_, err := uc.Create(context.Background(), entities.Cliente{Nome: "Agro Sul", VendedorID: "v-9"})
		if !errors.Is(err, ErrVendedorNotFound) {
			t.Fatalf("expected ErrVendedorNotFound, got %v", err)
		}
	})

	t.Run("success normalizes fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClienteRepository(ctrl)
		uc := NewClienteUseCase(repo, nil, nil)

		repo.EXPECT().GetByDocumento(gomock.Any(), "12345678901").Return(entities.Cliente{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.Cliente) (entities.Cliente, error) {
			if c.ID == "" {
				t.Fatalf("expected generated id")
			}
			if c.NomeBusca != "sao joao maquinas" || c.UF != "SP" || c.Status != entities.ClienteStatusProspect {
				t.Fatalf("unexpected normalization: %+v", c)
			}
			return c, nil
		})

		got, err := uc.Create(context.Background(), entities.Cliente{Nome: " São João Máquinas ", Documento: "123.456.789-01", UF: "sp"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Documento != "12345678901" {
			t.Fatalf("expected digits-only documento, got %q", got.Documento)
		}
	})
}

func TestClienteUseCase_List_FoldsSearch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIClienteRepository(ctrl)
	uc := NewClienteUseCase(repo, nil, nil)

	repo.EXPECT().List(gomock.Any(), entities.ClienteFilter{Busca: "acucar"}).Return([]entities.Cliente{{ID: "c-1"}}, nil)

	got, err := uc.List(context.Background(), entities.ClienteFilter{Busca: " AÇÚCAR "})
	if err != nil || len(got) != 1 {
		t.Fatalf("unexpected result: %v %v", got, err)
	}

	if _, err := uc.List(context.Background(), entities.ClienteFilter{Status: "X"}); !errors.Is(err, ErrInvalidClienteStatus) {
		t.Fatalf("expected ErrInvalidClienteStatus, got %v", err)
	}
}

func TestClienteUseCase_Delete(t *testing.T) {
	t.Run("has propostas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClienteRepository(ctrl)
		uc := NewClienteUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Cliente{ID: "c-1"}, nil)
		repo.EXPECT().CountPropostas(gomock.Any(), "c-1").Return(int64(2), nil)

		if err := uc.Delete(context.Background(), "c-1"); !errors.Is(err, ErrClienteHasPropostas) {
			t.Fatalf("expected ErrClienteHasPropostas, got %v", err)
		}
	})

	t.Run("deletes notes then client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClienteRepository(ctrl)
		notas := mock_interfaces.NewMockIClienteAnotacaoRepository(ctrl)
		uc := NewClienteUseCase(repo, nil, notas)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Cliente{ID: "c-1"}, nil)
		repo.EXPECT().CountPropostas(gomock.Any(), "c-1").Return(int64(0), nil)
		notas.EXPECT().ListByClienteID(gomock.Any(), "c-1").Return([]entities.ClienteAnotacao{{ID: "n-1"}, {ID: "n-2"}}, nil)
		gomock.InOrder(
			notas.EXPECT().Delete(gomock.Any(), "n-1").Return(nil),
			notas.EXPECT().Delete(gomock.Any(), "n-2").Return(nil),
			repo.EXPECT().Delete(gomock.Any(), "c-1").Return(nil),
		)

		if err := uc.Delete(context.Background(), "c-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClienteRepository(ctrl)
		uc := NewClienteUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "c-9").Return(entities.Cliente{}, nil)

		if err := uc.Delete(context.Background(), "c-9"); !errors.Is(err, ErrClienteNotFound) {
			t.Fatalf("expected ErrClienteNotFound, got %v", err)
		}
	})
}
