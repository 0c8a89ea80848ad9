package usecase

import (
	"context"
	"errors"
	"testing"

	"tractus/internal/domain/entities"
	mock_interfaces "tractus/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPropostaUseCase_Create(t *testing.T) {
	t.Run("missing titulo", func(t *testing.T) {
		uc := NewPropostaUseCase(nil, nil)
		_, err := uc.Create(context.Background(), entities.Proposta{ClienteID: "c-1"})
		if !errors.Is(err, ErrInvalidPropostaTitulo) {
			t.Fatalf("expected ErrInvalidPropostaTitulo, got %v", err)
		}
	})

	t.Run("cliente not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clientes := mock_interfaces.NewMockIClienteRepository(ctrl)
		uc := NewPropostaUseCase(nil, clientes)

		clientes.EXPECT().GetByID(gomock.Any(), "c-9").Return(entities.Cliente{}, nil)

		_, err := uc.Create(context.Background(), entities.Proposta{Titulo: "Reforma", ClienteID: "c-9"})
		if !errors.Is(err, ErrClienteNotFound) {
			t.Fatalf("expected ErrClienteNotFound, got %v", err)
		}
	})

	t.Run("no valid items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clientes := mock_interfaces.NewMockIClienteRepository(ctrl)
		uc := NewPropostaUseCase(nil, clientes)

		clientes.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Cliente{ID: "c-1"}, nil)

		_, err := uc.Create(context.Background(), entities.Proposta{Titulo: "Reforma", ClienteID: "c-1"})
		if !errors.Is(err, ErrPropostaSemItens) {
			t.Fatalf("expected ErrPropostaSemItens, got %v", err)
		}
	})

	t.Run("invalid item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clientes := mock_interfaces.NewMockIClienteRepository(ctrl)
		uc := NewPropostaUseCase(nil, clientes)

		clientes.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Cliente{ID: "c-1"}, nil)

		_, err := uc.Create(context.Background(), entities.Proposta{Titulo: "Reforma", ClienteID: "c-1", Itens: []entities.PropostaItem{{Descricao: "Bomba", Quantidade: 0, ValorUnitario: 10}}})
		if !errors.Is(err, ErrInvalidPropostaItem) {
			t.Fatalf("expected ErrInvalidPropostaItem, got %v", err)
		}
	})

	t.Run("success computes total and defaults vendedor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPropostaRepository(ctrl)
		clientes := mock_interfaces.NewMockIClienteRepository(ctrl)
		uc := NewPropostaUseCase(repo, clientes)

		clientes.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Cliente{ID: "c-1", VendedorID: "v-1"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Proposta) (entities.Proposta, error) {
			if p.VendedorID != "v-1" || p.Status != entities.PropostaStatusRascunho {
				t.Fatalf("unexpected proposta: %+v", p)
			}
			if p.ValorTotal != 2500 || len(p.Itens) != 2 || p.Itens[1].Ordem != 2 || p.Itens[0].PropostaID != p.ID {
				t.Fatalf("unexpected items/total: %+v", p)
			}
			p.Numero = entities.FormatNumeroProposta(1)
			return p, nil
		})

		got, err := uc.Create(context.Background(), entities.Proposta{
			Titulo:    "Reforma de escavadeira",
			ClienteID: "c-1",
			Itens: []entities.PropostaItem{
				{Descricao: "Mao de obra", Quantidade: 10, ValorUnitario: 150},
				{Descricao: "Kit vedacao", Quantidade: 1, ValorUnitario: 1000},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Numero != "PROP-000001" {
			t.Fatalf("unexpected numero %q", got.Numero)
		}
	})
}

func TestPropostaUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPropostaRepository(ctrl)
		uc := NewPropostaUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Proposta{ID: "p-1", Status: entities.PropostaStatusRascunho}, nil)

		_, err := uc.UpdateStatus(context.Background(), "p-1", entities.PropostaStatusAprovada)
		if !errors.Is(err, ErrTransicaoPropostaInvalida) {
			t.Fatalf("expected ErrTransicaoPropostaInvalida, got %v", err)
		}
	})

	t.Run("sent to approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPropostaRepository(ctrl)
		uc := NewPropostaUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Proposta{ID: "p-1", Status: entities.PropostaStatusEnviada}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "p-1", entities.PropostaStatusAprovada).Return(entities.Proposta{ID: "p-1", Status: entities.PropostaStatusAprovada}, nil)

		got, err := uc.UpdateStatus(context.Background(), "p-1", entities.PropostaStatusAprovada)
		if err != nil || got.Status != entities.PropostaStatusAprovada {
			t.Fatalf("unexpected result: %+v %v", got, err)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		uc := NewPropostaUseCase(nil, nil)
		if _, err := uc.UpdateStatus(context.Background(), "p-1", "X"); !errors.Is(err, ErrInvalidPropostaStatus) {
			t.Fatalf("expected ErrInvalidPropostaStatus, got %v", err)
		}
	})
}

func TestPropostaUseCase_UpdateAndDelete_Guards(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPropostaRepository(ctrl)
	uc := NewPropostaUseCase(repo, nil)

	repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Proposta{ID: "p-1", Status: entities.PropostaStatusAprovada}, nil).Times(2)

	if _, err := uc.Update(context.Background(), "p-1", entities.Proposta{Titulo: "x"}); !errors.Is(err, ErrPropostaNaoEditavel) {
		t.Fatalf("expected ErrPropostaNaoEditavel, got %v", err)
	}
	if err := uc.Delete(context.Background(), "p-1"); !errors.Is(err, ErrPropostaAprovada) {
		t.Fatalf("expected ErrPropostaAprovada, got %v", err)
	}
}
