package usecase

import (
	"context"
	"errors"
	"testing"

	"tractus/internal/domain/entities"
	"tractus/internal/usecase/interfaces"
	mock_interfaces "tractus/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOrdemServicoUseCase_CreateFromProposta(t *testing.T) {
	aprovada := entities.Proposta{ID: "p-1", ClienteID: "c-1", VendedorID: "v-1", Titulo: "Reforma", ValorTotal: 2500, Status: entities.PropostaStatusAprovada}

	t.Run("proposta not approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		propostas := mock_interfaces.NewMockIPropostaRepository(ctrl)
		uc := NewOrdemServicoUseCase(nil, propostas)

		p := aprovada
		p.Status = entities.PropostaStatusEnviada
		propostas.EXPECT().GetByID(gomock.Any(), "p-1").Return(p, nil)

		_, err := uc.CreateFromProposta(context.Background(), "p-1", "")
		if !errors.Is(err, ErrPropostaNaoAprovada) {
			t.Fatalf("expected ErrPropostaNaoAprovada, got %v", err)
		}
	})

	t.Run("second order for the same proposta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrdemServicoRepository(ctrl)
		propostas := mock_interfaces.NewMockIPropostaRepository(ctrl)
		uc := NewOrdemServicoUseCase(repo, propostas)

		propostas.EXPECT().GetByID(gomock.Any(), "p-1").Return(aprovada, nil)
		repo.EXPECT().GetByPropostaID(gomock.Any(), "p-1").Return(entities.OrdemServico{ID: "os-1"}, nil)

		_, err := uc.CreateFromProposta(context.Background(), "p-1", "")
		if !errors.Is(err, ErrOrdemServicoJaExiste) {
			t.Fatalf("expected ErrOrdemServicoJaExiste, got %v", err)
		}
	})

	t.Run("concurrent insert loses on unique index", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrdemServicoRepository(ctrl)
		propostas := mock_interfaces.NewMockIPropostaRepository(ctrl)
		uc := NewOrdemServicoUseCase(repo, propostas)

		propostas.EXPECT().GetByID(gomock.Any(), "p-1").Return(aprovada, nil)
		repo.EXPECT().GetByPropostaID(gomock.Any(), "p-1").Return(entities.OrdemServico{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.OrdemServico{}, interfaces.ErrConflict)

		_, err := uc.CreateFromProposta(context.Background(), "p-1", "")
		if !errors.Is(err, ErrOrdemServicoJaExiste) {
			t.Fatalf("expected ErrOrdemServicoJaExiste, got %v", err)
		}
	})

	t.Run("copies proposta data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrdemServicoRepository(ctrl)
		propostas := mock_interfaces.NewMockIPropostaRepository(ctrl)
		uc := NewOrdemServicoUseCase(repo, propostas)

		propostas.EXPECT().GetByID(gomock.Any(), "p-1").Return(aprovada, nil)
		repo.EXPECT().GetByPropostaID(gomock.Any(), "p-1").Return(entities.OrdemServico{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, os entities.OrdemServico) (entities.OrdemServico, error) {
			if os.ClienteID != "c-1" || os.VendedorID != "v-1" || os.Valor != 2500 || os.Descricao != "Reforma" || os.Status != entities.OrdemServicoStatusAberta {
				t.Fatalf("unexpected ordem: %+v", os)
			}
			os.Numero = entities.FormatNumeroOrdemServico(7)
			return os, nil
		})

		got, err := uc.CreateFromProposta(context.Background(), "p-1", "")
		if err != nil || got.Numero != "OS-000007" {
			t.Fatalf("unexpected result: %+v %v", got, err)
		}
	})
}

func TestOrdemServicoUseCase_UpdateStatus(t *testing.T) {
	t.Run("skipping a step is refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrdemServicoRepository(ctrl)
		uc := NewOrdemServicoUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.OrdemServico{ID: "os-1", Status: entities.OrdemServicoStatusAberta}, nil)

		_, err := uc.UpdateStatus(context.Background(), "os-1", entities.OrdemServicoStatusConcluida)
		if !errors.Is(err, ErrTransicaoOrdemInvalida) {
			t.Fatalf("expected ErrTransicaoOrdemInvalida, got %v", err)
		}
	})

	t.Run("concluida stamps date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrdemServicoRepository(ctrl)
		uc := NewOrdemServicoUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.OrdemServico{ID: "os-1", Status: entities.OrdemServicoStatusEmExecucao}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, os entities.OrdemServico) (entities.OrdemServico, error) {
			if os.DataConclusao == nil || os.Status != entities.OrdemServicoStatusConcluida {
				t.Fatalf("expected data_conclusao stamped: %+v", os)
			}
			return os, nil
		})

		if _, err := uc.UpdateStatus(context.Background(), "os-1", entities.OrdemServicoStatusConcluida); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("faturada creates exactly one venda", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrdemServicoRepository(ctrl)
		uc := NewOrdemServicoUseCase(repo, nil)

		os := entities.OrdemServico{ID: "os-1", ClienteID: "c-1", VendedorID: "v-1", Valor: 2500, Status: entities.OrdemServicoStatusConcluida}
		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(os, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)
		repo.EXPECT().Faturar(gomock.Any(), gomock.Any(), gomock.Any()).Times(1).
			DoAndReturn(func(_ context.Context, o entities.OrdemServico, v entities.Venda) (entities.OrdemServico, entities.Venda, error) {
				if o.Status != entities.OrdemServicoStatusFaturada || o.DataFaturamento == nil {
					t.Fatalf("unexpected ordem: %+v", o)
				}
				if v.OrdemServicoID != "os-1" || v.Valor != 2500 || v.ClienteID != "c-1" || v.StatusPagamento != entities.PagamentoStatusPendente {
					t.Fatalf("unexpected venda: %+v", v)
				}
				return o, v, nil
			})

		got, err := uc.UpdateStatus(context.Background(), "os-1", entities.OrdemServicoStatusFaturada)
		if err != nil || got.Status != entities.OrdemServicoStatusFaturada {
			t.Fatalf("unexpected result: %+v %v", got, err)
		}
	})

	t.Run("faturada twice is refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrdemServicoRepository(ctrl)
		uc := NewOrdemServicoUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.OrdemServico{ID: "os-1", Status: entities.OrdemServicoStatusFaturada}, nil)

		_, err := uc.UpdateStatus(context.Background(), "os-1", entities.OrdemServicoStatusFaturada)
		if !errors.Is(err, ErrTransicaoOrdemInvalida) {
			t.Fatalf("expected ErrTransicaoOrdemInvalida, got %v", err)
		}
	})
}

func TestOrdemServicoUseCase_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIOrdemServicoRepository(ctrl)
	uc := NewOrdemServicoUseCase(repo, nil)

	repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.OrdemServico{ID: "os-1", Status: entities.OrdemServicoStatusEmExecucao}, nil)
	if err := uc.Delete(context.Background(), "os-1"); !errors.Is(err, ErrOrdemServicoNaoRemovivel) {
		t.Fatalf("expected ErrOrdemServicoNaoRemovivel, got %v", err)
	}

	repo.EXPECT().GetByID(gomock.Any(), "os-2").Return(entities.OrdemServico{ID: "os-2", Status: entities.OrdemServicoStatusAberta}, nil)
	repo.EXPECT().Delete(gomock.Any(), "os-2").Return(nil)
	if err := uc.Delete(context.Background(), "os-2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
