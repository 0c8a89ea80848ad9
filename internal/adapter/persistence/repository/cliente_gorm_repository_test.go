package repository

import (
	"context"
	"testing"
	"time"

	"tractus/internal/domain/entities"

	"github.com/stretchr/testify/require"
)

func TestClienteGormRepository_ListSearch(t *testing.T) {
	ctx := context.Background()
	repo := NewClienteGormRepository(newTestDB(t))

	for _, c := range []entities.Cliente{
		{ID: "c1", Nome: "Construtora São João", NomeBusca: "construtora sao joao", Documento: "12345678000199", VendedorID: "v1", Status: entities.ClienteStatusAtivo},
		{ID: "c2", Nome: "Mineração Itabira", NomeBusca: "mineracao itabira", Documento: "98765432000100", VendedorID: "v2", Status: entities.ClienteStatusProspect},
	} {
		_, err := repo.Create(ctx, c)
		require.NoError(t, err)
	}

	byName, err := repo.List(ctx, entities.ClienteFilter{Busca: "sao jo"})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	require.Equal(t, "c1", byName[0].ID)

	byDoc, err := repo.List(ctx, entities.ClienteFilter{Busca: "98765"})
	require.NoError(t, err)
	require.Len(t, byDoc, 1)
	require.Equal(t, "c2", byDoc[0].ID)

	byStatus, err := repo.List(ctx, entities.ClienteFilter{Status: entities.ClienteStatusAtivo, VendedorID: "v1"})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)

	doc, err := repo.GetByDocumento(ctx, "12345678000199")
	require.NoError(t, err)
	require.Equal(t, "c1", doc.ID)
}

func TestClienteGormRepository_CountPropostas(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	clientes := NewClienteGormRepository(db)
	propostas := NewPropostaGormRepository(db)

	_, err := clientes.Create(ctx, entities.Cliente{ID: "c1", Nome: "Agro Norte", Status: entities.ClienteStatusAtivo})
	require.NoError(t, err)

	n, err := clientes.CountPropostas(ctx, "c1")
	require.NoError(t, err)
	require.Zero(t, n)

	_, err = propostas.Create(ctx, newProposta("c1", 100))
	require.NoError(t, err)

	n, err = clientes.CountPropostas(ctx, "c1")
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
}

func TestClienteAnotacaoGormRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewClienteAnotacaoGormRepository(newTestDB(t))

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	_, err := repo.Create(ctx, entities.ClienteAnotacao{ID: "a2", ClienteID: "c1", Texto: "segunda", CreatedAt: base.Add(time.Hour)})
	require.NoError(t, err)
	_, err = repo.Create(ctx, entities.ClienteAnotacao{ID: "a1", ClienteID: "c1", Texto: "primeira", CreatedAt: base})
	require.NoError(t, err)

	list, err := repo.ListByClienteID(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "a1", list[0].ID)

	require.NoError(t, repo.Delete(ctx, "a1"))
	gone, err := repo.GetByID(ctx, "a1")
	require.NoError(t, err)
	require.Empty(t, gone.ID)
}

func TestAnotacaoItemMapping(t *testing.T) {
	a := entities.ClienteAnotacao{
		ID:        "a1",
		ClienteID: "c1",
		AutorID:   "u1",
		Texto:     "cliente pediu retorno",
		CreatedAt: time.Date(2026, 3, 1, 9, 30, 15, 123, time.UTC),
	}
	it := toAnotacaoItem(a)
	require.Equal(t, "2026-03-01T09:30:15.000000123Z", it.CreatedAt)
	require.Equal(t, a, fromAnotacaoItem(it))
}
