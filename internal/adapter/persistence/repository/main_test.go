package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"tractus/internal/domain/entities"
	"tractus/internal/infrastructure/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory SQLite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)

	db, err := database.OpenDialector(sqlite.Open(dsn))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
}

func newProposta(clienteID string, valor float64) entities.Proposta {
	id := uuid.NewString()
	return entities.Proposta{
		ID:        id,
		ClienteID: clienteID,
		Titulo:    "Revisão de escavadeira",
		Itens: []entities.PropostaItem{
			{ID: uuid.NewString(), PropostaID: id, Ordem: 1, Descricao: "Mão de obra", Quantidade: 1, ValorUnitario: valor},
		},
		ValorTotal: valor,
		Status:     entities.PropostaStatusRascunho,
	}
}

func newVisita(clienteID string, when time.Time) entities.VisitaTecnica {
	return entities.VisitaTecnica{
		ID:           uuid.NewString(),
		ClienteID:    clienteID,
		DataAgendada: when,
		Status:       entities.VisitaStatusPendente,
	}
}

func newLaudo(visitaID string) entities.LaudoInspecao {
	id := uuid.NewString()
	return entities.LaudoInspecao{
		ID:          id,
		VisitaID:    visitaID,
		Equipamento: "Pá carregadeira",
		Status:      entities.LaudoStatusRascunho,
		Componentes: []entities.ComponenteInspecao{
			{ID: uuid.NewString(), LaudoID: id, Ordem: 1, Nome: "Motor", Condicao: entities.CondicaoBom},
			{ID: uuid.NewString(), LaudoID: id, Ordem: 2, Nome: "Hidráulico", Condicao: entities.CondicaoRuim},
		},
	}
}
