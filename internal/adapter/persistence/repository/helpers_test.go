package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"tractus/internal/domain/entities"
	"tractus/internal/usecase/interfaces"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestWithNumeroRetriesOnCollision(t *testing.T) {
	db := newTestDB(t)

	var seqs []int64
	err := withNumero(context.Background(), db, &entities.Proposta{}, entities.PrefixoProposta, func(tx *gorm.DB, seq int64) error {
		seqs = append(seqs, seq)
		if len(seqs) < 3 {
			return errNumeroTaken
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 3}, seqs)
}

func TestWithNumeroGivesUp(t *testing.T) {
	db := newTestDB(t)

	calls := 0
	err := withNumero(context.Background(), db, &entities.Proposta{}, entities.PrefixoProposta, func(tx *gorm.DB, seq int64) error {
		calls++
		return errNumeroTaken
	})
	require.ErrorIs(t, err, interfaces.ErrConflict)
	require.Equal(t, maxNumeroAttempts, calls)
}

func TestWithNumeroPassesOtherErrors(t *testing.T) {
	db := newTestDB(t)
	boom := errors.New("boom")

	err := withNumero(context.Background(), db, &entities.Proposta{}, entities.PrefixoProposta, func(tx *gorm.DB, seq int64) error {
		return boom
	})
	require.ErrorIs(t, err, boom)
}

func TestNumberedInsertCollision(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	a := newProposta("c1", 100)
	a.Numero = "PROP-000001"
	require.NoError(t, numberedInsert(db.WithContext(ctx), &a))

	b := newProposta("c1", 100)
	b.Numero = "PROP-000001"
	require.ErrorIs(t, numberedInsert(db.WithContext(ctx), &b), errNumeroTaken)
}

func TestNextSequenceBeyondPaddingWidth(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	for _, numero := range []string{"PROP-999998", "PROP-1000000", "PROP-999999"} {
		p := newProposta("c1", 100)
		p.Numero = numero
		require.NoError(t, numberedInsert(db.WithContext(ctx), &p))
	}

	seq, err := nextSequence(db.WithContext(ctx), &entities.Proposta{}, entities.PrefixoProposta)
	require.NoError(t, err)
	require.Equal(t, int64(1000001), seq)
	require.Equal(t, "PROP-1000001", entities.FormatNumeroProposta(seq))
}

func TestMonthRange(t *testing.T) {
	start, end, err := monthRange("2025-12")
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), start)
	require.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), end)

	_, _, err = monthRange("12/2025")
	require.Error(t, err)
}

func TestMonthExpr(t *testing.T) {
	db := newTestDB(t)
	require.Equal(t, "strftime('%Y-%m', data)", monthExpr(db, "data"))
}
