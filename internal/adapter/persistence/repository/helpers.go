package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"tractus/internal/usecase/interfaces"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const maxNumeroAttempts = 5

// errNumeroTaken tells withNumero that the numbered insert lost a race and must be retried.
var errNumeroTaken = errors.New("numero already taken")

// translate maps unique violations to interfaces.ErrConflict. The DB must be opened with TranslateError.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", interfaces.ErrConflict, err)
	}
	return err
}

// missOrConflict explains a guarded write that matched no row: nil when the row is gone,
// ErrConflict when it still exists but left the editable state.
func missOrConflict(tx *gorm.DB, model any, id string) error {
	var n int64
	if err := tx.Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	return interfaces.ErrConflict
}

// first loads one row, returning the zero value when nothing matches.
func first[T any](ctx context.Context, db *gorm.DB, query any, args ...any) (T, error) {
	var out T
	err := db.WithContext(ctx).Where(query, args...).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		var zero T
		return zero, nil
	}
	return out, err
}

// nextSequence returns the highest numeric suffix among numero values starting with prefix, plus one.
// Suffixes are zero padded to a minimum width but may outgrow it, so longer numbers sort first.
func nextSequence(tx *gorm.DB, model any, prefix string) (int64, error) {
	var numeros []string
	err := tx.Model(model).
		Where("numero LIKE ?", prefix+"%").
		Order("LENGTH(numero) DESC").
		Order("numero DESC").
		Limit(1).
		Pluck("numero", &numeros).Error
	if err != nil {
		return 0, err
	}
	if len(numeros) == 0 {
		return 1, nil
	}
	n, err := strconv.ParseInt(strings.TrimPrefix(numeros[0], prefix), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse numero %q: %w", numeros[0], err)
	}
	return n + 1, nil
}

// withNumero runs fn in its own transaction per attempt, handing it the next free sequence
// for prefix. fn returns errNumeroTaken when the unique index on numero rejected its insert.
func withNumero(ctx context.Context, db *gorm.DB, model any, prefix string, fn func(tx *gorm.DB, seq int64) error) error {
	var lastErr error
	for attempt := 0; attempt < maxNumeroAttempts; attempt++ {
		err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			seq, err := nextSequence(tx, model, prefix)
			if err != nil {
				return err
			}
			return fn(tx, seq+int64(attempt))
		})
		if !errors.Is(err, errNumeroTaken) {
			return err
		}
		lastErr = err
		zap.L().Warn("numero collision, retrying", zap.String("scope", "repository"), zap.String("prefix", prefix), zap.Int("attempt", attempt+1))
	}
	return fmt.Errorf("%w: %v after %d attempts", interfaces.ErrConflict, lastErr, maxNumeroAttempts)
}

// numberedInsert creates row and reports a duplicate key as errNumeroTaken.
func numberedInsert(tx *gorm.DB, row any) error {
	err := tx.Create(row).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errNumeroTaken
	}
	return err
}

// monthRange returns [first day of mes, first day of next month) for mes in YYYY-MM.
func monthRange(mes string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01", mes)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, start.AddDate(0, 1, 0), nil
}

// monthExpr renders a YYYY-MM projection of column for the active dialect.
func monthExpr(db *gorm.DB, column string) string {
	if db.Dialector.Name() == "postgres" {
		return "to_char(" + column + ", 'YYYY-MM')"
	}
	return "strftime('%Y-%m', " + column + ")"
}
