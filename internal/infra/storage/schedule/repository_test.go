package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
	"github.com/m04kA/SMC-VenueCalendar/internal/infra/docstore"
	"github.com/m04kA/SMC-VenueCalendar/internal/infra/docstore/memory"
)

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRepository(t *testing.T) (*Repository, *memory.Store) {
	t.Helper()
	store := memory.NewStore(nopLogger{})
	t.Cleanup(func() { _ = store.Close() })
	return NewRepository(store, nopLogger{}), store
}

func TestRepository_Limits(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepository(t)

	_, err := repo.GetLimit(ctx, "2024-03-05")
	assert.ErrorIs(t, err, ErrLimitNotFound)

	require.NoError(t, repo.SetLimit(ctx, "2024-03-05", 3))
	limit, err := repo.GetLimit(ctx, "2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, 3, limit)

	require.NoError(t, repo.SetLimit(ctx, "2024-03-05", 0))
	limit, err = repo.GetLimit(ctx, "2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, 0, limit)

	limits, err := repo.ListLimits(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"2024-03-05": 0}, limits)

	require.NoError(t, repo.DeleteLimit(ctx, "2024-03-05"))
	_, err = repo.GetLimit(ctx, "2024-03-05")
	assert.ErrorIs(t, err, ErrLimitNotFound)
}

func TestRepository_NonWorkingDays(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepository(t)

	marked, err := repo.IsNonWorkingDay(ctx, "2024-03-08")
	require.NoError(t, err)
	assert.False(t, marked)

	require.NoError(t, repo.SetNonWorkingDay(ctx, "2024-03-08"))
	marked, err = repo.IsNonWorkingDay(ctx, "2024-03-08")
	require.NoError(t, err)
	assert.True(t, marked)

	days, err := repo.ListNonWorkingDays(ctx)
	require.NoError(t, err)
	assert.Contains(t, days, "2024-03-08")

	require.NoError(t, repo.RemoveNonWorkingDay(ctx, "2024-03-08"))
	require.NoError(t, repo.RemoveNonWorkingDay(ctx, "2024-03-08"))
	marked, err = repo.IsNonWorkingDay(ctx, "2024-03-08")
	require.NoError(t, err)
	assert.False(t, marked)
}

func TestDecodeLimits(t *testing.T) {
	limits, errs := DecodeLimits(docstore.Snapshot{
		"2024-03-01": json.RawMessage(`3`),
		"2024-03-02": json.RawMessage(`5.0`),
		"2024-03-03": json.RawMessage(`"seven"`),
		"2024-03-04": json.RawMessage(`-1`),
	})

	assert.Equal(t, map[string]int{"2024-03-01": 3, "2024-03-02": 5}, limits)
	assert.Len(t, errs, 2)
	for _, err := range errs {
		assert.ErrorIs(t, err, ErrDecode)
	}
}

func TestDecodeNonWorkingDays(t *testing.T) {
	days := DecodeNonWorkingDays(docstore.Snapshot{
		"2024-03-01": json.RawMessage(`true`),
		"2024-03-02": json.RawMessage(`false`),
		"2024-03-03": json.RawMessage(`{"reason":"holiday"}`),
	})

	assert.Len(t, days, 2)
	assert.Contains(t, days, "2024-03-01")
	assert.Contains(t, days, "2024-03-03")
}

type recordingLogger struct {
	warnings []string
}

func (l *recordingLogger) Warn(format string, v ...interface{}) {
	l.warnings = append(l.warnings, fmt.Sprintf(format, v...))
}

func TestRepository_ListLimits_LogsSkippedValues(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(nopLogger{})
	t.Cleanup(func() { _ = store.Close() })

	log := &recordingLogger{}
	repo := NewRepository(store, log)

	require.NoError(t, repo.SetLimit(ctx, "2024-03-05", 3))
	require.NoError(t, store.Set(ctx, docstore.Path(domain.CollectionDateLimits, "2024-03-06"), "seven"))

	limits, err := repo.ListLimits(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"2024-03-05": 3}, limits)
	require.Len(t, log.warnings, 1)
	assert.Contains(t, log.warnings[0], "2024-03-06")
}
