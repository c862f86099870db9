package sqlite

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)
	t.Cleanup(func() { assert.NoError(t, store.Close()) })

	return store
}

func testRun(id string, started time.Time) *domain.Run {
	return &domain.Run{
		ID:                 id,
		Root:               "/data/pages",
		Output:             "project_data.csv",
		Format:             domain.FormatCSV,
		Status:             domain.RunCompleted,
		StartedAt:          started,
		FinishedAt:         started.Add(2 * time.Second),
		DocumentsSeen:      3,
		DocumentsExtracted: 2,
		DocumentsSkipped:   1,
		FieldErrors:        4,
		Rows:               2,
		Columns:            19,
		Checksum:           "deadbeef",
	}
}

// ==================== Store Creation Tests ====================

func TestNewStore(t *testing.T) {
	t.Run("creates database file", func(t *testing.T) {
		tempDir := t.TempDir()

		store, err := NewStore(tempDir)
		require.NoError(t, err)
		defer store.Close()

		assert.Equal(t, filepath.Join(tempDir, "history.db"), store.Path())
		_, err = os.Stat(store.Path())
		assert.NoError(t, err)
	})

	t.Run("creates missing data directory", func(t *testing.T) {
		dataDir := filepath.Join(t.TempDir(), "nested", "data")

		store, err := NewStore(dataDir)
		require.NoError(t, err)
		defer store.Close()

		info, err := os.Stat(dataDir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("reopening keeps data and does not rerun migrations", func(t *testing.T) {
		tempDir := t.TempDir()
		ctx := context.Background()

		store, err := NewStore(tempDir)
		require.NoError(t, err)
		require.NoError(t, store.RunStore().SaveRun(ctx, testRun("r1", time.Now())))
		require.NoError(t, store.Close())

		store, err = NewStore(tempDir)
		require.NoError(t, err)
		defer store.Close()

		version, err := store.schemaVersion()
		require.NoError(t, err)
		assert.Equal(t, 1, version)

		_, err = store.RunStore().GetRun(ctx, "r1")
		assert.NoError(t, err)
	})
}

// ==================== Run Store Tests ====================

func TestRunStore_SaveAndGet(t *testing.T) {
	store := setupTestStore(t)
	runs := store.RunStore()
	ctx := context.Background()
	started := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

	require.NoError(t, runs.SaveRun(ctx, testRun("run-1", started)))

	got, err := runs.GetRun(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, "run-1", got.ID)
	assert.Equal(t, "/data/pages", got.Root)
	assert.Equal(t, domain.RunCompleted, got.Status)
	assert.True(t, started.Equal(got.StartedAt))
	assert.Equal(t, 2*time.Second, got.Duration())
	assert.Equal(t, 3, got.DocumentsSeen)
	assert.Equal(t, 2, got.DocumentsExtracted)
	assert.Equal(t, 1, got.DocumentsSkipped)
	assert.Equal(t, 4, got.FieldErrors)
	assert.Equal(t, 2, got.Rows)
	assert.Equal(t, 19, got.Columns)
	assert.Equal(t, "deadbeef", got.Checksum)
}

func TestRunStore_SaveUpdates(t *testing.T) {
	store := setupTestStore(t)
	runs := store.RunStore()
	ctx := context.Background()

	run := &domain.Run{ID: "run-1", Root: "/data", Status: domain.RunRunning, StartedAt: time.Now()}
	require.NoError(t, runs.SaveRun(ctx, run))

	got, err := runs.GetRun(ctx, "run-1")
	require.NoError(t, err)
	assert.True(t, got.FinishedAt.IsZero())

	run.Status = domain.RunFailed
	run.Error = "root path does not exist"
	run.FinishedAt = run.StartedAt.Add(time.Second)
	require.NoError(t, runs.SaveRun(ctx, run))

	got, err = runs.GetRun(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, domain.RunFailed, got.Status)
	assert.Equal(t, "root path does not exist", got.Error)
	assert.False(t, got.FinishedAt.IsZero())
}

func TestRunStore_SaveInvalid(t *testing.T) {
	store := setupTestStore(t)

	assert.ErrorIs(t, store.RunStore().SaveRun(context.Background(), nil), domain.ErrInvalidInput)
	assert.ErrorIs(t, store.RunStore().SaveRun(context.Background(), &domain.Run{}), domain.ErrInvalidInput)
}

func TestRunStore_GetNotFound(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.RunStore().GetRun(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRunStore_List(t *testing.T) {
	store := setupTestStore(t)
	runs := store.RunStore()
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		require.NoError(t, runs.SaveRun(ctx, testRun(fmt.Sprintf("run-%d", i), base.Add(time.Duration(i)*time.Hour))))
	}

	all, err := runs.ListRuns(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "run-2", all[0].ID)
	assert.Equal(t, "run-0", all[2].ID)

	limited, err := runs.ListRuns(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestRunStore_ListEmpty(t *testing.T) {
	store := setupTestStore(t)

	runs, err := store.RunStore().ListRuns(context.Background(), 10)

	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestRunStore_Outcomes(t *testing.T) {
	store := setupTestStore(t)
	runs := store.RunStore()
	ctx := context.Background()
	require.NoError(t, runs.SaveRun(ctx, testRun("run-1", time.Now())))

	outcomes := []domain.DocumentOutcome{
		{URI: "/data/b", Name: "b", Status: domain.OutcomeExtracted, Fields: 19, FieldErrors: 1},
		{URI: "/data/a", Name: "a", Status: domain.OutcomeSkipped, Message: "not valid UTF-8"},
	}
	require.NoError(t, runs.SaveOutcomes(ctx, "run-1", outcomes))

	got, err := runs.Outcomes(ctx, "run-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].Name)
	assert.Equal(t, "run-1", got[0].RunID)
	assert.Equal(t, 1, got[0].FieldErrors)
	assert.Equal(t, domain.OutcomeSkipped, got[1].Status)
	assert.Equal(t, "not valid UTF-8", got[1].Message)

	require.NoError(t, runs.SaveOutcomes(ctx, "run-1", outcomes[:1]))
	got, err = runs.Outcomes(ctx, "run-1")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestRunStore_OutcomesUnknownRun(t *testing.T) {
	store := setupTestStore(t)

	err := store.RunStore().SaveOutcomes(context.Background(), "missing", []domain.DocumentOutcome{{URI: "x"}})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRunStore_Delete(t *testing.T) {
	store := setupTestStore(t)
	runs := store.RunStore()
	ctx := context.Background()
	require.NoError(t, runs.SaveRun(ctx, testRun("run-1", time.Now())))
	require.NoError(t, runs.SaveOutcomes(ctx, "run-1", []domain.DocumentOutcome{{URI: "/data/a", Name: "a"}}))

	require.NoError(t, runs.DeleteRun(ctx, "run-1"))

	_, err := runs.GetRun(ctx, "run-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	outcomes, err := runs.Outcomes(ctx, "run-1")
	require.NoError(t, err)
	assert.Empty(t, outcomes)

	assert.ErrorIs(t, runs.DeleteRun(ctx, "run-1"), domain.ErrNotFound)
}
