package repo_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/Voxform-core-poc-v1/server/internal/assistant/model"
	"github.com/Voxform-core-poc-v1/server/internal/assistant/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendThenLoadRoundTrips(t *testing.T) {
	store := repo.NewFileStore(filepath.Join(t.TempDir(), "orders.json"))

	rec := model.OrderRecord{
		Timestamp: "2026-08-29 10:00:00",
		Order:     map[string]any{"drinkType": "latte", "size": "medium"},
		Summary:   "a medium latte",
	}
	count, err := store.Append(rec)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	loaded := repo.LoadEntries[model.OrderRecord](store)
	require.Len(t, loaded, 1)
	assert.Equal(t, rec, loaded[0])
}

func TestAppendAccumulatesInOrder(t *testing.T) {
	store := repo.NewFileStore(filepath.Join(t.TempDir(), "log.json"))

	for i, summary := range []string{"first", "second", "third"} {
		count, err := store.Append(model.OrderRecord{Summary: summary})
		require.NoError(t, err)
		assert.Equal(t, i+1, count)
	}

	loaded := repo.LoadEntries[model.OrderRecord](store)
	require.Len(t, loaded, 3)
	assert.Equal(t, "first", loaded[0].Summary)
	assert.Equal(t, "third", loaded[2].Summary)
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	store := repo.NewFileStore(filepath.Join(t.TempDir(), "absent.json"))
	assert.Empty(t, repo.LoadEntries[model.OrderRecord](store))
}

func TestCorruptFileDegradesToEmptyOnRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := repo.NewFileStore(path)
	assert.Empty(t, repo.LoadEntries[model.OrderRecord](store))
}

func TestAppendCreatesParentDirectory(t *testing.T) {
	store := repo.NewFileStore(filepath.Join(t.TempDir(), "nested", "deeper", "log.json"))

	_, err := store.Append(model.OrderRecord{Summary: "x"})
	require.NoError(t, err)
	assert.Len(t, repo.LoadEntries[model.OrderRecord](store), 1)
}

func TestFailedWriteKeepsExistingEntries(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "log.json")
	store := repo.NewFileStore(path)
	_, err := store.Append(model.OrderRecord{Summary: "kept"})
	require.NoError(t, err)

	// Occupy the temp-file path with a directory so the staged write fails
	// before the store file is ever touched.
	require.NoError(t, os.Mkdir(path+".tmp", 0o755))
	t.Cleanup(func() { _ = os.Remove(path + ".tmp") })

	_, err = store.Append(model.OrderRecord{Summary: "lost"})
	require.Error(t, err)

	loaded := repo.LoadEntries[model.OrderRecord](store)
	require.Len(t, loaded, 1)
	assert.Equal(t, "kept", loaded[0].Summary)
}

func TestConcurrentAppendsAcrossStoreValuesLoseNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shared.json")

	const writers = 8
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Each goroutine uses its own FileStore value on the same path,
			// mimicking independent sessions finalizing near-simultaneously.
			_, err := repo.NewFileStore(path).Append(model.OrderRecord{Summary: "entry"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Len(t, repo.LoadEntries[model.OrderRecord](repo.NewFileStore(path)), writers)
}
