package flows_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Voxform-core-poc-v1/server/internal/assistant/flows"
	"github.com/Voxform-core-poc-v1/server/internal/assistant/model"
	"github.com/Voxform-core-poc-v1/server/internal/assistant/repo"
	"github.com/Voxform-core-poc-v1/server/internal/assistant/slots"
)

func newOrderStore(t *testing.T) *repo.FileStore {
	t.Helper()
	return repo.NewFileStore(filepath.Join(t.TempDir(), "orders.json"))
}

func TestOrderFlowHappyPath(t *testing.T) {
	ctx := context.Background()
	store := newOrderStore(t)
	flow := flows.NewOrderFlow(store)

	res, err := flow.Start(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, model.StatusOK, res.Status)
	assert.ElementsMatch(t, []string{"drinkType", "size", "milk", "name"}, res.Missing)

	res, err = flow.Update(ctx, slots.Update{
		"drinkType": slots.Text("latte"),
		"size":      slots.Text("medium"),
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusUpdated, res.Status)
	assert.ElementsMatch(t, []string{"milk", "name"}, res.Missing)

	res, err = flow.Update(ctx, slots.Update{
		"milk": slots.Text("oat"),
		"name": slots.Text("Sam"),
	})
	require.NoError(t, err)
	assert.Empty(t, res.Missing)

	res, err = flow.Finalize(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.StatusSaved, res.Status)
	assert.Contains(t, res.Text, "medium latte")
	assert.Contains(t, res.Text, "oat")
	assert.Contains(t, res.Text, "Sam")
	assert.Contains(t, res.Text, "no extras")
	assert.Equal(t, store.Path(), res.Ref)

	records := repo.LoadEntries[model.OrderRecord](store)
	require.Len(t, records, 1)
	assert.Contains(t, records[0].Summary, "medium latte")

	// the finalize reset the session: a second finalize starts from scratch
	res, err = flow.Finalize(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.StatusIncomplete, res.Status)
	assert.ElementsMatch(t, []string{"drinkType", "size", "milk", "name"}, res.Missing)
	assert.Len(t, repo.LoadEntries[model.OrderRecord](store), 1)
}

func TestOrderFlowExtrasNegation(t *testing.T) {
	ctx := context.Background()
	flow := flows.NewOrderFlow(newOrderStore(t))

	_, err := flow.Start(ctx, "")
	require.NoError(t, err)
	_, err = flow.Update(ctx, slots.Update{
		"drinkType": slots.Text("mocha"),
		"size":      slots.Text("small"),
		"milk":      slots.Text("whole"),
		"name":      slots.Text("Ira"),
		"extras":    slots.List("none"),
	})
	require.NoError(t, err)

	res, err := flow.Finalize(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.StatusSaved, res.Status)
	assert.Contains(t, res.Text, "no extras")
}

func TestOrderFlowIncompleteFinalizeKeepsState(t *testing.T) {
	ctx := context.Background()
	store := newOrderStore(t)
	flow := flows.NewOrderFlow(store)

	_, err := flow.Start(ctx, "")
	require.NoError(t, err)
	_, err = flow.Update(ctx, slots.Update{"drinkType": slots.Text("flat white")})
	require.NoError(t, err)

	res, err := flow.Finalize(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.StatusIncomplete, res.Status)
	assert.ElementsMatch(t, []string{"size", "milk", "name"}, res.Missing)
	assert.Equal(t, "flat white", res.Fields["drinkType"])
	assert.Empty(t, repo.LoadEntries[model.OrderRecord](store))
}

func TestOrderFlowWriteFailureKeepsState(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "orders.json")
	store := repo.NewFileStore(path)
	flow := flows.NewOrderFlow(store)

	_, err := flow.Start(ctx, "")
	require.NoError(t, err)
	_, err = flow.Update(ctx, slots.Update{
		"drinkType": slots.Text("latte"),
		"size":      slots.Text("large"),
		"milk":      slots.Text("soy"),
		"name":      slots.Text("Noor"),
	})
	require.NoError(t, err)

	// a directory at the temp-file path makes the write fail
	require.NoError(t, os.Mkdir(path+".tmp", 0o755))

	res, err := flow.Finalize(ctx)
	require.Error(t, err)
	assert.Equal(t, model.StatusFailed, res.Status)
	assert.Equal(t, "latte", res.Fields["drinkType"])

	require.NoError(t, os.Remove(path+".tmp"))
	res, err = flow.Finalize(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.StatusSaved, res.Status)
	assert.Contains(t, res.Text, "Noor")
}

func TestOrderFlowIngestWithoutFields(t *testing.T) {
	ctx := context.Background()
	flow := flows.NewOrderFlow(newOrderStore(t))

	_, err := flow.Start(ctx, "")
	require.NoError(t, err)
	res, err := flow.Ingest(ctx, model.Input{Text: "nice weather today"})
	require.NoError(t, err)
	assert.Equal(t, model.StatusUnresolved, res.Status)
	assert.Len(t, res.Missing, 4)
}

func TestOrderFlowCheckpointResume(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	sessions := repo.NewRedisSessionRepository(rdb, time.Minute)
	store := newOrderStore(t)

	flow := flows.NewOrderFlow(store).WithSessions(sessions, "sess-1")
	_, err := flow.Start(ctx, "")
	require.NoError(t, err)
	_, err = flow.Update(ctx, slots.Update{
		"drinkType": slots.Text("cappuccino"),
		"extras":    slots.List("extra shot"),
	})
	require.NoError(t, err)

	// a fresh flow on the same session picks up the saved fields
	revived := flows.NewOrderFlow(store).WithSessions(sessions, "sess-1")
	found, res := revived.Resume(ctx)
	require.True(t, found)
	assert.Equal(t, "cappuccino", res.Fields["drinkType"])
	assert.Equal(t, []string{"extra shot"}, res.Fields["extras"])
	assert.ElementsMatch(t, []string{"size", "milk", "name"}, res.Missing)

	// finalizing clears the checkpoint
	_, err = revived.Update(ctx, slots.Update{
		"size": slots.Text("small"),
		"milk": slots.Text("oat"),
		"name": slots.Text("Kai"),
	})
	require.NoError(t, err)
	_, err = revived.Finalize(ctx)
	require.NoError(t, err)

	gone := flows.NewOrderFlow(store).WithSessions(sessions, "sess-1")
	found, _ = gone.Resume(ctx)
	assert.False(t, found)
}
