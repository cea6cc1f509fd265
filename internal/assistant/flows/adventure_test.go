package flows_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Voxform-core-poc-v1/server/internal/assistant/flows"
	"github.com/Voxform-core-poc-v1/server/internal/assistant/model"
	"github.com/Voxform-core-poc-v1/server/internal/assistant/repo"
	"github.com/Voxform-core-poc-v1/server/internal/assistant/scene"
)

func TestAdventureFlowStartDescribesOpening(t *testing.T) {
	ctx := context.Background()
	flow := flows.NewAdventureFlow(scene.DefaultWorld())

	res, err := flow.Start(ctx, "Alex")
	require.NoError(t, err)
	assert.Equal(t, model.StatusOK, res.Status)
	assert.Contains(t, res.Text, "Greetings Alex")
	assert.Contains(t, res.Text, "Stillwater Quarry")
	assert.Contains(t, res.Text, scene.ActionPrompt)
	assert.Equal(t, "intro", flow.Cursor().Current)

	// no name falls back to a generic address
	anon := flows.NewAdventureFlow(scene.DefaultWorld())
	res, err = anon.Start(ctx, "")
	require.NoError(t, err)
	assert.Contains(t, res.Text, "Greetings traveler")
}

func TestAdventureFlowFuzzyActionAdvances(t *testing.T) {
	ctx := context.Background()
	flow := flows.NewAdventureFlow(scene.DefaultWorld())
	_, err := flow.Start(ctx, "")
	require.NoError(t, err)

	res, err := flow.Ingest(ctx, model.Input{Text: "let's inspect the tape"})
	require.NoError(t, err)
	assert.Equal(t, model.StatusOK, res.Status)
	assert.Contains(t, res.Text, "You chose 'inspect_tape'.")
	assert.Equal(t, "tape", flow.Cursor().Current)
	require.Len(t, flow.Cursor().History, 1)
	assert.Equal(t, "intro", flow.Cursor().History[0].From)
	assert.Equal(t, "tape", flow.Cursor().History[0].To)
}

func TestAdventureFlowUnresolvedLeavesStoryInPlace(t *testing.T) {
	ctx := context.Background()
	flow := flows.NewAdventureFlow(scene.DefaultWorld())
	_, err := flow.Start(ctx, "")
	require.NoError(t, err)
	_, err = flow.Ingest(ctx, model.Input{Text: "inspect_tape"})
	require.NoError(t, err)

	res, err := flow.Ingest(ctx, model.Input{Text: "do a backflip"})
	require.NoError(t, err)
	assert.Equal(t, model.StatusUnresolved, res.Status)
	assert.Contains(t, res.Text, scene.ActionPrompt)
	assert.Equal(t, "tape", flow.Cursor().Current)
	assert.Len(t, flow.Cursor().History, 1)
}

func TestAdventureFlowJournalReport(t *testing.T) {
	ctx := context.Background()
	flow := flows.NewAdventureFlow(scene.DefaultWorld())
	_, err := flow.Start(ctx, "Alex")
	require.NoError(t, err)

	res, err := flow.Journal(ctx)
	require.NoError(t, err)
	assert.Contains(t, res.Text, "Nothing noteworthy has happened yet.")

	_, err = flow.Ingest(ctx, model.Input{Text: "inspect_tape"})
	require.NoError(t, err)
	_, err = flow.Ingest(ctx, model.Input{Text: "pocket it and keep the message in mind"})
	require.NoError(t, err)

	res, err = flow.Journal(ctx)
	require.NoError(t, err)
	assert.Contains(t, res.Text, "Alex's night in Ember Grove")
	assert.Contains(t, res.Text, "Found a cursed-feeling cassette")
	assert.Contains(t, res.Text, "take_tape: tape -> tower_approach")
	assert.Contains(t, res.Text, scene.ActionPrompt)
}

func TestAdventureFlowRestartRewinds(t *testing.T) {
	ctx := context.Background()
	flow := flows.NewAdventureFlow(scene.DefaultWorld())
	_, err := flow.Start(ctx, "Alex")
	require.NoError(t, err)
	firstSession := flow.Cursor().SessionID
	_, err = flow.Ingest(ctx, model.Input{Text: "approach_tower"})
	require.NoError(t, err)

	res, err := flow.Restart(ctx)
	require.NoError(t, err)
	assert.Contains(t, res.Text, "The night rewinds")
	assert.Equal(t, "intro", flow.Cursor().Current)
	assert.Empty(t, flow.Cursor().History)
	assert.NotEqual(t, firstSession, flow.Cursor().SessionID)
	assert.Equal(t, "Alex", flow.Cursor().PlayerName)
}

func TestAdventureFlowCheckpointResume(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	sessions := repo.NewRedisSessionRepository(rdb, time.Minute)

	flow := flows.NewAdventureFlow(scene.DefaultWorld()).WithSessions(sessions, "story-1")
	_, err := flow.Start(ctx, "Alex")
	require.NoError(t, err)
	_, err = flow.Ingest(ctx, model.Input{Text: "inspect_tape"})
	require.NoError(t, err)

	revived := flows.NewAdventureFlow(scene.DefaultWorld()).WithSessions(sessions, "story-1")
	found, res := revived.Resume(ctx)
	require.True(t, found)
	assert.Contains(t, res.Text, "picks up where you left it")
	assert.Equal(t, "tape", revived.Cursor().Current)
	assert.Equal(t, "Alex", revived.Cursor().PlayerName)
	assert.Len(t, revived.Cursor().History, 1)

	// a different session has nothing to resume
	other := flows.NewAdventureFlow(scene.DefaultWorld()).WithSessions(sessions, "story-2")
	found, _ = other.Resume(ctx)
	assert.False(t, found)
}
