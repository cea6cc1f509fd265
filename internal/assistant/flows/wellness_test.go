package flows_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Voxform-core-poc-v1/server/internal/assistant/flows"
	"github.com/Voxform-core-poc-v1/server/internal/assistant/model"
	"github.com/Voxform-core-poc-v1/server/internal/assistant/repo"
	"github.com/Voxform-core-poc-v1/server/internal/assistant/slots"
)

func TestWellnessFlowRequiresGoals(t *testing.T) {
	ctx := context.Background()
	store := repo.NewFileStore(filepath.Join(t.TempDir(), "checkins.json"))
	flow := flows.NewWellnessFlow(store)

	_, err := flow.Start(ctx, "Mira")
	require.NoError(t, err)

	_, err = flow.Update(ctx, slots.Update{
		"mood":      slots.Text("pretty good"),
		"energy":    slots.Text("high"),
		"stressors": slots.Text("deadline at work"),
	})
	require.NoError(t, err)

	res, err := flow.Finalize(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.StatusIncomplete, res.Status)
	assert.Equal(t, []string{"goals"}, res.Missing)

	// an explicit "no goals" answer satisfies the field
	_, err = flow.Update(ctx, slots.Update{"goals": slots.List("nothing")})
	require.NoError(t, err)
	res, err = flow.Finalize(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.StatusSaved, res.Status)
	assert.Contains(t, res.Text, "no specific goals")

	records := repo.LoadEntries[model.CheckinRecord](store)
	require.Len(t, records, 1)
	assert.Equal(t, "pretty good", records[0].Mood)
	assert.Empty(t, records[0].Goals)
}

func TestWellnessFlowRecallsLastCheckin(t *testing.T) {
	ctx := context.Background()
	store := repo.NewFileStore(filepath.Join(t.TempDir(), "checkins.json"))

	first := flows.NewWellnessFlow(store)
	_, err := first.Start(ctx, "")
	require.NoError(t, err)
	_, err = first.Update(ctx, slots.Update{
		"mood":      slots.Text("tired"),
		"energy":    slots.Text("low"),
		"stressors": slots.Text("poor sleep"),
		"goals":     slots.List("sleep early", "short walk"),
	})
	require.NoError(t, err)
	_, err = first.Finalize(ctx)
	require.NoError(t, err)

	// the next session opens with a reference to the previous check-in
	second := flows.NewWellnessFlow(store)
	res, err := second.Start(ctx, "Mira")
	require.NoError(t, err)
	assert.Contains(t, res.Text, "Mira")
	assert.Contains(t, res.Text, "tired")
	assert.Contains(t, res.Text, "low")
	require.NotNil(t, second.LastCheckin())
	assert.Equal(t, []string{"sleep early", "short walk"}, second.LastCheckin().Goals)
}

func TestWellnessFlowSummaryFormat(t *testing.T) {
	ctx := context.Background()
	store := repo.NewFileStore(filepath.Join(t.TempDir(), "checkins.json"))
	flow := flows.NewWellnessFlow(store)

	_, err := flow.Start(ctx, "")
	require.NoError(t, err)
	_, err = flow.Update(ctx, slots.Update{
		"mood":      slots.Text("calm"),
		"energy":    slots.Text("steady"),
		"stressors": slots.Text("none really"),
		"goals":     slots.List("finish report", "call mom"),
	})
	require.NoError(t, err)

	res, err := flow.Finalize(ctx)
	require.NoError(t, err)
	assert.Contains(t, res.Text, "User mood: calm. Energy: steady. Stressors: none really. Goals for today: finish report, call mom.")
}
