package slots_test

import (
	"encoding/json"
	"testing"

	"github.com/Voxform-core-poc-v1/server/internal/assistant/slots"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderForm() *slots.Form {
	return slots.NewForm(
		slots.FieldSpec{Name: "drinkType", Kind: slots.KindText, Required: true},
		slots.FieldSpec{Name: "size", Kind: slots.KindText, Required: true},
		slots.FieldSpec{Name: "milk", Kind: slots.KindText, Required: true},
		slots.FieldSpec{Name: "extras", Kind: slots.KindList},
		slots.FieldSpec{Name: "name", Kind: slots.KindText, Required: true},
	)
}

func TestApplyReportsMissingInDeclarationOrder(t *testing.T) {
	form := orderForm()

	missing := form.Apply(slots.Update{"milk": slots.Text("oat")})

	assert.Equal(t, []string{"drinkType", "size", "name"}, missing)
}

func TestApplyTrimsScalarsAndSkipsBlanks(t *testing.T) {
	form := orderForm()

	form.Apply(slots.Update{"drinkType": slots.Text("  latte  ")})
	assert.Equal(t, "latte", form.Text("drinkType"))

	// A blank value must not clear a previously collected field.
	form.Apply(slots.Update{"drinkType": slots.Text("   ")})
	assert.Equal(t, "latte", form.Text("drinkType"))
}

func TestApplyCommutesOnDisjointFields(t *testing.T) {
	a := orderForm()
	a.Apply(slots.Update{"drinkType": slots.Text("latte"), "size": slots.Text("medium")})
	a.Apply(slots.Update{"milk": slots.Text("oat"), "name": slots.Text("Sam")})

	b := orderForm()
	b.Apply(slots.Update{"milk": slots.Text("oat"), "name": slots.Text("Sam")})
	b.Apply(slots.Update{"drinkType": slots.Text("latte"), "size": slots.Text("medium")})

	assert.Equal(t, a.Snapshot(), b.Snapshot())
}

func TestListNegationStoresExplicitEmpty(t *testing.T) {
	form := orderForm()

	form.Apply(slots.Update{"extras": slots.List("No Extras")})

	extras, set := form.ListValue("extras")
	require.True(t, set)
	assert.Empty(t, extras)

	// Optional fields never show up in the missing report, answered or not.
	assert.NotContains(t, form.Missing(), "extras")
}

func TestListDropsEmptyElements(t *testing.T) {
	form := orderForm()

	form.Apply(slots.Update{"extras": slots.List(" caramel ", "", "  ", "whipped cream")})

	extras, set := form.ListValue("extras")
	require.True(t, set)
	assert.Equal(t, []string{"caramel", "whipped cream"}, extras)
}

func TestRequiredListMissingOnlyWhileUnset(t *testing.T) {
	form := slots.NewForm(
		slots.FieldSpec{Name: "mood", Kind: slots.KindText, Required: true},
		slots.FieldSpec{Name: "goals", Kind: slots.KindList, Required: true},
	)

	assert.Equal(t, []string{"mood", "goals"}, form.Missing())

	form.Apply(slots.Update{"goals": slots.List("none")})
	assert.Equal(t, []string{"mood"}, form.Missing())
}

func TestCompleteIsMonotonicUntilReset(t *testing.T) {
	form := orderForm()
	form.Apply(slots.Update{
		"drinkType": slots.Text("latte"),
		"size":      slots.Text("medium"),
		"milk":      slots.Text("oat"),
		"name":      slots.Text("Sam"),
	})
	require.True(t, form.Complete())

	// Further partial updates cannot un-complete the form.
	form.Apply(slots.Update{"size": slots.Text("large")})
	assert.True(t, form.Complete())
	form.Apply(slots.Update{"extras": slots.List("nothing")})
	assert.True(t, form.Complete())

	form.Reset()
	assert.False(t, form.Complete())
	assert.Equal(t, []string{"drinkType", "size", "milk", "name"}, form.Missing())
}

func TestSnapshotDistinguishesUnsetFromEmptyList(t *testing.T) {
	form := orderForm()

	snap := form.Snapshot()
	assert.Nil(t, snap["extras"])

	form.Apply(slots.Update{"extras": slots.List("no extra")})
	snap = form.Snapshot()
	assert.Equal(t, []string{}, snap["extras"])
}

func TestResetPreservesFormIdentity(t *testing.T) {
	form := orderForm()
	alias := form
	form.Apply(slots.Update{"name": slots.Text("Sam")})

	form.Reset()

	// The alias observes the reset because the same Form is reused in place.
	assert.Equal(t, "", alias.Text("name"))
}

func TestRestoreFromJSONRoundTrippedSnapshot(t *testing.T) {
	form := orderForm()
	form.Apply(slots.Update{
		"drinkType": slots.Text("latte"),
		"extras":    slots.List("vanilla", "extra shot"),
	})

	raw, err := json.Marshal(form.Snapshot())
	require.NoError(t, err)
	var snap map[string]any
	require.NoError(t, json.Unmarshal(raw, &snap))

	revived := orderForm()
	revived.Restore(snap)

	assert.Equal(t, "latte", revived.Text("drinkType"))
	extras, ok := revived.ListValue("extras")
	require.True(t, ok)
	assert.Equal(t, []string{"vanilla", "extra shot"}, extras)
	assert.Equal(t, []string{"size", "milk", "name"}, revived.Missing())
}

func TestRestoreLeavesUnsetFieldsUnset(t *testing.T) {
	form := orderForm()
	form.Restore(map[string]any{"drinkType": "mocha"})

	assert.Equal(t, "mocha", form.Text("drinkType"))
	_, ok := form.ListValue("extras")
	assert.False(t, ok)
}
