package flows

import (
	"context"
	"fmt"
	"strings"

	"github.com/Voxform-core-poc-v1/server/internal/assistant/model"
	"github.com/Voxform-core-poc-v1/server/internal/assistant/repo"
	"github.com/Voxform-core-poc-v1/server/internal/assistant/slots"
)

// OrderFlow runs the coffee-counter conversation: collect drink type, size,
// milk and a name, with an optional list of extras, then archive the order
// and reset for the next customer.
type OrderFlow struct {
	form  *slots.Form
	store *repo.FileStore
	cp    sessionCheckpoint
}

func NewOrderFlow(store *repo.FileStore) *OrderFlow {
	return &OrderFlow{
		form: slots.NewForm(
			slots.FieldSpec{Name: "drinkType", Kind: slots.KindText, Required: true},
			slots.FieldSpec{Name: "size", Kind: slots.KindText, Required: true},
			slots.FieldSpec{Name: "milk", Kind: slots.KindText, Required: true},
			slots.FieldSpec{Name: "extras", Kind: slots.KindList},
			slots.FieldSpec{Name: "name", Kind: slots.KindText, Required: true},
		),
		store: store,
	}
}

// WithSessions attaches a checkpoint repository so in-progress orders survive
// a process restart.
func (f *OrderFlow) WithSessions(sessions model.SessionRepository, sessionID string) *OrderFlow {
	f.cp = sessionCheckpoint{sessions: sessions, sessionID: sessionID}
	return f
}

func (f *OrderFlow) Start(ctx context.Context, name string) (model.Response, error) {
	f.form.Reset()
	f.cp.clear(ctx)
	greeting := "Welcome to Harbor Light Roasters! What can I get started for you?"
	if name != "" {
		greeting = fmt.Sprintf("Welcome to Harbor Light Roasters, %s! What can I get started for you?", name)
	}
	return model.Response{
		Text:    greeting,
		Status:  model.StatusOK,
		Fields:  f.form.Snapshot(),
		Missing: f.form.Missing(),
	}, nil
}

// Resume rehydrates an in-progress order from the session checkpoint. It
// returns false when no checkpoint exists.
func (f *OrderFlow) Resume(ctx context.Context) (bool, model.Response) {
	var snap map[string]any
	if !f.cp.load(ctx, &snap) {
		return false, model.Response{}
	}
	f.form.Restore(snap)
	return true, model.Response{
		Text:    "Picking up where we left off. " + progressText(f.form.Missing()),
		Status:  model.StatusOK,
		Fields:  f.form.Snapshot(),
		Missing: f.form.Missing(),
	}
}

// Update merges a partial field update into the order.
func (f *OrderFlow) Update(ctx context.Context, u slots.Update) (model.Response, error) {
	missing := f.form.Apply(u)
	f.cp.save(ctx, f.form.Snapshot())
	return model.Response{
		Text:    progressText(missing),
		Status:  model.StatusUpdated,
		Fields:  f.form.Snapshot(),
		Missing: missing,
	}, nil
}

// Finalize archives the order and resets the form. The reset only happens
// after the write succeeds; on a write failure the collected fields stay
// intact so the customer does not repeat themselves.
func (f *OrderFlow) Finalize(ctx context.Context) (model.Response, error) {
	if missing := f.form.Missing(); len(missing) > 0 {
		return model.Response{
			Text:    fmt.Sprintf("The order isn't complete yet. I still need: %s.", joinMissing(missing)),
			Status:  model.StatusIncomplete,
			Fields:  f.form.Snapshot(),
			Missing: missing,
		}, nil
	}

	extrasText := "no extras"
	if extras, ok := f.form.ListValue("extras"); ok && len(extras) > 0 {
		extrasText = strings.Join(extras, ", ")
	}
	summary := fmt.Sprintf("Order summary: a %s %s with %s milk, %s, for %s.",
		f.form.Text("size"), f.form.Text("drinkType"), f.form.Text("milk"),
		extrasText, f.form.Text("name"))

	rec := model.OrderRecord{
		Timestamp: stamp(),
		Order:     f.form.Snapshot(),
		Summary:   summary,
	}
	if _, err := f.store.Append(rec); err != nil {
		return model.Response{
			Text:    "I couldn't save that order just now, so I've kept everything as is. Let's try again in a moment.",
			Status:  model.StatusFailed,
			Fields:  f.form.Snapshot(),
			Missing: f.form.Missing(),
		}, err
	}

	f.form.Reset()
	f.cp.clear(ctx)
	return model.Response{
		Text:   summary + " Thanks, and see you at the counter!",
		Status: model.StatusSaved,
		Fields: rec.Order,
		Ref:    f.store.Path(),
	}, nil
}

func (f *OrderFlow) Restart(ctx context.Context) (model.Response, error) {
	f.form.Reset()
	f.cp.clear(ctx)
	return model.Response{
		Text:    "Starting a fresh order. What would you like?",
		Status:  model.StatusOK,
		Fields:  f.form.Snapshot(),
		Missing: f.form.Missing(),
	}, nil
}

func (f *OrderFlow) Ingest(ctx context.Context, in model.Input) (model.Response, error) {
	if len(in.Fields) > 0 {
		return f.Update(ctx, in.Fields)
	}
	return model.Response{
		Text:    "I didn't catch any order details there. " + progressText(f.form.Missing()),
		Status:  model.StatusUnresolved,
		Fields:  f.form.Snapshot(),
		Missing: f.form.Missing(),
	}, nil
}

var _ Assistant = (*OrderFlow)(nil)
