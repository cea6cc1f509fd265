package flows

import (
	"context"
	"fmt"
	"strings"

	"github.com/Voxform-core-poc-v1/server/internal/assistant/model"
	"github.com/Voxform-core-poc-v1/server/internal/assistant/repo"
	"github.com/Voxform-core-poc-v1/server/internal/assistant/slots"
)

// WellnessFlow runs the daily check-in conversation: mood, energy, stressors
// and a list of goals for the day. Past check-ins are read back at the start
// of a session so the assistant can refer to the previous entry.
type WellnessFlow struct {
	form  *slots.Form
	store *repo.FileStore
	cp    sessionCheckpoint
	last  *model.CheckinRecord
}

func NewWellnessFlow(store *repo.FileStore) *WellnessFlow {
	return &WellnessFlow{
		form: slots.NewForm(
			slots.FieldSpec{Name: "mood", Kind: slots.KindText, Required: true},
			slots.FieldSpec{Name: "energy", Kind: slots.KindText, Required: true},
			slots.FieldSpec{Name: "stressors", Kind: slots.KindText, Required: true},
			slots.FieldSpec{Name: "goals", Kind: slots.KindList, Required: true},
		),
		store: store,
	}
}

func (f *WellnessFlow) WithSessions(sessions model.SessionRepository, sessionID string) *WellnessFlow {
	f.cp = sessionCheckpoint{sessions: sessions, sessionID: sessionID}
	return f
}

func (f *WellnessFlow) Start(ctx context.Context, name string) (model.Response, error) {
	f.form.Reset()
	f.cp.clear(ctx)
	f.last = nil
	if history := repo.LoadEntries[model.CheckinRecord](f.store); len(history) > 0 {
		f.last = &history[len(history)-1]
	}

	greeting := "Hi there. How are you feeling today?"
	if name != "" {
		greeting = fmt.Sprintf("Hi %s. How are you feeling today?", name)
	}
	if f.last != nil {
		greeting += fmt.Sprintf(" Last time you checked in feeling %s with %s energy.", f.last.Mood, f.last.Energy)
	}
	return model.Response{
		Text:    greeting,
		Status:  model.StatusOK,
		Fields:  f.form.Snapshot(),
		Missing: f.form.Missing(),
	}, nil
}

// Resume rehydrates an in-progress check-in from the session checkpoint. It
// returns false when no checkpoint exists.
func (f *WellnessFlow) Resume(ctx context.Context) (bool, model.Response) {
	var snap map[string]any
	if !f.cp.load(ctx, &snap) {
		return false, model.Response{}
	}
	f.form.Restore(snap)
	return true, model.Response{
		Text:    "Picking up today's check-in where we left off. " + progressText(f.form.Missing()),
		Status:  model.StatusOK,
		Fields:  f.form.Snapshot(),
		Missing: f.form.Missing(),
	}
}

// LastCheckin returns the most recent archived check-in loaded at Start, or
// nil when there is none.
func (f *WellnessFlow) LastCheckin() *model.CheckinRecord {
	return f.last
}

func (f *WellnessFlow) Update(ctx context.Context, u slots.Update) (model.Response, error) {
	missing := f.form.Apply(u)
	f.cp.save(ctx, f.form.Snapshot())
	return model.Response{
		Text:    progressText(missing),
		Status:  model.StatusUpdated,
		Fields:  f.form.Snapshot(),
		Missing: missing,
	}, nil
}

func (f *WellnessFlow) Finalize(ctx context.Context) (model.Response, error) {
	if missing := f.form.Missing(); len(missing) > 0 {
		return model.Response{
			Text:    fmt.Sprintf("We're not quite done with today's check-in. I still need: %s.", joinMissing(missing)),
			Status:  model.StatusIncomplete,
			Fields:  f.form.Snapshot(),
			Missing: missing,
		}, nil
	}

	goals, _ := f.form.ListValue("goals")
	goalsText := "no specific goals"
	if len(goals) > 0 {
		goalsText = strings.Join(goals, ", ")
	}
	summary := fmt.Sprintf("User mood: %s. Energy: %s. Stressors: %s. Goals for today: %s.",
		f.form.Text("mood"), f.form.Text("energy"), f.form.Text("stressors"), goalsText)

	rec := model.CheckinRecord{
		Timestamp: stamp(),
		Mood:      f.form.Text("mood"),
		Energy:    f.form.Text("energy"),
		Stressors: f.form.Text("stressors"),
		Goals:     goals,
		Summary:   summary,
	}
	if _, err := f.store.Append(rec); err != nil {
		return model.Response{
			Text:    "I couldn't save today's check-in, so I've kept your answers. Let's try again shortly.",
			Status:  model.StatusFailed,
			Fields:  f.form.Snapshot(),
			Missing: f.form.Missing(),
		}, err
	}

	f.form.Reset()
	f.cp.clear(ctx)
	f.last = &rec
	return model.Response{
		Text:   summary + " Your check-in is saved. Take care of yourself today.",
		Status: model.StatusSaved,
		Ref:    f.store.Path(),
	}, nil
}

func (f *WellnessFlow) Restart(ctx context.Context) (model.Response, error) {
	f.form.Reset()
	f.cp.clear(ctx)
	return model.Response{
		Text:    "Okay, let's start today's check-in over. How are you feeling?",
		Status:  model.StatusOK,
		Fields:  f.form.Snapshot(),
		Missing: f.form.Missing(),
	}, nil
}

func (f *WellnessFlow) Ingest(ctx context.Context, in model.Input) (model.Response, error) {
	if len(in.Fields) > 0 {
		return f.Update(ctx, in.Fields)
	}
	return model.Response{
		Text:    "I didn't catch any check-in details there. " + progressText(f.form.Missing()),
		Status:  model.StatusUnresolved,
		Fields:  f.form.Snapshot(),
		Missing: f.form.Missing(),
	}, nil
}

var _ Assistant = (*WellnessFlow)(nil)
