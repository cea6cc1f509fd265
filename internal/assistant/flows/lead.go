package flows

import (
	"context"
	"fmt"
	"strings"

	"github.com/Voxform-core-poc-v1/server/internal/assistant/catalog"
	"github.com/Voxform-core-poc-v1/server/internal/assistant/model"
	"github.com/Voxform-core-poc-v1/server/internal/assistant/repo"
	"github.com/Voxform-core-poc-v1/server/internal/assistant/slots"
)

const leadFallbackAnswer = "I'm not fully sure about that one, and I'd rather not guess. " +
	"The PayLane website has the details, or I can have someone from the team follow up."

// LeadFlow runs the inbound sales conversation for PayLane: qualify the lead
// across seven required fields, accumulate free-form notes, and answer
// product questions from the FAQ along the way.
type LeadFlow struct {
	form  *slots.Form
	store *repo.FileStore
	faq   []catalog.FAQEntry
	cp    sessionCheckpoint
	over  bool
}

func NewLeadFlow(store *repo.FileStore, faq []catalog.FAQEntry) *LeadFlow {
	return &LeadFlow{
		form: slots.NewForm(
			slots.FieldSpec{Name: "name", Kind: slots.KindText, Required: true},
			slots.FieldSpec{Name: "company", Kind: slots.KindText, Required: true},
			slots.FieldSpec{Name: "email", Kind: slots.KindText, Required: true},
			slots.FieldSpec{Name: "role", Kind: slots.KindText, Required: true},
			slots.FieldSpec{Name: "use_case", Kind: slots.KindText, Required: true},
			slots.FieldSpec{Name: "team_size", Kind: slots.KindText, Required: true},
			slots.FieldSpec{Name: "timeline", Kind: slots.KindText, Required: true},
			slots.FieldSpec{Name: "notes", Kind: slots.KindText},
		),
		store: store,
		faq:   faq,
	}
}

func (f *LeadFlow) WithSessions(sessions model.SessionRepository, sessionID string) *LeadFlow {
	f.cp = sessionCheckpoint{sessions: sessions, sessionID: sessionID}
	return f
}

// ConversationOver reports whether the lead has been captured. The speech
// layer uses it to wind the call down instead of asking more questions.
func (f *LeadFlow) ConversationOver() bool {
	return f.over
}

func (f *LeadFlow) Start(ctx context.Context, name string) (model.Response, error) {
	f.form.Reset()
	f.cp.clear(ctx)
	f.over = false
	greeting := "Hi, you've reached PayLane. I'd love to learn a bit about you and what you're building."
	if name != "" {
		greeting = fmt.Sprintf("Hi %s, you've reached PayLane. I'd love to learn a bit about you and what you're building.", name)
	}
	return model.Response{
		Text:    greeting,
		Status:  model.StatusOK,
		Fields:  f.form.Snapshot(),
		Missing: f.form.Missing(),
	}, nil
}

// Resume rehydrates a partially qualified lead from the session checkpoint.
// It returns false when no checkpoint exists.
func (f *LeadFlow) Resume(ctx context.Context) (bool, model.Response) {
	var snap map[string]any
	if !f.cp.load(ctx, &snap) {
		return false, model.Response{}
	}
	f.form.Restore(snap)
	f.over = false
	return true, model.Response{
		Text:    "Thanks for coming back. " + progressText(f.form.Missing()),
		Status:  model.StatusOK,
		Fields:  f.form.Snapshot(),
		Missing: f.form.Missing(),
	}
}

// Update merges a partial update into the lead. The notes field accumulates:
// an incoming notes value is appended to whatever is already there rather
// than replacing it.
func (f *LeadFlow) Update(ctx context.Context, u slots.Update) (model.Response, error) {
	if v, ok := u["notes"]; ok {
		f.appendNotes(v.Scalar())
		rest := make(slots.Update, len(u))
		for k, val := range u {
			if k != "notes" {
				rest[k] = val
			}
		}
		u = rest
	}
	missing := f.form.Apply(u)
	f.cp.save(ctx, f.form.Snapshot())
	return model.Response{
		Text:    progressText(missing),
		Status:  model.StatusUpdated,
		Fields:  f.form.Snapshot(),
		Missing: missing,
	}, nil
}

func (f *LeadFlow) appendNotes(incoming string) {
	incoming = strings.TrimSpace(incoming)
	if incoming == "" {
		return
	}
	if existing := f.form.Text("notes"); existing != "" {
		incoming = existing + " " + incoming
	}
	f.form.SetText("notes", incoming)
}

// Lookup answers a product question from the FAQ. When nothing matches it
// says so explicitly rather than improvising an answer.
func (f *LeadFlow) Lookup(ctx context.Context, question string) (model.Response, error) {
	entry := catalog.SearchFAQ(f.faq, question)
	if entry == nil {
		return model.Response{
			Text:   leadFallbackAnswer,
			Status: model.StatusUnresolved,
		}, nil
	}
	return model.Response{
		Text:   entry.Answer,
		Status: model.StatusOK,
		Ref:    entry.ID,
	}, nil
}

func (f *LeadFlow) Finalize(ctx context.Context) (model.Response, error) {
	if missing := f.form.Missing(); len(missing) > 0 {
		return model.Response{
			Text:    fmt.Sprintf("Before I can pass this along I still need: %s.", joinMissing(missing)),
			Status:  model.StatusIncomplete,
			Fields:  f.form.Snapshot(),
			Missing: missing,
		}, nil
	}

	summary := fmt.Sprintf("Lead: %s (%s) at %s, reachable at %s. Use case: %s. Team size: %s. Timeline: %s.",
		f.form.Text("name"), f.form.Text("role"), f.form.Text("company"), f.form.Text("email"),
		f.form.Text("use_case"), f.form.Text("team_size"), f.form.Text("timeline"))
	if notes := f.form.Text("notes"); notes != "" {
		summary += " Notes: " + notes
	}

	rec := model.LeadRecord{
		Timestamp: stamp(),
		Lead:      f.form.Snapshot(),
		Summary:   summary,
	}
	if _, err := f.store.Append(rec); err != nil {
		return model.Response{
			Text:    "I couldn't save your details just now, but I still have everything you've told me. Give me a moment and we'll try again.",
			Status:  model.StatusFailed,
			Fields:  f.form.Snapshot(),
			Missing: f.form.Missing(),
		}, err
	}

	f.form.Reset()
	f.cp.clear(ctx)
	f.over = true
	return model.Response{
		Text:   "Perfect, I've got everything I need. Someone from the PayLane team will reach out shortly. Thanks for your time!",
		Status: model.StatusSaved,
		Fields: rec.Lead,
		Ref:    f.store.Path(),
	}, nil
}

func (f *LeadFlow) Restart(ctx context.Context) (model.Response, error) {
	f.form.Reset()
	f.cp.clear(ctx)
	f.over = false
	return model.Response{
		Text:    "No problem, let's start over. Who am I speaking with?",
		Status:  model.StatusOK,
		Fields:  f.form.Snapshot(),
		Missing: f.form.Missing(),
	}, nil
}

func (f *LeadFlow) Ingest(ctx context.Context, in model.Input) (model.Response, error) {
	if len(in.Fields) > 0 {
		return f.Update(ctx, in.Fields)
	}
	if in.Text != "" {
		return f.Lookup(ctx, in.Text)
	}
	return model.Response{
		Text:    "Sorry, I didn't catch that. " + progressText(f.form.Missing()),
		Status:  model.StatusUnresolved,
		Fields:  f.form.Snapshot(),
		Missing: f.form.Missing(),
	}, nil
}

var _ Assistant = (*LeadFlow)(nil)
