package flows

import (
	"context"
	"fmt"
	"strings"

	"github.com/Voxform-core-poc-v1/server/internal/assistant/model"
	"github.com/Voxform-core-poc-v1/server/internal/assistant/scene"
)

const rewindText = "The night rewinds like a VHS tape. The static clears, and you're back at the quarry's edge, on the brink of something strange all over again."

// AdventureFlow runs the interactive fiction conversation over a scene
// graph: describe the current scene, resolve free-form player speech to one
// of its choices, and advance the cursor. Unresolved speech never moves the
// story.
type AdventureFlow struct {
	graph  *scene.Graph
	cursor *scene.Cursor
	cp     sessionCheckpoint
}

func NewAdventureFlow(g *scene.Graph) *AdventureFlow {
	return &AdventureFlow{graph: g, cursor: scene.NewCursor(g)}
}

func (f *AdventureFlow) WithSessions(sessions model.SessionRepository, sessionID string) *AdventureFlow {
	f.cp = sessionCheckpoint{sessions: sessions, sessionID: sessionID}
	return f
}

// Cursor exposes the live story state, mainly for reporting and tests.
func (f *AdventureFlow) Cursor() *scene.Cursor {
	return f.cursor
}

func (f *AdventureFlow) Start(ctx context.Context, name string) (model.Response, error) {
	f.cursor.PlayerName = strings.TrimSpace(name)
	f.cursor.Reset(f.graph)
	f.cp.save(ctx, f.cursor)

	who := f.cursor.PlayerName
	if who == "" {
		who = "traveler"
	}
	text := fmt.Sprintf("Greetings %s. The sun is setting over Ember Grove, and something hums beneath the quarry.\n\n%s",
		who, f.graph.Describe(f.cursor.Current))
	return model.Response{
		Text:   text,
		Status: model.StatusOK,
		Ref:    f.cursor.SessionID,
	}, nil
}

// Resume rehydrates the story from the session checkpoint. It returns false
// when no checkpoint exists or the saved scene is no longer in the graph.
func (f *AdventureFlow) Resume(ctx context.Context) (bool, model.Response) {
	var saved scene.Cursor
	if !f.cp.load(ctx, &saved) {
		return false, model.Response{}
	}
	if _, ok := f.graph.Scene(saved.Current); !ok {
		return false, model.Response{}
	}
	*f.cursor = saved
	return true, model.Response{
		Text:   "The story picks up where you left it.\n\n" + f.graph.Describe(f.cursor.Current),
		Status: model.StatusOK,
		Ref:    f.cursor.SessionID,
	}
}

// Ingest resolves one free-form player action. An unresolvable action leaves
// the cursor untouched and re-describes the scene so the player can pick a
// listed choice.
func (f *AdventureFlow) Ingest(ctx context.Context, in model.Input) (model.Response, error) {
	s, ok := f.graph.Scene(f.cursor.Current)
	if !ok {
		return model.Response{
			Text:   f.graph.Describe(f.cursor.Current),
			Status: model.StatusUnresolved,
			Ref:    f.cursor.SessionID,
		}, nil
	}

	choiceID, ok := scene.Resolve(s, in.Text)
	if !ok {
		return model.Response{
			Text: "I didn't quite catch that action for this moment. Try one of the listed choices.\n\n" +
				f.graph.Describe(f.cursor.Current),
			Status: model.StatusUnresolved,
			Ref:    f.cursor.SessionID,
		}, nil
	}

	if _, err := scene.Apply(f.cursor, s, choiceID); err != nil {
		return model.Response{
			Text:   "Something resisted that choice. Try again.\n\n" + f.graph.Describe(f.cursor.Current),
			Status: model.StatusUnresolved,
			Ref:    f.cursor.SessionID,
		}, err
	}
	f.cp.save(ctx, f.cursor)

	return model.Response{
		Text:   fmt.Sprintf("You chose '%s'.\n\n%s", choiceID, f.graph.Describe(f.cursor.Current)),
		Status: model.StatusOK,
		Ref:    f.cursor.SessionID,
	}, nil
}

// Journal renders a progress report: journal entries, inventory, and the
// last few transitions.
func (f *AdventureFlow) Journal(ctx context.Context) (model.Response, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Session %s", f.cursor.SessionID)
	if f.cursor.PlayerName != "" {
		fmt.Fprintf(&b, " — %s's night in Ember Grove", f.cursor.PlayerName)
	}
	b.WriteString("\n")

	if len(f.cursor.Journal) == 0 {
		b.WriteString("\nNothing noteworthy has happened yet.\n")
	} else {
		b.WriteString("\nJournal:\n")
		for _, entry := range f.cursor.Journal {
			fmt.Fprintf(&b, "- %s\n", entry)
		}
	}

	if len(f.cursor.Inventory) > 0 {
		b.WriteString("\nInventory:\n")
		for _, item := range f.cursor.Inventory {
			fmt.Fprintf(&b, "- %s\n", item)
		}
	}

	history := f.cursor.History
	if len(history) > 6 {
		history = history[len(history)-6:]
	}
	if len(history) > 0 {
		b.WriteString("\nRecent steps:\n")
		for _, t := range history {
			fmt.Fprintf(&b, "- %s: %s -> %s\n", t.Action, t.From, t.To)
		}
	}

	b.WriteString("\n" + scene.ActionPrompt)
	return model.Response{
		Text:   b.String(),
		Status: model.StatusOK,
		Ref:    f.cursor.SessionID,
	}, nil
}

// Finalize reports the journal. Closing the story out is itself a graph
// choice, so there is nothing separate to commit.
func (f *AdventureFlow) Finalize(ctx context.Context) (model.Response, error) {
	return f.Journal(ctx)
}

func (f *AdventureFlow) Restart(ctx context.Context) (model.Response, error) {
	f.cursor.Reset(f.graph)
	f.cp.save(ctx, f.cursor)
	return model.Response{
		Text:   rewindText + "\n\n" + f.graph.Describe(f.cursor.Current),
		Status: model.StatusOK,
		Ref:    f.cursor.SessionID,
	}, nil
}

var _ Assistant = (*AdventureFlow)(nil)
