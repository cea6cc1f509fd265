package scene

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Transition records one resolved player action.
type Transition struct {
	From   string `json:"from"`
	Action string `json:"action"`
	To     string `json:"to"`
	Time   string `json:"time"`
}

// Cursor is the mutable per-session position in the graph plus everything the
// session has accumulated. One cursor belongs to exactly one conversation and
// is never shared.
type Cursor struct {
	PlayerName  string       `json:"player_name,omitempty"`
	Current     string       `json:"current_scene"`
	History     []Transition `json:"history"`
	Journal     []string     `json:"journal"`
	Inventory   []string     `json:"inventory"`
	ChoicesMade []string     `json:"choices_made"`
	SessionID   string       `json:"session_id"`
	StartedAt   string       `json:"started_at"`
}

// NewCursor returns a cursor positioned on the graph's start scene.
func NewCursor(g *Graph) *Cursor {
	c := &Cursor{}
	c.Reset(g)
	return c
}

// Reset clears the accumulated state, regenerates the session id, and moves
// back to the start scene. Fresh-session initialization and explicit restart
// both go through here so the two cannot drift apart. The player name
// survives a restart.
func (c *Cursor) Reset(g *Graph) {
	c.Current = g.Start()
	c.History = nil
	c.Journal = nil
	c.Inventory = nil
	c.ChoicesMade = nil
	c.SessionID = uuid.NewString()[:8]
	c.StartedAt = time.Now().UTC().Format(time.RFC3339)
}

// Apply executes a resolved choice on the cursor: side effects in declared
// order, one history record, then the scene advance. Callers never observe a
// partially applied choice; resolve failures are rejected before any
// mutation.
func Apply(cur *Cursor, s *Scene, choiceID string) (*Choice, error) {
	var choice *Choice
	for i := range s.Choices {
		if s.Choices[i].ID == choiceID {
			choice = &s.Choices[i]
			break
		}
	}
	if choice == nil {
		return nil, fmt.Errorf("scene %q has no choice %q", s.ID, choiceID)
	}

	for _, eff := range choice.Effects {
		switch eff.Kind {
		case EffectJournal:
			cur.Journal = append(cur.Journal, eff.Value)
		case EffectInventory:
			cur.Inventory = append(cur.Inventory, eff.Value)
		}
	}

	cur.History = append(cur.History, Transition{
		From:   cur.Current,
		Action: choice.ID,
		To:     choice.Target,
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
	cur.ChoicesMade = append(cur.ChoicesMade, choice.ID)
	cur.Current = choice.Target

	return choice, nil
}
