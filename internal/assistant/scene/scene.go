package scene

import (
	"fmt"
	"strings"
)

// ActionPrompt is the fixed closing line every narrated response must end
// with; the voice render layer keys its turn-taking on it.
const ActionPrompt = "What do you do?"

// voidText is narrated for a scene id that does not exist in the graph.
const voidText = "You are in a featureless static void between channels. " + ActionPrompt

// EffectKind enumerates the closed set of side effects a choice may carry.
// Adding a kind requires extending Apply, which switches exhaustively.
type EffectKind int

const (
	// EffectJournal appends a remembered fact to the session journal.
	EffectJournal EffectKind = iota
	// EffectInventory adds an item id to the session inventory.
	EffectInventory
)

// Effect is one tagged side effect attached to a choice.
type Effect struct {
	Kind  EffectKind
	Value string
}

// Choice is a labeled edge from a scene to a target scene.
type Choice struct {
	ID      string
	Desc    string
	Target  string
	Effects []Effect
}

// Scene is a node in the narrative graph.
type Scene struct {
	ID      string
	Title   string
	Desc    string
	Choices []Choice
}

// Graph is an immutable directed graph of scenes, shared read-only across
// sessions. Cycles are expected: many choices loop back to the start scene.
type Graph struct {
	start  string
	scenes map[string]*Scene
}

// NewGraph builds and validates a graph. Every choice target must resolve to
// a declared scene, and the start scene must exist.
func NewGraph(start string, scenes ...Scene) (*Graph, error) {
	g := &Graph{start: start, scenes: make(map[string]*Scene, len(scenes))}
	for i := range scenes {
		s := scenes[i]
		if _, dup := g.scenes[s.ID]; dup {
			return nil, fmt.Errorf("duplicate scene id %q", s.ID)
		}
		g.scenes[s.ID] = &s
	}
	if _, ok := g.scenes[start]; !ok {
		return nil, fmt.Errorf("start scene %q not defined", start)
	}
	for _, s := range g.scenes {
		for _, c := range s.Choices {
			if _, ok := g.scenes[c.Target]; !ok {
				return nil, fmt.Errorf("scene %q choice %q targets unknown scene %q", s.ID, c.ID, c.Target)
			}
		}
	}
	return g, nil
}

// Start returns the designated start scene id.
func (g *Graph) Start() string {
	return g.start
}

// Scene looks up a scene by id.
func (g *Graph) Scene(id string) (*Scene, bool) {
	s, ok := g.scenes[id]
	return s, ok
}

// Describe renders a scene's narration: the description, the enumerated
// choices with their spoken shortcuts, and the closing action prompt. An
// unknown scene id narrates a generic void instead of failing.
func (g *Graph) Describe(id string) string {
	s, ok := g.scenes[id]
	if !ok {
		return voidText
	}
	var b strings.Builder
	b.WriteString(s.Desc)
	b.WriteString("\n\nChoices:\n")
	for _, c := range s.Choices {
		fmt.Fprintf(&b, "- %s (say: %s)\n", c.Desc, c.ID)
	}
	b.WriteString("\n" + ActionPrompt)
	return b.String()
}

// Resolve maps free-form player text onto one of the scene's choices using
// three tiers, first match wins, scanning choices in declaration order:
//
//  1. the normalized text equals a choice id;
//  2. the choice id, or any of the first four words of its description,
//     appears as a substring of the text;
//  3. any word of the description appears as a substring of the text.
//
// The tie-break order is load-bearing: transcripts depend on it being
// deterministic, so do not reorder the scans.
func Resolve(s *Scene, text string) (string, bool) {
	norm := strings.ToLower(strings.TrimSpace(text))
	if norm == "" {
		return "", false
	}

	for _, c := range s.Choices {
		if norm == c.ID {
			return c.ID, true
		}
	}

	for _, c := range s.Choices {
		if strings.Contains(norm, c.ID) {
			return c.ID, true
		}
		words := strings.Fields(strings.ToLower(c.Desc))
		if len(words) > 4 {
			words = words[:4]
		}
		for _, w := range words {
			if strings.Contains(norm, w) {
				return c.ID, true
			}
		}
	}

	for _, c := range s.Choices {
		for _, w := range strings.Fields(strings.ToLower(c.Desc)) {
			if strings.Contains(norm, w) {
				return c.ID, true
			}
		}
	}

	return "", false
}
