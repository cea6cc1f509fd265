package model

import (
	"github.com/Voxform-core-poc-v1/server/internal/assistant/slots"
)

// Status classifies the structured outcome of one coordinator operation.
type Status string

const (
	// StatusUpdated means a partial update was merged into session state.
	StatusUpdated Status = "updated"
	// StatusSaved means a finalize wrote a durable entry and reset the session.
	StatusSaved Status = "saved"
	// StatusIncomplete means finalize was refused because required fields are missing.
	StatusIncomplete Status = "incomplete"
	// StatusUnresolved means free-form input could not be mapped to an action.
	StatusUnresolved Status = "unresolved"
	// StatusInvalid means the input referenced an unavailable selection or option.
	StatusInvalid Status = "invalid"
	// StatusFailed means a durable write failed; session state was left intact.
	StatusFailed Status = "failed"
	// StatusOK covers informational responses that mutate nothing durable.
	StatusOK Status = "ok"
)

// Response is what every coordinator operation returns: text for the speech
// layer plus structured state for the caller's tool-result channel.
type Response struct {
	Text    string         `json:"text"`
	Status  Status         `json:"status"`
	Fields  map[string]any `json:"fields,omitempty"`
	Missing []string       `json:"missing_fields,omitempty"`
	Ref     string         `json:"ref,omitempty"`
}

// Selection identifies one item from the most recently shown product list.
type Selection struct {
	Index    int    `json:"index"`
	Quantity int    `json:"quantity"`
	Size     string `json:"size,omitempty"`
}

// Input is one ingested turn: free-form text, an already-extracted partial
// field update, or a structured selection. This is the boundary with the
// external speech runtime; no language understanding happens past this point.
type Input struct {
	Text      string       `json:"text,omitempty"`
	Fields    slots.Update `json:"fields,omitempty"`
	Selection *Selection   `json:"selection,omitempty"`
}
