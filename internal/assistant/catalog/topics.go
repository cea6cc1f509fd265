package catalog

import (
	"strings"
)

// Topic is one tutorable subject with a spoken summary and a ready question.
type Topic struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Summary        string `json:"summary"`
	SampleQuestion string `json:"sample_question"`
}

// FindTopic resolves a topic by id, case-insensitively. Returns nil when the
// id is unknown.
func FindTopic(topics []Topic, id string) *Topic {
	id = strings.ToLower(strings.TrimSpace(id))
	for i := range topics {
		if strings.ToLower(topics[i].ID) == id {
			return &topics[i]
		}
	}
	return nil
}

// TopicIDs lists the available topic ids in catalog order.
func TopicIDs(topics []Topic) []string {
	ids := make([]string, 0, len(topics))
	for _, t := range topics {
		ids = append(ids, t.ID)
	}
	return ids
}
