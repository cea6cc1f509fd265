package catalog

import (
	"strings"
)

// FAQEntry is one answerable question with keyword tags for matching.
type FAQEntry struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Keywords []string `json:"keywords"`
}

// minTokenLen filters function-word noise out of the query before scoring.
const minTokenLen = 3

// SearchFAQ scores every entry by the count of query tokens contained in the
// entry's question plus keywords and returns the best match, or nil when no
// entry scores at all. Ties resolve to the earliest entry, so results are
// deterministic for a given corpus order. Callers must treat nil as "not
// sure" rather than inventing an answer.
func SearchFAQ(entries []FAQEntry, query string) *FAQEntry {
	tokens := []string{}
	for _, word := range strings.Fields(strings.ToLower(query)) {
		if len(word) >= minTokenLen {
			tokens = append(tokens, word)
		}
	}

	bestScore := 0
	var best *FAQEntry
	for i := range entries {
		entry := &entries[i]
		haystack := strings.ToLower(entry.Question + " " + strings.Join(entry.Keywords, " "))
		score := 0
		for _, tok := range tokens {
			if strings.Contains(haystack, tok) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = entry
		}
	}
	return best
}
