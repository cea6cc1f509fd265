package catalog

import (
	"encoding/json"
	"os"

	logx "github.com/Voxform-core-poc-v1/server/pkg/logger"
)

// LoadFAQ reads a JSON array of FAQ entries from path, falling back to the
// built-in set when the file is missing or malformed.
func LoadFAQ(path string) []FAQEntry {
	return loadList(path, DefaultFAQ, "faq")
}

// LoadProducts reads a JSON array of products from path, falling back to the
// built-in catalog when the file is missing or malformed.
func LoadProducts(path string) []Product {
	return loadList(path, DefaultProducts, "catalog")
}

// LoadTopics reads a JSON array of tutoring topics from path, falling back to
// the built-in syllabus when the file is missing or malformed.
func LoadTopics(path string) []Topic {
	return loadList(path, DefaultTopics, "topics")
}

// loadList implements the shared load-or-default behavior. Content problems
// are never fatal: they degrade to the compiled-in dataset with a warning.
func loadList[T any](path string, fallback []T, label string) []T {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logx.Warn().Err(err).Str("path", path).Str("content", label).Msg("failed to read content file, using defaults")
		}
		return fallback
	}

	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		logx.Warn().Err(err).Str("path", path).Str("content", label).Msg("content file is not a JSON array, using defaults")
		return fallback
	}
	return out
}
