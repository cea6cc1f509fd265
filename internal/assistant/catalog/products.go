package catalog

import (
	"strconv"
	"strings"
)

// Product is one sellable catalog item.
type Product struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    int      `json:"price"`
	Currency string   `json:"currency"`
	Category string   `json:"category"`
	Color    string   `json:"color"`
	Sizes    []string `json:"sizes"`
}

// HasSize reports whether the product is offered in the given size.
func (p Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// maxFilterResults caps how many products a single browse turn returns, to
// keep spoken responses short.
const maxFilterResults = 5

// categoryTriggers map a keyword in the query to a category predicate. Both
// spellings of tshirt share one category.
var categoryTriggers = []struct {
	keyword  string
	category string
}{
	{"mug", "mug"},
	{"hoodie", "hoodie"},
	{"tshirt", "tshirt"},
	{"t-shirt", "tshirt"},
}

var colorTriggers = []string{"black", "white", "blue"}

// FilterProducts narrows the catalog by whichever predicates the query
// triggers: category and color keywords, plus an "under <price>" upper bound.
// Predicates compose conjunctively; a malformed price after "under" is
// ignored rather than treated as an error.
func FilterProducts(products []Product, query string) []Product {
	text := strings.ToLower(query)
	results := products

	for _, trig := range categoryTriggers {
		if strings.Contains(text, trig.keyword) {
			results = filterBy(results, func(p Product) bool { return p.Category == trig.category })
		}
	}

	for _, color := range colorTriggers {
		if strings.Contains(text, color) {
			results = filterBy(results, func(p Product) bool { return p.Color == color })
		}
	}

	if idx := strings.Index(text, "under"); idx >= 0 {
		rest := strings.Fields(strings.TrimSpace(text[idx+len("under"):]))
		if len(rest) > 0 {
			if limit, err := strconv.Atoi(rest[0]); err == nil {
				results = filterBy(results, func(p Product) bool { return p.Price <= limit })
			}
		}
	}

	if len(results) > maxFilterResults {
		results = results[:maxFilterResults]
	}
	return results
}

func filterBy(products []Product, keep func(Product) bool) []Product {
	out := []Product{}
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
