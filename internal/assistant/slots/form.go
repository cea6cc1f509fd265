package slots

import (
	"strings"
)

// Kind distinguishes scalar text fields from list-valued fields.
type Kind int

const (
	KindText Kind = iota
	KindList
)

// FieldSpec declares one field of a conversational form. Declaration order is
// the order missing fields are reported in.
type FieldSpec struct {
	Name     string
	Kind     Kind
	Required bool
}

// Value carries one supplied field value, either scalar text or a list.
// Absent fields are simply not present in the Update map.
type Value struct {
	kind Kind
	text string
	list []string
}

// Text builds a scalar value.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// List builds a list value. An empty list is a valid answer ("none").
func List(items ...string) Value {
	return Value{kind: KindList, list: items}
}

// Scalar returns the raw scalar text carried by the value.
func (v Value) Scalar() string {
	return v.text
}

// Items returns the raw list carried by the value.
func (v Value) Items() []string {
	return v.list
}

// Update is a partial field update: only keys present in the map are applied.
type Update map[string]Value

// negationTokens is the closed synonym set meaning "answered: none" for list
// fields. Matching every element of a supplied list against it stores an
// explicit empty list instead of the tokens themselves.
var negationTokens = map[string]struct{}{
	"none":      {},
	"no extras": {},
	"no extra":  {},
	"nothing":   {},
}

// Form tracks incremental completion of a fixed field set. The field set is
// declared at construction and never changes; values are mutated in place so
// callers holding a reference observe updates and resets without re-wiring.
type Form struct {
	specs   []FieldSpec
	text    map[string]string
	list    map[string][]string
	listSet map[string]bool
}

// NewForm builds an empty form over the declared fields.
func NewForm(specs ...FieldSpec) *Form {
	return &Form{
		specs:   specs,
		text:    make(map[string]string),
		list:    make(map[string][]string),
		listSet: make(map[string]bool),
	}
}

// Apply merges a partial update into the form and returns the missing
// required fields afterwards. Only fields present in the update are touched;
// repeated updates on disjoint fields commute. Scalar values are trimmed and
// ignored when blank; list values are cleaned via normalizeList.
func (f *Form) Apply(u Update) []string {
	for _, spec := range f.specs {
		v, ok := u[spec.Name]
		if !ok {
			continue
		}
		switch spec.Kind {
		case KindText:
			if t := strings.TrimSpace(v.text); t != "" {
				f.text[spec.Name] = t
			}
		case KindList:
			f.list[spec.Name] = normalizeList(v.list)
			f.listSet[spec.Name] = true
		}
	}
	return f.Missing()
}

// SetText overwrites a scalar field directly, bypassing the blank-value skip.
// Used by flows with field-specific merge rules (e.g. accumulated notes).
func (f *Form) SetText(name, value string) {
	f.text[name] = strings.TrimSpace(value)
}

// normalizeList trims elements, drops empty strings, and collapses a pure
// negation answer ("none", "no extras", ...) to an explicit empty list.
func normalizeList(items []string) []string {
	cleaned := make([]string, 0, len(items))
	for _, it := range items {
		if t := strings.TrimSpace(it); t != "" {
			cleaned = append(cleaned, t)
		}
	}
	allNegation := true
	for _, it := range cleaned {
		if _, ok := negationTokens[strings.ToLower(it)]; !ok {
			allNegation = false
			break
		}
	}
	if allNegation {
		return []string{}
	}
	return cleaned
}

// Missing returns the required fields still unanswered, in declaration order.
// A scalar is missing while blank; a list is missing only while never
// supplied, an explicit empty list counts as answered.
func (f *Form) Missing() []string {
	missing := []string{}
	for _, spec := range f.specs {
		if !spec.Required {
			continue
		}
		switch spec.Kind {
		case KindText:
			if f.text[spec.Name] == "" {
				missing = append(missing, spec.Name)
			}
		case KindList:
			if !f.listSet[spec.Name] {
				missing = append(missing, spec.Name)
			}
		}
	}
	return missing
}

// Complete reports whether every required field is answered.
func (f *Form) Complete() bool {
	return len(f.Missing()) == 0
}

// Text returns the current value of a scalar field.
func (f *Form) Text(name string) string {
	return f.text[name]
}

// ListValue returns the current value of a list field and whether it has been
// supplied at all.
func (f *Form) ListValue(name string) ([]string, bool) {
	return f.list[name], f.listSet[name]
}

// Snapshot renders the full field state for structured responses and durable
// records. Unsupplied list fields appear as nil so they serialize as null,
// distinct from an explicit empty list.
func (f *Form) Snapshot() map[string]any {
	snap := make(map[string]any, len(f.specs))
	for _, spec := range f.specs {
		switch spec.Kind {
		case KindText:
			snap[spec.Name] = f.text[spec.Name]
		case KindList:
			if f.listSet[spec.Name] {
				list := f.list[spec.Name]
				if list == nil {
					list = []string{}
				}
				snap[spec.Name] = list
			} else {
				snap[spec.Name] = nil
			}
		}
	}
	return snap
}

// Restore rehydrates field state from a previously captured Snapshot. The
// snapshot may have round-tripped through JSON, so list values can arrive as
// []any. Unknown keys and mismatched kinds are ignored.
func (f *Form) Restore(snap map[string]any) {
	f.Reset()
	for _, spec := range f.specs {
		raw, ok := snap[spec.Name]
		if !ok || raw == nil {
			continue
		}
		switch spec.Kind {
		case KindText:
			if s, ok := raw.(string); ok && strings.TrimSpace(s) != "" {
				f.text[spec.Name] = strings.TrimSpace(s)
			}
		case KindList:
			switch v := raw.(type) {
			case []string:
				f.list[spec.Name] = append([]string(nil), v...)
				f.listSet[spec.Name] = true
			case []any:
				items := make([]string, 0, len(v))
				for _, it := range v {
					if s, ok := it.(string); ok {
						items = append(items, s)
					}
				}
				f.list[spec.Name] = items
				f.listSet[spec.Name] = true
			}
		}
	}
}

// Reset clears every field back to its empty default in place. The Form
// itself is reused so external references stay valid across the reset.
func (f *Form) Reset() {
	for k := range f.text {
		delete(f.text, k)
	}
	for k := range f.list {
		delete(f.list, k)
	}
	for k := range f.listSet {
		delete(f.listSet, k)
	}
}
