package topics

import (
	"fmt"
	"strings"
)

var byID = func() map[string]Topic {
	m := make(map[string]Topic, len(all))
	for _, t := range all {
		m[t.ID] = t
	}
	return m
}()

// Lookup resolves a topic id to its registry record.
func Lookup(id string) (Topic, bool) {
	t, ok := byID[id]
	return t, ok
}

// IsKnown reports whether id is one of the eight topic ids.
func IsKnown(id string) bool {
	_, ok := byID[id]
	return ok
}

// All returns the topics in canonical order. Callers must not mutate the
// returned slice.
func All() []Topic {
	return all
}

// IDs returns the topic ids in canonical order.
func IDs() []string {
	ids := make([]string, len(all))
	for i, t := range all {
		ids[i] = t.ID
	}
	return ids
}

// PromptCatalog renders the topic list for the classification prompt,
// one topic per line with its first five keywords as examples.
func PromptCatalog() string {
	var b strings.Builder
	for _, t := range all {
		kw := t.Keywords
		if len(kw) > 5 {
			kw = kw[:5]
		}
		fmt.Fprintf(&b, "- %s: %s (examples: %s)\n", t.ID, t.DisplayName, strings.Join(kw, ", "))
	}
	return strings.TrimRight(b.String(), "\n")
}
