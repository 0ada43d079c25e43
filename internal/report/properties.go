package report

import "strings"

// Source resolves a property key to a value.
type Source interface {
	Lookup(key string) (string, bool)
}

// Properties is a snapshot of property values keyed by property name.
type Properties map[string]string

// Lookup implements Source.
func (p Properties) Lookup(key string) (string, bool) {
	v, ok := p[key]
	return v, ok
}

// Get returns the value for key, or "" when it is not set.
func (p Properties) Get(key string) string {
	return p[key]
}

// Merge copies the entries of other whose keys start with one of prefixes
// into p. With no prefixes every entry is copied. Existing keys are
// overwritten.
func (p Properties) Merge(other Properties, prefixes ...string) {
	for k, v := range other {
		if len(prefixes) == 0 || hasAnyPrefix(k, prefixes) {
			p[k] = v
		}
	}
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}
