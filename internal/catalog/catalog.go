package catalog

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Entry is one treatment in the fixed taxonomy
type Entry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Catalog is the fixed treatment taxonomy. Iteration order is the order
// entries are declared in; partial matching depends on it.
type Catalog struct {
	entries []Entry
	exact   map[string]Entry
}

// New builds the catalog from the built-in treatment table
func New() *Catalog {
	c := &Catalog{
		entries: treatments,
		exact:   make(map[string]Entry, len(treatments)),
	}
	for _, e := range treatments {
		key := fold(e.Name)
		if _, dup := c.exact[key]; !dup {
			c.exact[key] = e
		}
	}
	return c
}

// Entries returns the catalog in its committed order
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of catalog entries
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Match resolves a free-text label to a catalog entry.
// An empty or blank label matches nothing. An exact match (case-insensitive,
// surrounding whitespace ignored) wins. Otherwise the first entry in catalog
// order whose name contains the label, or is contained by it, is returned.
func (c *Catalog) Match(label string) (Entry, bool) {
	key := fold(label)
	if key == "" {
		return Entry{}, false
	}

	if e, ok := c.exact[key]; ok {
		return e, true
	}

	for _, e := range c.entries {
		name := fold(e.Name)
		if strings.Contains(name, key) || strings.Contains(key, name) {
			return e, true
		}
	}

	return Entry{}, false
}

// Search returns entries whose name contains the query, in catalog order.
// An empty query returns the whole catalog.
func (c *Catalog) Search(query string) []Entry {
	key := fold(query)
	if key == "" {
		return c.Entries()
	}

	var out []Entry
	for _, e := range c.entries {
		if strings.Contains(fold(e.Name), key) {
			out = append(out, e)
		}
	}
	return out
}

// fold normalizes a label for comparison: trim, NFC, lowercase
func fold(s string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(s)))
}
