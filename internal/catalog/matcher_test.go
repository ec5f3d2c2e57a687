package catalog

import (
	"strings"
	"testing"
)

func TestMatch_EmptyLabel(t *testing.T) {
	c := New()

	for _, label := range []string{"", "   ", "\t\n"} {
		if _, ok := c.Match(label); ok {
			t.Fatalf("expected no match for blank label %q", label)
		}
	}
}

func TestMatch_Exact(t *testing.T) {
	c := New()

	tests := []struct {
		label  string
		wantID int
	}{
		{"Balayage", 714},
		{"balayage", 714},
		{"  Balayage  ", 714},
		{"BALAYAGE", 714},
		{"Manicure", 81},
		{"manicure", 81},
	}

	for _, tt := range tests {
		e, ok := c.Match(tt.label)
		if !ok {
			t.Fatalf("expected match for %q", tt.label)
		}
		if e.ID != tt.wantID {
			t.Fatalf("label %q: expected entry %d, got %d (%s)", tt.label, tt.wantID, e.ID, e.Name)
		}
	}
}

func TestMatch_ExactBeatsPartial(t *testing.T) {
	c := New()

	// "Express Manicure" precedes "Manicure" in catalog order and contains it,
	// but the exact match must win.
	e, ok := c.Match("manicure")
	if !ok {
		t.Fatal("expected a match")
	}
	if e.Name != "Manicure" {
		t.Fatalf("expected exact entry Manicure, got %q", e.Name)
	}
}

func TestMatch_PartialLabelContainsEntry(t *testing.T) {
	c := New()

	e, ok := c.Match("ladies hair colouring")
	if !ok {
		t.Fatal("expected a partial match")
	}
	if e.Name != "Hair Colouring" {
		t.Fatalf("expected Hair Colouring, got %q (%d)", e.Name, e.ID)
	}
}

func TestMatch_PartialEntryContainsLabel(t *testing.T) {
	c := New()

	// No entry is exactly "reflexolog", but "Reflexology" contains it.
	e, ok := c.Match("reflexolog")
	if !ok {
		t.Fatal("expected a partial match")
	}
	if e.Name != "Reflexology" {
		t.Fatalf("expected Reflexology, got %q", e.Name)
	}
}

func TestMatch_PartialFirstInCatalogOrder(t *testing.T) {
	c := New()

	// Several entries contain "wax"; the first in catalog order must win.
	e, ok := c.Match("wax")
	if !ok {
		t.Fatal("expected a match")
	}
	want := ""
	for _, entry := range c.Entries() {
		if containsFold(entry.Name, "wax") {
			want = entry.Name
			break
		}
	}
	if e.Name != want {
		t.Fatalf("expected first catalog-order match %q, got %q", want, e.Name)
	}
}

func TestMatch_Unknown(t *testing.T) {
	c := New()

	if e, ok := c.Match("submarine repair"); ok {
		t.Fatalf("expected no match, got %q", e.Name)
	}
}

func TestSearch(t *testing.T) {
	c := New()

	t.Run("empty returns all", func(t *testing.T) {
		got := c.Search("")
		if len(got) != c.Len() {
			t.Fatalf("expected %d entries, got %d", c.Len(), len(got))
		}
	})

	t.Run("filters by substring", func(t *testing.T) {
		got := c.Search("pedicure")
		if len(got) == 0 {
			t.Fatal("expected results for pedicure")
		}
		for _, e := range got {
			if !containsFold(e.Name, "pedicure") {
				t.Fatalf("entry %q does not contain query", e.Name)
			}
		}
	})

	t.Run("no results", func(t *testing.T) {
		if got := c.Search("zzzz"); len(got) != 0 {
			t.Fatalf("expected no results, got %d", len(got))
		}
	})
}

func TestEntriesOrderStable(t *testing.T) {
	c := New()

	a := c.Entries()
	b := c.Entries()
	if len(a) != len(b) {
		t.Fatalf("entry count changed between calls: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("entry %d differs between calls: %+v vs %+v", i, a[i], b[i])
		}
	}

	// Mutating the returned slice must not affect the catalog
	a[0].Name = "mutated"
	if got := c.Entries()[0].Name; got == "mutated" {
		t.Fatal("Entries returned internal slice")
	}
}

func containsFold(name, q string) bool {
	return strings.Contains(fold(name), fold(q))
}
