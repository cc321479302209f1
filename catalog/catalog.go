// Package catalog provides a fixed, ordered reference of PHP language
// constructs, each illustrated by a short snippet.
//
// The catalog is built once from a literal table and is never mutated,
// so it is safe for concurrent use by any number of readers.
package catalog

import (
	"fmt"
	"slices"
	"strings"
)

//go:generate go tool stringer -type Category -linecomment

// Category groups related constructs.
type Category uint

const (
	Unknown      Category = iota // unknown
	Variables                    // variables
	Operators                    // operators
	Strings                      // strings
	Arrays                       // arrays
	Conditionals                 // conditionals
	Loops                        // loops
	Functions                    // functions
	Closures                     // closures
	Generators                   // generators
	Classes                      // classes
	Constants                    // constants
	Traits                       // traits
	Interfaces                   // interfaces
	Directives                   // directives
	categoryEnd
)

// ParseCategory looks up a category by its name, ignoring case.
func ParseCategory(name string) (Category, bool) {
	for c := Variables; c < categoryEnd; c++ {
		if strings.EqualFold(c.String(), name) {
			return c, true
		}
	}
	return Unknown, false
}

// MarshalText encodes c as its name.
func (c Category) MarshalText() ([]byte, error) {
	if c == Unknown || c >= categoryEnd {
		return nil, fmt.Errorf("invalid category %v", c)
	}
	return []byte(c.String()), nil
}

// UnmarshalText decodes a category name, ignoring case.
func (c *Category) UnmarshalText(text []byte) error {
	cat, ok := ParseCategory(string(text))
	if !ok {
		return fmt.Errorf("unknown category %q", text)
	}
	*c = cat
	return nil
}

// An Entry documents a single construct.
type Entry struct {
	Category Category `json:"category" yaml:"category"`
	Snippet  string   `json:"snippet" yaml:"snippet"`
	Note     string   `json:"note,omitempty" yaml:"note,omitempty"` // expected behaviour, if any
}

// Catalog is an immutable, ordered collection of entries.
type Catalog struct {
	entries []Entry
}

// New returns a catalog holding a copy of entries in the given order.
// It panics if an entry has no valid category.
func New(entries ...Entry) *Catalog {
	for i, e := range entries {
		if e.Category == Unknown || e.Category >= categoryEnd {
			panic(fmt.Sprintf("catalog: entry %d (%q) has invalid category %v", i, e.Snippet, e.Category))
		}
	}
	return &Catalog{entries: slices.Clone(entries)}
}

// List returns all entries in canonical order.
func (c *Catalog) List() []Entry {
	return slices.Clone(c.entries)
}

// FilterByCategory returns the entries of the named category.
// An unknown name yields an empty result.
func (c *Catalog) FilterByCategory(name string) []Entry {
	cat, ok := ParseCategory(name)
	if !ok {
		return []Entry{}
	}
	return c.filter(func(e Entry) bool { return e.Category == cat })
}

// Categories returns the categories present in c in order of first appearance.
func (c *Catalog) Categories() []Category {
	var cats []Category
	for _, e := range c.entries {
		if !slices.Contains(cats, e.Category) {
			cats = append(cats, e.Category)
		}
	}
	return cats
}

// Search returns the entries whose snippet or note contains query,
// ignoring case. An empty query matches nothing.
func (c *Catalog) Search(query string) []Entry {
	if query == "" {
		return []Entry{}
	}
	q := strings.ToLower(query)
	return c.filter(func(e Entry) bool {
		return strings.Contains(strings.ToLower(e.Snippet), q) ||
			strings.Contains(strings.ToLower(e.Note), q)
	})
}

func (c *Catalog) filter(keep func(Entry) bool) []Entry {
	out := []Entry{}
	for _, e := range c.entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// std is the standard catalog of PHP constructs.
var std = New(entries...)

// List returns all entries of the standard catalog.
func List() []Entry { return std.List() }

// FilterByCategory returns the entries of the standard catalog in the named category.
func FilterByCategory(name string) []Entry { return std.FilterByCategory(name) }

// Categories returns the categories present in the standard catalog.
func Categories() []Category { return std.Categories() }

// Search searches the standard catalog. See [Catalog.Search].
func Search(query string) []Entry { return std.Search(query) }
