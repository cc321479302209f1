package catalog_test

import (
	"encoding/json"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"mibk.dev/phpref/catalog"
)

func TestFilterByCategory(t *testing.T) {
	for _, c := range catalog.Categories() {
		if got := catalog.FilterByCategory(c.String()); len(got) == 0 {
			t.Errorf("FilterByCategory(%q) is empty", c)
		}
	}

	for _, name := range []string{"", "unknown", "macros", "operator"} {
		got := catalog.FilterByCategory(name)
		if got == nil || len(got) != 0 {
			t.Errorf("FilterByCategory(%q) = %v, want empty", name, got)
		}
	}
}

func TestSpaceship(t *testing.T) {
	want := catalog.Entry{
		Category: catalog.Operators,
		Snippet:  "$x = ( 1 <=> 1 );\n$x = ( 1 <=> 2 );\n$x = ( 3 <=> 2 );",
		Note:     "-1, 0, 1 ordering",
	}
	if !slices.Contains(catalog.FilterByCategory("operators"), want) {
		t.Errorf("operators do not include %+v", want)
	}
	if !slices.Contains(catalog.FilterByCategory("OPERATORS"), want) {
		t.Error("category lookup is case-sensitive")
	}
}

func TestListDeterministic(t *testing.T) {
	a := catalog.List()
	a[0].Snippet = "mutated"
	b := catalog.List()
	c := catalog.List()
	if b[0].Snippet == "mutated" {
		t.Fatal("List exposes catalog storage")
	}
	if diff := cmp.Diff(b, c); diff != "" {
		t.Errorf("List differs between calls (-first +second):\n%s", diff)
	}
}

func TestStandardCatalogReadOnly(t *testing.T) {
	want := catalog.List()
	for _, got := range [][]catalog.Entry{
		catalog.List(),
		catalog.FilterByCategory("operators"),
		catalog.Search("class"),
	} {
		for i := range got {
			got[i] = catalog.Entry{Category: catalog.Directives, Snippet: "overwritten"}
		}
	}
	if diff := cmp.Diff(want, catalog.List()); diff != "" {
		t.Errorf("standard catalog changed through a returned slice (-want +got):\n%s", diff)
	}
	if got := catalog.FilterByCategory("operators"); len(got) == 0 {
		t.Error("operators emptied through a returned slice")
	}
}

func TestListOrder(t *testing.T) {
	// Entries of one category are contiguous, so categories appear
	// in the order they are presented.
	var seen []catalog.Category
	for _, e := range catalog.List() {
		if n := len(seen); n > 0 && seen[n-1] == e.Category {
			continue
		}
		if slices.Contains(seen, e.Category) {
			t.Fatalf("category %v is split", e.Category)
		}
		seen = append(seen, e.Category)
	}
	if diff := cmp.Diff(catalog.Categories(), seen); diff != "" {
		t.Errorf("categories (-got +want):\n%s", diff)
	}

	want := []catalog.Category{
		catalog.Variables, catalog.Operators, catalog.Strings, catalog.Arrays,
		catalog.Conditionals, catalog.Loops, catalog.Functions, catalog.Closures,
		catalog.Generators, catalog.Classes, catalog.Constants, catalog.Traits,
		catalog.Interfaces, catalog.Directives,
	}
	if diff := cmp.Diff(want, seen); diff != "" {
		t.Errorf("every category should be populated (-want +got):\n%s", diff)
	}
}

func TestSearch(t *testing.T) {
	tests := []struct {
		query string
		want  []string // snippets
	}{
		{"", nil},
		{"no such construct", nil},
		{"YIELD FROM", []string{"function countToFive() {\n\tyield 1;\n\tyield from [2, 3, 4];\n\tyield 5;\n}"}},
		{"Jello", []string{"$c = 'Hello';\n$c[0] = 'J';"}},
		{"endswitch", []string{"switch ($x):\ncase 1: break;\ncase 2: break;\ndefault:\nendswitch;"}},
		{"$myvar = 10;", []string{"$myvar = 10;\n$myvar = 1234;"}},
		{"'one' => 1,", []string{"$a = array('one' => 1, 'two' => 2, 'three' => 3);\nforeach ($a as $k => $v) {\n}"}},
		{"class Square {}", []string{"class Square {}\n$s = new Square(5);\n$s instanceof Square;"}},
		{"const PI", []string{"class MyRectangle {\n\tconst PI = 3.14;\n}"}},
	}
	for _, tt := range tests {
		var got []string
		for _, e := range catalog.Search(tt.query) {
			got = append(got, e.Snippet)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Search(%q) (-want +got):\n%s", tt.query, diff)
		}
	}
}

func TestNew(t *testing.T) {
	in := []catalog.Entry{
		{Category: catalog.Traits, Snippet: "trait T {}"},
		{Category: catalog.Loops, Snippet: "while (true) {}"},
		{Category: catalog.Traits, Snippet: "use T;"},
	}
	c := catalog.New(in...)
	in[0].Snippet = "changed"

	if got := c.List()[0].Snippet; got != "trait T {}" {
		t.Errorf("New does not copy its input: got %q", got)
	}
	want := []catalog.Category{catalog.Traits, catalog.Loops}
	if diff := cmp.Diff(want, c.Categories()); diff != "" {
		t.Errorf("Categories (-want +got):\n%s", diff)
	}
	if got := c.FilterByCategory("traits"); len(got) != 2 {
		t.Errorf("got %d traits, want 2", len(got))
	}
	if got := c.FilterByCategory("operators"); len(got) != 0 {
		t.Errorf("got %d operators, want 0", len(got))
	}

	defer func() {
		if recover() == nil {
			t.Error("New accepted an entry with no category")
		}
	}()
	catalog.New(catalog.Entry{Snippet: "$x;"})
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name string
		want catalog.Category
		ok   bool
	}{
		{"closures", catalog.Closures, true},
		{"Generators", catalog.Generators, true},
		{"unknown", catalog.Unknown, false},
		{"categoryEnd", catalog.Unknown, false},
		{"", catalog.Unknown, false},
	}
	for _, tt := range tests {
		got, ok := catalog.ParseCategory(tt.name)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseCategory(%q) = %v, %v; want %v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestEntryJSON(t *testing.T) {
	b, err := json.Marshal([]catalog.Entry{
		{Category: catalog.Arrays, Snippet: "$a[] = 4;", Note: "$a[3]"},
		{Category: catalog.Constants, Snippet: "const PI = 3.14;"},
	})
	if err != nil {
		t.Fatal(err)
	}
	const want = `[{"category":"arrays","snippet":"$a[] = 4;","note":"$a[3]"},{"category":"constants","snippet":"const PI = 3.14;"}]`
	if string(b) != want {
		t.Errorf("got %s, want %s", b, want)
	}

	var e catalog.Entry
	err = json.Unmarshal([]byte(`{"category":"macros","snippet":"x"}`), &e)
	if err == nil || !strings.Contains(err.Error(), "unknown category") {
		t.Errorf("unexpected err: %v", err)
	}
	if _, err := json.Marshal(catalog.Entry{}); err == nil {
		t.Error("marshalled an entry with no category")
	}
}

func TestConcurrentReaders(t *testing.T) {
	want := catalog.List()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if diff := cmp.Diff(want, catalog.List()); diff != "" {
				t.Errorf("concurrent List differs:\n%s", diff)
			}
			catalog.FilterByCategory("classes")
			catalog.Search("class")
		}()
	}
	wg.Wait()
}
