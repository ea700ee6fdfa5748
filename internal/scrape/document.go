// Package scrape holds the extraction and normalization core: locating data
// fragments inside third-party markup and turning their heterogeneous text
// formats into canonical values.
package scrape

import (
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// sentinels maps upstream placeholder literals to their semantic value.
var sentinels = map[string]string{
	"S/C": "Sin cotización",
}

// Document is a parsed HTML page. Each request owns its own instance; it is
// never shared or mutated across requests.
type Document struct {
	doc *goquery.Document
}

// NewDocument parses HTML from r.
func NewDocument(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	return &Document{doc: doc}, nil
}

// NewDocumentFromString parses HTML held in a string.
func NewDocumentFromString(html string) (*Document, error) {
	return NewDocument(strings.NewReader(html))
}

// Root returns the whole document as a selection scope.
func (d *Document) Root() Selection {
	return Selection{sel: d.doc.Selection}
}

// Text returns the full text content of the page, used for regex-located
// fields that have no stable markup anchor.
func (d *Document) Text() string {
	return d.doc.Text()
}

// Selection is a scope inside a document. Lookups report absence with a
// bool, never an error; a malformed selector is a programmer error and
// panics inside goquery.
type Selection struct {
	sel *goquery.Selection
}

// First returns the first node matching selector within the scope.
func (s Selection) First(selector string) (Selection, bool) {
	found := s.sel.Find(selector).First()
	if found.Length() == 0 {
		return Selection{}, false
	}
	return Selection{sel: found}, true
}

// All returns every node matching selector within the scope.
func (s Selection) All(selector string) []Selection {
	var out []Selection
	s.sel.Find(selector).Each(func(_ int, node *goquery.Selection) {
		out = append(out, Selection{sel: node})
	})
	return out
}

// Nth returns the nth (zero-based) node matching selector, used to address
// individual rows of repeated table markup.
func (s Selection) Nth(selector string, n int) (Selection, bool) {
	found := s.sel.Find(selector).Eq(n)
	if found.Length() == 0 {
		return Selection{}, false
	}
	return Selection{sel: found}, true
}

// Exists reports whether selector matches anything within the scope.
func (s Selection) Exists(selector string) bool {
	return s.sel.Find(selector).Length() > 0
}

// Text returns the trimmed text content of the selection.
func (s Selection) Text() string {
	if s.sel == nil {
		return ""
	}
	return strings.TrimSpace(s.sel.Text())
}

// Locator declares where a field lives: a CSS selector plus an optional
// regex whose first capture group narrows the matched text. Locators are
// configuration, not code; upstream layout drift is fixed by swapping them.
type Locator struct {
	Selector string
	Pattern  string
}

// Extract resolves the locator against a scope. It returns the trimmed,
// sentinel-mapped text and whether the fragment was found. A pattern that
// fails to match counts as absence.
func (l Locator) Extract(scope Selection) (string, bool) {
	node, ok := scope.First(l.Selector)
	if !ok {
		return "", false
	}
	text := node.Text()
	if l.Pattern != "" {
		captured, ok := ExtractByRegex(text, l.Pattern)
		if !ok {
			return "", false
		}
		text = captured
	}
	if mapped, ok := sentinels[text]; ok {
		return mapped, true
	}
	return text, true
}

// ExtractByRegex returns the first capture group of pattern applied to text.
func ExtractByRegex(text, pattern string) (string, bool) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", false
	}
	match := re.FindStringSubmatch(text)
	if len(match) < 2 {
		return "", false
	}
	return strings.TrimSpace(match[1]), true
}
