// Package goquery implements the animedex extraction engine on top of
// CSS-selector queries. It contains the tree-query adapter, the
// single-purpose field extractors, and the entity assemblers that turn
// raw otakudesu page markup into domain records.
//
// All functions in this package are pure: they operate on their input
// string only, perform no I/O, and tolerate arbitrarily malformed markup
// by degrading to "no match" instead of failing.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Document is a queryable handle over a parsed markup tree. A Document
// may wrap a whole page or a single element; either way the query
// methods never fail — a selector that matches nothing yields an empty
// result.
type Document struct {
	sel *goquery.Selection
}

// Load parses markup into a Document. Parsing is maximally tolerant:
// truncated or malformed input degrades to a handle whose selectors
// simply match nothing.
func Load(markup string) *Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		doc, _ = goquery.NewDocumentFromReader(strings.NewReader(""))
	}
	return &Document{sel: doc.Selection}
}

// Select returns all elements matching the CSS selector, in document
// order.
func (d *Document) Select(selector string) []*Document {
	var out []*Document
	d.sel.Find(selector).Each(func(_ int, s *goquery.Selection) {
		out = append(out, &Document{sel: s})
	})
	return out
}

// SelectAny tries each selector in order and returns the matches of the
// first one that yields any. Used where the source template varies and
// a secondary selector covers the alternate shape.
func (d *Document) SelectAny(selectors ...string) []*Document {
	for _, selector := range selectors {
		if matches := d.Select(selector); len(matches) > 0 {
			return matches
		}
	}
	return nil
}

// First returns the first element matching the CSS selector. The result
// is never nil; check Empty to distinguish a miss.
func (d *Document) First(selector string) *Document {
	return &Document{sel: d.sel.Find(selector).First()}
}

// Empty reports whether the handle wraps no elements.
func (d *Document) Empty() bool {
	return d.sel.Length() == 0
}

// Text returns the visible text of the wrapped elements with
// non-breaking spaces decoded to plain spaces.
func (d *Document) Text() string {
	return strings.ReplaceAll(d.sel.Text(), " ", " ")
}

// Attr returns the named attribute's raw value, or "" when the
// attribute (or the element itself) is absent.
func (d *Document) Attr(name string) string {
	v, _ := d.sel.Attr(name)
	return v
}

// HTML serializes the wrapped elements back to markup, elements
// included. Some extractors re-parse the result as its own fragment.
func (d *Document) HTML() string {
	var sb strings.Builder
	for _, node := range d.sel.Nodes {
		if err := html.Render(&sb, node); err != nil {
			break
		}
	}
	return sb.String()
}

// concat serializes each document in order and joins the results,
// mirroring a jQuery toString over a multi-element selection.
func concat(docs []*Document) string {
	var sb strings.Builder
	for _, d := range docs {
		sb.WriteString(d.HTML())
	}
	return sb.String()
}
