package goquery

import (
	"strconv"
	"strings"

	"github.com/kitanime/animedex"
)

// ScrapePagination reads the pagination widget of a listing page. The
// current page is the entry carrying the "current" marker class, the
// last page is the highest page number found, and the next/prev flags
// come from the presence of their marker anchors. A page without a
// widget is a singleton: {1, 1, no next, no prev}.
func ScrapePagination(markup string) animedex.Pagination {
	p := animedex.Pagination{Current: 1, Last: 1}

	d := Load(markup)
	for _, el := range d.Select(".pagination .page-numbers") {
		switch {
		case hasClass(el, "next"):
			p.HasNext = true
		case hasClass(el, "prev"):
			p.HasPrev = true
		default:
			n, err := strconv.Atoi(strings.TrimSpace(el.Text()))
			if err != nil {
				continue
			}
			if hasClass(el, "current") {
				p.Current = n
			}
			if n > p.Last {
				p.Last = n
			}
		}
	}
	return p
}

// hasClass reports whether the element's class attribute contains the
// given class name.
func hasClass(d *Document, name string) bool {
	for _, c := range strings.Fields(d.Attr("class")) {
		if c == name {
			return true
		}
	}
	return false
}
