package goquery

import "strings"

// Poster returns the profile photo URL from a detail page, or "" when
// the photo container is absent.
func Poster(d *Document) string {
	return d.First(".fotoanime img").Attr("src")
}

// Synopsis joins the paragraphs of the synopsis container with newline
// separators. Non-breaking spaces are decoded to plain spaces. Returns
// "" when the container is absent.
func Synopsis(d *Document) string {
	paragraphs := d.Select(".sinopc p")
	parts := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		parts = append(parts, p.Text())
	}
	return strings.Join(parts, "\n")
}
