package goquery

import "strings"

// ParseDetails reads the "Label: Value" rows matched by selector into a
// map of trimmed label to trimmed value. Only the first colon separates
// label from value, so values containing colons survive intact. Rows
// without a colon are skipped. Labels are source-language free text;
// callers map the labels they know and ignore the rest.
func ParseDetails(d *Document, selector string) map[string]string {
	details := make(map[string]string)
	for _, row := range d.Select(selector) {
		label, value, ok := splitLabel(row.Text())
		if !ok {
			continue
		}
		details[label] = value
	}
	return details
}

// splitLabel splits a "Label: Value" string on its first colon and trims
// both sides. ok is false when there is no colon.
func splitLabel(text string) (label, value string, ok bool) {
	label, value, ok = strings.Cut(text, ":")
	if !ok {
		return "", "", false
	}
	return strings.TrimSpace(label), strings.TrimSpace(value), true
}
