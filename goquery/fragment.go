package goquery

import "strings"

// RecommendDelimiter is the closing-tag run that terminates each card in
// the recommendation block. The source template does not wrap the cards
// in one repeating container, so the block is split on this literal
// sequence instead of a selector.
//
// This is a known extraction weak point: any change to the card markup's
// nesting depth silently changes how the block splits. It is kept as-is
// for compatibility with the source template rather than hardened.
const RecommendDelimiter = "</div></div></div>"

// SplitFragments partitions a concatenated markup blob into
// independently parseable item fragments. The blob is split on the
// literal delimiter, blank segments are dropped, and the delimiter is
// reattached to every remaining segment so each fragment closes itself.
func SplitFragments(markup, delimiter string) []string {
	var fragments []string
	for _, segment := range strings.Split(markup, delimiter) {
		if strings.TrimSpace(segment) == "" {
			continue
		}
		fragments = append(fragments, segment+delimiter)
	}
	return fragments
}
