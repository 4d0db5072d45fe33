package animedex

import (
	"regexp"
	"strings"
)

// slugPrefixRe matches the canonical URL prefix for the page categories
// whose trailing path segment is the entity identifier. The host varies
// by mirror (otakudesu rotates TLDs), so only the subdomain is fixed.
var slugPrefixRe = regexp.MustCompile(`^https?://otakudesu\.[a-zA-Z0-9-]+/(anime|episode|genres|batch)/`)

// Slug derives the bare identifier from a canonical source URL of the
// shape https://<host>/<category>/<identifier>[/]. URLs that do not match
// any known category pass through unmodified; use Underived to detect
// that case.
func Slug(url string) string {
	stripped := slugPrefixRe.ReplaceAllString(url, "")
	if stripped == url {
		return url
	}
	return strings.TrimSuffix(stripped, "/")
}

// Underived reports whether a Slug result still carries a URL scheme,
// meaning no identifier could be derived from the input.
func Underived(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
