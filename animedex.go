// Package animedex extracts typed anime-catalog records from raw HTML
// pages served by otakudesu-style sites: anime profiles, episode lists,
// genre taxonomies, batch-download bundles, paginated listings, search
// results, and recommendation blocks.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// rod/, http/). The extraction functions themselves are pure: they take
// an already-fetched markup string and return a value, never performing
// network I/O.
package animedex
