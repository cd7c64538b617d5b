// Package views contains the read-only projections over stored collections:
// category filtering, post ordering, study-session traversal and the small
// formatters used by the surfaces. Nothing here writes to the store.
package views
