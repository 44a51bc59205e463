package filter

import "github.com/cespare/xxhash/v2"

// Fingerprint returns a stable 64-bit digest of the group's canonical text.
// Generation is deterministic, so equal trees always hash equal; the UI uses
// this for cheap dirty-checking between edits.
func Fingerprint(group *FilterGroup) uint64 {
	h := xxhash.New()
	_, _ = h.WriteString(GroupToExpr(group))
	return h.Sum64()
}
