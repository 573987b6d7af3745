package ingredient

import "strings"

// KeyFunc canonicalizes an ingredient display name into the identity
// used for matching and aggregation. Alternate strategies (stemming,
// locale-aware folding) can be substituted without touching the match
// or consolidation algorithms.
type KeyFunc func(string) string

// Key lowercases the display name and nothing else. Dish catalogs and
// owned-ingredient records arrive from different input paths with no
// shared foreign key, so records compare by human-readable identity.
// Pluralization and language variants of the same ingredient do NOT
// unify; that precision limit is intentional.
func Key(name string) string {
	return strings.ToLower(name)
}
