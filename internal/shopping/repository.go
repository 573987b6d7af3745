package shopping

import "context"

// OwnedKeyRepository persists which normalized ingredient keys a user
// has marked as already owned. Kept outside the consolidation
// function so the list can be regenerated without losing the flags.
type OwnedKeyRepository interface {
	Set(ctx context.Context, userID, key string, owned bool) error
	ListByUser(ctx context.Context, userID string) (map[string]bool, error)
}
