package internal

import "context"

// Audit trail is best-effort: a failed log write never fails the action.
func logAction(store Store, actor, action, details string) {
	_ = store.AppendLog(context.Background(), actor, action, details)
}
