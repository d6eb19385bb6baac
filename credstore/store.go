// Package credstore persists the client session triple (token, username,
// role) across process restarts. Stores are pure storage: they apply no
// authorization policy and never interpret the token.
package credstore

import "context"

// Slot names match the keys the account-management frontend family has always
// used, so stores can share state with sibling clients.
const (
	SlotToken    = "authToken"
	SlotUsername = "currentUser"
	SlotRole     = "currentUserRole"
)

// Session is the persisted identity triple. Empty fields mean "absent"; the
// token's presence is what marks a session as logged in.
type Session struct {
	Token    string `json:"authToken,omitempty"`
	Username string `json:"currentUser,omitempty"`
	Role     string `json:"currentUserRole,omitempty"`
}

// Store is durable key/value persistence for the session triple.
//
// Get reconstructs a Session from three independent slots and tolerates any
// slot being absent. Set writes all three slots; same-goroutine readers never
// observe a partial triple. Clear removes all three slots and is idempotent:
// clearing an empty store is not an error.
type Store interface {
	Get(ctx context.Context) (Session, error)
	Set(ctx context.Context, s Session) error
	Clear(ctx context.Context) error
}
