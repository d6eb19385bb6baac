package goAuthClient

import (
	"context"

	"github.com/MrEthical07/goAuthClient/credstore"
)

// IsLoggedIn reports whether a non-empty token is currently stored. Store
// read failures count as "not logged in".
func (c *Client) IsLoggedIn(ctx context.Context) bool {
	sess, err := c.store.Get(ctx)
	return err == nil && sess.Token != ""
}

// CurrentUser returns the stored username slot as-is, empty when absent.
// This is a raw read; use the session-derived policy methods for
// authorization decisions.
func (c *Client) CurrentUser(ctx context.Context) string {
	sess, err := c.store.Get(ctx)
	if err != nil {
		return ""
	}
	return sess.Username
}

// CurrentRole returns the stored role slot as-is, empty when absent. Unknown
// strings pass through; only the policy methods fold them to "no privileges".
func (c *Client) CurrentRole(ctx context.Context) Role {
	sess, err := c.store.Get(ctx)
	if err != nil {
		return ""
	}
	return Role(sess.Role)
}

// WatchUser subscribes fn to the username channel. fn is called synchronously
// with the latest value before WatchUser returns, then on every change. The
// channel never completes; cancel only removes the subscription.
func (c *Client) WatchUser(fn func(string)) (cancel func()) {
	return c.userWatch.Subscribe(fn)
}

// WatchRole subscribes fn to the role channel with the same latest-value
// semantics as WatchUser.
func (c *Client) WatchRole(fn func(Role)) (cancel func()) {
	return c.roleWatch.Subscribe(fn)
}

// session is the defensive authorization read: without a token, stale
// username/role slots are treated as absent no matter what the store holds.
func (c *Client) session(ctx context.Context) credstore.Session {
	sess, err := c.store.Get(ctx)
	if err != nil || sess.Token == "" {
		return credstore.Session{}
	}
	return sess
}

// clearSession is the guaranteed local teardown shared by logout and 401
// handling. Watchers are notified even when the store clear fails, so no
// subscriber keeps acting on a session the client has abandoned.
func (c *Client) clearSession(ctx context.Context) error {
	err := c.store.Clear(ctx)
	c.userWatch.Set("")
	c.roleWatch.Set("")
	return err
}
