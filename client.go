package goAuthClient

import (
	"context"
	"time"

	"github.com/MrEthical07/goAuthClient/credstore"
	"github.com/MrEthical07/goAuthClient/internal/audit"
	internalmetrics "github.com/MrEthical07/goAuthClient/internal/metrics"
	"github.com/MrEthical07/goAuthClient/internal/transport"
	"github.com/MrEthical07/goAuthClient/watch"
)

// Client is the session-aware gateway to the account-management backend.
// Construct via [Builder.Build]; its lifetime is the application's lifetime.
type Client struct {
	config  Config
	api     *transport.Client
	store   credstore.Store
	metrics *internalmetrics.Metrics
	audit   *audit.Dispatcher

	userWatch *watch.Value[string]
	roleWatch *watch.Value[Role]
}

// Close drains and stops the audit dispatcher. The Client must not be used
// afterwards.
func (c *Client) Close() {
	if c == nil {
		return
	}
	c.audit.Close()
}

// MetricsSnapshot returns a point-in-time copy of all counters.
func (c *Client) MetricsSnapshot() MetricsSnapshot {
	return c.metrics.Snapshot()
}

// AuditDropped reports audit events discarded due to dispatcher backpressure.
func (c *Client) AuditDropped() uint64 {
	return c.audit.Dropped()
}

// ready rejects a zero-value Client; network operations call it before
// touching any dependency.
func (c *Client) ready() error {
	if c == nil || c.api == nil || c.store == nil {
		return ErrClientNotReady
	}
	return nil
}

func (c *Client) count(id MetricID) {
	c.metrics.Inc(id)
}

func (c *Client) emitAudit(ctx context.Context, eventType string, success bool, username string, err error, metadata map[string]string) {
	if c.audit == nil {
		return
	}
	event := AuditEvent{
		Timestamp: time.Now(),
		EventType: eventType,
		Username:  username,
		Success:   success,
		Metadata:  metadata,
	}
	if err != nil {
		event.Error = err.Error()
	}
	c.audit.Emit(ctx, event)
}

func (c *Client) emitAdminAudit(ctx context.Context, action Action, success bool, username string, err error) {
	if c.audit == nil {
		return
	}
	event := AuditEvent{
		Timestamp: time.Now(),
		EventType: eventAdminAction,
		Username:  username,
		Action:    action.String(),
		Success:   success,
	}
	if err != nil {
		event.Error = err.Error()
	}
	c.audit.Emit(ctx, event)
}

const (
	eventLoginSuccess         = "login_success"
	eventLoginFailure         = "login_failure"
	eventLogout               = "logout"
	eventForcedLogout         = "forced_logout"
	eventSignup               = "signup"
	eventPasswordChange       = "password_change"
	eventPasswordResetRequest = "password_reset_request"
	eventPasswordResetConfirm = "password_reset_confirm"
	eventEmailVerification    = "email_verification"
	eventAdminAction          = "admin_action"
	eventGateDenied           = "gate_denied"
)
