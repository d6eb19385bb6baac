package goAuthClient

import (
	"context"
	"errors"
	"net/http"
)

// Action identifies a privileged operation for error classification and
// audit. The message tables below are keyed by it.
type Action int

const (
	// ActionCreateUser is the admin create-user operation.
	ActionCreateUser Action = iota
	// ActionCreateAdmin is the super-admin create-admin operation.
	ActionCreateAdmin
	// ActionChangeRole is the super-admin role-change operation.
	ActionChangeRole
)

func (a Action) String() string {
	switch a {
	case ActionCreateUser:
		return "create_user"
	case ActionCreateAdmin:
		return "create_admin"
	case ActionChangeRole:
		return "change_role"
	default:
		return "unknown"
	}
}

// ActionOutcome is the user-facing classification of a privileged-action
// fault. ForceLogout marks the one escalating case (401): the session must be
// torn down and navigation sent to Redirect.
type ActionOutcome struct {
	Message     string
	ForceLogout bool
	Redirect    Route
}

const reauthenticateMessage = "You are not authorized. Please log in again."

var permissionDeniedMessages = map[Action]string{
	ActionCreateUser:  "You do not have permission to create users with this role.",
	ActionCreateAdmin: "You do not have permission to create admin users.",
	ActionChangeRole:  "You do not have permission to change user roles.",
}

var fallbackMessages = map[Action]string{
	ActionCreateUser:  "An error occurred while creating the user.",
	ActionCreateAdmin: "An error occurred while creating the admin user.",
	ActionChangeRole:  "An error occurred while changing the user role.",
}

// ClassifyActionError maps a gateway fault onto the uniform outcome policy:
// 403 is an action-specific permission message, 401 escalates to a forced
// re-login, any fault body message surfaces verbatim, and everything else
// (including pure transport errors) falls back to an action-specific generic
// message. It is pure; [Client.ResolveActionError] applies the side effects.
func ClassifyActionError(action Action, err error) ActionOutcome {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusForbidden:
			return ActionOutcome{Message: permissionDeniedMessages[action]}
		case http.StatusUnauthorized:
			return ActionOutcome{
				Message:     reauthenticateMessage,
				ForceLogout: true,
				Redirect:    RouteLogin,
			}
		}
		if apiErr.Message != "" {
			return ActionOutcome{Message: apiErr.Message}
		}
	}
	return ActionOutcome{Message: fallbackMessages[action]}
}

// ResolveActionError classifies err and applies the 401 escalation: the local
// session is cleared unconditionally and watchers are notified, mirroring
// logout's guaranteed teardown. All other outcomes leave state untouched.
func (c *Client) ResolveActionError(ctx context.Context, action Action, err error) ActionOutcome {
	out := ClassifyActionError(action, err)
	if out.ForceLogout {
		username := c.CurrentUser(ctx)
		_ = c.clearSession(ctx)
		c.count(MetricForcedLogout)
		c.emitAudit(ctx, eventForcedLogout, false, username, err, map[string]string{
			"action": action.String(),
		})
	}
	return out
}
