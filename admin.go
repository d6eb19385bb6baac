package goAuthClient

import (
	"context"
	"net/http"
)

// CreateUser submits POST /api/admin/users with the current bearer. The role
// field is advisory; the server is authoritative on whether the caller may
// grant it. Faults should be fed to [Client.ResolveActionError] with
// [ActionCreateUser].
func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (*AuthResponse, error) {
	return c.adminCall(ctx, http.MethodPost, "/api/admin/users", ActionCreateUser, MetricAdminCreateUser, req)
}

// CreateAdmin submits POST /api/admin/users/admin with the current bearer.
// The created account is always ADMIN.
func (c *Client) CreateAdmin(ctx context.Context, req CreateAdminRequest) (*AuthResponse, error) {
	return c.adminCall(ctx, http.MethodPost, "/api/admin/users/admin", ActionCreateAdmin, MetricAdminCreateAdmin, req)
}

// ChangeUserRole submits PUT /api/admin/users/role with the current bearer.
func (c *Client) ChangeUserRole(ctx context.Context, req ChangeRoleRequest) (*AuthResponse, error) {
	return c.adminCall(ctx, http.MethodPut, "/api/admin/users/role", ActionChangeRole, MetricAdminChangeRole, req)
}

// adminCall is the shared privileged-action path: one request with the
// defensive session read's bearer, one structured response or one fault.
// Outcome classification is left to the caller so a 401 teardown happens in
// exactly one place.
func (c *Client) adminCall(ctx context.Context, method, path string, action Action, metric MetricID, body any) (*AuthResponse, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	sess := c.session(ctx)

	var resp AuthResponse
	if err := c.api.Do(ctx, method, path, nil, sess.Token, body, &resp); err != nil {
		c.count(metric)
		c.emitAdminAudit(ctx, action, false, sess.Username, err)
		return nil, err
	}

	c.count(metric)
	c.emitAdminAudit(ctx, action, resp.Success, sess.Username, nil)
	return &resp, nil
}
