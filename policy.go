package goAuthClient

import "context"

// IsAdmin reports whether r carries admin capability. SUPER_ADMIN implies
// ADMIN. The switch is exhaustive over the closed role set so unknown or
// absent roles fail closed; there is deliberately no default-true branch.
func (r Role) IsAdmin() bool {
	switch r {
	case RoleAdmin, RoleSuperAdmin:
		return true
	case RoleUser:
		return false
	default:
		return false
	}
}

// IsSuperAdmin reports whether r is exactly SUPER_ADMIN.
func (r Role) IsSuperAdmin() bool {
	switch r {
	case RoleSuperAdmin:
		return true
	case RoleUser, RoleAdmin:
		return false
	default:
		return false
	}
}

// IsAdmin derives admin capability from the current session. Without a token
// the stored role is treated as absent, so the answer is false.
func (c *Client) IsAdmin(ctx context.Context) bool {
	return Role(c.session(ctx).Role).IsAdmin()
}

// IsSuperAdmin derives super-admin capability from the current session.
func (c *Client) IsSuperAdmin(ctx context.Context) bool {
	return Role(c.session(ctx).Role).IsSuperAdmin()
}

// GuardAdmin is the entry guard for admin-gated views. On denial it redirects
// to the dashboard; the caller must short-circuit and read no further
// privileged state.
func (c *Client) GuardAdmin(ctx context.Context) GateDecision {
	if Role(c.session(ctx).Role).IsAdmin() {
		return GateDecision{Allowed: true}
	}
	c.count(MetricGateDenied)
	c.emitAudit(ctx, eventGateDenied, false, "", nil, map[string]string{
		"gate": "admin",
	})
	return GateDecision{Redirect: RouteDashboard}
}

// GuardSuperAdmin is the entry guard for super-admin-gated views. Denials
// land on the admin panel, the highest view the caller may still hold.
func (c *Client) GuardSuperAdmin(ctx context.Context) GateDecision {
	if Role(c.session(ctx).Role).IsSuperAdmin() {
		return GateDecision{Allowed: true}
	}
	c.count(MetricGateDenied)
	c.emitAudit(ctx, eventGateDenied, false, "", nil, map[string]string{
		"gate": "super_admin",
	})
	return GateDecision{Redirect: RouteAdmin}
}

// AvailableRoles lists the roles the current session may offer on a
// create-user form: SUPER_ADMIN may grant USER and ADMIN, ADMIN only USER.
// The list is advisory; the server remains authoritative on grantability.
func (c *Client) AvailableRoles(ctx context.Context) []RoleOption {
	role := Role(c.session(ctx).Role)
	switch {
	case role.IsSuperAdmin():
		return []RoleOption{userRoleOption, adminRoleOption}
	case role.IsAdmin():
		return []RoleOption{userRoleOption}
	default:
		return nil
	}
}

var (
	userRoleOption = RoleOption{
		Value:       RoleUser,
		Label:       "User",
		Description: "Basic user with limited access to personal information",
	}
	adminRoleOption = RoleOption{
		Value:       RoleAdmin,
		Label:       "Admin",
		Description: "Administrator with user management capabilities",
	}
)
