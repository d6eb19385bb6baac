package goAuthClient

import (
	"github.com/MrEthical07/goAuthClient/internal/audit"
	internalmetrics "github.com/MrEthical07/goAuthClient/internal/metrics"
	"github.com/MrEthical07/goAuthClient/internal/transport"
	"io"
)

// Role is the account tier reported by the backend. The set is closed:
// anything outside it (including the empty string) carries no privileges.
type Role string

const (
	// RoleUser is the base tier with access to personal data only.
	RoleUser Role = "USER"
	// RoleAdmin may manage regular user accounts.
	RoleAdmin Role = "ADMIN"
	// RoleSuperAdmin may manage admin accounts and reassign roles.
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

// ParseRole maps a raw role string onto the closed role set. Unknown or empty
// values return ok=false and must be treated as "no privileges".
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleUser:
		return RoleUser, true
	case RoleAdmin:
		return RoleAdmin, true
	case RoleSuperAdmin:
		return RoleSuperAdmin, true
	default:
		return "", false
	}
}

// Route identifies a client-side landing view. Guards and error classification
// return routes so the embedding UI knows where to navigate; the SDK itself
// performs no navigation.
type Route string

const (
	// RouteLogin is the login view; 401 teardown redirects here.
	RouteLogin Route = "/login"
	// RouteDashboard is the lowest-privilege landing view.
	RouteDashboard Route = "/dashboard"
	// RouteAdmin is the admin panel; super-admin gate failures land here.
	RouteAdmin Route = "/admin"
)

// AuthResponse is the structured payload returned by every auth and admin
// endpoint. Token, Username, and Role are only populated by login.
type AuthResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Token    string `json:"token,omitempty"`
	Username string `json:"username,omitempty"`
	Role     string `json:"role,omitempty"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignUpRequest is the body of POST /api/auth/signup. PhoneNumber and Address
// are optional and omitted from the wire format when empty.
type SignUpRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	PhoneNumber     string `json:"phoneNumber,omitempty"`
	Address         string `json:"address,omitempty"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// ChangePasswordRequest is the body of PUT /api/auth/change-password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// ForgotPasswordRequest is the body of POST /api/auth/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest is the body of POST /api/auth/reset-password.
type ResetPasswordRequest struct {
	Token           string `json:"token"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// CreateUserRequest is the body of POST /api/admin/users. Role is advisory;
// the server decides whether the caller may grant it.
type CreateUserRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Address     string `json:"address,omitempty"`
	Role        Role   `json:"role"`
}

// CreateAdminRequest is the body of POST /api/admin/users/admin. The created
// account is always ADMIN; there is deliberately no role field.
type CreateAdminRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Address     string `json:"address,omitempty"`
}

// ChangeRoleRequest is the body of PUT /api/admin/users/role.
type ChangeRoleRequest struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// RoleOption is a grantable role with its form display strings.
type RoleOption struct {
	Value       Role
	Label       string
	Description string
}

// GateDecision is the result of a route entry guard. When Allowed is false,
// Redirect names the lower-privilege landing view and the caller must not read
// any further privileged state.
type GateDecision struct {
	Allowed  bool
	Redirect Route
}

// APIError is the fault produced when the backend answers with an HTTP error
// status. Message carries the structured error body's message when one was
// present, empty otherwise. Pure transport failures never produce an APIError;
// they surface as the underlying error.
type APIError = transport.APIError

// AuditEvent is a structured audit record emitted by the client.
type AuditEvent = audit.Event

// AuditSink receives [AuditEvent] values from the client's audit dispatcher.
type AuditSink = audit.Sink

// NoOpSink is an [AuditSink] that silently discards all events.
type NoOpSink = audit.NoOpSink

// ChannelSink is a buffered channel-based [AuditSink].
type ChannelSink = audit.ChannelSink

// JSONWriterSink is an [AuditSink] that writes JSON-encoded events to an
// [io.Writer], one object per line.
type JSONWriterSink = audit.JSONWriterSink

// NewChannelSink creates a [ChannelSink] with the given buffer capacity.
func NewChannelSink(buffer int) *ChannelSink {
	return audit.NewChannelSink(buffer)
}

// NewJSONWriterSink creates a [JSONWriterSink] that writes to w.
func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return audit.NewJSONWriterSink(w)
}

// MetricID identifies a specific counter in the in-process metrics system.
type MetricID = internalmetrics.MetricID

const (
	// MetricLoginSuccess counts logins that persisted a session.
	MetricLoginSuccess = internalmetrics.LoginSuccess
	// MetricLoginFailure counts declined or faulted login attempts.
	MetricLoginFailure = internalmetrics.LoginFailure
	// MetricLogout counts logout attempts; the local clear is unconditional.
	MetricLogout = internalmetrics.Logout
	// MetricForcedLogout counts 401-driven session teardowns.
	MetricForcedLogout = internalmetrics.ForcedLogout
	// MetricSignupSuccess counts accepted registrations.
	MetricSignupSuccess = internalmetrics.SignupSuccess
	// MetricSignupFailure counts declined or faulted registrations.
	MetricSignupFailure = internalmetrics.SignupFailure
	// MetricPasswordChangeSuccess counts accepted password changes.
	MetricPasswordChangeSuccess = internalmetrics.PasswordChangeSuccess
	// MetricPasswordChangeFailure counts declined or faulted password changes.
	MetricPasswordChangeFailure = internalmetrics.PasswordChangeFailure
	// MetricPasswordResetRequest counts forgot-password submissions.
	MetricPasswordResetRequest = internalmetrics.PasswordResetRequest
	// MetricPasswordResetConfirm counts reset-password submissions.
	MetricPasswordResetConfirm = internalmetrics.PasswordResetConfirm
	// MetricEmailVerification counts verify-email submissions.
	MetricEmailVerification = internalmetrics.EmailVerification
	// MetricAdminCreateUser counts create-user attempts.
	MetricAdminCreateUser = internalmetrics.AdminCreateUser
	// MetricAdminCreateAdmin counts create-admin attempts.
	MetricAdminCreateAdmin = internalmetrics.AdminCreateAdmin
	// MetricAdminChangeRole counts change-role attempts.
	MetricAdminChangeRole = internalmetrics.AdminChangeRole
	// MetricGateDenied counts route guard denials.
	MetricGateDenied = internalmetrics.GateDenied
	// MetricTransportFault counts requests that produced no structured response.
	MetricTransportFault = internalmetrics.TransportFault
)

// MetricsSnapshot is a point-in-time deep copy of all counters.
type MetricsSnapshot = internalmetrics.Snapshot
