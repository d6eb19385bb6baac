// Package internaldefs holds the metric name/help tables shared by the
// Prometheus and OTel exporters so both render an identical metric surface.
package internaldefs

import (
	goAuthClient "github.com/MrEthical07/goAuthClient"
)

// CounterDef names one exported counter.
type CounterDef struct {
	ID   goAuthClient.MetricID
	Name string
	Help string
}

// CounterDefs lists every exported counter in a stable order.
var CounterDefs = []CounterDef{
	{ID: goAuthClient.MetricLoginSuccess, Name: "goauthclient_login_success_total", Help: "Logins that persisted a session."},
	{ID: goAuthClient.MetricLoginFailure, Name: "goauthclient_login_failure_total", Help: "Declined or faulted login attempts."},
	{ID: goAuthClient.MetricLogout, Name: "goauthclient_logout_total", Help: "Logout attempts; the local clear is unconditional."},
	{ID: goAuthClient.MetricForcedLogout, Name: "goauthclient_forced_logout_total", Help: "Session teardowns forced by 401 responses."},
	{ID: goAuthClient.MetricSignupSuccess, Name: "goauthclient_signup_success_total", Help: "Accepted registrations."},
	{ID: goAuthClient.MetricSignupFailure, Name: "goauthclient_signup_failure_total", Help: "Declined or faulted registrations."},
	{ID: goAuthClient.MetricPasswordChangeSuccess, Name: "goauthclient_password_change_success_total", Help: "Accepted password changes."},
	{ID: goAuthClient.MetricPasswordChangeFailure, Name: "goauthclient_password_change_failure_total", Help: "Declined or faulted password changes."},
	{ID: goAuthClient.MetricPasswordResetRequest, Name: "goauthclient_password_reset_request_total", Help: "Forgot-password submissions."},
	{ID: goAuthClient.MetricPasswordResetConfirm, Name: "goauthclient_password_reset_confirm_total", Help: "Reset-password submissions."},
	{ID: goAuthClient.MetricEmailVerification, Name: "goauthclient_email_verification_total", Help: "Verify-email submissions."},
	{ID: goAuthClient.MetricAdminCreateUser, Name: "goauthclient_admin_create_user_total", Help: "Create-user attempts."},
	{ID: goAuthClient.MetricAdminCreateAdmin, Name: "goauthclient_admin_create_admin_total", Help: "Create-admin attempts."},
	{ID: goAuthClient.MetricAdminChangeRole, Name: "goauthclient_admin_change_role_total", Help: "Change-role attempts."},
	{ID: goAuthClient.MetricGateDenied, Name: "goauthclient_gate_denied_total", Help: "Route guard denials."},
	{ID: goAuthClient.MetricTransportFault, Name: "goauthclient_transport_fault_total", Help: "Requests that produced no structured response."},
}
