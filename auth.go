package goAuthClient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/MrEthical07/goAuthClient/credstore"
)

// Login authenticates against POST /api/auth/login. Only a response with
// success=true and a non-empty token persists the session triple and notifies
// watchers; a declined response leaves the prior session untouched and is
// returned raw so the caller can display its message. Faults return a nil
// response and the error.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	var resp AuthResponse
	if err := c.api.Do(ctx, http.MethodPost, "/api/auth/login", nil, "", req, &resp); err != nil {
		c.count(MetricLoginFailure)
		c.count(MetricTransportFault)
		c.emitAudit(ctx, eventLoginFailure, false, req.Username, err, nil)
		return nil, err
	}

	if !resp.Success || resp.Token == "" {
		c.count(MetricLoginFailure)
		c.emitAudit(ctx, eventLoginFailure, false, req.Username, nil, map[string]string{
			"reason": "declined",
		})
		return &resp, nil
	}

	sess := credstore.Session{
		Token:    resp.Token,
		Username: resp.Username,
		Role:     resp.Role,
	}
	if err := c.store.Set(ctx, sess); err != nil {
		c.count(MetricLoginFailure)
		c.emitAudit(ctx, eventLoginFailure, false, req.Username, err, map[string]string{
			"reason": "persist_failed",
		})
		return nil, err
	}
	c.userWatch.Set(resp.Username)
	c.roleWatch.Set(Role(resp.Role))

	c.count(MetricLoginSuccess)
	c.emitAudit(ctx, eventLoginSuccess, true, resp.Username, nil, nil)
	return &resp, nil
}

// Logout posts to POST /api/auth/logout with the current bearer when one
// exists. The local session is cleared and watchers notified regardless of the
// network outcome: success, declined response, or transport error all end
// logged out. The network outcome is still returned for UI feedback.
func (c *Client) Logout(ctx context.Context) (*AuthResponse, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	sess, _ := c.store.Get(ctx)

	var resp AuthResponse
	err := c.api.Do(ctx, http.MethodPost, "/api/auth/logout", nil, sess.Token, struct{}{}, &resp)

	clearErr := c.clearSession(ctx)
	c.count(MetricLogout)
	c.emitAudit(ctx, eventLogout, err == nil, sess.Username, err, nil)

	if err != nil {
		return nil, err
	}
	return &resp, clearErr
}

// SignUp registers a new self-service account via POST /api/auth/signup.
// Run [ValidateSignUp] first; this method issues the request as given.
func (c *Client) SignUp(ctx context.Context, req SignUpRequest) (*AuthResponse, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	var resp AuthResponse
	if err := c.api.Do(ctx, http.MethodPost, "/api/auth/signup", nil, "", req, &resp); err != nil {
		c.count(MetricSignupFailure)
		c.count(MetricTransportFault)
		c.emitAudit(ctx, eventSignup, false, req.Username, err, nil)
		return nil, err
	}
	if resp.Success {
		c.count(MetricSignupSuccess)
	} else {
		c.count(MetricSignupFailure)
	}
	c.emitAudit(ctx, eventSignup, resp.Success, req.Username, nil, nil)
	return &resp, nil
}

// ChangePassword calls PUT /api/auth/change-password with the current bearer.
// It does not touch the local session: the server decides whether the old
// token stays valid.
func (c *Client) ChangePassword(ctx context.Context, req ChangePasswordRequest) (*AuthResponse, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	sess := c.session(ctx)

	var resp AuthResponse
	if err := c.api.Do(ctx, http.MethodPut, "/api/auth/change-password", nil, sess.Token, req, &resp); err != nil {
		c.count(MetricPasswordChangeFailure)
		c.count(MetricTransportFault)
		c.emitAudit(ctx, eventPasswordChange, false, sess.Username, err, nil)
		return nil, err
	}
	if resp.Success {
		c.count(MetricPasswordChangeSuccess)
	} else {
		c.count(MetricPasswordChangeFailure)
	}
	c.emitAudit(ctx, eventPasswordChange, resp.Success, sess.Username, nil, nil)
	return &resp, nil
}

// ForgotPassword requests a reset email via POST /api/auth/forgot-password.
func (c *Client) ForgotPassword(ctx context.Context, req ForgotPasswordRequest) (*AuthResponse, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	var resp AuthResponse
	if err := c.api.Do(ctx, http.MethodPost, "/api/auth/forgot-password", nil, "", req, &resp); err != nil {
		c.count(MetricTransportFault)
		c.emitAudit(ctx, eventPasswordResetRequest, false, "", err, nil)
		return nil, err
	}
	c.count(MetricPasswordResetRequest)
	c.emitAudit(ctx, eventPasswordResetRequest, resp.Success, "", nil, nil)
	return &resp, nil
}

// ResetPassword redeems an emailed reset token via POST /api/auth/reset-password.
func (c *Client) ResetPassword(ctx context.Context, req ResetPasswordRequest) (*AuthResponse, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	var resp AuthResponse
	if err := c.api.Do(ctx, http.MethodPost, "/api/auth/reset-password", nil, "", req, &resp); err != nil {
		c.count(MetricTransportFault)
		c.emitAudit(ctx, eventPasswordResetConfirm, false, "", err, nil)
		return nil, err
	}
	c.count(MetricPasswordResetConfirm)
	c.emitAudit(ctx, eventPasswordResetConfirm, resp.Success, "", nil, nil)
	return &resp, nil
}

// VerifyEmail redeems an emailed verification token via
// POST /api/auth/verify-email?token=... (the token travels in the query, not
// the body).
func (c *Client) VerifyEmail(ctx context.Context, token string) (*AuthResponse, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	query := url.Values{"token": {token}}

	var resp AuthResponse
	if err := c.api.Do(ctx, http.MethodPost, "/api/auth/verify-email", query, "", nil, &resp); err != nil {
		c.count(MetricTransportFault)
		c.emitAudit(ctx, eventEmailVerification, false, "", err, nil)
		return nil, err
	}
	c.count(MetricEmailVerification)
	c.emitAudit(ctx, eventEmailVerification, resp.Success, "", nil, nil)
	return &resp, nil
}
