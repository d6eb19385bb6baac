package goAuthClient

import (
	"regexp"
	"strings"
)

// emailPattern is deliberately permissive: it only rejects whitespace,
// a missing @, or a missing dot in the domain part. Full RFC validation is
// the server's job.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const passwordSpecials = "@$!%*?&"

// Two validation profiles exist on purpose and must not be unified: admin-
// created accounts accept any 6+ character password, while self-service flows
// (signup, change-password, reset-password) demand 8+ characters with mixed
// case, a digit, and a special character. The asymmetry is long-standing
// observed behavior of the backend family this client targets.

// validEmail applies the permissive email pattern.
func validEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// selfServicePasswordOK enforces the strict profile: only letters, digits and
// the @$!%*?& specials are allowed, and every character class must appear.
// Length is checked separately so forms can show a distinct message for it.
func selfServicePasswordOK(password string) bool {
	var lower, upper, digit, special bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		default:
			return false
		}
	}
	return lower && upper && digit && special
}

// ValidateSignUp checks a registration form in the fixed order the signup
// view applies, stopping at the first failing rule. A returned error means no
// request may be issued.
func ValidateSignUp(req SignUpRequest) error {
	if req.Username == "" || req.Email == "" || req.FirstName == "" ||
		req.LastName == "" || req.Password == "" || req.ConfirmPassword == "" {
		return invalid("", "Please fill in all required fields")
	}
	if len(req.Username) < 3 {
		return invalid("username", "Username must be at least 3 characters long")
	}
	if !validEmail(req.Email) {
		return invalid("email", "Please enter a valid email address")
	}
	if req.Password != req.ConfirmPassword {
		return invalid("confirmPassword", "Password and confirm password do not match")
	}
	if len(req.Password) < 8 {
		return invalid("password", "Password must be at least 8 characters long")
	}
	if !selfServicePasswordOK(req.Password) {
		return invalid("password", "Password must contain at least one uppercase letter, one lowercase letter, one number, and one special character")
	}
	return nil
}

// ValidateChangePassword checks a change-password form. The new password uses
// the self-service profile.
func ValidateChangePassword(req ChangePasswordRequest) error {
	if req.CurrentPassword == "" || req.NewPassword == "" || req.ConfirmPassword == "" {
		return invalid("", "All fields are required")
	}
	if req.NewPassword != req.ConfirmPassword {
		return invalid("confirmPassword", "New password and confirm password do not match")
	}
	if len(req.NewPassword) < 8 {
		return invalid("newPassword", "New password must be at least 8 characters long")
	}
	if !selfServicePasswordOK(req.NewPassword) {
		return invalid("newPassword", "Password must contain at least one uppercase letter, one lowercase letter, one number, and one special character")
	}
	return nil
}

// ValidateResetPassword checks a reset-password form. The token comes from
// the emailed link; without one there is nothing to redeem.
func ValidateResetPassword(req ResetPasswordRequest) error {
	if req.Token == "" {
		return invalid("token", "Reset token is missing")
	}
	if req.NewPassword == "" || req.ConfirmPassword == "" {
		return invalid("", "All fields are required")
	}
	if req.NewPassword != req.ConfirmPassword {
		return invalid("confirmPassword", "New password and confirm password do not match")
	}
	if len(req.NewPassword) < 8 {
		return invalid("newPassword", "New password must be at least 8 characters long")
	}
	if !selfServicePasswordOK(req.NewPassword) {
		return invalid("newPassword", "Password must contain at least one uppercase letter, one lowercase letter, one number, and one special character")
	}
	return nil
}

// ValidateCreateUser checks an admin create-user form against the lenient
// admin-created profile (6+ characters, no complexity classes). The confirm
// field lives on the form, not the request, so it is passed separately.
func ValidateCreateUser(req CreateUserRequest, confirmPassword string) error {
	return validateAdminCreate(req.Username, req.Password, confirmPassword, req.FirstName, req.LastName, req.Email)
}

// ValidateCreateAdmin checks an admin create-admin form with the same rules
// as ValidateCreateUser.
func ValidateCreateAdmin(req CreateAdminRequest, confirmPassword string) error {
	return validateAdminCreate(req.Username, req.Password, confirmPassword, req.FirstName, req.LastName, req.Email)
}

func validateAdminCreate(username, password, confirmPassword, firstName, lastName, email string) error {
	if strings.TrimSpace(username) == "" {
		return invalid("username", "Username is required")
	}
	if len(username) < 3 {
		return invalid("username", "Username must be at least 3 characters long")
	}
	if password == "" {
		return invalid("password", "Password is required")
	}
	if len(password) < 6 {
		return invalid("password", "Password must be at least 6 characters long")
	}
	if password != confirmPassword {
		return invalid("confirmPassword", "Passwords do not match")
	}
	if strings.TrimSpace(firstName) == "" {
		return invalid("firstName", "First name is required")
	}
	if strings.TrimSpace(lastName) == "" {
		return invalid("lastName", "Last name is required")
	}
	if strings.TrimSpace(email) == "" {
		return invalid("email", "Email is required")
	}
	if !validEmail(email) {
		return invalid("email", "Please enter a valid email address")
	}
	return nil
}
