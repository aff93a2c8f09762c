package user

// Client-facing messages.
const (
	msgUserExists         = "User with this email or phone already exists"
	msgInvalidCredentials = "Invalid email/phone or password"
	msgUserNotFound       = "User not found"
	msgWrongPassword      = "Current password is incorrect"
	msgInvalidToken       = "Invalid or expired token"
	msgRevokedToken       = "Token has been revoked"
	msgInvalidResetToken  = "Invalid or expired reset token"

	// MsgResetRequested is answered whether or not the account exists.
	MsgResetRequested = "If an account with this email exists, a password reset link has been sent"
)

var registrationMessages = map[string]string{
	"firstName": "First name must be at least 2 characters",
	"lastName":  "Last name must be at least 2 characters",
	"email":     "Valid email is required",
	"phone":     "Valid 10-digit phone number is required",
	"password":  "Password must be at least 8 characters",
	"userType":  "Valid user type is required",
}

var loginMessages = map[string]string{
	"email":    "Email or phone is required",
	"password": "Password is required",
}

var passwordMessages = map[string]string{
	"currentPassword": "Current password is required",
	"newPassword":     "New password must be at least 8 characters",
}

var profileMessages = map[string]string{
	"firstName": "First name must be at least 2 characters",
	"lastName":  "Last name must be at least 2 characters",
	"phone":     "Valid 10-digit phone number is required",
}

var forgotPasswordMessages = map[string]string{
	"email": "Valid email is required",
}

var resetPasswordMessages = map[string]string{
	"token":       "Reset token is required",
	"newPassword": "New password must be at least 8 characters",
}
