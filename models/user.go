// models/user.go
package models

import "time"

// User types accepted at registration.
const (
	UserTypeCitizen = "citizen"
	UserTypeLawyer  = "lawyer"
	UserTypeStudent = "student"
	UserTypeOther   = "other"
)

// UserProfile is the free-form part of a user account.
type UserProfile struct {
	Location          string   `bson:"location" json:"location"`
	Languages         []string `bson:"languages" json:"languages"`
	Interests         []string `bson:"interests" json:"interests"`
	EmergencyContacts []string `bson:"emergencyContacts" json:"emergencyContacts"`
}

// User represents a platform user.
type User struct {
	ID                string      `bson:"id" json:"id"`
	FirstName         string      `bson:"firstName" json:"firstName"`
	LastName          string      `bson:"lastName" json:"lastName"`
	Email             string      `bson:"email" json:"email"`
	Phone             string      `bson:"phone" json:"phone"`
	PasswordHash      string      `bson:"passwordHash" json:"-"`
	UserType          string      `bson:"userType" json:"userType"`
	PreferredLanguage string      `bson:"preferredLanguage" json:"preferredLanguage"`
	IsVerified        bool        `bson:"isVerified" json:"isVerified"`
	CreatedAt         time.Time   `bson:"createdAt" json:"createdAt"`
	LastLogin         *time.Time  `bson:"lastLogin" json:"lastLogin"`
	Profile           UserProfile `bson:"profile" json:"profile"`
}

// FullName joins first and last name.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Clone returns a deep copy of the user.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	out := *u
	if u.LastLogin != nil {
		t := *u.LastLogin
		out.LastLogin = &t
	}
	out.Profile.Languages = append([]string{}, u.Profile.Languages...)
	out.Profile.Interests = append([]string{}, u.Profile.Interests...)
	out.Profile.EmergencyContacts = append([]string{}, u.Profile.EmergencyContacts...)
	return &out
}

// UserRegistration is the body of POST /auth/register.
type UserRegistration struct {
	FirstName         string `json:"firstName" validate:"min=2"`
	LastName          string `json:"lastName" validate:"min=2"`
	Email             string `json:"email" validate:"email"`
	Phone             string `json:"phone" validate:"len=10,numeric"`
	Password          string `json:"password" validate:"min=8"`
	UserType          string `json:"userType" validate:"oneof=citizen lawyer student other"`
	PreferredLanguage string `json:"preferredLanguage"`
}

// LoginRequest accepts an email or a phone number as login.
type LoginRequest struct {
	Email      string `json:"email" validate:"required"`
	Password   string `json:"password" validate:"required"`
	RememberMe bool   `json:"rememberMe"`
}

// ProfileUpdate carries the user-editable fields; empty values are left untouched.
type ProfileUpdate struct {
	FirstName         string       `json:"firstName" validate:"omitempty,min=2"`
	LastName          string       `json:"lastName" validate:"omitempty,min=2"`
	Phone             string       `json:"phone" validate:"omitempty,len=10,numeric"`
	PreferredLanguage string       `json:"preferredLanguage"`
	Profile           *UserProfile `json:"profile" validate:"-"`
}

// PasswordChange is the body of PUT /auth/change-password.
type PasswordChange struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"min=8"`
}

// ForgotPasswordRequest is the body of POST /auth/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// PasswordReset is the body of POST /auth/reset-password.
type PasswordReset struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"min=8"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}
