package models

// Roles carried by an authenticated identity. They double as responder types.
const (
	RoleCitizen = "citizen"
	RoleLawyer  = "lawyer"
	RoleAdmin   = "admin"
)

var ResponderRoles = []string{RoleLawyer, RoleCitizen, RoleAdmin}

// Identity is the authenticated caller attached to a request.
type Identity struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// RoleForAccount maps an account to the role it acts with. Lawyer accounts
// only act as lawyers once the directory lists them as verified.
func RoleForAccount(userType string, verifiedLawyer bool) string {
	if userType == UserTypeLawyer && verifiedLawyer {
		return RoleLawyer
	}
	return RoleCitizen
}

// CanManageIssues reports whether the identity may change status or assignment.
func (i Identity) CanManageIssues() bool {
	return i.Role == RoleLawyer || i.Role == RoleAdmin
}
