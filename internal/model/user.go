package model

import "strings"

// Role is the authority granted to an account by the auth boundary.
type Role string

const (
	RoleCustomer Role = "ROLE_CUSTOMER"
	RoleSupplier Role = "ROLE_SUPPLIER"
	RoleAdmin    Role = "ROLE_ADMIN"
)

// ParseRole accepts both the wire form ("ROLE_SUPPLIER") and the short form
// used by registration ("supplier").
func ParseRole(s string) (Role, bool) {
	switch strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(s)), "ROLE_") {
	case "CUSTOMER":
		return RoleCustomer, true
	case "SUPPLIER":
		return RoleSupplier, true
	case "ADMIN":
		return RoleAdmin, true
	}
	return "", false
}

// Short returns the lower-case name sent on registration.
func (r Role) Short() string {
	return strings.ToLower(strings.TrimPrefix(string(r), "ROLE_"))
}

// Label is the badge text shown next to the username.
func (r Role) Label() string {
	return strings.TrimPrefix(string(r), "ROLE_")
}

// User is the identity half of a session.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Role     Role   `json:"role"`
}

// AuthResult is the login boundary's success payload.
type AuthResult struct {
	Token    string `json:"token"`
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Role     Role   `json:"role"`
}

// User extracts the identity carried by the login payload.
func (a AuthResult) User() User {
	return User{ID: a.ID, Username: a.Username, Email: a.Email, Role: a.Role}
}

// Registration is the payload of the register boundary.
type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// AdminUser is a row of the admin user-management list.
type AdminUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	Enabled  bool   `json:"enabled"`
}
