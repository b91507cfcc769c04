package models

// Role represents user roles in the system
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// User represents an account in the system. Accounts are created by the
// seed initializer and are immutable afterwards. The password is a plain
// equality credential; there is no hashing in this system.
type User struct {
	ID       string `yaml:"id" json:"id"`
	Username string `yaml:"username" json:"username"`
	Password string `yaml:"password" json:"-"`
	Name     string `yaml:"name" json:"name"`
	Role     Role   `yaml:"role" json:"role"`
}

// IsValidRole checks if a role is valid
func IsValidRole(role Role) bool {
	switch role {
	case RoleAdmin, RoleCustomer:
		return true
	default:
		return false
	}
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Claims represents the identity carried by a session token.
type Claims struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Name      string `json:"name"`
	Role      Role   `json:"role"`
	SessionID string `json:"session_id"`
	Exp       int64  `json:"exp"`
}

// IsAdmin reports whether the session identity holds the admin role.
func (c *Claims) IsAdmin() bool {
	return c.Role == RoleAdmin
}
