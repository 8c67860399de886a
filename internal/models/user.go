package models

import "strings"

// Role is the closed set of account roles. The access policy knows exactly
// two levels, so this stays a two-value enum rather than a permission table.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleMember Role = "MEMBER"
)

// ParseRole canonicalises a client-supplied role string. The legacy
// "ROLE_ADMIN" spelling is accepted as an alias; anything unrecognised
// falls back to MEMBER.
func ParseRole(value string) Role {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "ADMIN", "ROLE_ADMIN":
		return RoleAdmin
	default:
		return RoleMember
	}
}

// IsAdmin reports whether the role grants moderation privileges.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// User holds local credentials and the account role.
type User struct {
	BaseModel
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
	Role     Role   `gorm:"not null;default:MEMBER" json:"role"`

	Sessions []Session `gorm:"foreignKey:UserID" json:"-"`
}
