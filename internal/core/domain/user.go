package domain

import "time"

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleManager UserRole = "manager"
	RoleMember  UserRole = "member"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleMember:
		return true
	}
	return false
}

// User is the single principal entity: it covers both login-capable accounts
// and directory-only team members. A nil PasswordHash means the record is
// directory-only and cannot authenticate.
type User struct {
	ID           uint64
	Name         string
	Email        string
	Role         UserRole
	PasswordHash *string
	AvatarColor  *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u User) CanLogin() bool {
	return u.PasswordHash != nil && u.IsActive
}

type CreateUserInput struct {
	Name        string
	Email       string
	Role        UserRole
	Password    *string
	AvatarColor *string
}

type UpdateUserInput struct {
	Name        *string
	Email       *string
	Role        *UserRole
	Password    *string
	AvatarColor *string
	IsActive    *bool
}

// Principal is the authenticated identity the permission evaluator consumes.
// Role is captured at token issue time; role changes apply from the next
// login.
type Principal struct {
	UserID uint64
	Name   string
	Role   UserRole
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// AuthSession is what a successful login returns.
type AuthSession struct {
	Token string
	User  User
}
