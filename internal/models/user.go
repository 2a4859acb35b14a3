package models

// Role gates which actions a user is offered
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleEditor     Role = "editor"
	RoleAuthor     Role = "author"
	RoleSubscriber Role = "subscriber"
)

// ValidRoles defines allowed user roles
var ValidRoles = map[Role]bool{
	RoleAdmin:      true,
	RoleEditor:     true,
	RoleAuthor:     true,
	RoleSubscriber: true,
}

// User represents a registered reader or writer
type User struct {
	ID             int64  `json:"id" yaml:"id"`
	Username       string `json:"username" yaml:"username"`
	Email          string `json:"email" yaml:"email"`
	Name           string `json:"name" yaml:"name"`
	Role           Role   `json:"role" yaml:"role"`
	Avatar         string `json:"avatar" yaml:"avatar"`
	Bio            string `json:"bio" yaml:"bio"`
	JoinDate       string `json:"joinDate" yaml:"joinDate"`
	ArticlesCount  int    `json:"articlesCount" yaml:"articlesCount"`
	FollowersCount int    `json:"followersCount" yaml:"followersCount"`
	FollowingCount int    `json:"followingCount" yaml:"followingCount"`
}

// CanAuthor reports whether the user may write articles
func (u *User) CanAuthor() bool {
	if u == nil {
		return false
	}
	return u.Role == RoleAdmin || u.Role == RoleEditor || u.Role == RoleAuthor
}

// CanViewDashboard reports whether the user may open the admin dashboard
func (u *User) CanViewDashboard() bool {
	return u != nil && u.Role == RoleAdmin
}

// ProfileUpdate holds the editable profile fields; nil means unchanged
type ProfileUpdate struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Bio    *string `json:"bio"`
	Avatar *string `json:"avatar"`
}

// Apply merges the update into a copy of the user
func (p ProfileUpdate) Apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	return u
}

// LoginRequest carries the credentials posted by the login form
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
