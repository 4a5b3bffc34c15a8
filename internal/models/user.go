package models

import "time"

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// ParseRole maps free-form input onto a known role. Anything that is not
// ADMIN is treated as USER, matching how accounts without a role log in.
func ParseRole(s string) Role {
	if Role(s) == RoleAdmin {
		return RoleAdmin
	}
	return RoleUser
}

type User struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:255;uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Role      Role      `gorm:"size:16;default:USER" json:"role"`
	CompanyID *int64    `gorm:"column:empresa_id;index" json:"empresa_id"`
	CreatedAt time.Time `json:"created_at"`

	Company *Company `gorm:"foreignKey:CompanyID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"empresa,omitempty"`
}

func (User) TableName() string { return "app_users" }

// CompanyName returns the joined company name, or "" when the user has no
// company or the relation was not loaded.
func (u User) CompanyName() string {
	if u.Company == nil {
		return ""
	}
	return u.Company.Nombre
}
