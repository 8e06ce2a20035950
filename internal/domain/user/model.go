package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleAgent    Role = "agent"
	RoleLandlord Role = "landlord"
	RoleTenant   Role = "tenant"
)

var Roles = []Role{RoleAdmin, RoleAgent, RoleLandlord, RoleTenant}

func (r Role) Valid() bool {
	for _, v := range Roles {
		if r == v {
			return true
		}
	}
	return false
}

// User is the profile row. AuthID references the identity that owns the
// credentials.
type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	AuthID    string    `gorm:"column:auth_id;size:64;not null;uniqueIndex" json:"auth_id"`
	Name      string    `gorm:"size:120;not null" json:"name"`
	Email     string    `gorm:"size:255;not null;uniqueIndex:idx_users_email" json:"email"`
	Phone     *string   `gorm:"size:40" json:"phone"`
	Role      Role      `gorm:"type:user_role;not null;default:'tenant'" json:"role"`
	AvatarURL *string   `gorm:"column:avatar_url" json:"avatar_url"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
