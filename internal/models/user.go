package models

type Role string

const (
	RoleViewer Role = "viewer"
	RoleAdmin  Role = "admin"
)

type User struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
	ChatID    int64  `gorm:"uniqueIndex;not null" json:"chat_id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `gorm:"default:'viewer'" json:"role"`
}

// IsAdmin reports whether the user may run administrative commands.
func (u *User) IsAdmin() bool {
	return u.Role == string(RoleAdmin)
}

func (u *User) SetRole(role Role) {
	u.Role = string(role)
}

func (User) TableName() string {
	return "users"
}
