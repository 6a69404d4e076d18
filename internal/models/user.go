package models

// Role is the access level of a user
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleCommander Role = "COMMANDER"
	RoleLogistics Role = "LOGISTICS"
)

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCommander, RoleLogistics:
		return true
	}
	return false
}

// User represents the user model in the database
type User struct {
	Model
	Username         string `gorm:"uniqueIndex;not null" json:"username"`
	Password         string `gorm:"not null" json:"-"`
	Role             Role   `gorm:"type:varchar(16);not null;default:LOGISTICS" json:"role"`
	BaseID           *uint  `gorm:"index" json:"base_id,omitempty"`
	Base             *Base  `gorm:"foreignKey:BaseID" json:"base,omitempty"`
	RefreshTokenHash string `gorm:"size:64" json:"-"`
}
