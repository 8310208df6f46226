package models

import (
	"encoding/json"
	"strings"
	"time"

	"gorm.io/datatypes"
)

type User struct {
	BaseModel
	Email        string `gorm:"uniqueIndex;not null"`
	FirstName    string
	LastName     string
	PasswordHash string

	// Single-use activation token issued at account creation. AuthTokenIsUsed
	// transitions false -> true exactly once and never back.
	AuthToken       string `gorm:"uniqueIndex"`
	AuthTokenIsUsed bool   `gorm:"default:false"`

	IsActive    bool `gorm:"default:false"`
	IsClosed    bool `gorm:"default:false"`
	IsModerator bool `gorm:"default:false"`

	RegistrationMethod  RegistrationMethod `gorm:"type:varchar(3)"`
	ApplicationComments string
	AppliedAt           *time.Time
	ActivatedAt         *time.Time

	Bio   string
	Roles datatypes.JSON `gorm:"type:jsonb"` // ["mentor", "speaker"]

	// Relations
	Skills        []UserSkill    `gorm:"foreignKey:UserID"`
	Links         []UserLink     `gorm:"foreignKey:UserID"`
	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID"`
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}

func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// GetRoles returns the user's role tags as a slice of strings.
func (u *User) GetRoles() []string {
	var roles []string
	if len(u.Roles) > 0 {
		_ = json.Unmarshal(u.Roles, &roles)
	}
	return roles
}

// SetRoles stores the user's role tags.
func (u *User) SetRoles(roles []string) {
	data, _ := json.Marshal(roles)
	u.Roles = datatypes.JSON(data)
}
