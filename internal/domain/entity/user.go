package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID       uuid.UUID `json:"id" gorm:"primaryKey"`
	Email    string    `json:"email" gorm:"size:255;not null;uniqueIndex"`
	Username string    `json:"username" gorm:"size:100;not null"`
	Status   string    `json:"status" gorm:"size:20;not null;default:active"`

	Roles []Role `json:"roles,omitempty" gorm:"many2many:user_roles"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewUser(email, username string) User {
	return User{ID: uuid.New(), Email: email, Username: username, Status: "active"}
}

func (u User) GetID() uuid.UUID { return u.ID }

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// UserRole assigns a role to a user.
type UserRole struct {
	UserID uuid.UUID `gorm:"primaryKey"`
	RoleID uuid.UUID `gorm:"primaryKey;index"`
}
