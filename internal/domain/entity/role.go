package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role struct {
	ID          uuid.UUID `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:50;not null;uniqueIndex"`
	Description string    `json:"description"`

	Permissions []Permission `json:"permissions,omitempty" gorm:"many2many:role_permissions"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewRole(name string) Role {
	return Role{ID: uuid.New(), Name: name}
}

func (r Role) GetID() uuid.UUID { return r.ID }

// BeforeCreate assigns an id to records built without a constructor.
func (r *Role) BeforeCreate(*gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// Permission is the stored form of a PermissionType.
type Permission struct {
	ID        uuid.UUID      `json:"id" gorm:"primaryKey"`
	Name      PermissionType `json:"name" gorm:"size:20;not null;uniqueIndex"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func NewPermission(name PermissionType) Permission {
	return Permission{ID: uuid.New(), Name: name}
}

func (p Permission) GetID() uuid.UUID { return p.ID }

func (p *Permission) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// RolePermission grants a permission to a role.
type RolePermission struct {
	RoleID       uuid.UUID `gorm:"primaryKey"`
	PermissionID uuid.UUID `gorm:"primaryKey;index"`
}
