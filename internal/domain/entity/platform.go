package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Platform struct {
	ID          uuid.UUID `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:100;not null"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewPlatform(name string) Platform {
	return Platform{ID: uuid.New(), Name: name}
}

func (p Platform) GetID() uuid.UUID { return p.ID }

// BeforeCreate assigns an id to records built without a constructor.
func (p *Platform) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
