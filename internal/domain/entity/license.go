package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// License is the distribution license of a game. A game owns at most one.
type License struct {
	ID        uuid.UUID  `json:"id" gorm:"primaryKey"`
	GameID    uuid.UUID  `json:"game_id" gorm:"not null;uniqueIndex"`
	Key       string     `json:"key" gorm:"size:200;not null"`
	Price     float64    `json:"price"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func NewLicense(gameID uuid.UUID, key string) License {
	return License{ID: uuid.New(), GameID: gameID, Key: key}
}

func (l License) GetID() uuid.UUID { return l.ID }

func (l *License) BeforeCreate(*gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

func (l License) IsExpired(now time.Time) bool {
	return l.ExpiresAt != nil && !now.Before(*l.ExpiresAt)
}
