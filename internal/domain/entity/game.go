package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Game struct {
	ID           uuid.UUID `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:200;not null"`
	Key          string    `json:"key" gorm:"size:200;not null;uniqueIndex"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	UnitsInStock int       `json:"units_in_stock"`
	Discount     int       `json:"discount"`

	Genres    []Genre    `json:"genres,omitempty" gorm:"many2many:game_genres"`
	Platforms []Platform `json:"platforms,omitempty" gorm:"many2many:game_platforms"`
	License   *License   `json:"license,omitempty" gorm:"foreignKey:GameID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewGame(name, key string) Game {
	return Game{ID: uuid.New(), Name: name, Key: key}
}

func (g Game) GetID() uuid.UUID { return g.ID }

// BeforeCreate assigns an id to records built without a constructor.
func (g *Game) BeforeCreate(*gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// GameGenre is the join row of the Game<->Genre relation.
type GameGenre struct {
	GameID  uuid.UUID `gorm:"primaryKey"`
	GenreID uuid.UUID `gorm:"primaryKey;index"`
}

// GamePlatform is the join row of the Game<->Platform relation.
type GamePlatform struct {
	GameID     uuid.UUID `gorm:"primaryKey"`
	PlatformID uuid.UUID `gorm:"primaryKey;index"`
}
