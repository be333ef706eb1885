package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Genre is a catalog category. Genres form a tree through a single parent
// pointer; a nil ParentID marks a root genre.
type Genre struct {
	ID          uuid.UUID  `json:"id" gorm:"primaryKey"`
	Name        string     `json:"name" gorm:"size:100;not null"`
	Description string     `json:"description"`
	ParentID    *uuid.UUID `json:"parent_id,omitempty" gorm:"index"`

	SubGenres []Genre `json:"sub_genres,omitempty" gorm:"foreignKey:ParentID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewGenre(name string, parentID *uuid.UUID) Genre {
	return Genre{ID: uuid.New(), Name: name, ParentID: parentID}
}

func (g Genre) GetID() uuid.UUID { return g.ID }

func (g *Genre) BeforeCreate(*gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

func (g Genre) IsRoot() bool {
	return g.ParentID == nil
}
