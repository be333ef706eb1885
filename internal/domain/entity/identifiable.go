package entity

import "github.com/google/uuid"

// Identifiable is implemented by every persisted record. The generic
// repository relies on it instead of looking the id up by name.
type Identifiable interface {
	GetID() uuid.UUID
}
