package shared

import (
	"time"

	"github.com/google/uuid"
)

// Entity is the base interface for all domain entities
type Entity interface {
	GetID() uuid.UUID
	GetCreatedBy() uuid.UUID
}

// BaseEntity provides common fields for all entities
type BaseEntity struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedBy uuid.UUID `gorm:"type:uuid;not null;index" json:"createdBy"`
	CreatedAt time.Time `gorm:"not null;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

// GetID returns the entity ID
func (e *BaseEntity) GetID() uuid.UUID {
	return e.ID
}

// GetCreatedBy returns the creator reference
func (e *BaseEntity) GetCreatedBy() uuid.UUID {
	return e.CreatedBy
}

// NewBaseEntity creates a new base entity with a generated ID and creator reference
func NewBaseEntity(createdBy uuid.UUID) BaseEntity {
	now := time.Now()
	return BaseEntity{
		ID:        uuid.New(),
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
