package domain

import (
	"time"

	"github.com/google/uuid"
)

// Genre is admin-managed reference data; books reference it by ID.
type Genre struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
