package genre

import (
	"github.com/SoloAk21/library-manager-backend/internal/domain"
)

// Input holds the single mutable genre field, shared by create and update.
type Input struct {
	Name string
}

// Validate checks all fields and collects all errors.
func (i *Input) Validate() error {
	if i.Name == "" {
		return domain.NewValidationError("name", "required")
	}
	if len(i.Name) > 100 {
		return domain.NewValidationError("name", "too long (max 100)")
	}
	return nil
}
