package discourse

import (
	"time"

	"github.com/google/uuid"
	Discourse "github.com/robertwachen/fritterfrontend/internal/discourse/model"
)

// Input commands
type CreateDiscourseCommand struct {
	// Comma separated club names
	Clubs   string     `json:"clubs"`
	EndDate *time.Time `json:"endDate"`
}

// Zero fields are left unchanged.
type UpdateDiscourseCommand struct {
	Clubs   string     `json:"clubs"`
	EndDate *time.Time `json:"endDate"`
}

// Output DTOs
type DiscourseDTO struct {
	ID        uuid.UUID `json:"id"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Clubs     []string  `json:"clubs"`
}

func ToDTO(d *Discourse.Discourse) *DiscourseDTO {
	return &DiscourseDTO{
		ID:        d.ID,
		StartDate: d.StartDate,
		EndDate:   d.EndDate,
		Clubs:     d.Clubs,
	}
}
