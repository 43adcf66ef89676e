package freet

import (
	"time"

	"github.com/google/uuid"
	Freet "github.com/robertwachen/fritterfrontend/internal/freet/model"
)

// Input commands
type CreateFreetCommand struct {
	Content string `json:"content" validate:"required,max=140"`
	// Empty or Main posts to the home feed
	ClubName string `json:"clubName"`
}

type EditFreetCommand struct {
	Content string `json:"content" validate:"required,max=140"`
}

// Output DTOs
type FreetDTO struct {
	ID           uuid.UUID  `json:"id"`
	AuthorID     uuid.UUID  `json:"authorId"`
	ClubID       *uuid.UUID `json:"clubId,omitempty"`
	Content      string     `json:"content"`
	DateCreated  time.Time  `json:"dateCreated"`
	DateModified time.Time  `json:"dateModified"`
}

func ToDTO(f *Freet.Freet) *FreetDTO {
	return &FreetDTO{
		ID:           f.ID,
		AuthorID:     f.AuthorID,
		ClubID:       f.ClubID,
		Content:      f.Content,
		DateCreated:  f.CreatedAt,
		DateModified: f.UpdatedAt,
	}
}
