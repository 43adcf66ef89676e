package freet

import (
	"context"

	"github.com/google/uuid"
	Freet "github.com/robertwachen/fritterfrontend/internal/freet/model"
)

type FreetRepository interface {
	CreateFreet(ctx context.Context, freet *Freet.Freet) error
	GetFreetByID(ctx context.Context, id uuid.UUID) (*Freet.Freet, error)
	// UpdateFreetContent replaces the content and bumps UpdatedAt.
	UpdateFreetContent(ctx context.Context, id uuid.UUID, content string) (*Freet.Freet, error)
	DeleteFreet(ctx context.Context, id uuid.UUID) error
}
