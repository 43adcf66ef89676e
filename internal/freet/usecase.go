package freet

import (
	"context"

	"github.com/google/uuid"
)

type FreetUsecase interface {
	// CreateFreet posts to the home feed, or to a club the author belongs to.
	CreateFreet(ctx context.Context, authorID uuid.UUID, cmd CreateFreetCommand) (*FreetDTO, error)
	// Only the author may edit or delete.
	EditFreet(ctx context.Context, userID uuid.UUID, id uuid.UUID, cmd EditFreetCommand) (*FreetDTO, error)
	DeleteFreet(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
}
