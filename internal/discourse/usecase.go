package discourse

import (
	"context"

	"github.com/google/uuid"
)

type DiscourseUsecase interface {
	CreateDiscourse(ctx context.Context, cmd CreateDiscourseCommand) (*DiscourseDTO, error)
	GetDiscourse(ctx context.Context, id uuid.UUID) (*DiscourseDTO, error)
	// Update and delete require HasEditingPermissions.
	UpdateDiscourse(ctx context.Context, userID uuid.UUID, id uuid.UUID, cmd UpdateDiscourseCommand) (*DiscourseDTO, error)
	DeleteDiscourse(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
	// HasEditingPermissions is true iff userID owns a club taking part.
	HasEditingPermissions(ctx context.Context, userID uuid.UUID, id uuid.UUID) (bool, error)
}
