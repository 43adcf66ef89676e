package club

import (
	"context"

	"github.com/google/uuid"
)

type ClubUsecase interface {
	CreateClub(ctx context.Context, ownerID uuid.UUID, cmd CreateClubCommand) (*ClubDTO, error)
	GetClub(ctx context.Context, name string) (*ClubDTO, error)
	// Only the owner may update or delete.
	UpdateClub(ctx context.Context, userID uuid.UUID, name string, cmd UpdateClubCommand) (*ClubDTO, error)
	DeleteClub(ctx context.Context, userID uuid.UUID, name string) error

	// RequestToJoin adds the user to the pending set.
	RequestToJoin(ctx context.Context, userID uuid.UUID, name string) error
	// AdmitMember moves a pending user into the member set.
	AdmitMember(ctx context.Context, ownerID uuid.UUID, name string, userID uuid.UUID) error
	Leave(ctx context.Context, userID uuid.UUID, name string) error
}
