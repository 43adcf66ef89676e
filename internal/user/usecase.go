package user

import (
	"context"

	"github.com/google/uuid"
)

type UserUsecase interface {
	Register(ctx context.Context, cmd RegisterCommand) (*UserDTO, error)
	UpdateDisplayName(ctx context.Context, userID uuid.UUID, newName string) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*UserDTO, error)
	GetUserByUsername(ctx context.Context, username string) (*UserDTO, error)
}
