package user

import (
	"context"

	"github.com/google/uuid"

	User "github.com/robertwachen/fritterfrontend/internal/user/model"
)

// UserRepository stores accounts. Lookups of a missing user return
// repository.ErrUserNotFound.
type UserRepository interface {
	CreateUser(ctx context.Context, user *User.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*User.User, error)
	GetUserByUsername(ctx context.Context, username string) (*User.User, error)
	UpdateUserDisplayName(ctx context.Context, userID uuid.UUID, newName string) error
	UsernameExists(ctx context.Context, username string) (bool, error)
}
