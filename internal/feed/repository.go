package feed

import (
	"context"

	"github.com/google/uuid"
	Club "github.com/robertwachen/fritterfrontend/internal/club/model"
	Freet "github.com/robertwachen/fritterfrontend/internal/freet/model"
	User "github.com/robertwachen/fritterfrontend/internal/user/model"
)

// FeedRepository is the read side the resolver needs from storage.
// Lookups by name return ErrUnknownAuthor / ErrUnknownClub from the
// repository package when the entity does not exist.
type FeedRepository interface {
	FindAllPosts(ctx context.Context) ([]*Freet.Freet, error)
	FindPostsByAuthor(ctx context.Context, username string) ([]*Freet.Freet, error)
	FindPostsByClub(ctx context.Context, clubName string) ([]*Freet.Freet, error)
	FindPostsByAuthorInClub(ctx context.Context, username string, clubName string) ([]*Freet.Freet, error)

	GetAuthor(ctx context.Context, username string) (*User.User, error)
	GetClub(ctx context.Context, clubName string) (*Club.Club, error)
	GetClubByID(ctx context.Context, id uuid.UUID) (*Club.Club, error)
	IsMember(ctx context.Context, clubID uuid.UUID, userID uuid.UUID) (bool, error)
}
