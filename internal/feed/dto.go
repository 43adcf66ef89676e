package feed

import (
	"time"

	"github.com/google/uuid"
	Freet "github.com/robertwachen/fritterfrontend/internal/freet/model"
)

// FreetResponse is the wire form of a freet in a resolved feed.
type FreetResponse struct {
	ID           uuid.UUID  `json:"id"`
	Author       string     `json:"author"`
	ClubID       *uuid.UUID `json:"clubId,omitempty"`
	Content      string     `json:"content"`
	DateCreated  time.Time  `json:"dateCreated"`
	DateModified time.Time  `json:"dateModified"`
}

func ToFreetResponse(f *Freet.Freet) FreetResponse {
	resp := FreetResponse{
		ID:           f.ID,
		ClubID:       f.ClubID,
		Content:      f.Content,
		DateCreated:  f.CreatedAt,
		DateModified: f.UpdatedAt,
	}
	if f.Author != nil {
		resp.Author = f.Author.Username
	}
	return resp
}

func ToFreetResponses(posts []*Freet.Freet) []FreetResponse {
	out := make([]FreetResponse, 0, len(posts))
	for _, f := range posts {
		out = append(out, ToFreetResponse(f))
	}
	return out
}
