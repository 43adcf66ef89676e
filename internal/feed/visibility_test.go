package feed

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	club "github.com/robertwachen/fritterfrontend/internal/club/model"
	freet "github.com/robertwachen/fritterfrontend/internal/freet/model"
)

func TestVisible(t *testing.T) {
	public := &club.Club{ID: uuid.New(), Name: "Go", Privacy: club.PrivacyPublic}
	private := &club.Club{ID: uuid.New(), Name: "Chess", Privacy: club.PrivacyPrivate}
	secret := &club.Club{ID: uuid.New(), Name: "Poker", Privacy: club.PrivacySecret}

	in := func(c *club.Club) *freet.Freet {
		return &freet.Freet{ID: uuid.New(), ClubID: &c.ID}
	}

	cases := []struct {
		name     string
		freet    *freet.Freet
		club     *club.Club
		isMember bool
		want     bool
	}{
		{"public freet", &freet.Freet{}, nil, false, true},
		{"public club, outsider", in(public), public, false, true},
		{"private club, member", in(private), private, true, true},
		{"private club, outsider", in(private), private, false, false},
		{"secret club, outsider", in(secret), secret, false, false},
		{"secret club, member", in(secret), secret, true, true},
		{"club missing", in(private), nil, true, false},
		{"club mismatched", in(private), public, true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Visible(tc.freet, tc.club, tc.isMember))
		})
	}
}

func TestCanViewClub(t *testing.T) {
	assert.True(t, CanViewClub(&club.Club{Privacy: club.PrivacyPublic}, false))
	assert.False(t, CanViewClub(&club.Club{Privacy: club.PrivacyPrivate}, false))
	assert.True(t, CanViewClub(&club.Club{Privacy: club.PrivacyPrivate}, true))
}
