package feed

import (
	club "github.com/robertwachen/fritterfrontend/internal/club/model"
	freet "github.com/robertwachen/fritterfrontend/internal/freet/model"
)

// CanViewClub reports whether a viewer may read a club's freets.
func CanViewClub(c *club.Club, isMember bool) bool {
	return c.IsPublic() || isMember
}

// Visible is the rule every resolved feed obeys: a freet is shown iff it has
// no club, its club is public, or the viewer is a member. c must be the
// freet's club; a missing or mismatched club hides the freet.
func Visible(f *freet.Freet, c *club.Club, isMember bool) bool {
	if f.IsPublic() {
		return true
	}
	if c == nil || c.ID != *f.ClubID {
		return false
	}
	return CanViewClub(c, isMember)
}
