package repository

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	Club "github.com/robertwachen/fritterfrontend/internal/club/model"
	Freet "github.com/robertwachen/fritterfrontend/internal/freet/model"
	User "github.com/robertwachen/fritterfrontend/internal/user/model"
)

// MemoryRepository is an in-process FeedRepository for tests and demos.
type MemoryRepository struct {
	mu      sync.RWMutex
	users   map[string]*User.User // by username
	clubs   map[uuid.UUID]*Club.Club
	members map[uuid.UUID]map[uuid.UUID]Club.MemberStatus
	freets  []*Freet.Freet
	seq     int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		users:   make(map[string]*User.User),
		clubs:   make(map[uuid.UUID]*Club.Club),
		members: make(map[uuid.UUID]map[uuid.UUID]Club.MemberStatus),
	}
}

func (s *MemoryRepository) AddUser(username string) *User.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	u := &User.User{ID: uuid.New(), Username: username, Name: username, CreatedAt: now, UpdatedAt: now}
	s.users[username] = u
	return u
}

// AddClub registers a club owned by owner, who becomes its first member.
func (s *MemoryRepository) AddClub(name string, privacy Club.Privacy, owner uuid.UUID) *Club.Club {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := &Club.Club{
		ID:        uuid.New(),
		Name:      name,
		Privacy:   privacy,
		Rules:     "No rules yet",
		OwnerID:   owner,
		CreatedAt: time.Now().UTC(),
	}
	s.clubs[c.ID] = c
	s.members[c.ID] = map[uuid.UUID]Club.MemberStatus{owner: Club.StatusMember}
	return c
}

func (s *MemoryRepository) SetMember(clubID, userID uuid.UUID, status Club.MemberStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.members[clubID] == nil {
		s.members[clubID] = make(map[uuid.UUID]Club.MemberStatus)
	}
	s.members[clubID][userID] = status
}

func (s *MemoryRepository) DeleteClub(clubID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.clubs, clubID)
	delete(s.members, clubID)
}

// AddFreet stores a copy of f, assigning ID and insertion sequence.
func (s *MemoryRepository) AddFreet(f Freet.Freet) *Freet.Freet {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	f.Seq = s.seq
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now().UTC()
	}
	if f.UpdatedAt.IsZero() {
		f.UpdatedAt = f.CreatedAt
	}
	s.freets = append(s.freets, &f)
	return &f
}

func (s *MemoryRepository) FindAllPosts(ctx context.Context) ([]*Freet.Freet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter(func(*Freet.Freet) bool { return true }), nil
}

func (s *MemoryRepository) FindPostsByAuthor(ctx context.Context, username string) ([]*Freet.Freet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[username]
	if !ok {
		return nil, ErrUnknownAuthor
	}
	return s.filter(func(f *Freet.Freet) bool { return f.AuthorID == u.ID }), nil
}

func (s *MemoryRepository) FindPostsByClub(ctx context.Context, clubName string) ([]*Freet.Freet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	c := s.clubByName(clubName)
	if c == nil {
		return nil, ErrUnknownClub
	}
	return s.filter(func(f *Freet.Freet) bool { return inClub(f, c.ID) }), nil
}

func (s *MemoryRepository) FindPostsByAuthorInClub(ctx context.Context, username string, clubName string) ([]*Freet.Freet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[username]
	if !ok {
		return nil, ErrUnknownAuthor
	}
	c := s.clubByName(clubName)
	if c == nil {
		return nil, ErrUnknownClub
	}
	return s.filter(func(f *Freet.Freet) bool { return f.AuthorID == u.ID && inClub(f, c.ID) }), nil
}

func (s *MemoryRepository) GetAuthor(ctx context.Context, username string) (*User.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[username]
	if !ok {
		return nil, ErrUnknownAuthor
	}
	cp := *u
	return &cp, nil
}

func (s *MemoryRepository) GetClub(ctx context.Context, clubName string) (*Club.Club, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	c := s.clubByName(clubName)
	if c == nil {
		return nil, ErrUnknownClub
	}
	cp := *c
	return &cp, nil
}

func (s *MemoryRepository) GetClubByID(ctx context.Context, id uuid.UUID) (*Club.Club, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.clubs[id]
	if !ok {
		return nil, ErrUnknownClub
	}
	cp := *c
	return &cp, nil
}

func (s *MemoryRepository) IsMember(ctx context.Context, clubID uuid.UUID, userID uuid.UUID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.members[clubID][userID] == Club.StatusMember, nil
}

func (s *MemoryRepository) clubByName(name string) *Club.Club {
	name = strings.TrimSpace(name)
	for _, c := range s.clubs {
		if strings.EqualFold(c.Name, name) {
			return c
		}
	}
	return nil
}

// filter copies matching freets, newest modification first.
func (s *MemoryRepository) filter(keep func(*Freet.Freet) bool) []*Freet.Freet {
	out := make([]*Freet.Freet, 0, len(s.freets))
	for _, f := range s.freets {
		if keep(f) {
			cp := *f
			if u := s.userByID(f.AuthorID); u != nil {
				author := *u
				cp.Author = &author
			}
			out = append(out, &cp)
		}
	}
	slices.SortStableFunc(out, func(a, b *Freet.Freet) int {
		return cmp.Compare(b.UpdatedAt.UnixNano(), a.UpdatedAt.UnixNano())
	})
	return out
}

func (s *MemoryRepository) userByID(id uuid.UUID) *User.User {
	for _, u := range s.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func inClub(f *Freet.Freet, clubID uuid.UUID) bool {
	return f.ClubID != nil && *f.ClubID == clubID
}
