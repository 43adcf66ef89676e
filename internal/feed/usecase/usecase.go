package usecase

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	Club "github.com/robertwachen/fritterfrontend/internal/club/model"
	"github.com/robertwachen/fritterfrontend/internal/feed"
	"github.com/robertwachen/fritterfrontend/internal/feed/repository"
	Freet "github.com/robertwachen/fritterfrontend/internal/freet/model"
	appErrors "github.com/robertwachen/fritterfrontend/pkg/errors"
	"github.com/robertwachen/fritterfrontend/pkg/logger"
	"github.com/robertwachen/fritterfrontend/pkg/observability"
)

type FeedUsecase struct {
	repo    feed.FeedRepository
	logger  logger.Logger
	metrics *observability.FeedMetrics
}

func NewFeedUsecase(repo feed.FeedRepository, logger logger.Logger, metrics *observability.FeedMetrics) *FeedUsecase {
	return &FeedUsecase{
		repo:    repo,
		logger:  logger,
		metrics: metrics,
	}
}

func (uc *FeedUsecase) ResolveQuery(ctx context.Context, viewer uuid.UUID, rawQuery string) ([]*Freet.Freet, error) {
	filters, err := feed.ParseFilterSet(rawQuery)
	if err != nil {
		return nil, err
	}
	return uc.Resolve(ctx, viewer, filters)
}

func (uc *FeedUsecase) Resolve(ctx context.Context, viewer uuid.UUID, filters feed.FilterSet) ([]*Freet.Freet, error) {
	start := time.Now()
	branch := branchOf(filters)

	posts, err := uc.resolve(ctx, viewer, filters, branch)

	outcome := "ok"
	if err != nil {
		outcome = string(appErrors.CodeOf(err))
	}
	uc.metrics.ObserveResolve(branch, outcome, time.Since(start), len(posts))
	return posts, err
}

func branchOf(filters feed.FilterSet) string {
	author, club := filters.Author(), filters.ClubName()
	switch {
	case author != "" && club != "":
		return observability.BranchAuthorInClub
	case author != "":
		return observability.BranchAuthor
	case club != "":
		return observability.BranchClub
	}
	return observability.BranchHome
}

func (uc *FeedUsecase) resolve(ctx context.Context, viewer uuid.UUID, filters feed.FilterSet, branch string) ([]*Freet.Freet, error) {
	author, clubName := filters.Author(), filters.ClubName()

	var (
		candidates []*Freet.Freet
		err        error
	)
	switch branch {
	case observability.BranchHome:
		candidates, err = uc.homeFeed(ctx)
	case observability.BranchAuthor:
		candidates, err = uc.repo.FindPostsByAuthor(ctx, author)
	case observability.BranchClub:
		if err = uc.checkClubAccess(ctx, viewer, clubName); err != nil {
			return nil, err
		}
		candidates, err = uc.repo.FindPostsByClub(ctx, clubName)
	case observability.BranchAuthorInClub:
		if err = uc.checkAuthorAndClub(ctx, viewer, author, clubName); err != nil {
			return nil, err
		}
		candidates, err = uc.repo.FindPostsByAuthorInClub(ctx, author, clubName)
	}
	if err != nil {
		return nil, uc.repoError(err, branch)
	}

	// Access was already checked for club branches, so anything dropped
	// there means the candidate query and the checks disagree.
	checked := branch == observability.BranchClub || branch == observability.BranchAuthorInClub

	posts, err := uc.applyVisibility(ctx, viewer, candidates, checked)
	if err != nil {
		return nil, err
	}
	sortFreets(posts)
	return posts, nil
}

// homeFeed is every freet posted outside of a club.
func (uc *FeedUsecase) homeFeed(ctx context.Context) ([]*Freet.Freet, error) {
	all, err := uc.repo.FindAllPosts(ctx)
	if err != nil {
		return nil, err
	}
	posts := make([]*Freet.Freet, 0, len(all))
	for _, f := range all {
		if f.IsPublic() {
			posts = append(posts, f)
		}
	}
	return posts, nil
}

func (uc *FeedUsecase) checkAuthor(ctx context.Context, username string) error {
	if _, err := uc.repo.GetAuthor(ctx, username); err != nil {
		return uc.repoError(err, "checkAuthor")
	}
	return nil
}

// checkClubAccess fails with ErrUnknownClub if the club does not exist and
// ErrForbidden if it is not public and viewer is not a member.
func (uc *FeedUsecase) checkClubAccess(ctx context.Context, viewer uuid.UUID, clubName string) error {
	c, err := uc.repo.GetClub(ctx, clubName)
	if err != nil {
		return uc.repoError(err, "checkClubAccess")
	}
	if c.IsPublic() {
		return nil
	}

	member, err := uc.isMember(ctx, c.ID, viewer)
	if err != nil {
		return uc.repoError(err, "checkClubAccess")
	}
	if !member {
		return appErrors.ErrForbidden
	}
	return nil
}

// checkAuthorAndClub runs both checks concurrently. An author error is
// reported before a club error when both fail.
func (uc *FeedUsecase) checkAuthorAndClub(ctx context.Context, viewer uuid.UUID, author, clubName string) error {
	var (
		g                  errgroup.Group
		authorErr, clubErr error
	)
	g.Go(func() error {
		authorErr = uc.checkAuthor(ctx, author)
		return authorErr
	})
	g.Go(func() error {
		clubErr = uc.checkClubAccess(ctx, viewer, clubName)
		return clubErr
	})

	if err := g.Wait(); err != nil {
		if authorErr != nil {
			return authorErr
		}
		return clubErr
	}
	return nil
}

func (uc *FeedUsecase) isMember(ctx context.Context, clubID, viewer uuid.UUID) (bool, error) {
	if viewer == uuid.Nil {
		return false, nil
	}
	return uc.repo.IsMember(ctx, clubID, viewer)
}

type clubAccess struct {
	club   *Club.Club
	member bool
}

// applyVisibility keeps the candidates viewer may see. Club and membership
// are looked up once per distinct club. A club that no longer exists hides
// its freets.
func (uc *FeedUsecase) applyVisibility(ctx context.Context, viewer uuid.UUID, candidates []*Freet.Freet, checked bool) ([]*Freet.Freet, error) {
	access := make(map[uuid.UUID]clubAccess)
	posts := make([]*Freet.Freet, 0, len(candidates))
	hidden := 0

	for _, f := range candidates {
		if f.IsPublic() {
			posts = append(posts, f)
			continue
		}

		acc, ok := access[*f.ClubID]
		if !ok {
			var err error
			acc, err = uc.lookupAccess(ctx, viewer, *f.ClubID)
			if err != nil {
				return nil, err
			}
			access[*f.ClubID] = acc
		}

		if !feed.Visible(f, acc.club, acc.member) {
			hidden++
			if checked {
				uc.logger.Warn("dropping freet that failed the visibility rule",
					"freet_id", f.ID, "club_id", *f.ClubID, "viewer", viewer)
			}
			continue
		}
		posts = append(posts, f)
	}

	uc.metrics.AddHidden(hidden)
	return posts, nil
}

func (uc *FeedUsecase) lookupAccess(ctx context.Context, viewer, clubID uuid.UUID) (clubAccess, error) {
	c, err := uc.repo.GetClubByID(ctx, clubID)
	if err != nil {
		if errors.Is(err, repository.ErrUnknownClub) {
			return clubAccess{}, nil
		}
		return clubAccess{}, uc.repoError(err, "lookupAccess")
	}
	if c.IsPublic() {
		return clubAccess{club: c}, nil
	}

	member, err := uc.isMember(ctx, c.ID, viewer)
	if err != nil {
		return clubAccess{}, uc.repoError(err, "lookupAccess")
	}
	return clubAccess{club: c, member: member}, nil
}

// repoError maps repository errors to AppErrors.
func (uc *FeedUsecase) repoError(err error, op string) error {
	var appErr *appErrors.AppError
	switch {
	case errors.Is(err, repository.ErrUnknownAuthor):
		return appErrors.ErrUnknownAuthor
	case errors.Is(err, repository.ErrUnknownClub):
		return appErrors.ErrUnknownClub
	case errors.As(err, &appErr):
		return err
	case errors.Is(err, context.DeadlineExceeded):
		return appErrors.Wrap(appErrors.CodeDeadlineExceeded, "feed resolution timed out", err)
	}
	uc.logger.Error("failed to resolve feed", "op", op, "err", err)
	return appErrors.Wrap(appErrors.CodeInternal, "failed to resolve feed", err)
}

// sortFreets orders by modification time, newest first. Equal times keep
// insertion order.
func sortFreets(posts []*Freet.Freet) {
	slices.SortStableFunc(posts, func(a, b *Freet.Freet) int {
		if c := b.UpdatedAt.Compare(a.UpdatedAt); c != 0 {
			return c
		}
		switch {
		case a.Seq < b.Seq:
			return -1
		case a.Seq > b.Seq:
			return 1
		}
		return 0
	})
}
