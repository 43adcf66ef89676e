package filterstate

import (
	"context"
	"slices"
	"sync"

	"github.com/robertwachen/fritterfrontend/internal/feed"
	"github.com/robertwachen/fritterfrontend/pkg/logger"
)

// Manager owns one session's filter set and the last feed fetched for it.
// Every refresh is numbered; only the newest one issued may replace the
// cached posts, so a slow response never overwrites a newer one.
type Manager struct {
	client FeedClient
	store  Store
	logger logger.Logger

	mu         sync.Mutex
	filters    feed.FilterSet
	posts      []feed.FreetResponse
	postsQuery string
	issued     uint64
}

// NewManager restores the filter set saved in store. A saved set that no
// longer parses is dropped.
func NewManager(ctx context.Context, client FeedClient, store Store, logger logger.Logger) (*Manager, error) {
	raw, err := store.LoadFilters(ctx)
	if err != nil {
		return nil, err
	}

	filters, err := feed.ParseFilterSet(raw)
	if err != nil {
		logger.Warn("ignoring saved filters", "query", raw, "err", err)
		filters = feed.NewFilterSet()
	}

	return &Manager{
		client:  client,
		store:   store,
		logger:  logger,
		filters: filters,
	}, nil
}

// SetFilter sets or, for an empty value or the home club, removes a
// criterion and persists the result.
func (m *Manager) SetFilter(ctx context.Context, name, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := m.filters.Clone()
	if err := next.Set(name, value); err != nil {
		return err
	}
	return m.commit(ctx, next)
}

func (m *Manager) ClearAll(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.commit(ctx, feed.NewFilterSet())
}

// commit persists next and installs it. Callers hold m.mu.
func (m *Manager) commit(ctx context.Context, next feed.FilterSet) error {
	if next.Equal(m.filters) {
		return nil
	}
	if err := m.store.SaveFilters(ctx, next.Encode()); err != nil {
		return err
	}
	m.filters = next
	return nil
}

func (m *Manager) ToQuery() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.filters.Encode()
}

func (m *Manager) Filters() feed.FilterSet {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.filters.Clone()
}

// Refresh fetches the feed for the current filters. On failure the cached
// posts are kept and the error returned. A response that arrives after a
// newer Refresh was issued is discarded.
func (m *Manager) Refresh(ctx context.Context) error {
	m.mu.Lock()
	m.issued++
	gen := m.issued
	query := m.filters.Encode()
	m.mu.Unlock()

	posts, err := m.client.FetchFeed(ctx, query)

	m.mu.Lock()
	defer m.mu.Unlock()

	if err != nil {
		m.logger.Warn("feed refresh failed", "query", query, "err", err)
		return err
	}
	if gen != m.issued {
		m.logger.Debug("discarding stale feed", "query", query, "generation", gen, "latest", m.issued)
		return nil
	}
	m.posts = posts
	m.postsQuery = query
	return nil
}

// Posts returns a copy of the cached feed.
func (m *Manager) Posts() []feed.FreetResponse {
	m.mu.Lock()
	defer m.mu.Unlock()

	return slices.Clone(m.posts)
}

// PostsQuery is the filter query the cached posts were fetched with.
func (m *Manager) PostsQuery() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.postsQuery
}
