package main

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/robertwachen/fritterfrontend/config"
	"github.com/robertwachen/fritterfrontend/internal/filterstate"
	"github.com/robertwachen/fritterfrontend/pkg/logger"
)

type options struct {
	configName string
	feedURL    string
	userID     string
}

// session is one CLI invocation's manager plus whatever must be released
// when the command returns.
type session struct {
	manager *filterstate.Manager
	close   func() error
}

type opener func(ctx context.Context, opts options) (*session, error)

func openSession(ctx context.Context, opts options) (*session, error) {
	v, err := config.LoadConfig(opts.configName)
	if err != nil {
		return nil, err
	}
	cfg, err := config.ParseConfig(v)
	if err != nil {
		return nil, err
	}
	if opts.feedURL != "" {
		cfg.Client.FeedURL = opts.feedURL
	}
	if opts.userID != "" {
		cfg.Client.UserID = opts.userID
	}

	log, err := logger.NewLogger(cfg)
	if err != nil {
		return nil, err
	}

	viewer, err := parseViewer(cfg.Client.UserID)
	if err != nil {
		return nil, err
	}

	store, err := filterstate.OpenBadgerStore(filterstate.StoreConfig{
		Path:   cfg.Client.StatePath,
		Logger: *log,
	})
	if err != nil {
		return nil, err
	}

	client := filterstate.NewHTTPClient(cfg.Client.FeedURL, viewer, cfg.Client.Timeout)
	m, err := filterstate.NewManager(ctx, client, store, *log)
	if err != nil {
		store.Close()
		return nil, err
	}
	return &session{manager: m, close: store.Close}, nil
}

func parseViewer(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.Wrapf(err, "invalid user id %q", raw)
	}
	return id, nil
}
