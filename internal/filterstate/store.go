package filterstate

import (
	"context"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"

	"github.com/robertwachen/fritterfrontend/pkg/logger"
)

var filtersKey = []byte("filterstate/filters")

// Store persists the encoded filter set between runs.
type Store interface {
	// LoadFilters returns "" when nothing was saved yet.
	LoadFilters(ctx context.Context) (string, error)
	SaveFilters(ctx context.Context, query string) error
	Close() error
}

type StoreConfig struct {
	// Directory for badger files, ignored when InMemory is set
	Path     string
	InMemory bool
	Logger   logger.Logger
}

type BadgerStore struct {
	db *badger.DB
}

func OpenBadgerStore(cfg StoreConfig) (*BadgerStore, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if cfg.Path == "" {
			return nil, errors.New("filterstate: store path is required")
		}
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, errors.Wrapf(err, "filterstate: create %s", cfg.Path)
		}
		opts = badger.DefaultOptions(cfg.Path).WithSyncWrites(true)
	}
	opts = opts.WithNumVersionsToKeep(1).WithLogger(&badgerLogger{log: cfg.Logger})

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "filterstate: open badger")
	}
	return &BadgerStore{db: db}, nil
}

func (s *BadgerStore) LoadFilters(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var query string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(filtersKey)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			query = string(val)
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(err, "filterstate: load filters")
	}
	return query, nil
}

func (s *BadgerStore) SaveFilters(ctx context.Context, query string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(filtersKey, []byte(query))
	})
	return errors.Wrap(err, "filterstate: save filters")
}

func (s *BadgerStore) Close() error {
	return s.db.Close()
}

// badgerLogger routes badger's printf logging into our logger.
type badgerLogger struct {
	log logger.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.log.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.log.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.log.Debug(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.log.Debug(fmt.Sprintf(format, args...))
}
