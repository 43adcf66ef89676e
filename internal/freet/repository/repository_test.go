package repository

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	Freet "github.com/robertwachen/fritterfrontend/internal/freet/model"
	User "github.com/robertwachen/fritterfrontend/internal/user/model"
	"github.com/robertwachen/fritterfrontend/pkg/database"
	"github.com/robertwachen/fritterfrontend/pkg/database/dbtest"
	"github.com/robertwachen/fritterfrontend/pkg/logger"
)

var testDB *dbtest.DB

func TestMain(m *testing.M) {
	ctx := context.Background()

	db, err := dbtest.Start(ctx)
	if err != nil {
		log.Printf("skipping freet repository tests: %v", err)
		os.Exit(0)
	}
	testDB = db

	code := m.Run()

	if err := testDB.Stop(ctx); err != nil {
		log.Printf("failed to terminate container: %s", err)
	}
	os.Exit(code)
}

func newAuthor(t *testing.T) *User.User {
	t.Helper()
	t.Cleanup(func() {
		require.NoError(t, database.Truncate(context.Background(), testDB))
	})
	u := &User.User{Username: "alice", Name: "Alice"}
	_, err := testDB.NewInsert().Model(u).Returning("*").Exec(context.Background())
	require.NoError(t, err)
	return u
}

func Test_CreateAndGetFreet(t *testing.T) {
	author := newAuthor(t)
	repo := NewFreetRepository(testDB, logger.Logger{})

	f := &Freet.Freet{AuthorID: author.ID, Content: "hello"}
	require.NoError(t, repo.CreateFreet(context.Background(), f))
	assert.NotEqual(t, uuid.Nil, f.ID)
	assert.NotZero(t, f.Seq)
	assert.False(t, f.CreatedAt.IsZero())

	got, err := repo.GetFreetByID(context.Background(), f.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Content)
	require.NotNil(t, got.Author)
	assert.Equal(t, "alice", got.Author.Username)

	_, err = repo.GetFreetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrFreetNotFound)
}

func Test_UpdateFreetContent(t *testing.T) {
	author := newAuthor(t)
	repo := NewFreetRepository(testDB, logger.Logger{})

	f := &Freet.Freet{AuthorID: author.ID, Content: "first"}
	require.NoError(t, repo.CreateFreet(context.Background(), f))

	updated, err := repo.UpdateFreetContent(context.Background(), f.ID, "second")
	require.NoError(t, err)
	assert.Equal(t, "second", updated.Content)
	assert.Equal(t, f.Seq, updated.Seq)
	assert.False(t, updated.UpdatedAt.Before(f.UpdatedAt))

	_, err = repo.UpdateFreetContent(context.Background(), uuid.New(), "x")
	assert.ErrorIs(t, err, ErrFreetNotFound)
}

func Test_DeleteFreet(t *testing.T) {
	author := newAuthor(t)
	repo := NewFreetRepository(testDB, logger.Logger{})

	f := &Freet.Freet{AuthorID: author.ID, Content: "bye"}
	require.NoError(t, repo.CreateFreet(context.Background(), f))

	require.NoError(t, repo.DeleteFreet(context.Background(), f.ID))
	assert.ErrorIs(t, repo.DeleteFreet(context.Background(), f.ID), ErrFreetNotFound)
}
