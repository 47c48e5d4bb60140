package repository

import (
	"context"
	"testing"

	"chronicle/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestInMemoryPostRepository_InsertAssignsID(t *testing.T) {
	repo := NewInMemoryPostRepository()
	ctx := context.Background()

	id, err := repo.Insert(ctx, &models.Post{Title: "first"})
	require.NoError(t, err)
	assert.False(t, id.IsZero())

	got, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "first", got.Title)
	assert.Equal(t, id, got.ID)
}

func TestInMemoryPostRepository_FindAll_PreservesInsertionOrder(t *testing.T) {
	repo := NewInMemoryPostRepository()
	ctx := context.Background()

	titles := []string{"Create", "Read", "Update", "Delete"}
	for _, title := range titles {
		_, err := repo.Insert(ctx, &models.Post{Title: title})
		require.NoError(t, err)
	}

	posts, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, posts, len(titles))
	for i, title := range titles {
		assert.Equal(t, title, posts[i].Title)
	}
}

func TestInMemoryPostRepository_FindByID_Missing(t *testing.T) {
	repo := NewInMemoryPostRepository()

	got, err := repo.FindByID(context.Background(), primitive.NewObjectID())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestInMemoryPostRepository_Replace(t *testing.T) {
	repo := NewInMemoryPostRepository()
	ctx := context.Background()

	id, err := repo.Insert(ctx, &models.Post{Title: "Update", Votes: 0})
	require.NoError(t, err)

	ok, err := repo.Replace(ctx, id, &models.Post{Title: "Update Success", Votes: 1})
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Update Success", got.Title)
	assert.Equal(t, 1, got.Votes)
	assert.Equal(t, id, got.ID, "replace must not change the id")

	ok, err = repo.Replace(ctx, primitive.NewObjectID(), &models.Post{Title: "nope"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestInMemoryPostRepository_Delete(t *testing.T) {
	repo := NewInMemoryPostRepository()
	ctx := context.Background()

	id, err := repo.Insert(ctx, &models.Post{Title: "Delete"})
	require.NoError(t, err)

	ok, err := repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got)

	ok, err = repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestInMemoryPostRepository_StoredStateIsIsolated(t *testing.T) {
	repo := NewInMemoryPostRepository()
	ctx := context.Background()

	source := &models.Post{Title: "isolated"}
	id, err := repo.Insert(ctx, source)
	require.NoError(t, err)

	// Mutating the inserted value must not leak into storage.
	source.Title = "mutated"

	got, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "isolated", got.Title)

	// Mutating a returned value must not leak either.
	got.Title = "mutated again"
	again, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, again)
	assert.Equal(t, "isolated", again.Title)
}
