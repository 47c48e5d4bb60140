// Package service contains the business layer mediating between HTTP handlers
// and the persistence layer.
package service

import (
	"context"

	"chronicle/internal/models"
	"chronicle/internal/observability"
	"chronicle/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/attribute"
)

// PostService enforces id-format validity and not-found semantics for posts,
// and guarantees that callers receive copies rather than live references into
// stored state.
type PostService struct {
	postRepo repository.PostRepository
}

// NewPostService creates a new post service.
func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// FindAll returns all stored posts in natural storage order.
// The returned slice holds copies; mutating an element never affects a
// subsequent read.
func (s *PostService) FindAll(ctx context.Context) ([]models.Post, error) {
	span, ctx := observability.NewSpan(ctx, "PostService.FindAll")
	defer span.End()

	posts, err := s.postRepo.FindAll(ctx)
	if err != nil {
		span.SetError(err)
		return nil, err
	}
	span.AddAttributes(attribute.Int("posts.count", len(posts)))

	out := make([]models.Post, len(posts))
	copy(out, posts)
	return out, nil
}

// FindByID returns a copy of the matching post, or (nil, nil) when no post
// with that id exists. An id that is not a valid ObjectID hex string fails
// with an INVALID_ID error.
func (s *PostService) FindByID(ctx context.Context, id string) (*models.Post, error) {
	span, ctx := observability.NewSpan(ctx, "PostService.FindByID")
	defer span.End()
	span.AddAttributes(attribute.String("post.id", id))

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.NewInvalidIDError(id)
	}

	post, err := s.postRepo.FindByID(ctx, oid)
	if err != nil {
		span.SetError(err)
		return nil, err
	}
	if post == nil {
		return nil, nil
	}

	found := *post
	return &found, nil
}

// Create persists the post under a newly assigned id and returns its hex form.
// Any id present on the input is discarded; ids are never client-supplied.
func (s *PostService) Create(ctx context.Context, post models.Post) (string, error) {
	span, ctx := observability.NewSpan(ctx, "PostService.Create")
	defer span.End()

	post.ID = primitive.NilObjectID

	id, err := s.postRepo.Insert(ctx, &post)
	if err != nil {
		span.SetError(err)
		return "", err
	}
	span.AddAttributes(attribute.String("post.id", id.Hex()))
	return id.Hex(), nil
}

// Update overwrites every field of the post matching id (except the id itself)
// with the supplied values in a single atomic call. It reports whether a
// matching post existed. Nothing changes when no post matches.
func (s *PostService) Update(ctx context.Context, post models.Post, id string) (bool, error) {
	span, ctx := observability.NewSpan(ctx, "PostService.Update")
	defer span.End()
	span.AddAttributes(attribute.String("post.id", id))

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, models.NewInvalidIDError(id)
	}

	updated, err := s.postRepo.Replace(ctx, oid, &post)
	if err != nil {
		span.SetError(err)
	}
	return updated, err
}

// Remove deletes the post matching id, reporting whether one was deleted.
func (s *PostService) Remove(ctx context.Context, id string) (bool, error) {
	span, ctx := observability.NewSpan(ctx, "PostService.Remove")
	defer span.End()
	span.AddAttributes(attribute.String("post.id", id))

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, models.NewInvalidIDError(id)
	}

	removed, err := s.postRepo.Delete(ctx, oid)
	if err != nil {
		span.SetError(err)
	}
	return removed, err
}
