package repository

import (
	"context"
	"sync"

	"chronicle/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InMemoryPostRepository is a PostRepository backed by an in-process slice.
// It preserves insertion order, matching the natural storage order of the
// document store. Intended for tests and local development without MongoDB.
type InMemoryPostRepository struct {
	mu    sync.RWMutex
	posts []models.Post
}

// NewInMemoryPostRepository creates an empty in-memory repository.
func NewInMemoryPostRepository() *InMemoryPostRepository {
	return &InMemoryPostRepository{}
}

func (s *InMemoryPostRepository) Insert(_ context.Context, post *models.Post) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *post
	stored.ID = primitive.NewObjectID()
	s.posts = append(s.posts, stored)

	return stored.ID, nil
}

func (s *InMemoryPostRepository) FindAll(_ context.Context) ([]models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Post, len(s.posts))
	copy(out, s.posts)
	return out, nil
}

func (s *InMemoryPostRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.posts {
		if s.posts[i].ID == id {
			found := s.posts[i]
			return &found, nil
		}
	}
	return nil, nil
}

func (s *InMemoryPostRepository) Replace(_ context.Context, id primitive.ObjectID, post *models.Post) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID == id {
			replaced := *post
			replaced.ID = id
			s.posts[i] = replaced
			return true, nil
		}
	}
	return false, nil
}

func (s *InMemoryPostRepository) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
