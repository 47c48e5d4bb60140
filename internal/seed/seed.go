// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"context"
	"fmt"
	"time"

	"chronicle/internal/models"
	"chronicle/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
)

// Factory builds posts and persists them through the repository.
type Factory struct {
	repo repository.PostRepository
}

// NewFactory creates a new Factory bound to the provided repository.
func NewFactory(repo repository.PostRepository) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{repo: repo}
}

// BuildPost constructs a fake post but does not persist it.
func (f *Factory) BuildPost(overrides ...func(*models.Post)) *models.Post {
	post := &models.Post{
		Title:   gofakeit.Sentence(4),
		Author:  gofakeit.Name(),
		Date:    gofakeit.DateRange(time.Now().AddDate(-1, 0, 0), time.Now()).Format("2006-01-02"),
		Summary: gofakeit.Paragraph(1, 2, 8, " "),
		Votes:   gofakeit.Number(0, 250),
	}
	for _, o := range overrides {
		o(post)
	}
	return post
}

// CreatePosts persists count fake posts and returns their assigned ids.
func (f *Factory) CreatePosts(ctx context.Context, count int) ([]string, error) {
	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		id, err := f.repo.Insert(ctx, f.BuildPost())
		if err != nil {
			return ids, fmt.Errorf("seed post %d: %w", i+1, err)
		}
		ids = append(ids, id.Hex())
	}
	return ids, nil
}

// CRUDDemo persists the four-post demo dataset used by the CRUD walkthrough:
// posts titled Create, Read, Update and Delete, all with zero votes.
func (f *Factory) CRUDDemo(ctx context.Context) ([]string, error) {
	titles := []string{"Create", "Read", "Update", "Delete"}
	ids := make([]string, 0, len(titles))

	for _, title := range titles {
		post := f.BuildPost(func(p *models.Post) {
			p.Title = title
			p.Votes = 0
		})
		id, err := f.repo.Insert(ctx, post)
		if err != nil {
			return ids, fmt.Errorf("seed demo post %q: %w", title, err)
		}
		ids = append(ids, id.Hex())
	}
	return ids, nil
}
