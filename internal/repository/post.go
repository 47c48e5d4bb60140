// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"fmt"
	"time"

	"chronicle/internal/database"
	"chronicle/internal/models"
	"chronicle/internal/observability"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// queryTimeout bounds every single store call issued by the repository.
const queryTimeout = 5 * time.Second

// PostRepository defines the interface for post data operations.
// FindByID returns (nil, nil) when no post matches; callers treat that as an
// explicit not-found result rather than an error.
type PostRepository interface {
	Insert(ctx context.Context, post *models.Post) (primitive.ObjectID, error)
	FindAll(ctx context.Context) ([]models.Post, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error)
	Replace(ctx context.Context, id primitive.ObjectID, post *models.Post) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// postRepository implements PostRepository over a MongoDB collection.
type postRepository struct {
	coll    *mongo.Collection
	log     *observability.RepoLogger
	metrics *observability.StoreMetrics
}

// NewPostRepository creates a new post repository backed by the given collection.
func NewPostRepository(coll *mongo.Collection) PostRepository {
	return &postRepository{
		coll:    coll,
		log:     observability.NewRepoLogger(database.PostsCollection),
		metrics: observability.NewStoreMetrics(database.PostsCollection),
	}
}

func (r *postRepository) Insert(ctx context.Context, post *models.Post) (primitive.ObjectID, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	defer r.metrics.TrackQuery("insert")()

	res, err := r.coll.InsertOne(ctx, post)
	if err != nil {
		r.metrics.CountError("insert")
		r.log.LogError(ctx, err, "insert")
		return primitive.NilObjectID, err
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		err := fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
		r.log.LogError(ctx, err, "insert")
		return primitive.NilObjectID, err
	}

	r.log.LogOperation(ctx, "insert", map[string]interface{}{"id": id.Hex()})
	return id, nil
}

func (r *postRepository) FindAll(ctx context.Context) ([]models.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	defer r.metrics.TrackQuery("find_all")()

	// No sort: natural storage order is part of the contract.
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		r.metrics.CountError("find_all")
		r.log.LogError(ctx, err, "find_all")
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		r.metrics.CountError("find_all")
		r.log.LogError(ctx, err, "find_all")
		return nil, err
	}

	return posts, nil
}

func (r *postRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	defer r.metrics.TrackQuery("find_by_id")()

	var post models.Post
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		r.metrics.CountError("find_by_id")
		r.log.LogError(ctx, err, "find_by_id")
		return nil, err
	}

	return &post, nil
}

func (r *postRepository) Replace(ctx context.Context, id primitive.ObjectID, post *models.Post) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	defer r.metrics.TrackQuery("replace")()

	// The replacement keeps the matched document's _id; every other field is
	// overwritten in a single atomic call.
	post.ID = id
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": id}, post)
	if err != nil {
		r.metrics.CountError("replace")
		r.log.LogError(ctx, err, "replace")
		return false, err
	}

	if res.MatchedCount == 0 {
		return false, nil
	}

	r.log.LogOperation(ctx, "replace", map[string]interface{}{"id": id.Hex()})
	return true, nil
}

func (r *postRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	defer r.metrics.TrackQuery("delete")()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.metrics.CountError("delete")
		r.log.LogError(ctx, err, "delete")
		return false, err
	}

	if res.DeletedCount == 0 {
		return false, nil
	}

	r.log.LogOperation(ctx, "delete", map[string]interface{}{"id": id.Hex()})
	return true, nil
}
