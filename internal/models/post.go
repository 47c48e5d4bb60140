// Package models contains data structures for the application's domain models.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post represents a blog post stored in the posts collection.
// The ID is assigned by the persistence layer on creation and is never
// taken from client input.
type Post struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title   string             `bson:"title" json:"title"`
	Author  string             `bson:"author" json:"author"`
	Date    string             `bson:"date" json:"date"` // calendar date, YYYY-MM-DD
	Summary string             `bson:"summary" json:"summary"`
	Votes   int                `bson:"votes" json:"votes"`
}
