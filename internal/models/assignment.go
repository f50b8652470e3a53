package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Assignment represents a task definition in the assignments collection.
type Assignment struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	Subject      string             `bson:"subject" json:"subject"`
	Difficulty   string             `bson:"difficulty" json:"difficulty"`
	TotalMarks   float64            `bson:"total_marks" json:"total_marks"`
	DueDate      string             `bson:"due_date,omitempty" json:"due_date,omitempty"`
	ThumbnailURL string             `bson:"thumbnail_url,omitempty" json:"thumbnail_url,omitempty"`
	CreatorEmail string             `bson:"creator_email,omitempty" json:"creator_email,omitempty"`
	CreatorName  string             `bson:"creator_name,omitempty" json:"creator_name,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}
