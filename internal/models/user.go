package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an account record in the users collection. The email is
// the identity key by convention; the store does not enforce uniqueness.
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email      string             `bson:"email" json:"email"`
	Name       string             `bson:"name,omitempty" json:"name,omitempty"`
	PhotoURL   string             `bson:"photo_url,omitempty" json:"photo_url,omitempty"`
	GoogleAuth bool               `bson:"google_auth,omitempty" json:"google_auth,omitempty"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}
