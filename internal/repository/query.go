package repository

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserFilter narrows user queries. Empty fields add no constraint.
type UserFilter struct {
	Email string
}

// Query builds the match predicate for a user listing.
func (f UserFilter) Query() bson.M {
	query := bson.M{}
	if f.Email != "" {
		query["email"] = f.Email
	}

	return query
}

// AssignmentFilter narrows and orders assignment queries. Empty fields add
// no constraint; Sort "asc" orders ascending by total marks, any other
// non-empty value descending, and empty leaves the store's default order.
type AssignmentFilter struct {
	Difficulty string
	Subject    string
	Search     string
	Sort       string
}

// Query builds the match predicate for an assignment listing. Search matches
// a case-insensitive substring against either title or description.
func (f AssignmentFilter) Query() bson.M {
	query := bson.M{}
	if f.Difficulty != "" {
		query["difficulty"] = f.Difficulty
	}
	if f.Subject != "" {
		query["subject"] = f.Subject
	}
	if f.Search != "" {
		query["$or"] = bson.A{
			bson.M{"title": primitive.Regex{Pattern: f.Search, Options: "i"}},
			bson.M{"description": primitive.Regex{Pattern: f.Search, Options: "i"}},
		}
	}

	return query
}

// SortDirective builds the sort document for an assignment listing.
func (f AssignmentFilter) SortDirective() bson.D {
	if f.Sort == "" {
		return bson.D{}
	}

	order := -1
	if f.Sort == "asc" {
		order = 1
	}

	return bson.D{{Key: "total_marks", Value: order}}
}

// SubmissionFilter narrows submission queries. Empty fields add no constraint.
type SubmissionFilter struct {
	UserEmail string
	Status    string
}

// Query builds the match predicate for a submission listing.
func (f SubmissionFilter) Query() bson.M {
	query := bson.M{}
	if f.UserEmail != "" {
		query["user_email"] = f.UserEmail
	}
	if f.Status != "" {
		query["status"] = f.Status
	}

	return query
}
