package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Submission represents a learner's response to an assignment.
//
// AssignmentID holds the hex form of the parent assignment's identifier; the
// relation is checked at the application layer, not by the store.
type Submission struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AssignmentID     string             `bson:"assignment_id" json:"assignment_id"`
	UserEmail        string             `bson:"user_email" json:"user_email"`
	UserName         string             `bson:"user_name,omitempty" json:"user_name,omitempty"`
	GoogleDocsURL    string             `bson:"google_docs_url,omitempty" json:"google_docs_url,omitempty"`
	Note             string             `bson:"note,omitempty" json:"note,omitempty"`
	Status           string             `bson:"status" json:"status"`
	ObtainedMarks    *float64           `bson:"obtained_marks,omitempty" json:"obtained_marks"`
	ExaminerFeedback string             `bson:"examiner_feedback,omitempty" json:"examiner_feedback,omitempty"`
	CreatedAt        time.Time          `bson:"created_at" json:"created_at"`
}

const (
	// SubmissionStatusPending indicates the submission awaits examination.
	SubmissionStatusPending = "Pending"
	// SubmissionStatusCompleted indicates the submission has been graded.
	SubmissionStatusCompleted = "Completed"
)

// IsGraded reports whether the submission has been examined.
func (s Submission) IsGraded() bool {
	return s.Status == SubmissionStatusCompleted
}
