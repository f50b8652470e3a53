package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/edusign/edusign-api/internal/models"
)

// ErrNotFound indicates the requested document does not exist.
var ErrNotFound = errors.New("document not found")

// UserRepository defines data operations for user accounts.
type UserRepository interface {
	List(ctx context.Context, filter UserFilter) ([]models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// AssignmentRepository defines data operations for assignments.
type AssignmentRepository interface {
	List(ctx context.Context, filter AssignmentFilter) ([]models.Assignment, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (models.Assignment, error)
	Create(ctx context.Context, assignment *models.Assignment) error
	Upsert(ctx context.Context, id primitive.ObjectID, assignment models.Assignment) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// GradeUpdate carries the fields written by the grading upsert. Nothing else
// on the submission document is touched.
type GradeUpdate struct {
	ObtainedMarks    float64
	ExaminerFeedback string
	Status           string
}

// SubmissionRepository defines data operations for submissions.
type SubmissionRepository interface {
	List(ctx context.Context, filter SubmissionFilter) ([]models.Submission, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (models.Submission, error)
	Create(ctx context.Context, submission *models.Submission) error
	Grade(ctx context.Context, id primitive.ObjectID, update GradeUpdate) error
	DeleteByAssignment(ctx context.Context, assignmentID string) (int64, error)
}
