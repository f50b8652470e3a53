package service_test

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/edusign/edusign-api/internal/dto"
	"github.com/edusign/edusign-api/internal/models"
	"github.com/edusign/edusign-api/internal/repository/memory"
	"github.com/edusign/edusign-api/internal/service"
)

func newSubmissionFixture(t *testing.T) (service.SubmissionService, *memory.SubmissionRepository, *memory.AssignmentRepository) {
	t.Helper()

	submissions := memory.NewSubmissionRepository()
	assignments := memory.NewAssignmentRepository()
	svc := service.NewSubmissionService(submissions, assignments, validator.New(validator.WithRequiredStructEnabled()), zerolog.Nop())

	return svc, submissions, assignments
}

func TestSubmissionCreateRequiresLiveAssignment(t *testing.T) {
	svc, _, _ := newSubmissionFixture(t)

	payload := dto.SubmissionCreateRequest{
		AssignmentID: primitive.NewObjectID().Hex(),
		UserEmail:    "a@x.com",
	}

	_, err := svc.Create(context.Background(), payload)
	require.ErrorIs(t, err, service.ErrAssignmentNotFound)
}

func TestSubmissionCreateStartsPending(t *testing.T) {
	svc, _, assignments := newSubmissionFixture(t)

	assignment := models.Assignment{Title: "Algebra", TotalMarks: 60}
	require.NoError(t, assignments.Create(context.Background(), &assignment))

	created, err := svc.Create(context.Background(), dto.SubmissionCreateRequest{
		AssignmentID: assignment.ID.Hex(),
		UserEmail:    "a@x.com",
		UserName:     "Alice",
	})
	require.NoError(t, err)
	require.Equal(t, models.SubmissionStatusPending, created.Status)
	require.Equal(t, assignment.ID.Hex(), created.AssignmentID)
	require.Nil(t, created.ObtainedMarks)
}

func TestSubmissionGradeTouchesOnlyGradingFields(t *testing.T) {
	svc, submissions, assignments := newSubmissionFixture(t)

	assignment := models.Assignment{Title: "Algebra", TotalMarks: 60}
	require.NoError(t, assignments.Create(context.Background(), &assignment))

	created, err := svc.Create(context.Background(), dto.SubmissionCreateRequest{
		AssignmentID:  assignment.ID.Hex(),
		UserEmail:     "a@x.com",
		UserName:      "Alice",
		GoogleDocsURL: "https://docs.example.com/d/1",
		Note:          "please review",
	})
	require.NoError(t, err)

	id, err := primitive.ObjectIDFromHex(created.ID)
	require.NoError(t, err)

	graded, err := svc.Grade(context.Background(), id, dto.SubmissionGradeRequest{
		ObtainedMarks: 52,
		Feedback:      "well done",
	})
	require.NoError(t, err)
	require.Equal(t, models.SubmissionStatusCompleted, graded.Status)
	require.NotNil(t, graded.ObtainedMarks)
	require.Equal(t, 52.0, *graded.ObtainedMarks)
	require.Equal(t, "well done", graded.ExaminerFeedback)

	// Everything outside the grading fields stays as submitted.
	stored, err := submissions.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, "a@x.com", stored.UserEmail)
	require.Equal(t, "Alice", stored.UserName)
	require.Equal(t, "https://docs.example.com/d/1", stored.GoogleDocsURL)
	require.Equal(t, "please review", stored.Note)
	require.Equal(t, assignment.ID.Hex(), stored.AssignmentID)
}

func TestSubmissionGetMissingReturnsNotFound(t *testing.T) {
	svc, _, _ := newSubmissionFixture(t)

	_, err := svc.Get(context.Background(), primitive.NewObjectID())
	require.ErrorIs(t, err, service.ErrSubmissionNotFound)
}
