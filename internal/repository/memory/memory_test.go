package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/edusign/edusign-api/internal/models"
	"github.com/edusign/edusign-api/internal/repository"
)

func TestGradeUpsertsMissingSubmission(t *testing.T) {
	repo := NewSubmissionRepository()
	id := primitive.NewObjectID()

	err := repo.Grade(context.Background(), id, repository.GradeUpdate{
		ObtainedMarks:    40,
		ExaminerFeedback: "ok",
		Status:           models.SubmissionStatusCompleted,
	})
	require.NoError(t, err)

	stored, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, models.SubmissionStatusCompleted, stored.Status)
	require.NotNil(t, stored.ObtainedMarks)
	require.Equal(t, 40.0, *stored.ObtainedMarks)
}

func TestDeleteByAssignmentReportsCount(t *testing.T) {
	repo := NewSubmissionRepository()

	for _, assignmentID := range []string{"a", "a", "b"} {
		submission := models.Submission{AssignmentID: assignmentID, Status: models.SubmissionStatusPending}
		require.NoError(t, repo.Create(context.Background(), &submission))
	}

	deleted, err := repo.DeleteByAssignment(context.Background(), "a")
	require.NoError(t, err)
	require.Equal(t, int64(2), deleted)

	remaining, err := repo.List(context.Background(), repository.SubmissionFilter{})
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	require.Equal(t, "b", remaining[0].AssignmentID)
}

func TestAssignmentUpsertInsertsWhenAbsent(t *testing.T) {
	repo := NewAssignmentRepository()
	id := primitive.NewObjectID()

	err := repo.Upsert(context.Background(), id, models.Assignment{Title: "Algebra", TotalMarks: 60})
	require.NoError(t, err)

	stored, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, "Algebra", stored.Title)
}
