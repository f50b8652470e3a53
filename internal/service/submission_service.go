package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/edusign/edusign-api/internal/dto"
	"github.com/edusign/edusign-api/internal/models"
	"github.com/edusign/edusign-api/internal/repository"
)

// ErrSubmissionNotFound indicates a submission could not be found.
var ErrSubmissionNotFound = errors.New("submission not found")

// SubmissionService orchestrates submission workflows.
type SubmissionService interface {
	List(ctx context.Context, filter dto.SubmissionFilter) ([]dto.SubmissionResponse, error)
	Get(ctx context.Context, id primitive.ObjectID) (dto.SubmissionResponse, error)
	Create(ctx context.Context, payload dto.SubmissionCreateRequest) (dto.SubmissionResponse, error)
	Grade(ctx context.Context, id primitive.ObjectID, payload dto.SubmissionGradeRequest) (dto.SubmissionResponse, error)
}

type submissionService struct {
	submissions repository.SubmissionRepository
	assignments repository.AssignmentRepository
	validator   *validator.Validate
	logger      zerolog.Logger
	now         func() time.Time
}

// NewSubmissionService constructs a SubmissionService instance.
func NewSubmissionService(submissionRepo repository.SubmissionRepository, assignmentRepo repository.AssignmentRepository, validate *validator.Validate, logger zerolog.Logger) SubmissionService {
	return &submissionService{
		submissions: submissionRepo,
		assignments: assignmentRepo,
		validator:   validate,
		logger:      logger.With().Str("component", "submission_service").Logger(),
		now:         time.Now,
	}
}

func (s *submissionService) List(ctx context.Context, filter dto.SubmissionFilter) ([]dto.SubmissionResponse, error) {
	submissions, err := s.submissions.List(ctx, repository.SubmissionFilter{
		UserEmail: filter.UserEmail,
		Status:    filter.Status,
	})
	if err != nil {
		return nil, err
	}

	return dto.NewSubmissionResponseSlice(submissions), nil
}

func (s *submissionService) Get(ctx context.Context, id primitive.ObjectID) (dto.SubmissionResponse, error) {
	submission, err := s.submissions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.SubmissionResponse{}, ErrSubmissionNotFound
		}
		return dto.SubmissionResponse{}, err
	}

	return dto.NewSubmissionResponse(submission), nil
}

// Create stores a new submission after checking that the referenced
// assignment exists. The relation is application-level only; the store does
// not enforce it.
func (s *submissionService) Create(ctx context.Context, payload dto.SubmissionCreateRequest) (dto.SubmissionResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.SubmissionResponse{}, err
	}

	assignmentID, err := primitive.ObjectIDFromHex(payload.AssignmentID)
	if err != nil {
		return dto.SubmissionResponse{}, ErrAssignmentNotFound
	}

	if _, err := s.assignments.GetByID(ctx, assignmentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.SubmissionResponse{}, ErrAssignmentNotFound
		}
		return dto.SubmissionResponse{}, err
	}

	submission := models.Submission{
		AssignmentID:  payload.AssignmentID,
		UserEmail:     payload.UserEmail,
		UserName:      payload.UserName,
		GoogleDocsURL: payload.GoogleDocsURL,
		Note:          payload.Note,
		Status:        models.SubmissionStatusPending,
		CreatedAt:     s.now(),
	}

	if err := s.submissions.Create(ctx, &submission); err != nil {
		return dto.SubmissionResponse{}, err
	}

	s.logger.Info().Str("submission_id", submission.ID.Hex()).Str("assignment_id", submission.AssignmentID).Msg("submission created")

	return dto.NewSubmissionResponse(submission), nil
}

// Grade writes exactly the grading fields and forces the Completed status,
// leaving every other field on the document untouched.
func (s *submissionService) Grade(ctx context.Context, id primitive.ObjectID, payload dto.SubmissionGradeRequest) (dto.SubmissionResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.SubmissionResponse{}, err
	}

	update := repository.GradeUpdate{
		ObtainedMarks:    payload.ObtainedMarks,
		ExaminerFeedback: payload.Feedback,
		Status:           models.SubmissionStatusCompleted,
	}

	if err := s.submissions.Grade(ctx, id, update); err != nil {
		return dto.SubmissionResponse{}, err
	}

	graded, err := s.submissions.GetByID(ctx, id)
	if err != nil {
		return dto.SubmissionResponse{}, err
	}

	s.logger.Info().Str("submission_id", id.Hex()).Msg("submission graded")

	return dto.NewSubmissionResponse(graded), nil
}
