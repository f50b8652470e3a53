// Package memory provides in-memory implementations of the repository
// interfaces with the same filter, search and sort semantics as the Mongo
// implementations. They back service and handler tests without a live store.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/edusign/edusign-api/internal/models"
	"github.com/edusign/edusign-api/internal/repository"
)

// UserRepository stores users in process memory.
type UserRepository struct {
	mu    sync.RWMutex
	users []models.User
}

// NewUserRepository constructs an empty in-memory user repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// List returns users matching the filter.
func (r *UserRepository) List(_ context.Context, filter repository.UserFilter) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := []models.User{}
	for _, user := range r.users {
		if filter.Email != "" && user.Email != filter.Email {
			continue
		}
		matched = append(matched, user)
	}

	return matched, nil
}

// GetByEmail returns the first user with the given email.
func (r *UserRepository) GetByEmail(_ context.Context, email string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}

	return models.User{}, repository.ErrNotFound
}

// Create appends a user, assigning a fresh identifier.
func (r *UserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = primitive.NewObjectID()
	r.users = append(r.users, *user)

	return nil
}

// AssignmentRepository stores assignments in process memory.
type AssignmentRepository struct {
	mu          sync.RWMutex
	assignments []models.Assignment
}

// NewAssignmentRepository constructs an empty in-memory assignment repository.
func NewAssignmentRepository() *AssignmentRepository {
	return &AssignmentRepository{}
}

// List returns assignments matching the filter, ordered per its sort directive.
func (r *AssignmentRepository) List(_ context.Context, filter repository.AssignmentFilter) ([]models.Assignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := []models.Assignment{}
	for _, assignment := range r.assignments {
		if filter.Difficulty != "" && assignment.Difficulty != filter.Difficulty {
			continue
		}
		if filter.Subject != "" && assignment.Subject != filter.Subject {
			continue
		}
		if filter.Search != "" && !matchesSearch(assignment, filter.Search) {
			continue
		}
		matched = append(matched, assignment)
	}

	if filter.Sort != "" {
		ascending := filter.Sort == "asc"
		sort.SliceStable(matched, func(i, j int) bool {
			if ascending {
				return matched[i].TotalMarks < matched[j].TotalMarks
			}
			return matched[i].TotalMarks > matched[j].TotalMarks
		})
	}

	return matched, nil
}

func matchesSearch(assignment models.Assignment, search string) bool {
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(assignment.Title), needle) ||
		strings.Contains(strings.ToLower(assignment.Description), needle)
}

// GetByID returns the assignment with the given identifier.
func (r *AssignmentRepository) GetByID(_ context.Context, id primitive.ObjectID) (models.Assignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, assignment := range r.assignments {
		if assignment.ID == id {
			return assignment, nil
		}
	}

	return models.Assignment{}, repository.ErrNotFound
}

// Create appends an assignment, assigning a fresh identifier.
func (r *AssignmentRepository) Create(_ context.Context, assignment *models.Assignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	assignment.ID = primitive.NewObjectID()
	r.assignments = append(r.assignments, *assignment)

	return nil
}

// Upsert replaces the stored document's fields, inserting when absent.
func (r *AssignmentRepository) Upsert(_ context.Context, id primitive.ObjectID, assignment models.Assignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	assignment.ID = id
	for i := range r.assignments {
		if r.assignments[i].ID == id {
			r.assignments[i] = assignment
			return nil
		}
	}

	r.assignments = append(r.assignments, assignment)

	return nil
}

// Delete removes the assignment with the given identifier.
func (r *AssignmentRepository) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.assignments {
		if r.assignments[i].ID == id {
			r.assignments = append(r.assignments[:i], r.assignments[i+1:]...)
			return nil
		}
	}

	return repository.ErrNotFound
}

// SubmissionRepository stores submissions in process memory.
type SubmissionRepository struct {
	mu          sync.RWMutex
	submissions []models.Submission
}

// NewSubmissionRepository constructs an empty in-memory submission repository.
func NewSubmissionRepository() *SubmissionRepository {
	return &SubmissionRepository{}
}

// List returns submissions matching the filter.
func (r *SubmissionRepository) List(_ context.Context, filter repository.SubmissionFilter) ([]models.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := []models.Submission{}
	for _, submission := range r.submissions {
		if filter.UserEmail != "" && submission.UserEmail != filter.UserEmail {
			continue
		}
		if filter.Status != "" && submission.Status != filter.Status {
			continue
		}
		matched = append(matched, submission)
	}

	return matched, nil
}

// GetByID returns the submission with the given identifier.
func (r *SubmissionRepository) GetByID(_ context.Context, id primitive.ObjectID) (models.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, submission := range r.submissions {
		if submission.ID == id {
			return submission, nil
		}
	}

	return models.Submission{}, repository.ErrNotFound
}

// Create appends a submission, assigning a fresh identifier.
func (r *SubmissionRepository) Create(_ context.Context, submission *models.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	submission.ID = primitive.NewObjectID()
	r.submissions = append(r.submissions, *submission)

	return nil
}

// Grade sets exactly the grading fields on the submission, inserting a bare
// document when the identifier is unknown, mirroring the upsert semantics of
// the Mongo implementation.
func (r *SubmissionRepository) Grade(_ context.Context, id primitive.ObjectID, update repository.GradeUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	marks := update.ObtainedMarks
	for i := range r.submissions {
		if r.submissions[i].ID == id {
			r.submissions[i].ObtainedMarks = &marks
			r.submissions[i].ExaminerFeedback = update.ExaminerFeedback
			r.submissions[i].Status = update.Status
			return nil
		}
	}

	r.submissions = append(r.submissions, models.Submission{
		ID:               id,
		ObtainedMarks:    &marks,
		ExaminerFeedback: update.ExaminerFeedback,
		Status:           update.Status,
	})

	return nil
}

// DeleteByAssignment removes every submission referencing the assignment.
func (r *SubmissionRepository) DeleteByAssignment(_ context.Context, assignmentID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.submissions[:0]
	var deleted int64
	for _, submission := range r.submissions {
		if submission.AssignmentID == assignmentID {
			deleted++
			continue
		}
		kept = append(kept, submission)
	}
	r.submissions = kept

	return deleted, nil
}
