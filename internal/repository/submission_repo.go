package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/edusign/edusign-api/internal/models"
)

type submissionRepository struct {
	collection *mongo.Collection
}

// NewSubmissionRepository instantiates the Mongo-backed submission repository.
func NewSubmissionRepository(db *mongo.Database) SubmissionRepository {
	return &submissionRepository{collection: db.Collection("submissions")}
}

func (r *submissionRepository) List(ctx context.Context, filter SubmissionFilter) ([]models.Submission, error) {
	cursor, err := r.collection.Find(ctx, filter.Query())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	submissions := []models.Submission{}
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, err
	}

	return submissions, nil
}

func (r *submissionRepository) GetByID(ctx context.Context, id primitive.ObjectID) (models.Submission, error) {
	var submission models.Submission
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&submission)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Submission{}, ErrNotFound
		}
		return models.Submission{}, err
	}

	return submission, nil
}

func (r *submissionRepository) Create(ctx context.Context, submission *models.Submission) error {
	result, err := r.collection.InsertOne(ctx, submission)
	if err != nil {
		return err
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		submission.ID = id
	}

	return nil
}

func (r *submissionRepository) Grade(ctx context.Context, id primitive.ObjectID, update GradeUpdate) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"obtained_marks":    update.ObtainedMarks,
			"examiner_feedback": update.ExaminerFeedback,
			"status":            update.Status,
		}},
		options.Update().SetUpsert(true),
	)

	return err
}

func (r *submissionRepository) DeleteByAssignment(ctx context.Context, assignmentID string) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"assignment_id": assignmentID})
	if err != nil {
		return 0, err
	}

	return result.DeletedCount, nil
}
