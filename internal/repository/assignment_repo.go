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

type assignmentRepository struct {
	collection *mongo.Collection
}

// NewAssignmentRepository instantiates the Mongo-backed assignment repository.
func NewAssignmentRepository(db *mongo.Database) AssignmentRepository {
	return &assignmentRepository{collection: db.Collection("assignments")}
}

func (r *assignmentRepository) List(ctx context.Context, filter AssignmentFilter) ([]models.Assignment, error) {
	findOptions := options.Find()
	if sort := filter.SortDirective(); len(sort) > 0 {
		findOptions.SetSort(sort)
	}

	cursor, err := r.collection.Find(ctx, filter.Query(), findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	assignments := []models.Assignment{}
	if err := cursor.All(ctx, &assignments); err != nil {
		return nil, err
	}

	return assignments, nil
}

func (r *assignmentRepository) GetByID(ctx context.Context, id primitive.ObjectID) (models.Assignment, error) {
	var assignment models.Assignment
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&assignment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Assignment{}, ErrNotFound
		}
		return models.Assignment{}, err
	}

	return assignment, nil
}

func (r *assignmentRepository) Create(ctx context.Context, assignment *models.Assignment) error {
	result, err := r.collection.InsertOne(ctx, assignment)
	if err != nil {
		return err
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		assignment.ID = id
	}

	return nil
}

func (r *assignmentRepository) Upsert(ctx context.Context, id primitive.ObjectID, assignment models.Assignment) error {
	assignment.ID = primitive.NilObjectID

	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": assignment},
		options.Update().SetUpsert(true),
	)

	return err
}

func (r *assignmentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}
