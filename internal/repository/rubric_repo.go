package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sybil/internal/model"
)

type RubricRepo interface {
	GetByScenarioID(ctx context.Context, scenarioID string) (*model.Rubric, error)
	Upsert(ctx context.Context, rubric *model.Rubric) error
}

type rubricRepo struct {
	collection *mongo.Collection
}

func NewRubricRepo(db *mongo.Database) RubricRepo {
	return &rubricRepo{
		collection: db.Collection("rubrics"),
	}
}

func (r *rubricRepo) GetByScenarioID(ctx context.Context, scenarioID string) (*model.Rubric, error) {
	var rubric model.Rubric
	// Latest version wins when a scenario carries several rubrics.
	opts := options.FindOne().SetSort(bson.M{"version": -1})
	err := r.collection.FindOne(ctx, bson.M{"scenarioId": scenarioID}, opts).Decode(&rubric)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rubric, nil
}

func (r *rubricRepo) Upsert(ctx context.Context, rubric *model.Rubric) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": rubric.ID}, rubric, opts)
	return err
}
