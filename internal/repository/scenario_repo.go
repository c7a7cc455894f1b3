package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sybil/internal/model"
)

// ErrNotFound is returned when a document does not exist.
var ErrNotFound = errors.New("not found")

type ScenarioRepo interface {
	GetByID(ctx context.Context, id string) (*model.Scenario, error)
	List(ctx context.Context) ([]*model.Scenario, error)
	Upsert(ctx context.Context, scenario *model.Scenario) error
}

type scenarioRepo struct {
	collection *mongo.Collection
}

func NewScenarioRepo(db *mongo.Database) ScenarioRepo {
	return &scenarioRepo{
		collection: db.Collection("scenarios"),
	}
}

func (r *scenarioRepo) GetByID(ctx context.Context, id string) (*model.Scenario, error) {
	var scenario model.Scenario
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&scenario)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &scenario, nil
}

func (r *scenarioRepo) List(ctx context.Context) ([]*model.Scenario, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var scenarios []*model.Scenario
	if err = cursor.All(ctx, &scenarios); err != nil {
		return nil, err
	}
	return scenarios, nil
}

func (r *scenarioRepo) Upsert(ctx context.Context, scenario *model.Scenario) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": scenario.ID}, scenario, opts)
	return err
}
