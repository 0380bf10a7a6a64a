package repository

import (
	"context"
	"fmt"

	"tawthiqproject/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SchemaVersion tags every persisted record so a future shape change can be
// detected instead of silently misread.
const SchemaVersion = 1

// StateKey is the single storage key the whole tree lives under.
const StateKey = "tawthiq_state"

// StateRepository is the persistent slot the state store writes through.
// Load is called once at startup; Save runs synchronously after every
// command, replacing the whole record (last write wins).
type StateRepository interface {
	Load(ctx context.Context) (*models.AppState, error)
	Save(ctx context.Context, state *models.AppState) error
}

// stateDocument is the persisted shape: the state root plus the key and
// schema version fields.
type stateDocument struct {
	ID            string                 `bson:"_id"`
	SchemaVersion int                    `bson:"schema_version"`
	Profile       models.EmployeeProfile `bson:"profile"`
	Objectives    []models.Objective     `bson:"objectives"`
}

type mongoStateRepository struct {
	collection *mongo.Collection
}

// NewMongoStateRepository stores the record as one document under a fixed
// _id in the given database.
func NewMongoStateRepository(db *mongo.Database) StateRepository {
	return &mongoStateRepository{
		collection: db.Collection("app_state"),
	}
}

func (r *mongoStateRepository) Load(ctx context.Context) (*models.AppState, error) {
	var doc stateDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": StateKey}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return models.NewAppState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load state document: %w", err)
	}
	if doc.SchemaVersion > SchemaVersion {
		return nil, fmt.Errorf("state document has schema version %d, this build understands up to %d", doc.SchemaVersion, SchemaVersion)
	}

	state := &models.AppState{
		Profile:    doc.Profile,
		Objectives: doc.Objectives,
	}
	if state.Objectives == nil {
		state.Objectives = []models.Objective{}
	}
	return state, nil
}

func (r *mongoStateRepository) Save(ctx context.Context, state *models.AppState) error {
	doc := stateDocument{
		ID:            StateKey,
		SchemaVersion: SchemaVersion,
		Profile:       state.Profile,
		Objectives:    state.Objectives,
	}

	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": StateKey}, doc, opts)
	if err != nil {
		return fmt.Errorf("failed to save state document: %w", err)
	}
	return nil
}
