package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/container-quote/internal/domain/model"
)

// ErrScenarioNotFound is returned when no scenario matches the given id.
var ErrScenarioNotFound = errors.New("scenario not found")

// ScenarioDocument is a named snapshot as stored in MongoDB.
type ScenarioDocument struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty"`
	Name          string               `bson:"name"`
	ContainerType model.ContainerType  `bson:"container_type"`
	Catalog       []ProductDocument    `bson:"catalog"`
	Pricing       model.PricingContext `bson:"pricing"`
	Version       int                  `bson:"version"`
	CreatedAt     time.Time            `bson:"created_at"`
	UpdatedAt     time.Time            `bson:"updated_at"`
	UpdatedBy     string               `bson:"updated_by,omitempty"`
}

// ToModel converts the document into a domain scenario.
func (d ScenarioDocument) ToModel() model.Scenario {
	return model.Scenario{
		ID:   d.ID.Hex(),
		Name: d.Name,
		Snapshot: model.Snapshot{
			ContainerType: d.ContainerType,
			Catalog:       ProductsToModel(d.Catalog),
			Pricing:       d.Pricing.Normalize(),
		},
		Version:   d.Version,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
		UpdatedBy: d.UpdatedBy,
	}
}

// ScenarioRepository provides methods for scenario operations.
type ScenarioRepository struct {
	collection *mongo.Collection
}

// NewScenarioRepository creates a new scenario repository.
func NewScenarioRepository(db *MongoDB) *ScenarioRepository {
	return &ScenarioRepository{
		collection: db.Scenarios,
	}
}

// Create stores a new scenario.
func (r *ScenarioRepository) Create(ctx context.Context, name string, snapshot model.Snapshot, createdBy string) (*ScenarioDocument, error) {
	now := time.Now().UTC()
	doc := ScenarioDocument{
		ID:            primitive.NewObjectID(),
		Name:          name,
		ContainerType: snapshot.ContainerType,
		Catalog:       NewProductDocuments(snapshot.Catalog),
		Pricing:       snapshot.Pricing,
		Version:       1,
		CreatedAt:     now,
		UpdatedAt:     now,
		UpdatedBy:     createdBy,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Update overwrites the name and snapshot of an existing scenario.
func (r *ScenarioRepository) Update(ctx context.Context, id primitive.ObjectID, name string, snapshot model.Snapshot, updatedBy string) (*ScenarioDocument, error) {
	update := bson.M{
		"$set": bson.M{
			"name":           name,
			"container_type": snapshot.ContainerType,
			"catalog":        NewProductDocuments(snapshot.Catalog),
			"pricing":        snapshot.Pricing,
			"updated_at":     time.Now().UTC(),
			"updated_by":     updatedBy,
		},
		"$inc": bson.M{"version": 1},
	}

	var doc ScenarioDocument
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrScenarioNotFound
	}
	if err != nil {
		return nil, err
	}

	return &doc, nil
}

// Get returns a single scenario.
func (r *ScenarioRepository) Get(ctx context.Context, id primitive.ObjectID) (*ScenarioDocument, error) {
	var doc ScenarioDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrScenarioNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// List returns scenarios, most recently updated first.
func (r *ScenarioRepository) List(ctx context.Context, limit int) ([]ScenarioDocument, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}, {Key: "_id", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []ScenarioDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	return docs, nil
}

// Delete removes a scenario.
func (r *ScenarioRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrScenarioNotFound
	}
	return nil
}
