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

// CatalogDocument is one saved revision of the product catalog.
// Exactly one revision is active at a time.
type CatalogDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Products  []ProductDocument  `bson:"products"`
	Active    bool               `bson:"active"`
	Version   int                `bson:"version"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
	CreatedBy string             `bson:"created_by,omitempty"`
}

// ToModel converts the document into a catalog version.
func (d CatalogDocument) ToModel() model.CatalogVersion {
	return model.CatalogVersion{
		ID:        d.ID.Hex(),
		Products:  ProductsToModel(d.Products),
		Version:   d.Version,
		CreatedAt: d.CreatedAt,
		CreatedBy: d.CreatedBy,
	}
}

// CatalogRepository provides methods for catalog operations.
type CatalogRepository struct {
	collection *mongo.Collection
}

// NewCatalogRepository creates a new catalog repository.
func NewCatalogRepository(db *MongoDB) *CatalogRepository {
	return &CatalogRepository{
		collection: db.Catalogs,
	}
}

// GetActive returns the active catalog revision, or nil when none was saved.
func (r *CatalogRepository) GetActive(ctx context.Context) (*CatalogDocument, error) {
	var doc CatalogDocument
	err := r.collection.FindOne(ctx, bson.M{"active": true}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Save stores the products as a new active revision and retires the previous one.
func (r *CatalogRepository) Save(ctx context.Context, products []model.Product, createdBy string) (*CatalogDocument, error) {
	version := 1
	var latest CatalogDocument
	err := r.collection.FindOne(ctx, bson.M{}, options.FindOne().SetSort(bson.D{{Key: "version", Value: -1}})).Decode(&latest)
	switch {
	case err == nil:
		version = latest.Version + 1
	case !errors.Is(err, mongo.ErrNoDocuments):
		return nil, err
	}

	now := time.Now().UTC()
	_, err = r.collection.UpdateMany(
		ctx,
		bson.M{"active": true},
		bson.M{"$set": bson.M{"active": false, "updated_at": now}},
	)
	if err != nil {
		return nil, err
	}

	doc := CatalogDocument{
		ID:        primitive.NewObjectID(),
		Products:  NewProductDocuments(products),
		Active:    true,
		Version:   version,
		CreatedAt: now,
		UpdatedAt: now,
		CreatedBy: createdBy,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

// List returns catalog revisions, newest first.
func (r *CatalogRepository) List(ctx context.Context, limit int) ([]CatalogDocument, error) {
	opts := options.Find().SetSort(bson.D{{Key: "version", Value: -1}})
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

	var docs []CatalogDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	return docs, nil
}
