package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/saludml/salud-backend/internal/models"
)

// Domain selects a prediction history collection.
type Domain string

const (
	DomainDiabetes Domain = "diabetes"
	DomainCardiaco Domain = "cardiaco"
)

// Collection returns the MongoDB collection name for the domain.
func (d Domain) Collection() string {
	return "historial_" + string(d)
}

// HistoryStore is the append-only per-domain prediction history. Records are
// immutable once written; listings are read-only projections. owner == ""
// returns every record in the domain and is reserved for the administrative
// path.
type HistoryStore interface {
	Append(ctx context.Context, domain Domain, record models.PredictionRecord) (string, error)
	List(ctx context.Context, domain Domain, owner string) ([]models.PredictionRecord, error)
}

type MongoHistoryStore struct {
	db    *mongo.Database
	cache *Cache
}

// NewMongoHistoryStore wraps the Mongo database. cache may be nil.
func NewMongoHistoryStore(db *mongo.Database, cache *Cache) *MongoHistoryStore {
	return &MongoHistoryStore{db: db, cache: cache}
}

func (s *MongoHistoryStore) Append(ctx context.Context, domain Domain, record models.PredictionRecord) (string, error) {
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now().UTC()
	}

	res, err := s.db.Collection(domain.Collection()).InsertOne(ctx, record)
	if err != nil {
		return "", err
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}

	// The new record makes cached listings for this owner (and the
	// unfiltered admin listing) stale.
	s.cache.Delete(ctx,
		historyCacheKey(domain, record.Username),
		historyCacheKey(domain, ""),
	)

	return id.Hex(), nil
}

// List returns records oldest-first. An owner with no records gets an empty
// slice, not an error.
func (s *MongoHistoryStore) List(ctx context.Context, domain Domain, owner string) ([]models.PredictionRecord, error) {
	cacheKey := historyCacheKey(domain, owner)

	var records []models.PredictionRecord
	if s.cache.Get(ctx, cacheKey, &records) {
		return records, nil
	}

	filter := bson.M{}
	if owner != "" {
		filter["username"] = owner
	}

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})

	cursor, err := s.db.Collection(domain.Collection()).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records = make([]models.PredictionRecord, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	for i := range records {
		records[i].HexID = records[i].ID.Hex()
	}

	s.cache.Set(ctx, cacheKey, records)

	return records, nil
}
