package storage

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/insightdelivered/financial-analytics/internal/models"
)

const recordCollection = "financial_data"

// MongoStore keeps records in a MongoDB collection.
type MongoStore struct {
	records *mongo.Collection
}

// NewMongoStore connects to MongoDB and pings it to fail fast on bad
// configuration. The returned disconnect func should be called on shutdown.
func NewMongoStore(ctx context.Context, uri, dbName string) (*MongoStore, func(context.Context) error, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("pinging MongoDB: %w", err)
	}

	store := &MongoStore{
		records: client.Database(dbName).Collection(recordCollection),
	}
	return store, client.Disconnect, nil
}

func (s *MongoStore) Save(ctx context.Context, rec *models.FinancialRecord) error {
	if _, err := s.records.InsertOne(ctx, rec); err != nil {
		return fmt.Errorf("inserting financial record: %w", err)
	}
	return nil
}

func (s *MongoStore) Get(ctx context.Context, id string) (*models.FinancialRecord, error) {
	var rec models.FinancialRecord
	err := s.records.FindOne(ctx, bson.M{"id": id}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("finding financial record %q: %w", id, err)
	}
	return &rec, nil
}

func (s *MongoStore) List(ctx context.Context, limit int) ([]models.FinancialRecord, error) {
	opts := options.Find().
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "upload_date", Value: -1}})

	cur, err := s.records.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("listing financial records: %w", err)
	}
	defer cur.Close(ctx)

	recs := []models.FinancialRecord{}
	if err := cur.All(ctx, &recs); err != nil {
		return nil, fmt.Errorf("decoding financial records: %w", err)
	}
	return recs, nil
}
