package database

import (
	"context"
	"fmt"

	"meditime-chatbot-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// HistoryRepository persists the query history in MongoDB.
type HistoryRepository struct {
	db *mongo.Database
}

func NewHistoryRepository(db *mongo.Database) *HistoryRepository {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) Append(ctx context.Context, entry models.HistoryEntry) error {
	_, err := r.db.Collection(CollectionHistory).InsertOne(ctx, entry)
	if err != nil {
		return fmt.Errorf("failed to insert history entry: %w", err)
	}
	return nil
}

// Recent returns at most limit entries sorted by date, newest first.
func (r *HistoryRepository) Recent(ctx context.Context, limit int64) ([]models.HistoryEntry, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "fecha", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.db.Collection(CollectionHistory).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []models.HistoryEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode history: %w", err)
	}
	return entries, nil
}

func (r *HistoryRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.db.Collection(CollectionHistory).CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count history: %w", err)
	}
	return count, nil
}

func (r *HistoryRepository) Clear(ctx context.Context) (int64, error) {
	res, err := r.db.Collection(CollectionHistory).DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to delete history: %w", err)
	}
	return res.DeletedCount, nil
}
