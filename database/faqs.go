package database

import (
	"context"
	"fmt"

	"meditime-chatbot-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FaqRepository reads the predefined questions from MongoDB.
type FaqRepository struct {
	db *mongo.Database
}

func NewFaqRepository(db *mongo.Database) *FaqRepository {
	return &FaqRepository{db: db}
}

// List returns FAQs in storage iteration order.
func (r *FaqRepository) List(ctx context.Context) ([]models.FaqEntry, error) {
	return r.find(ctx, nil)
}

// ListSorted returns FAQs sorted by question text ascending, for the
// predefined-questions endpoint.
func (r *FaqRepository) ListSorted(ctx context.Context) ([]models.FaqEntry, error) {
	return r.find(ctx, options.Find().SetSort(bson.D{{Key: "texto", Value: 1}}))
}

func (r *FaqRepository) find(ctx context.Context, opts *options.FindOptions) ([]models.FaqEntry, error) {
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = r.db.Collection(CollectionFaqs).Find(ctx, bson.M{}, opts)
	} else {
		cursor, err = r.db.Collection(CollectionFaqs).Find(ctx, bson.M{})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list predefined questions: %w", err)
	}
	defer cursor.Close(ctx)

	var faqs []models.FaqEntry
	if err := cursor.All(ctx, &faqs); err != nil {
		return nil, fmt.Errorf("failed to decode predefined questions: %w", err)
	}
	return faqs, nil
}
