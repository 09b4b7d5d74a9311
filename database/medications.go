package database

import (
	"context"
	"errors"
	"fmt"

	"meditime-chatbot-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MedicationRepository reads the medication catalog from MongoDB.
type MedicationRepository struct {
	db *mongo.Database
}

func NewMedicationRepository(db *mongo.Database) *MedicationRepository {
	return &MedicationRepository{db: db}
}

// ListNames fetches every medication name with a projection, so the
// extractor never pulls full records just to scan the catalog.
func (r *MedicationRepository) ListNames(ctx context.Context) ([]string, error) {
	opts := options.Find().SetProjection(bson.M{"nombre": 1})
	cursor, err := r.db.Collection(CollectionMedications).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list medication names: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []struct {
		Nombre string `bson:"nombre"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode medication names: %w", err)
	}

	names := make([]string, len(docs))
	for i, d := range docs {
		names[i] = d.Nombre
	}
	return names, nil
}

// FindByName returns nil without error when the name has no record.
func (r *MedicationRepository) FindByName(ctx context.Context, nombre string) (*models.Medication, error) {
	var med models.Medication
	err := r.db.Collection(CollectionMedications).
		FindOne(ctx, bson.M{"nombre": nombre}).
		Decode(&med)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find medication %q: %w", nombre, err)
	}
	return &med, nil
}
