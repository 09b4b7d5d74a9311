package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"meditime-chatbot-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SeedMedications upserts the medications from path into the catalog.
// Existing records are preserved; only missing names are inserted.
func SeedMedications(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	var meds []models.Medication
	if err := json.Unmarshal(data, &meds); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}

	collection := GetMongoDB().Collection(CollectionMedications)
	opts := options.Update().SetUpsert(true)

	for _, med := range meds {
		update := bson.M{"$setOnInsert": bson.M{
			"nombre":        med.Nombre,
			"presentacion":  med.Presentacion,
			"usos":          med.Usos,
			"efectos":       med.Efectos,
			"adversos":      med.Adversos,
			"interacciones": med.Interacciones,
		}}
		res, err := collection.UpdateOne(ctx, bson.M{"nombre": med.Nombre}, update, opts)
		if err != nil {
			return fmt.Errorf("failed to upsert %q: %w", med.Nombre, err)
		}
		if res.UpsertedCount > 0 {
			log.Printf("%s added", med.Nombre)
		} else {
			log.Printf("%s already exists", med.Nombre)
		}
	}

	log.Printf("Seed completed: %d medications processed", len(meds))
	return nil
}

// SeedFaqs upserts predefined questions by their text.
func SeedFaqs(ctx context.Context, faqs []models.FaqEntry) error {
	collection := GetMongoDB().Collection(CollectionFaqs)
	opts := options.Update().SetUpsert(true)

	for _, faq := range faqs {
		update := bson.M{"$setOnInsert": bson.M{
			"texto":     faq.Texto,
			"respuesta": faq.Respuesta,
		}}
		if _, err := collection.UpdateOne(ctx, bson.M{"texto": faq.Texto}, update, opts); err != nil {
			return fmt.Errorf("failed to upsert faq %q: %w", faq.Texto, err)
		}
	}
	return nil
}
