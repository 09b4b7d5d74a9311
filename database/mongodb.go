package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"meditime-chatbot-backend/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names.
const (
	CollectionMedications = "medicamentos"
	CollectionFaqs        = "preguntas"
	CollectionHistory     = "historials"
)

var (
	mongoClient *mongo.Client
	mongoDB     *mongo.Database
)

// ConnectMongoDB establishes connection to MongoDB
func ConnectMongoDB(cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Set client options
	clientOptions := options.Client().
		ApplyURI(cfg.BuildDatabaseURI()).
		SetMaxPoolSize(uint64(cfg.Database.MaxConnections)).
		SetMinPoolSize(uint64(cfg.Database.MinConnections)).
		SetMaxConnIdleTime(cfg.Database.MaxIdleTime)

	// Connect to MongoDB
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Ping the database
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	mongoClient = client
	mongoDB = client.Database(cfg.Database.Name)

	log.Printf("Connected to MongoDB database: %s", cfg.Database.Name)

	// Create indexes
	if err := createIndexes(ctx); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	return nil
}

// GetMongoDB returns the MongoDB database instance
func GetMongoDB() *mongo.Database {
	if mongoDB == nil {
		log.Fatal("MongoDB not initialized")
	}
	return mongoDB
}

// GetMongoClient returns the MongoDB client
func GetMongoClient() *mongo.Client {
	if mongoClient == nil {
		log.Fatal("MongoDB client not initialized")
	}
	return mongoClient
}

// createIndexes creates necessary indexes
func createIndexes(ctx context.Context) error {
	// One medication record per unique name
	medsCollection := mongoDB.Collection(CollectionMedications)
	medIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "nombre", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	if _, err := medsCollection.Indexes().CreateMany(ctx, medIndexes); err != nil {
		return fmt.Errorf("failed to create medication indexes: %w", err)
	}

	// FAQ listing sorts by question text
	faqsCollection := mongoDB.Collection(CollectionFaqs)
	faqIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "texto", Value: 1}},
		},
	}

	if _, err := faqsCollection.Indexes().CreateMany(ctx, faqIndexes); err != nil {
		return fmt.Errorf("failed to create faq indexes: %w", err)
	}

	// History listing sorts by date, newest first
	historyCollection := mongoDB.Collection(CollectionHistory)
	historyIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "fecha", Value: -1}},
		},
	}

	if _, err := historyCollection.Indexes().CreateMany(ctx, historyIndexes); err != nil {
		return fmt.Errorf("failed to create history indexes: %w", err)
	}

	log.Println("Database indexes created successfully")
	return nil
}

// DisconnectMongoDB closes the MongoDB connection
func DisconnectMongoDB() error {
	if mongoClient == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := mongoClient.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
	}

	log.Println("Disconnected from MongoDB")
	return nil
}
