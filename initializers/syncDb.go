package initializers

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SyncDatabase ensures the indexes the API relies on exist.
func SyncDatabase(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	collections := map[string]bson.D{
		"orders":     {{Key: "user", Value: 1}},
		"orderitems": {{Key: "user", Value: 1}},
		"products":   {{Key: "category", Value: 1}},
	}
	for name, keys := range collections {
		_, err := db.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{Keys: keys})
		if err != nil {
			return err
		}
	}

	log.Println("Database synced successfully.")
	return nil
}
