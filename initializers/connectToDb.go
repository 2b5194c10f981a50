package initializers

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const defaultDatabaseName = "bookmart"

// ConnectToDB dials MongoDB using MONGODB_URI and returns the client and
// the database named by MONGODB_DB (or the default).
func ConnectToDB() (*mongo.Client, *mongo.Database, error) {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
		log.Println("MONGODB_URI not set, using", uri)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, nil, err
	}

	dbName := os.Getenv("MONGODB_DB")
	if dbName == "" {
		dbName = defaultDatabaseName
	}

	log.Println("Connected to MongoDB.")
	return client, client.Database(dbName), nil
}
