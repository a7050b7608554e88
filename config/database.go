package config

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blogapi/repository"
)

var db *mongo.Database

// InitDatabase connects to MongoDB using configuration values, verifies the
// connection and ensures the unique indexes the write paths rely on. The
// indexes on users.email and posts.title are what actually enforces
// uniqueness; the services' pre-checks only shape the error messages.
func InitDatabase() *mongo.Database {
	if db != nil {
		return db
	}

	cfg := Get()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("MongoDB ping failed: %v", err)
	}

	db = client.Database(cfg.MongoDatabase)

	ensureUniqueIndex(ctx, db.Collection(repository.UsersCollection), "email")
	ensureUniqueIndex(ctx, db.Collection(repository.PostsCollection), "title")

	return db
}

// DB provides access to the initialized database handle.
func DB() *mongo.Database {
	if db == nil {
		log.Fatal("database not initialized, call InitDatabase first")
	}
	return db
}

func ensureUniqueIndex(ctx context.Context, coll *mongo.Collection, field string) {
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: field, Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Printf("failed to create unique index on %s.%s: %v", coll.Name(), field, err)
	}
}
