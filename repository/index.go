package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func SetupIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	importsCollection := db.Collection("import_batches")
	layoutsCollection := db.Collection("column_layouts")

	importIndexes := []mongo.IndexModel{
		// Batch listing: newest first per user
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().
				SetName("user_batches_date").
				SetUnique(false),
		},
		// Stats counting by status
		{
			Keys: bson.D{{Key: "status", Value: 1}},
			Options: options.Index().
				SetName("batch_status"),
		},
		// Discarded batches age out after 30 days
		{
			Keys: bson.D{{Key: "created_at", Value: 1}},
			Options: options.Index().
				SetName("batch_ttl").
				SetExpireAfterSeconds(30 * 24 * 60 * 60).
				SetPartialFilterExpression(bson.D{
					{Key: "status", Value: "discarded"},
				}),
		},
	}

	layoutIndexes := []mongo.IndexModel{
		// One layout per user per table
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "table_key", Value: 1},
			},
			Options: options.Index().
				SetName("user_table_layout").
				SetUnique(true),
		},
	}

	if _, err := importsCollection.Indexes().CreateMany(ctx, importIndexes); err != nil {
		return fmt.Errorf("failed to create import batch indexes: %v", err)
	}

	if _, err := layoutsCollection.Indexes().CreateMany(ctx, layoutIndexes); err != nil {
		return fmt.Errorf("failed to create column layout indexes: %v", err)
	}

	log.Println("Successfully created all database indexes")
	return nil
}
