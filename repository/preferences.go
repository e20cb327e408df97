package repository

import (
	"context"
	"errors"
	"os"
	"time"

	"main/middleware"
	"main/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PreferencesRepo struct {
	MongoCollection *mongo.Collection
}

func GetPreferencesRepo(client *mongo.Client) *PreferencesRepo {
	return &PreferencesRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("column_layouts"),
	}
}

// GetLayout retrieves a user's column layout for one table. A nil result
// means the user has never customized it and the frontend default applies.
func (r *PreferencesRepo) GetLayout(userID, tableKey string) (*model.ColumnLayout, error) {
	timer := middleware.TrackDBOperation("find", "column_layouts")
	defer timer.ObserveDuration()

	var layout model.ColumnLayout
	err := r.MongoCollection.FindOne(context.Background(),
		bson.M{"user_id": userID, "table_key": tableKey}).Decode(&layout)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &layout, nil
}

// SaveLayout upserts a user's column layout for one table
func (r *PreferencesRepo) SaveLayout(layout *model.ColumnLayout) error {
	if layout.UserID == "" {
		return errors.New("user ID is required")
	}

	timer := middleware.TrackDBOperation("upsert", "column_layouts")
	defer timer.ObserveDuration()

	layout.UpdatedAt = time.Now()

	filter := bson.M{
		"user_id":   layout.UserID,
		"table_key": layout.TableKey,
	}
	update := bson.M{
		"$set": bson.M{
			"columns":    layout.Columns,
			"updated_at": layout.UpdatedAt,
		},
	}

	_, err := r.MongoCollection.UpdateOne(context.Background(), filter, update,
		options.Update().SetUpsert(true))
	return err
}

// DeleteLayout resets a table back to the frontend default
func (r *PreferencesRepo) DeleteLayout(userID, tableKey string) error {
	timer := middleware.TrackDBOperation("delete", "column_layouts")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(context.Background(),
		bson.M{"user_id": userID, "table_key": tableKey})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errors.New("column layout not found")
	}
	return nil
}
