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

type ImportsRepo struct {
	MongoCollection *mongo.Collection
}

func GetImportsRepo(client *mongo.Client) *ImportsRepo {
	return &ImportsRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("import_batches"),
	}
}

// CreateBatch stages a parsed upload
func (r *ImportsRepo) CreateBatch(batch *model.ImportBatch) error {
	if batch.UserID == "" {
		return errors.New("user ID is required")
	}

	timer := middleware.TrackDBOperation("insert", "import_batches")
	defer timer.ObserveDuration()

	batch.CreatedAt = time.Now()
	_, err := r.MongoCollection.InsertOne(context.Background(), batch)
	return err
}

// GetBatch retrieves a specific batch for a user
func (r *ImportsRepo) GetBatch(batchID, userID string) (*model.ImportBatch, error) {
	timer := middleware.TrackDBOperation("find", "import_batches")
	defer timer.ObserveDuration()

	var batch model.ImportBatch
	err := r.MongoCollection.FindOne(context.Background(),
		bson.M{"_id": batchID, "user_id": userID}).Decode(&batch)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("import batch not found")
		}
		return nil, err
	}
	return &batch, nil
}

// GetUserBatches lists a user's batches, newest first, without row payloads
func (r *ImportsRepo) GetUserBatches(userID string) ([]*model.ImportBatch, error) {
	timer := middleware.TrackDBOperation("find", "import_batches")
	defer timer.ObserveDuration()

	var batches []*model.ImportBatch
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetProjection(bson.M{"expenses": 0, "reservations": 0})

	cursor, err := r.MongoCollection.Find(context.Background(),
		bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(context.Background())

	if err = cursor.All(context.Background(), &batches); err != nil {
		return nil, err
	}
	return batches, nil
}

// MarkCommitted flips a staged batch to committed
func (r *ImportsRepo) MarkCommitted(batchID, userID string) error {
	timer := middleware.TrackDBOperation("update", "import_batches")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     batchID,
		"user_id": userID,
		"status":  model.ImportStaged,
	}
	update := bson.M{
		"$set": bson.M{
			"status":       model.ImportCommitted,
			"committed_at": time.Now(),
		},
	}

	result, err := r.MongoCollection.UpdateOne(context.Background(), filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("staged import batch not found")
	}
	return nil
}

// MarkDiscarded flips a staged batch to discarded and drops its rows
func (r *ImportsRepo) MarkDiscarded(batchID, userID string) error {
	timer := middleware.TrackDBOperation("update", "import_batches")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     batchID,
		"user_id": userID,
		"status":  model.ImportStaged,
	}
	update := bson.M{
		"$set":   bson.M{"status": model.ImportDiscarded},
		"$unset": bson.M{"expenses": "", "reservations": ""},
	}

	result, err := r.MongoCollection.UpdateOne(context.Background(), filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("staged import batch not found")
	}
	return nil
}

// CountByStatus counts batches across all users for the stats endpoint
func (r *ImportsRepo) CountByStatus(status model.ImportStatus) (int64, error) {
	timer := middleware.TrackDBOperation("count", "import_batches")
	defer timer.ObserveDuration()

	return r.MongoCollection.CountDocuments(context.Background(),
		bson.M{"status": status})
}
