package repository

import (
	"context"
	"testing"

	"main/model"

	"github.com/google/uuid"
)

func TestColumnLayoutRoundTrip(t *testing.T) {
	client := newMongoClient(t)

	coll := client.Database("ownerstatements_test").Collection("testColumnLayouts")
	t.Cleanup(func() { coll.Drop(context.Background()) })

	preferencesRepo := PreferencesRepo{MongoCollection: coll}
	userID := uuid.New().String()

	t.Run("MissingLayoutIsNil", func(t *testing.T) {
		layout, err := preferencesRepo.GetLayout(userID, model.TableStatements)
		if err != nil {
			t.Fatal("get layout failed", err)
		}
		if layout != nil {
			t.Errorf("expected nil for unsaved layout, got %+v", layout)
		}
	})

	t.Run("SaveAndGet", func(t *testing.T) {
		layout := &model.ColumnLayout{
			UserID:   userID,
			TableKey: model.TableStatements,
			Columns: []model.ColumnSetting{
				{Key: "ownerName", Width: 180, Order: 0, Visible: true},
				{Key: "netPayout", Width: 120, Order: 1, Visible: true},
				{Key: "status", Width: 90, Order: 2, Visible: false},
			},
		}
		if err := preferencesRepo.SaveLayout(layout); err != nil {
			t.Fatal("save layout failed", err)
		}

		got, err := preferencesRepo.GetLayout(userID, model.TableStatements)
		if err != nil {
			t.Fatal("get layout failed", err)
		}
		if got == nil || len(got.Columns) != 3 || got.Columns[2].Visible {
			t.Errorf("layout round-tripped incorrectly: %+v", got)
		}
	})

	t.Run("UpsertReplacesColumns", func(t *testing.T) {
		layout := &model.ColumnLayout{
			UserID:   userID,
			TableKey: model.TableStatements,
			Columns: []model.ColumnSetting{
				{Key: "ownerName", Width: 220, Order: 0, Visible: true},
			},
		}
		if err := preferencesRepo.SaveLayout(layout); err != nil {
			t.Fatal("save layout failed", err)
		}

		got, err := preferencesRepo.GetLayout(userID, model.TableStatements)
		if err != nil {
			t.Fatal("get layout failed", err)
		}
		if got == nil || len(got.Columns) != 1 || got.Columns[0].Width != 220 {
			t.Errorf("upsert did not replace columns: %+v", got)
		}
	})

	t.Run("Reset", func(t *testing.T) {
		if err := preferencesRepo.DeleteLayout(userID, model.TableStatements); err != nil {
			t.Fatal("delete layout failed", err)
		}
		if err := preferencesRepo.DeleteLayout(userID, model.TableStatements); err == nil {
			t.Error("expected error deleting an absent layout")
		}
	})
}
