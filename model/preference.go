package model

import "time"

// Table keys the dashboard persists column layouts under. These are fixed
// constants shared with the frontend; anything else is rejected.
const (
	TableStatements   = "statements"
	TableExpenses     = "expenses"
	TableReservations = "reservations"
	TableListings     = "listings"
)

func ValidTableKey(key string) bool {
	switch key {
	case TableStatements, TableExpenses, TableReservations, TableListings:
		return true
	}
	return false
}

type ColumnSetting struct {
	Key     string `bson:"key" json:"key"`
	Width   int    `bson:"width" json:"width"`
	Order   int    `bson:"order" json:"order"`
	Visible bool   `bson:"visible" json:"visible"`
}

// ColumnLayout stores one user's sizing/order/visibility for one table.
type ColumnLayout struct {
	UserID    string          `bson:"user_id" json:"user_id"`
	TableKey  string          `bson:"table_key" json:"table_key"`
	Columns   []ColumnSetting `bson:"columns" json:"columns"`
	UpdatedAt time.Time       `bson:"updated_at" json:"updated_at"`
}
