package model

import "time"

type ImportKind string
type ImportStatus string

const (
	ImportExpenses     ImportKind = "expenses"
	ImportReservations ImportKind = "reservations"

	ImportStaged    ImportStatus = "staged"
	ImportCommitted ImportStatus = "committed"
	ImportDiscarded ImportStatus = "discarded"
)

// RowError records a line the parser rejected. Line numbers are 1-based and
// include the header line, matching what the user sees in their spreadsheet.
type RowError struct {
	Line    int    `bson:"line" json:"line"`
	Message string `bson:"message" json:"message"`
}

// ImportBatch is a staged CSV upload awaiting commit. Valid rows and row
// errors are held together so the dashboard can show a preview before any
// data reaches the core backend.
type ImportBatch struct {
	BatchID      string           `bson:"_id" json:"id"`
	UserID       string           `bson:"user_id" json:"user_id"`
	Kind         ImportKind       `bson:"kind" json:"kind"`
	Status       ImportStatus     `bson:"status" json:"status"`
	FileName     string           `bson:"file_name" json:"file_name"`
	FileSize     int64            `bson:"file_size" json:"file_size"`
	RowCount     int              `bson:"row_count" json:"row_count"`
	ErrorCount   int              `bson:"error_count" json:"error_count"`
	TotalAmount  string           `bson:"total_amount" json:"total_amount"`
	Expenses     []ExpenseRow     `bson:"expenses,omitempty" json:"expenses,omitempty"`
	Reservations []ReservationRow `bson:"reservations,omitempty" json:"reservations,omitempty"`
	RowErrors    []RowError       `bson:"row_errors,omitempty" json:"row_errors,omitempty"`
	DeviceInfo   string           `bson:"device_info" json:"device_info"`
	IPAddress    string           `bson:"ip_address" json:"ip_address"`
	CreatedAt    time.Time        `bson:"created_at" json:"created_at"`
	CommittedAt  time.Time        `bson:"committed_at,omitempty" json:"committed_at,omitempty"`
}
