package dto

import (
	"main/model"
	"time"
)

// Preview rows shown after staging; the full batch stays server-side.
const previewRowLimit = 50

// ImportBatchResponse summarizes a staged or committed upload for the
// dashboard's preview table.
type ImportBatchResponse struct {
	ID           string                 `json:"id"`
	Kind         model.ImportKind       `json:"kind"`
	Status       model.ImportStatus     `json:"status"`
	FileName     string                 `json:"file_name"`
	FileSize     int64                  `json:"file_size"`
	RowCount     int                    `json:"row_count"`
	ErrorCount   int                    `json:"error_count"`
	TotalAmount  string                 `json:"total_amount"`
	Expenses     []model.ExpenseRow     `json:"expenses,omitempty"`
	Reservations []model.ReservationRow `json:"reservations,omitempty"`
	RowErrors    []model.RowError       `json:"row_errors,omitempty"`
	Truncated    bool                   `json:"truncated,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
	CommittedAt  *time.Time             `json:"committed_at,omitempty"`
}

func ToImportBatchResponse(batch *model.ImportBatch) ImportBatchResponse {
	response := ImportBatchResponse{
		ID:          batch.BatchID,
		Kind:        batch.Kind,
		Status:      batch.Status,
		FileName:    batch.FileName,
		FileSize:    batch.FileSize,
		RowCount:    batch.RowCount,
		ErrorCount:  batch.ErrorCount,
		TotalAmount: batch.TotalAmount,
		RowErrors:   batch.RowErrors,
		CreatedAt:   batch.CreatedAt,
	}

	if !batch.CommittedAt.IsZero() {
		committedAt := batch.CommittedAt
		response.CommittedAt = &committedAt
	}

	if len(batch.Expenses) > previewRowLimit {
		response.Expenses = batch.Expenses[:previewRowLimit]
		response.Truncated = true
	} else {
		response.Expenses = batch.Expenses
	}

	if len(batch.Reservations) > previewRowLimit {
		response.Reservations = batch.Reservations[:previewRowLimit]
		response.Truncated = true
	} else {
		response.Reservations = batch.Reservations
	}

	return response
}

func ToImportBatchResponses(batches []*model.ImportBatch) []ImportBatchResponse {
	responses := make([]ImportBatchResponse, 0, len(batches))
	for _, batch := range batches {
		responses = append(responses, ToImportBatchResponse(batch))
	}
	return responses
}
