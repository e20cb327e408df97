package usecase

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"main/middleware"
	"main/model"
	"main/repository"
	"main/services"
	"main/utils"

	"github.com/shopspring/decimal"
)

// MaxUploadSize caps CSV uploads at 10MB, rejected before any parsing.
const MaxUploadSize = 10 << 20

var expenseHeader = []string{
	"propertyName", "type", "description", "amount",
	"date", "vendor", "invoiceNumber", "category",
}

var reservationHeader = []string{
	"guestName", "guestEmail", "checkInDate", "checkOutDate", "nights",
	"grossAmount", "propertyId", "propertyName", "status", "source",
}

type ImportsService struct {
	ImportsRepo *repository.ImportsRepo
	Core        *services.CoreClient
	Cache       *services.ReportCache
}

// AllowedUploadType reports whether an upload passes the client-side type
// gate: a spreadsheet MIME type, or a .csv/.xls/.xlsx extension. Browsers
// are inconsistent about CSV MIME types, hence the extension fallback.
func AllowedUploadType(fileName, contentType string) bool {
	switch strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0])) {
	case "text/csv",
		"application/csv",
		"application/vnd.ms-excel",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":
		return true
	}

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv", ".xls", ".xlsx":
		return true
	}
	return false
}

// StageExpenses parses an expense CSV and stages the result for preview.
// Row errors don't fail the upload; they ride along in the batch so the
// dashboard can show which lines need fixing.
func (s *ImportsService) StageExpenses(userID, fileName string, fileSize int64, file io.Reader, deviceInfo, ipAddress string) (*model.ImportBatch, error) {
	rows, rowErrs, total, err := parseExpenseCSV(file)
	if err != nil {
		middleware.TrackImportOperation(string(model.ImportExpenses), "reject")
		return nil, err
	}

	batch := &model.ImportBatch{
		BatchID:     utils.GenerateBatchID(),
		UserID:      userID,
		Kind:        model.ImportExpenses,
		Status:      model.ImportStaged,
		FileName:    fileName,
		FileSize:    fileSize,
		RowCount:    len(rows),
		ErrorCount:  len(rowErrs),
		TotalAmount: total.StringFixed(2),
		Expenses:    rows,
		RowErrors:   rowErrs,
		DeviceInfo:  deviceInfo,
		IPAddress:   ipAddress,
	}

	if err := s.ImportsRepo.CreateBatch(batch); err != nil {
		middleware.TrackError("db")
		return nil, err
	}

	middleware.TrackImportOperation(string(model.ImportExpenses), "stage")
	middleware.TrackImportRows(string(model.ImportExpenses), len(rows), len(rowErrs))
	return batch, nil
}

// StageReservations parses a reservation CSV and stages the result.
func (s *ImportsService) StageReservations(userID, fileName string, fileSize int64, file io.Reader, deviceInfo, ipAddress string) (*model.ImportBatch, error) {
	rows, rowErrs, total, err := parseReservationCSV(file)
	if err != nil {
		middleware.TrackImportOperation(string(model.ImportReservations), "reject")
		return nil, err
	}

	batch := &model.ImportBatch{
		BatchID:      utils.GenerateBatchID(),
		UserID:       userID,
		Kind:         model.ImportReservations,
		Status:       model.ImportStaged,
		FileName:     fileName,
		FileSize:     fileSize,
		RowCount:     len(rows),
		ErrorCount:   len(rowErrs),
		TotalAmount:  total.StringFixed(2),
		Reservations: rows,
		RowErrors:    rowErrs,
		DeviceInfo:   deviceInfo,
		IPAddress:    ipAddress,
	}

	if err := s.ImportsRepo.CreateBatch(batch); err != nil {
		middleware.TrackError("db")
		return nil, err
	}

	middleware.TrackImportOperation(string(model.ImportReservations), "stage")
	middleware.TrackImportRows(string(model.ImportReservations), len(rows), len(rowErrs))
	return batch, nil
}

// GetBatch returns one of the user's batches with its full preview payload.
func (s *ImportsService) GetBatch(userID, batchID string) (*model.ImportBatch, error) {
	if batchID == "" {
		return nil, errors.New("batch ID is required")
	}
	return s.ImportsRepo.GetBatch(batchID, userID)
}

// ListBatches returns the user's batches without row payloads.
func (s *ImportsService) ListBatches(userID string) ([]*model.ImportBatch, error) {
	return s.ImportsRepo.GetUserBatches(userID)
}

// Commit forwards a staged batch's valid rows to the core and marks the
// batch committed. Rows that failed parsing never leave this service.
func (s *ImportsService) Commit(ctx context.Context, token, userID, batchID string) (*model.ImportBatch, error) {
	batch, err := s.ImportsRepo.GetBatch(batchID, userID)
	if err != nil {
		return nil, err
	}
	if batch.Status != model.ImportStaged {
		return nil, fmt.Errorf("import batch is already %s", batch.Status)
	}
	if batch.RowCount == 0 {
		return nil, errors.New("import batch has no valid rows to commit")
	}

	switch batch.Kind {
	case model.ImportExpenses:
		err = s.Core.SubmitExpenses(ctx, token, batch.Expenses)
	case model.ImportReservations:
		err = s.Core.SubmitReservations(ctx, token, batch.Reservations)
	default:
		return nil, fmt.Errorf("unknown import kind %q", batch.Kind)
	}
	if err != nil {
		middleware.TrackError("core_api")
		return nil, err
	}

	if err := s.ImportsRepo.MarkCommitted(batchID, userID); err != nil {
		middleware.TrackError("db")
		return nil, err
	}

	middleware.TrackImportOperation(string(batch.Kind), "commit")

	// New expenses/reservations change what the statements view shows,
	// whatever date window it was cached under
	if s.Cache != nil {
		if err := s.Cache.InvalidateResource(userID, "statements"); err != nil {
			middleware.TrackError("cache")
		}
	}

	batch.Status = model.ImportCommitted
	batch.CommittedAt = time.Now()
	return batch, nil
}

// Discard drops a staged batch without sending anything to the core.
func (s *ImportsService) Discard(userID, batchID string) error {
	batch, err := s.ImportsRepo.GetBatch(batchID, userID)
	if err != nil {
		return err
	}
	if err := s.ImportsRepo.MarkDiscarded(batchID, userID); err != nil {
		return err
	}
	middleware.TrackImportOperation(string(batch.Kind), "discard")
	return nil
}

func parseExpenseCSV(file io.Reader) ([]model.ExpenseRow, []model.RowError, decimal.Decimal, error) {
	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, decimal.Zero, errors.New("file is empty or not a valid CSV")
	}
	if err := matchHeader(header, expenseHeader); err != nil {
		return nil, nil, decimal.Zero, err
	}

	var rows []model.ExpenseRow
	var rowErrs []model.RowError
	total := decimal.Zero

	line := 1 // header was line 1
	for {
		record, err := reader.Read()
		line++
		if err == io.EOF {
			break
		}
		if err != nil {
			rowErrs = append(rowErrs, model.RowError{Line: line, Message: "malformed CSV line"})
			continue
		}

		row, err := parseExpenseRow(record)
		if err != nil {
			rowErrs = append(rowErrs, model.RowError{Line: line, Message: err.Error()})
			continue
		}

		amount, _ := decimal.NewFromString(row.Amount)
		total = total.Add(amount)
		rows = append(rows, row)
	}

	if len(rows) == 0 && len(rowErrs) == 0 {
		return nil, nil, decimal.Zero, errors.New("file contains no data rows")
	}
	return rows, rowErrs, total, nil
}

func parseExpenseRow(record []string) (model.ExpenseRow, error) {
	for i := range record {
		record[i] = strings.TrimSpace(record[i])
	}

	row := model.ExpenseRow{
		PropertyName:  record[0],
		Type:          record[1],
		Description:   record[2],
		Vendor:        record[5],
		InvoiceNumber: record[6],
		Category:      record[7],
	}

	if row.PropertyName == "" {
		return row, errors.New("propertyName is required")
	}

	amount, err := parseAmount(record[3])
	if err != nil {
		return row, fmt.Errorf("amount: %v", err)
	}
	row.Amount = amount.StringFixed(2)

	date, err := normalizeDate(record[4])
	if err != nil {
		return row, fmt.Errorf("date: %v", err)
	}
	row.Date = date

	return row, nil
}

func parseReservationCSV(file io.Reader) ([]model.ReservationRow, []model.RowError, decimal.Decimal, error) {
	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, decimal.Zero, errors.New("file is empty or not a valid CSV")
	}
	if err := matchHeader(header, reservationHeader); err != nil {
		return nil, nil, decimal.Zero, err
	}

	var rows []model.ReservationRow
	var rowErrs []model.RowError
	total := decimal.Zero

	line := 1
	for {
		record, err := reader.Read()
		line++
		if err == io.EOF {
			break
		}
		if err != nil {
			rowErrs = append(rowErrs, model.RowError{Line: line, Message: "malformed CSV line"})
			continue
		}

		row, err := parseReservationRow(record)
		if err != nil {
			rowErrs = append(rowErrs, model.RowError{Line: line, Message: err.Error()})
			continue
		}

		gross, _ := decimal.NewFromString(row.GrossAmount)
		total = total.Add(gross)
		rows = append(rows, row)
	}

	if len(rows) == 0 && len(rowErrs) == 0 {
		return nil, nil, decimal.Zero, errors.New("file contains no data rows")
	}
	return rows, rowErrs, total, nil
}

func parseReservationRow(record []string) (model.ReservationRow, error) {
	for i := range record {
		record[i] = strings.TrimSpace(record[i])
	}

	row := model.ReservationRow{
		GuestName:    record[0],
		GuestEmail:   record[1],
		PropertyID:   record[6],
		PropertyName: record[7],
		Status:       record[8],
		Source:       record[9],
	}

	if row.GuestName == "" {
		return row, errors.New("guestName is required")
	}
	if row.PropertyID == "" && row.PropertyName == "" {
		return row, errors.New("propertyId or propertyName is required")
	}
	if row.GuestEmail != "" && !strings.Contains(row.GuestEmail, "@") {
		return row, errors.New("guestEmail is not a valid email address")
	}

	checkIn, err := normalizeDate(record[2])
	if err != nil {
		return row, fmt.Errorf("checkInDate: %v", err)
	}
	checkOut, err := normalizeDate(record[3])
	if err != nil {
		return row, fmt.Errorf("checkOutDate: %v", err)
	}
	if checkOut <= checkIn {
		return row, errors.New("checkOutDate must be after checkInDate")
	}
	row.CheckInDate = checkIn
	row.CheckOutDate = checkOut

	// Nights defaults to the stay length when the column is blank
	if record[4] == "" {
		in, _ := time.Parse("2006-01-02", checkIn)
		out, _ := time.Parse("2006-01-02", checkOut)
		row.Nights = int(out.Sub(in).Hours() / 24)
	} else {
		nights, err := strconv.Atoi(record[4])
		if err != nil || nights <= 0 {
			return row, errors.New("nights must be a positive integer")
		}
		row.Nights = nights
	}

	gross, err := parseAmount(record[5])
	if err != nil {
		return row, fmt.Errorf("grossAmount: %v", err)
	}
	row.GrossAmount = gross.StringFixed(2)

	return row, nil
}

// matchHeader enforces the documented column order, case-insensitively.
func matchHeader(got, want []string) error {
	if len(got) != len(want) {
		return fmt.Errorf("expected %d columns, found %d", len(want), len(got))
	}
	for i := range want {
		if !strings.EqualFold(strings.TrimSpace(got[i]), want[i]) {
			return fmt.Errorf("expected column %q at position %d, found %q",
				want[i], i+1, strings.TrimSpace(got[i]))
		}
	}
	return nil
}

// parseAmount reads a monetary value, tolerating currency symbols and
// thousands separators, and rounds to cents.
func parseAmount(value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, errors.New("value is required")
	}
	cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(value)
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%q is not a valid amount", value)
	}
	return amount.Round(2), nil
}

// normalizeDate accepts YYYY-MM-DD or US-style M/D/YYYY and returns the
// canonical YYYY-MM-DD form.
func normalizeDate(value string) (string, error) {
	if value == "" {
		return "", errors.New("value is required")
	}
	for _, layout := range []string{"2006-01-02", "01/02/2006", "1/2/2006"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", fmt.Errorf("%q is not a valid date", value)
}
