package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"main/config"
	"main/middleware"
	"main/model"
)

// CoreClient talks to the core backend that owns statement calculation,
// schedule rule persistence, payout math and Stripe onboarding. Every call
// forwards the caller's bearer token; this service holds no credentials of
// its own.
type CoreClient struct {
	baseURL string
	http    *http.Client
}

// coreEnvelope is the response shape all core JSON endpoints share: a
// success flag plus either a payload or an error/message string.
type coreEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

func NewCoreClient(cfg config.CoreAPIConfig) *CoreClient {
	return &CoreClient{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

func (cc *CoreClient) do(ctx context.Context, token, operation, method, path string, body interface{}, out interface{}) error {
	timer := middleware.TrackCoreAPIRequest(operation)
	defer timer.ObserveDuration()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %v", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, cc.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := cc.http.Do(req)
	if err != nil {
		middleware.CoreAPIFailures.WithLabelValues(operation).Inc()
		return fmt.Errorf("core api unreachable: %v", err)
	}
	defer resp.Body.Close()

	var envelope coreEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		middleware.CoreAPIFailures.WithLabelValues(operation).Inc()
		return fmt.Errorf("core api returned malformed response: %v", err)
	}

	if !envelope.Success {
		middleware.CoreAPIFailures.WithLabelValues(operation).Inc()
		switch {
		case envelope.Error != "":
			return errors.New(envelope.Error)
		case envelope.Message != "":
			return errors.New(envelope.Message)
		default:
			return fmt.Errorf("core api request failed with status %d", resp.StatusCode)
		}
	}

	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("failed to decode core api payload: %v", err)
		}
	}
	return nil
}

// ListStatements fetches statements overlapping the given window.
func (cc *CoreClient) ListStatements(ctx context.Context, token string, rng model.DateRange) ([]model.Statement, error) {
	query := url.Values{}
	query.Set("startDate", rng.StartDate)
	query.Set("endDate", rng.EndDate)

	var statements []model.Statement
	err := cc.do(ctx, token, "list_statements", http.MethodGet, "/api/statements?"+query.Encode(), nil, &statements)
	return statements, err
}

// StatementPDF streams a generated statement PDF from the core. The caller
// owns the returned body.
func (cc *CoreClient) StatementPDF(ctx context.Context, token, statementID string) (io.ReadCloser, error) {
	timer := middleware.TrackCoreAPIRequest("statement_pdf")
	defer timer.ObserveDuration()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		cc.baseURL+"/api/statements/"+url.PathEscape(statementID)+"/pdf", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := cc.http.Do(req)
	if err != nil {
		middleware.CoreAPIFailures.WithLabelValues("statement_pdf").Inc()
		return nil, fmt.Errorf("core api unreachable: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		middleware.CoreAPIFailures.WithLabelValues("statement_pdf").Inc()
		return nil, fmt.Errorf("core api returned status %d for statement PDF", resp.StatusCode)
	}
	return resp.Body, nil
}

// ListScheduleRules fetches every saved schedule rule.
func (cc *CoreClient) ListScheduleRules(ctx context.Context, token string) ([]model.ScheduleRule, error) {
	var rules []model.ScheduleRule
	err := cc.do(ctx, token, "list_schedules", http.MethodGet, "/api/schedules", nil, &rules)
	return rules, err
}

// SaveScheduleRule upserts the rule for its tag. The core evaluates rules
// and fires statement generation; this service only constructs them.
func (cc *CoreClient) SaveScheduleRule(ctx context.Context, token string, rule model.ScheduleRule) error {
	return cc.do(ctx, token, "save_schedule", http.MethodPut,
		"/api/schedules/"+url.PathEscape(rule.TagName), rule, nil)
}

// SubmitExpenses forwards committed expense rows.
func (cc *CoreClient) SubmitExpenses(ctx context.Context, token string, rows []model.ExpenseRow) error {
	payload := map[string]interface{}{"expenses": rows}
	return cc.do(ctx, token, "submit_expenses", http.MethodPost, "/api/expenses/bulk", payload, nil)
}

// SubmitReservations forwards committed reservation rows.
func (cc *CoreClient) SubmitReservations(ctx context.Context, token string, rows []model.ReservationRow) error {
	payload := map[string]interface{}{"reservations": rows}
	return cc.do(ctx, token, "submit_reservations", http.MethodPost, "/api/reservations/bulk", payload, nil)
}

// ListListings fetches the managed properties.
func (cc *CoreClient) ListListings(ctx context.Context, token string) ([]model.Listing, error) {
	var listings []model.Listing
	err := cc.do(ctx, token, "list_listings", http.MethodGet, "/api/listings", nil, &listings)
	return listings, err
}

// ListTags fetches the property grouping tags.
func (cc *CoreClient) ListTags(ctx context.Context, token string) ([]model.Tag, error) {
	var tags []model.Tag
	err := cc.do(ctx, token, "list_tags", http.MethodGet, "/api/tags", nil, &tags)
	return tags, err
}

// CreateStripeConnectLink asks the core for a Stripe Connect onboarding URL.
func (cc *CoreClient) CreateStripeConnectLink(ctx context.Context, token, returnURL string) (string, error) {
	payload := map[string]string{"returnUrl": returnURL}
	var out struct {
		URL string `json:"url"`
	}
	err := cc.do(ctx, token, "stripe_connect_link", http.MethodPost, "/api/stripe/connect-link", payload, &out)
	return out.URL, err
}
