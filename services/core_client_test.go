package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"main/config"
	"main/model"
)

func testClient(t *testing.T, handler http.HandlerFunc) (*CoreClient, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewCoreClient(config.CoreAPIConfig{
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
	})
	return client, server
}

func TestListScheduleRulesDecodesEnvelope(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/schedules" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer owner-token" {
			t.Errorf("Authorization = %q", r.Header.Get("Authorization"))
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": []map[string]interface{}{
				{
					"tagName":         "downtown",
					"isEnabled":       true,
					"frequencyType":   "weekly",
					"dayOfWeek":       2,
					"timeOfDay":       "09:00",
					"calculationType": "checkout",
				},
			},
		})
	})

	rules, err := client.ListScheduleRules(context.Background(), "owner-token")
	if err != nil {
		t.Fatalf("ListScheduleRules returned error: %v", err)
	}
	if len(rules) != 1 {
		t.Fatalf("got %d rules, want 1", len(rules))
	}
	if rules[0].TagName != "downtown" || rules[0].DayOfWeek == nil || *rules[0].DayOfWeek != 2 {
		t.Errorf("rule decoded incorrectly: %+v", rules[0])
	}
}

func TestSaveScheduleRuleSendsRule(t *testing.T) {
	var received model.ScheduleRule

	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/schedules/downtown" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("failed to decode rule: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
	})

	day := 2
	rule := model.ScheduleRule{
		TagName:         "downtown",
		IsEnabled:       true,
		FrequencyType:   model.FrequencyWeekly,
		DayOfWeek:       &day,
		TimeOfDay:       "09:00",
		CalculationType: model.CalculationCheckout,
	}
	if err := client.SaveScheduleRule(context.Background(), "owner-token", rule); err != nil {
		t.Fatalf("SaveScheduleRule returned error: %v", err)
	}
	if received.TagName != "downtown" || received.FrequencyType != model.FrequencyWeekly {
		t.Errorf("core received wrong rule: %+v", received)
	}
	if received.DayOfMonth != nil {
		t.Error("weekly rule leaked a dayOfMonth to the core")
	}
}

func TestCoreErrorEnvelopeSurfacesMessage(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   "tag not found",
		})
	})

	_, err := client.ListStatements(context.Background(), "owner-token", model.DateRange{
		StartDate: "2024-03-01",
		EndDate:   "2024-03-31",
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Error() != "tag not found" {
		t.Errorf("error = %q, want core's message passed through", err.Error())
	}
}

func TestListStatementsSendsWindow(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if query.Get("startDate") != "2024-02-01" || query.Get("endDate") != "2024-02-29" {
			t.Errorf("window = %s..%s", query.Get("startDate"), query.Get("endDate"))
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    []map[string]interface{}{{"id": "st-1", "netPayout": "1250.00"}},
		})
	})

	statements, err := client.ListStatements(context.Background(), "owner-token", model.DateRange{
		StartDate: "2024-02-01",
		EndDate:   "2024-02-29",
	})
	if err != nil {
		t.Fatalf("ListStatements returned error: %v", err)
	}
	if len(statements) != 1 || statements[0].NetPayout != "1250.00" {
		t.Errorf("statements decoded incorrectly: %+v", statements)
	}
}

func TestCreateStripeConnectLink(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/stripe/connect-link" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]string{"url": "https://connect.stripe.com/setup/s/abc123"},
		})
	})

	url, err := client.CreateStripeConnectLink(context.Background(), "owner-token", "https://app.example.com/settings")
	if err != nil {
		t.Fatalf("CreateStripeConnectLink returned error: %v", err)
	}
	if url != "https://connect.stripe.com/setup/s/abc123" {
		t.Errorf("url = %q", url)
	}
}

func TestMalformedCoreResponse(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway error</html>"))
	})

	if _, err := client.ListTags(context.Background(), "owner-token"); err == nil {
		t.Fatal("expected error for non-JSON response, got nil")
	}
}
