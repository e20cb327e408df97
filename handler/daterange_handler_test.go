package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"main/model"
	"main/usecase"

	"github.com/gin-gonic/gin"
)

func newDateRangeRouter() *gin.Engine {
	statementsService := &usecase.StatementsService{}

	router := gin.New()
	router.Use(testAuth())
	router.GET("/api/date-ranges", ListPresetsHandler)
	router.GET("/api/date-ranges/resolve", func(c *gin.Context) {
		ResolveDateRangeHandler(c, statementsService)
	})
	return router
}

type resolveResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Preset model.Preset    `json:"preset"`
		Label  string          `json:"label"`
		Range  model.DateRange `json:"range"`
	} `json:"data"`
	Error string `json:"error"`
}

func resolveRange(t *testing.T, router *gin.Engine, query string) (int, resolveResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/date-ranges/resolve?"+query, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var response resolveResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return w.Code, response
}

func TestResolveDateRangeHandler(t *testing.T) {
	router := newDateRangeRouter()

	t.Run("named preset with pinned reference date", func(t *testing.T) {
		code, response := resolveRange(t, router, "preset=last-month&date=2024-03-15")
		if code != http.StatusOK {
			t.Fatalf("status = %d, want 200", code)
		}
		if response.Data.Range.StartDate != "2024-02-01" || response.Data.Range.EndDate != "2024-02-29" {
			t.Errorf("range = %+v, want 2024-02-01..2024-02-29", response.Data.Range)
		}
	})

	t.Run("explicit dates demote the preset to custom", func(t *testing.T) {
		code, response := resolveRange(t, router,
			"preset=this-month&startDate=2024-01-10&endDate=2024-01-20&date=2024-03-15")
		if code != http.StatusOK {
			t.Fatalf("status = %d, want 200", code)
		}
		if response.Data.Preset != model.PresetCustom {
			t.Errorf("preset = %q, want custom", response.Data.Preset)
		}
		if response.Data.Range.StartDate != "2024-01-10" || response.Data.Range.EndDate != "2024-01-20" {
			t.Errorf("range = %+v, want pass-through of supplied dates", response.Data.Range)
		}
	})

	t.Run("unknown preset is rejected", func(t *testing.T) {
		code, _ := resolveRange(t, router, "preset=fortnight")
		if code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", code)
		}
	})

	t.Run("custom with one date is rejected", func(t *testing.T) {
		code, _ := resolveRange(t, router, "startDate=2024-01-10")
		if code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", code)
		}
	})

	t.Run("reversed custom range is rejected", func(t *testing.T) {
		code, _ := resolveRange(t, router, "startDate=2024-01-20&endDate=2024-01-10")
		if code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", code)
		}
	})
}

func TestListPresetsHandler(t *testing.T) {
	router := newDateRangeRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/date-ranges?date=2024-03-15", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var response struct {
		Data []struct {
			Preset model.Preset     `json:"preset"`
			Label  string           `json:"label"`
			Range  *model.DateRange `json:"range"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(response.Data) != len(model.AllPresets()) {
		t.Fatalf("listed %d presets, want %d", len(response.Data), len(model.AllPresets()))
	}

	// Named presets come resolved; custom has no range until dates are typed
	for _, entry := range response.Data {
		if entry.Preset == model.PresetCustom {
			if entry.Range != nil {
				t.Errorf("custom preset carries a range: %+v", entry.Range)
			}
		} else if entry.Range == nil {
			t.Errorf("preset %q missing resolved range", entry.Preset)
		}
	}
}
