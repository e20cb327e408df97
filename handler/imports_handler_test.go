package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"testing"

	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func init() {
	os.Setenv("GO_ENV", "test")
	gin.SetMode(gin.TestMode)
	// Registers the timeofday/datepreset binding validators
	utils.InitValidator()
}

// testAuth stands in for the JWT middleware in handler tests.
func testAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", "test-user")
		c.Set("core_token", "test-token")
		c.Next()
	}
}

func newUploadRouter(importsService *usecase.ImportsService) *gin.Engine {
	router := gin.New()
	router.Use(testAuth())
	router.POST("/api/imports/expenses", func(c *gin.Context) {
		UploadExpensesHandler(c, importsService)
	})
	return router
}

func multipartUpload(t *testing.T, fieldName, fileName, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="`+fieldName+`"; filename="`+fileName+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("failed to create multipart part: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("failed to write multipart content: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	// The service has no repo or core client wired; reaching either would
	// panic, so a clean 413 proves the file was refused before any work.
	router := newUploadRouter(&usecase.ImportsService{})

	oversized := bytes.Repeat([]byte("a"), 12<<20) // 12MB
	body, contentType := multipartUpload(t, "file", "expenses.csv", "text/csv", oversized)

	req := httptest.NewRequest(http.MethodPost, "/api/imports/expenses", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusRequestEntityTooLarge)
	}

	var response struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Error != "File exceeds the 10MB upload limit" {
		t.Errorf("error = %q, want size-limit message", response.Error)
	}
}

func TestUploadRejectsUnsupportedType(t *testing.T) {
	router := newUploadRouter(&usecase.ImportsService{})

	body, contentType := multipartUpload(t, "file", "notes.txt", "text/plain", []byte("hello"))

	req := httptest.NewRequest(http.MethodPost, "/api/imports/expenses", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestUploadRejectsMissingFile(t *testing.T) {
	router := newUploadRouter(&usecase.ImportsService{})

	body, contentType := multipartUpload(t, "wrong_field", "expenses.csv", "text/csv", []byte("a,b\n"))

	req := httptest.NewRequest(http.MethodPost, "/api/imports/expenses", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}
