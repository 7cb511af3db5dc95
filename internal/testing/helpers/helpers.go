// Package helpers provides common test utilities for e2e testing.
//
// This package includes HTTP request builders, response validators,
// and assertion helpers for testing API endpoints.
package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/eventmate/api/internal/database"
)

// ============================================================================
// HTTP Request Helpers
// ============================================================================

// RequestBuilder helps construct HTTP requests for testing
type RequestBuilder struct {
	t       *testing.T
	method  string
	path    string
	body    interface{}
	headers map[string]string
}

// NewRequest creates a new request builder
func NewRequest(t *testing.T, method, path string) *RequestBuilder {
	t.Helper()
	return &RequestBuilder{
		t:       t,
		method:  method,
		path:    path,
		headers: make(map[string]string),
	}
}

// WithBody sets the request body (will be JSON encoded)
func (rb *RequestBuilder) WithBody(body interface{}) *RequestBuilder {
	rb.body = body
	return rb
}

// WithHeader adds a header to the request
func (rb *RequestBuilder) WithHeader(key, value string) *RequestBuilder {
	rb.headers[key] = value
	return rb
}

// Build creates the HTTP request
func (rb *RequestBuilder) Build() *http.Request {
	rb.t.Helper()

	var bodyReader io.Reader
	if rb.body != nil {
		bodyBytes, err := json.Marshal(rb.body)
		if err != nil {
			rb.t.Fatalf("helpers: failed to marshal body: %v", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req := httptest.NewRequest(rb.method, rb.path, bodyReader)

	// Set content type for requests with body
	if rb.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Add custom headers
	for k, v := range rb.headers {
		req.Header.Set(k, v)
	}

	return req
}

// ============================================================================
// Response Assertion Helpers
// ============================================================================

// Envelope mirrors the API response envelope for decoding in tests
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
	Errors  []string        `json:"errors,omitempty"`
	Count   *int            `json:"count,omitempty"`
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, resp *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if resp.Code != expected {
		t.Errorf("expected status %d, got %d. Body: %s", expected, resp.Code, resp.Body.String())
	}
}

// AssertSuccess validates a success envelope with the expected status
func AssertSuccess(t *testing.T, resp *httptest.ResponseRecorder, expectedStatus int) Envelope {
	t.Helper()

	AssertStatus(t, resp, expectedStatus)

	env := DecodeEnvelope(t, resp)
	if !env.Success {
		t.Errorf("expected success envelope, got failure. Body: %s", resp.Body.String())
	}
	return env
}

// AssertFailure validates a failure envelope with the expected status
func AssertFailure(t *testing.T, resp *httptest.ResponseRecorder, expectedStatus int) Envelope {
	t.Helper()

	AssertStatus(t, resp, expectedStatus)

	env := DecodeEnvelope(t, resp)
	if env.Success {
		t.Errorf("expected failure envelope, got success. Body: %s", resp.Body.String())
	}
	return env
}

// AssertValidationError checks for a 400 failure mentioning the given field
func AssertValidationError(t *testing.T, resp *httptest.ResponseRecorder, field string) {
	t.Helper()

	env := AssertFailure(t, resp, http.StatusBadRequest)

	for _, e := range env.Errors {
		if strings.Contains(e, field) {
			return
		}
	}
	t.Errorf("expected validation error mentioning %q, got errors: %v", field, env.Errors)
}

// DecodeEnvelope decodes the response body into an Envelope
func DecodeEnvelope(t *testing.T, resp *httptest.ResponseRecorder) Envelope {
	t.Helper()

	var env Envelope
	bodyBytes := resp.Body.Bytes()
	if err := json.Unmarshal(bodyBytes, &env); err != nil {
		t.Fatalf("failed to decode envelope: %v. Body: %s", err, string(bodyBytes))
	}
	return env
}

// DecodeData decodes the envelope's data field into the given struct
func DecodeData(t *testing.T, resp *httptest.ResponseRecorder, v interface{}) {
	t.Helper()

	env := DecodeEnvelope(t, resp)
	if env.Data == nil {
		t.Fatalf("expected data in envelope, got none. Body: %s", resp.Body.String())
	}
	if err := json.Unmarshal(env.Data, v); err != nil {
		t.Fatalf("failed to decode data: %v. Data: %s", err, string(env.Data))
	}
}

// GetDataMap extracts the "data" field from a standard response as a map
func GetDataMap(t *testing.T, resp *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var data map[string]interface{}
	DecodeData(t, resp, &data)
	return data
}

// ============================================================================
// Database Assertion Helpers
// ============================================================================

// AssertRecordExists checks that a record exists in the database
func AssertRecordExists(t *testing.T, db database.Database, table, id string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	query := "SELECT * FROM type::record($id)"
	results, err := db.Query(ctx, query, map[string]interface{}{
		"id": qualifyID(table, id),
	})
	if err != nil {
		t.Fatalf("failed to query for record: %v", err)
	}

	if !hasResults(results) {
		t.Errorf("expected record %s to exist, but it doesn't", qualifyID(table, id))
	}
}

// AssertRecordNotExists checks that a record does not exist
func AssertRecordNotExists(t *testing.T, db database.Database, table, id string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	query := "SELECT * FROM type::record($id)"
	results, err := db.Query(ctx, query, map[string]interface{}{
		"id": qualifyID(table, id),
	})
	if err != nil {
		// Query error might mean not found, which is what we want
		return
	}

	if hasResults(results) {
		t.Errorf("expected record %s to not exist, but it does", qualifyID(table, id))
	}
}

// qualifyID prepends the table name to a bare record ID
func qualifyID(table, id string) string {
	if strings.Contains(id, ":") {
		return id
	}
	return table + ":" + id
}

// hasResults checks if SurrealDB query returned any results
func hasResults(results []interface{}) bool {
	if len(results) == 0 {
		return false
	}

	resp, ok := results[0].(map[string]interface{})
	if !ok {
		return false
	}

	result, ok := resp["result"]
	if !ok {
		return false
	}

	switch v := result.(type) {
	case []interface{}:
		return len(v) > 0
	case map[string]interface{}:
		return true
	case nil:
		return false
	default:
		return true
	}
}

// ============================================================================
// Utility Helpers
// ============================================================================

// StringPtr returns a pointer to the string
func StringPtr(s string) *string {
	return &s
}

// Float64Ptr returns a pointer to the float64
func Float64Ptr(f float64) *float64 {
	return &f
}

// BoolPtr returns a pointer to the bool
func BoolPtr(b bool) *bool {
	return &b
}

// MustParseTime parses a time string or fails the test
func MustParseTime(t *testing.T, layout, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(layout, value)
	if err != nil {
		t.Fatalf("failed to parse time %q: %v", value, err)
	}
	return parsed
}
