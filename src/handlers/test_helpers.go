package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// Test helpers for handler tests

// createTestContext creates a test Gin context with recorder
func createTestContext() (*httptest.ResponseRecorder, *gin.Context) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return w, c
}

// newRequestContext creates a test context for method and path with optional
// JSON body and path parameters given as key, value pairs
func newRequestContext(method, path, body string, params ...string) (*httptest.ResponseRecorder, *gin.Context) {
	w, c := createTestContext()
	if body != "" {
		c.Request = jsonRequest(method, path, body)
	} else {
		c.Request = httptest.NewRequest(method, path, nil)
	}
	for i := 0; i+1 < len(params); i += 2 {
		c.Params = append(c.Params, gin.Param{Key: params[i], Value: params[i+1]})
	}
	return w, c
}

// jsonRequest builds a request carrying a JSON body
func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// assertStatusCode checks if response status code matches expected
func assertStatusCode(t *testing.T, w *httptest.ResponseRecorder, expectedCode int) {
	t.Helper()
	if w.Code != expectedCode {
		t.Errorf("expected status %d, got %d: %s", expectedCode, w.Code, w.Body.String())
	}
}

// decodeBody parses a JSON object response
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response %q: %v", w.Body.String(), err)
	}
	return response
}

// assertJSONError checks the {"error": ...} body written by the responder.
// Only internal errors may carry an extra "detail" field.
func assertJSONError(t *testing.T, w *httptest.ResponseRecorder, expectedError string) {
	t.Helper()
	response := decodeBody(t, w)
	if response["error"] != expectedError {
		t.Errorf("expected error '%s', got '%v'", expectedError, response["error"])
	}
	for key := range response {
		if key != "error" && !(key == "detail" && w.Code == http.StatusInternalServerError) {
			t.Errorf("unexpected field %q in error body", key)
		}
	}
}

// assertJSONMessage checks the {"message": ...} body written on delete
func assertJSONMessage(t *testing.T, w *httptest.ResponseRecorder, expected string) {
	t.Helper()
	if got := decodeBody(t, w)["message"]; got != expected {
		t.Errorf("expected message '%s', got '%v'", expected, got)
	}
}
