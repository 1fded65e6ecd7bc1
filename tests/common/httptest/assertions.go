//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"slotbook/internal/handler/httperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "response: %s", w.Body.String()) {
		return
	}
	if targetStruct == nil || expectedStatus < 200 || expectedStatus >= 300 {
		return
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), targetStruct), "decode %s", w.Body.String())
}

// AssertErrorResponse checks the status and that the top-level message
// contains expectedErrorMsg. An empty message only checks the envelope.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) httperr.Response {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "response: %s", w.Body.String())

	var body httperr.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "decode error body %s", w.Body.String())
	if expectedErrorMsg != "" {
		assert.Contains(t, body.Error.Message, expectedErrorMsg)
	}
	return body
}

// AssertErrorDetail also checks the detail, which holds the domain error text
// for client errors such as an unavailable slot or an invalid rule.
func AssertErrorDetail(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg, expectedDetail string) {
	t.Helper()

	body := AssertErrorResponse(t, w, expectedStatus, expectedErrorMsg)
	detail, ok := body.Detail.(string)
	if assert.True(t, ok, "detail is %T, want string", body.Detail) {
		assert.Contains(t, detail, expectedDetail)
	}
}

// AssertInternalError checks a 500 that does not leak its cause.
func AssertInternalError(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()

	body := AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
	assert.Nil(t, body.Detail)
}
