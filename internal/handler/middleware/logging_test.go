//go:build unit

package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"slotbook/internal/domain/user"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loggedRouter(buf *bytes.Buffer, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	r := gin.New()
	r.Use(RequestLogger(logger))
	r.POST("/public/businesses/:slug/bookings", handler)
	return r
}

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var lines []map[string]any
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var line map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &line), raw)
		lines = append(lines, line)
	}
	return lines
}

func TestRequestLogger(t *testing.T) {
	ownerID := uuid.New()

	t.Run("completion line carries business, caller and idempotency key", func(t *testing.T) {
		var buf bytes.Buffer
		r := loggedRouter(&buf, func(c *gin.Context) {
			c.Set(ctxUserIDKey, ownerID)
			c.Set(ctxUserRoleKey, user.RoleOwner)
			c.Status(http.StatusConflict)
		})

		req := httptest.NewRequest(http.MethodPost, "/public/businesses/lash-studio/bookings", nil)
		req.Header.Set("Idempotency-Key", "checkout-42")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		lines := logLines(t, &buf)
		require.Len(t, lines, 2)
		started, done := lines[0], lines[1]

		assert.Equal(t, "Request started", started["msg"])
		assert.NotContains(t, started, "user_id")

		assert.Equal(t, "Request completed", done["msg"])
		assert.Equal(t, "WARN", done["level"])
		assert.Equal(t, "lash-studio", done["business"])
		assert.Equal(t, "/public/businesses/:slug/bookings", done["route"])
		assert.Equal(t, "checkout-42", done["idempotency_key"])
		assert.Equal(t, ownerID.String(), done["user_id"])
		assert.Equal(t, string(user.RoleOwner), done["role"])
		assert.EqualValues(t, http.StatusConflict, done["status_code"])
		assert.Equal(t, w.Header().Get(RequestIDHeader), done["request_id"])
	})

	t.Run("request id is generated, stored and echoed", func(t *testing.T) {
		var buf bytes.Buffer
		var seen string
		r := loggedRouter(&buf, func(c *gin.Context) {
			seen = GetRequestID(c)
			c.Status(http.StatusCreated)
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/public/businesses/lash-studio/bookings", nil))

		require.NotEmpty(t, seen)
		assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
		assert.Equal(t, "INFO", logLines(t, &buf)[1]["level"])
	})

	t.Run("inbound request id is kept only when well formed", func(t *testing.T) {
		cases := map[string]bool{
			"edge-7f3a.b_1":             true,
			"":                          false,
			"has space":                 false,
			"line\nbreak":               false,
			strings.Repeat("a", 64):     true,
			strings.Repeat("a", 65):     false,
			"<script>alert(1)</script>": false,
		}
		for inbound, kept := range cases {
			var buf bytes.Buffer
			r := loggedRouter(&buf, func(c *gin.Context) { c.Status(http.StatusCreated) })

			req := httptest.NewRequest(http.MethodPost, "/public/businesses/lash-studio/bookings", nil)
			req.Header.Set(RequestIDHeader, inbound)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			got := w.Header().Get(RequestIDHeader)
			assert.NotEmpty(t, got, "%q", inbound)
			assert.Equal(t, kept, got == inbound, "%q", inbound)
		}
	})
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warn"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}
