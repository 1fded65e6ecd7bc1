//go:build unit

package httperr_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"slotbook/internal/handler/httperr"
	"slotbook/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	base := errs.New("boom")
	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: errs.Mark(base, errs.ErrValidation), want: http.StatusBadRequest},
		{name: "not found", err: errs.Mark(base, errs.ErrNotFound), want: http.StatusNotFound},
		{name: "conflict", err: errs.Mark(base, errs.ErrConflict), want: http.StatusConflict},
		{name: "forbidden", err: errs.Mark(base, errs.ErrForbidden), want: http.StatusForbidden},
		{name: "wrapped conflict", err: errs.Wrap(errs.Mark(base, errs.ErrConflict), "insert"), want: http.StatusConflict},
		{name: "uncategorized", err: base, want: http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, httperr.StatusOf(tc.err))
		})
	}
}

func TestAbort(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("client error keeps detail", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		httperr.Abort(c, errs.Mark(errs.New("phone is required"), errs.ErrValidation), "Invalid booking")

		require.Equal(t, http.StatusBadRequest, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Invalid booking", body["error"].(map[string]any)["message"])
		assert.Equal(t, "phone is required", body["detail"])
	})

	t.Run("server error hides detail", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		httperr.Abort(c, errs.New("connection reset"), "ignored")

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection reset")
	})

	t.Run("nil error does not panic", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Len(t, c.Errors, 1)
	})

	t.Run("recorded error is public and keeps the response", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		httperr.Abort(c, errs.Mark(errs.New("slot taken"), errs.ErrConflict), "Slot unavailable")

		require.Len(t, c.Errors, 1)
		assert.True(t, c.Errors[0].IsType(gin.ErrorTypePublic))
		resp, ok := c.Errors[0].Meta.(httperr.Response)
		require.True(t, ok)
		assert.Equal(t, http.StatusConflict, resp.Status)
		assert.True(t, errs.Is(c.Errors[0].Err, errs.ErrConflict))
	})
}
