package api

import (
	"net/http"
	"strconv"
	"time"

	"slotbook/internal/handler/httperr"
	"slotbook/internal/handler/middleware"
	"slotbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const idempotencyKeyHeader = "Idempotency-Key"

func listParams(c *gin.Context) (*queries.Cursor, int) {
	limit := queries.DefaultListLimit
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	return cursor, limit
}

func pageResponse(key string, items any, next *queries.Cursor) gin.H {
	resp := gin.H{key: items}
	if next != nil {
		resp["next_cursor"] = next.After
	}
	return resp
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

// currentUser reads the id set by RequireAuth; a missing id is a wiring bug.
func currentUser(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return uuid.Nil, false
	}
	return id, true
}

// abortMapping answers 500 when a view cannot be turned into a response body.
func abortMapping(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

func optionalInt(c *gin.Context, name string) (*int, bool) {
	v := c.Query(name)
	if v == "" {
		return nil, true
	}
	iv, err := strconv.Atoi(v)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return nil, false
	}
	return &iv, true
}

func optionalTime(c *gin.Context, name string) (*time.Time, bool) {
	v := c.Query(name)
	if v == "" {
		return nil, true
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, "expected RFC 3339 timestamp")
		return nil, false
	}
	return &t, true
}

func optionalString(c *gin.Context, name string) *string {
	if v := c.Query(name); v != "" {
		return &v
	}
	return nil
}
