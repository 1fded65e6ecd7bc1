package api

import (
	"log/slog"
	"net/http"

	resdto "slotbook/internal/handler/dto/response"
	"slotbook/internal/handler/httperr"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	reviews       commands.ReviewCommands
	bookings      commands.BookingCommands
	notifications queries.NotificationQueries
	batchSize     int
}

func NewAdminHandler(reviews commands.ReviewCommands, bookings commands.BookingCommands, notifications queries.NotificationQueries, batchSize int) *AdminHandler {
	return &AdminHandler{
		reviews:       reviews,
		bookings:      bookings,
		notifications: notifications,
		batchSize:     batchSize,
	}
}

// @Summary Send due review requests
// @Description Enqueue review invitations for completed bookings. Safe to re-run.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param batch query int false "Max bookings to process"
// @Success 200 {object} map[string]int
// @Failure 403 {object} httperr.Response
// @Router /admin/reviews/send-due [post]
func (h *AdminHandler) SendDueReviews(c *gin.Context) {
	batch, ok := optionalInt(c, "batch")
	if !ok {
		return
	}
	size := h.batchSize
	if batch != nil {
		size = *batch
	}

	sent, err := h.reviews.SendDueReviewRequests(c.Request.Context(), size)
	if err != nil {
		slog.Error("review sweep failed", "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sent": sent})
}

// @Summary Purge expired idempotency keys
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]int64
// @Router /admin/idempotency-keys/purge [post]
func (h *AdminHandler) PurgeIdempotencyKeys(c *gin.Context) {
	n, err := h.bookings.PurgeExpiredIdempotencyKeys(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": n})
}

// @Summary List notification jobs
// @Description Outbox entries, newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Job status"
// @Param topic query string false "Job topic"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.NotificationJobResponse
// @Router /admin/notifications [get]
func (h *AdminHandler) ListNotifications(c *gin.Context) {
	cursor, limit := listParams(c)
	filters := queries.NotificationFilters{
		Status: optionalString(c, "status"),
		Topic:  optionalString(c, "topic"),
	}
	items, next, err := h.notifications.List(c.Request.Context(), filters, cursor, limit)
	if err != nil {
		httperr.Abort(c, err, "Invalid query")
		return
	}
	c.JSON(http.StatusOK, pageResponse("jobs", resdto.FromNotificationList(items), next))
}
