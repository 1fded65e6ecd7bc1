package api

import (
	"net/http"
	"strings"

	reqdto "slotbook/internal/handler/dto/request"
	resdto "slotbook/internal/handler/dto/response"
	"slotbook/internal/handler/httperr"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	msgSlotUnavailable = "Slot no longer available"
	msgNotBookable     = "Requested time is not bookable"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Book a slot. The slot is re-checked against a fresh read of the day before insert.
// @Tags public
// @Accept json
// @Produce json
// @Param slug path string true "Business slug"
// @Param Idempotency-Key header string false "Replays the original booking when retried"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Success 200 {object} resdto.BookingResponse "Idempotent replay"
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /public/businesses/{slug}/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	key := strings.TrimSpace(c.GetHeader(idempotencyKeyHeader))
	result, err := h.cmds.Create(c.Request.Context(), c.Param("slug"), req.ToInput(), key)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrSlotUnavailable):
			httperr.AbortWithError(c, http.StatusConflict, err, msgSlotUnavailable, nil)
		case errs.Is(err, commands.ErrNotBookable):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, msgNotBookable, err.Error())
		case errs.Is(err, commands.ErrIdempotencyMismatch):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Idempotency key reused with a different request", nil)
		default:
			httperr.Abort(c, err, "Invalid booking request")
		}
		return
	}

	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
		c.Header("Idempotent-Replayed", "true")
	}
	resp, err := resdto.FromBookingView(queries.NewBookingView(result.Booking))
	if err != nil {
		abortMapping(c, err)
		return
	}
	c.JSON(status, resp)
}

// @Summary List own bookings
// @Description Bookings of the owner's business ordered by start time
// @Tags owner
// @Produce json
// @Security BearerAuth
// @Param from query string false "Earliest start (RFC 3339)"
// @Param to query string false "Latest start, exclusive (RFC 3339)"
// @Param status query string false "CONFIRMED or CANCELLED"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /owner/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	ownerID, ok := currentUser(c)
	if !ok {
		return
	}
	from, ok := optionalTime(c, "from")
	if !ok {
		return
	}
	to, ok := optionalTime(c, "to")
	if !ok {
		return
	}
	cursor, limit := listParams(c)
	filters := queries.BookingFilters{From: from, To: to, Status: optionalString(c, "status")}

	items, next, err := h.q.ListForOwner(c.Request.Context(), ownerID, filters, cursor, limit)
	if err != nil {
		httperr.Abort(c, err, "Failed to list bookings")
		return
	}
	resp, err := resdto.FromBookingList(items)
	if err != nil {
		abortMapping(c, err)
		return
	}
	c.JSON(http.StatusOK, pageResponse("bookings", resp, next))
}

// @Summary Get own booking
// @Tags owner
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /owner/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	ownerID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	view, err := h.q.GetForOwner(c.Request.Context(), ownerID, id)
	if err != nil {
		httperr.Abort(c, err, "Booking not found")
		return
	}
	resp, err := resdto.FromBookingView(view)
	if err != nil {
		abortMapping(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Cancel booking
// @Description Owner-only and idempotent: cancelling a cancelled booking succeeds without side effects
// @Tags owner
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /owner/bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	ownerID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	b, err := h.cmds.Cancel(c.Request.Context(), ownerID, id)
	if err != nil {
		httperr.Abort(c, err, "Booking not found")
		return
	}
	resp, err := resdto.FromBookingView(queries.NewBookingView(b))
	if err != nil {
		abortMapping(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
