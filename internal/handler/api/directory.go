package api

import (
	"net/http"
	"time"

	"slotbook/internal/domain/availability"
	resdto "slotbook/internal/handler/dto/response"
	"slotbook/internal/handler/httperr"
	"slotbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// DirectoryHandler serves the public, unauthenticated side of the marketplace.
type DirectoryHandler struct {
	directory    queries.DirectoryQueries
	availability queries.AvailabilityQueries
	reviews      queries.ReviewQueries
}

func NewDirectoryHandler(directory queries.DirectoryQueries, availability queries.AvailabilityQueries, reviews queries.ReviewQueries) *DirectoryHandler {
	return &DirectoryHandler{
		directory:    directory,
		availability: availability,
		reviews:      reviews,
	}
}

// @Summary List businesses
// @Description List active businesses, newest first, with keyset pagination
// @Tags public
// @Produce json
// @Param category query string false "Category filter"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.BusinessListItemResponse
// @Failure 400 {object} httperr.Response
// @Router /public/businesses [get]
func (h *DirectoryHandler) List(c *gin.Context) {
	cursor, limit := listParams(c)
	filters := queries.DirectoryFilters{Category: optionalString(c, "category")}

	items, next, err := h.directory.List(c.Request.Context(), filters, cursor, limit)
	if err != nil {
		httperr.Abort(c, err, "Invalid query")
		return
	}
	resp, err := resdto.FromBusinessList(items)
	if err != nil {
		abortMapping(c, err)
		return
	}
	c.JSON(http.StatusOK, pageResponse("businesses", resp, next))
}

// @Summary Business profile
// @Description Public profile with active services, availability rule and rating
// @Tags public
// @Produce json
// @Param slug path string true "Business slug"
// @Success 200 {object} resdto.BusinessProfileResponse
// @Failure 404 {object} httperr.Response
// @Router /public/businesses/{slug} [get]
func (h *DirectoryHandler) Profile(c *gin.Context) {
	profile, err := h.directory.GetProfile(c.Request.Context(), c.Param("slug"))
	if err != nil {
		httperr.Abort(c, err, "Business not found")
		return
	}
	resp, err := resdto.FromBusinessProfile(profile)
	if err != nil {
		abortMapping(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Day availability
// @Description Confirmed bookings and blocked slots of a day; available start slots when duration is given. Unknown businesses yield an empty day.
// @Tags public
// @Produce json
// @Param slug path string true "Business slug"
// @Param date query string true "Calendar date (YYYY-MM-DD)"
// @Param duration query int false "Service duration in minutes"
// @Success 200 {object} resdto.DayAvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /public/businesses/{slug}/availability [get]
func (h *DirectoryHandler) Availability(c *gin.Context) {
	date, err := time.Parse(time.DateOnly, c.Query("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", "expected YYYY-MM-DD")
		return
	}
	duration, ok := optionalInt(c, "duration")
	if !ok {
		return
	}
	if duration != nil && (*duration <= 0 || *duration > availability.MaxDurationMinutes) {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Invalid duration", availability.ErrInvalidDuration.Error())
		return
	}

	day, err := h.availability.GetDay(c.Request.Context(), c.Param("slug"), date, duration)
	if err != nil {
		httperr.Abort(c, err, "Failed to load availability")
		return
	}
	c.JSON(http.StatusOK, resdto.FromDayAvailability(day))
}

// @Summary List business reviews
// @Description Reviews of a business, newest first, with keyset pagination
// @Tags public
// @Produce json
// @Param slug path string true "Business slug"
// @Param min_rating query int false "Minimum rating (1-5)"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.ReviewListItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /public/businesses/{slug}/reviews [get]
func (h *DirectoryHandler) Reviews(c *gin.Context) {
	minRating, ok := optionalInt(c, "min_rating")
	if !ok {
		return
	}
	cursor, limit := listParams(c)

	items, next, err := h.reviews.ListByBusiness(c.Request.Context(), c.Param("slug"), queries.ReviewFilters{MinRating: minRating}, cursor, limit)
	if err != nil {
		httperr.Abort(c, err, "Failed to list reviews")
		return
	}
	resp, err := resdto.FromReviewList(items)
	if err != nil {
		abortMapping(c, err)
		return
	}
	c.JSON(http.StatusOK, pageResponse("reviews", resp, next))
}

// @Summary Business rating stats
// @Description Review count, average and per-rating histogram
// @Tags public
// @Produce json
// @Param slug path string true "Business slug"
// @Success 200 {object} resdto.RatingStatsResponse
// @Failure 404 {object} httperr.Response
// @Router /public/businesses/{slug}/rating-stats [get]
func (h *DirectoryHandler) RatingStats(c *gin.Context) {
	stats, err := h.reviews.GetRatingStats(c.Request.Context(), c.Param("slug"))
	if err != nil {
		httperr.Abort(c, err, "Business not found")
		return
	}
	resp, err := resdto.FromRatingStats(stats)
	if err != nil {
		abortMapping(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
