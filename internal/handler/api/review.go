package api

import (
	"net/http"

	reqdto "slotbook/internal/handler/dto/request"
	resdto "slotbook/internal/handler/dto/response"
	"slotbook/internal/handler/httperr"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
}

func NewReviewHandler(cmds commands.ReviewCommands) *ReviewHandler {
	return &ReviewHandler{cmds: cmds}
}

// @Summary Create review
// @Description Review a completed booking using the token from the review invitation
// @Tags public
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReviewRequest true "Create review request"
// @Success 201 {object} resdto.CreateReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /public/reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.CreateReview(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidReviewToken):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Review link is invalid", nil)
		case errs.Is(err, commands.ErrAlreadyReviewed):
			httperr.AbortWithError(c, http.StatusConflict, err, "Booking has already been reviewed", nil)
		default:
			httperr.Abort(c, err, "Create review failed")
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.CreateReviewResponse{ID: result.ReviewID, BusinessID: result.BusinessID})
}
