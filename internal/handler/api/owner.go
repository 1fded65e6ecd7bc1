package api

import (
	"net/http"

	reqdto "slotbook/internal/handler/dto/request"
	resdto "slotbook/internal/handler/dto/response"
	"slotbook/internal/handler/httperr"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OwnerHandler manages the authenticated owner's business: its weekly rule
// and its service catalog.
type OwnerHandler struct {
	availabilityCmds commands.AvailabilityCommands
	catalogCmds      commands.CatalogCommands
	directory        queries.DirectoryQueries
	availability     queries.AvailabilityQueries
	services         queries.ServiceQueries
}

func NewOwnerHandler(
	availabilityCmds commands.AvailabilityCommands,
	catalogCmds commands.CatalogCommands,
	directory queries.DirectoryQueries,
	availability queries.AvailabilityQueries,
	services queries.ServiceQueries,
) *OwnerHandler {
	return &OwnerHandler{
		availabilityCmds: availabilityCmds,
		catalogCmds:      catalogCmds,
		directory:        directory,
		availability:     availability,
		services:         services,
	}
}

// @Summary Own business
// @Tags owner
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.BusinessView
// @Failure 404 {object} httperr.Response
// @Router /owner/business [get]
func (h *OwnerHandler) GetBusiness(c *gin.Context) {
	ownerID, ok := currentUser(c)
	if !ok {
		return
	}
	b, err := h.directory.GetOwnBusiness(c.Request.Context(), ownerID)
	if err != nil {
		httperr.Abort(c, err, "Business not found")
		return
	}
	c.JSON(http.StatusOK, b)
}

// @Summary Get availability rule
// @Tags owner
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.RuleResponse
// @Failure 404 {object} httperr.Response
// @Router /owner/availability [get]
func (h *OwnerHandler) GetRule(c *gin.Context) {
	ownerID, ok := currentUser(c)
	if !ok {
		return
	}
	rule, err := h.availability.GetOwnerRule(c.Request.Context(), ownerID)
	if err != nil {
		httperr.Abort(c, err, "Availability rule not found")
		return
	}
	resp, err := resdto.FromRuleView(rule)
	if err != nil {
		abortMapping(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Replace availability rule
// @Description Replaces the weekly rule wholesale. Existing bookings are not touched.
// @Tags owner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RuleRequest true "Availability rule"
// @Success 200 {object} resdto.RuleResponse
// @Failure 400 {object} httperr.Response
// @Router /owner/availability [put]
func (h *OwnerHandler) PutRule(c *gin.Context) {
	ownerID, ok := currentUser(c)
	if !ok {
		return
	}
	var req reqdto.RuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.availabilityCmds.SaveRule(c.Request.Context(), ownerID, req.ToInput()); err != nil {
		httperr.Abort(c, err, "Invalid availability rule")
		return
	}
	rule, err := h.availability.GetOwnerRule(c.Request.Context(), ownerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load availability rule", nil)
		return
	}
	resp, err := resdto.FromRuleView(rule)
	if err != nil {
		abortMapping(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List own services
// @Description All services including deactivated ones
// @Tags owner
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ServiceResponse
// @Router /owner/services [get]
func (h *OwnerHandler) ListServices(c *gin.Context) {
	ownerID, ok := currentUser(c)
	if !ok {
		return
	}
	items, err := h.services.ListForOwner(c.Request.Context(), ownerID)
	if err != nil {
		httperr.Abort(c, err, "Failed to list services")
		return
	}
	resp, err := resdto.FromServiceList(items)
	if err != nil {
		abortMapping(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": resp})
}

// @Summary Create service
// @Tags owner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateServiceRequest true "Service"
// @Success 201 {object} resdto.ServiceResponse
// @Failure 400 {object} httperr.Response
// @Router /owner/services [post]
func (h *OwnerHandler) CreateService(c *gin.Context) {
	ownerID, ok := currentUser(c)
	if !ok {
		return
	}
	var req reqdto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.catalogCmds.CreateService(c.Request.Context(), ownerID, req.ToInput())
	if err != nil {
		httperr.Abort(c, err, "Invalid service")
		return
	}
	h.respondService(c, http.StatusCreated, ownerID, id)
}

// @Summary Update service
// @Description Only name and duration can change; price and currency are fixed at creation
// @Tags owner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Param request body reqdto.UpdateServiceRequest true "Changes"
// @Success 200 {object} resdto.ServiceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /owner/services/{id} [patch]
func (h *OwnerHandler) UpdateService(c *gin.Context) {
	ownerID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.catalogCmds.UpdateService(c.Request.Context(), ownerID, id, req.ToInput()); err != nil {
		httperr.Abort(c, err, "Invalid service update")
		return
	}
	h.respondService(c, http.StatusOK, ownerID, id)
}

// @Summary Deactivate service
// @Tags owner
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /owner/services/{id} [delete]
func (h *OwnerHandler) DeactivateService(c *gin.Context) {
	ownerID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.catalogCmds.DeactivateService(c.Request.Context(), ownerID, id); err != nil {
		httperr.Abort(c, err, "Service not found")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OwnerHandler) respondService(c *gin.Context, status int, ownerID, serviceID uuid.UUID) {
	view, err := h.services.GetForOwner(c.Request.Context(), ownerID, serviceID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load service", nil)
		return
	}
	resp, err := resdto.FromServiceView(view)
	if err != nil {
		abortMapping(c, err)
		return
	}
	c.JSON(status, resp)
}
