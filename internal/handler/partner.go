package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rumahpeduli/cms-api/internal/constants"
	"github.com/rumahpeduli/cms-api/internal/dto"
	apperrors "github.com/rumahpeduli/cms-api/internal/errors"
	"github.com/rumahpeduli/cms-api/internal/middleware"
	"github.com/rumahpeduli/cms-api/internal/model"
	"github.com/rumahpeduli/cms-api/internal/service"
)

type PartnerHandler struct {
	partnerService *service.PartnerService
}

func NewPartnerHandler(partnerService *service.PartnerService) *PartnerHandler {
	return &PartnerHandler{
		partnerService: partnerService,
	}
}

// List serves the homepage partner strip. Anonymous callers get active
// partners only; moderators and up get the full set.
func (h *PartnerHandler) List(c *gin.Context) {
	activeOnly := true
	if role, ok := middleware.CallerRole(c); ok && role.AtLeast(model.RoleModerator) {
		activeOnly = false
	}

	partners, err := h.partnerService.List(c.Request.Context(), activeOnly)
	if err != nil {
		c.JSON(apperrors.ToHTTPStatus(err), constants.BuildErrorResponse("Could not list partners", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, gin.H{"partners": partners})
}

func (h *PartnerHandler) Create(c *gin.Context) {
	var req dto.CreatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", err.Error()))
		return
	}

	partner, err := h.partnerService.Create(c.Request.Context(), &req)
	if err != nil {
		c.JSON(apperrors.ToHTTPStatus(err), constants.BuildErrorResponse("Could not create partner", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusCreated, partner)
}

func (h *PartnerHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgBadRequest, "invalid id"))
		return
	}

	var req dto.UpdatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", err.Error()))
		return
	}

	partner, err := h.partnerService.Update(c.Request.Context(), id, &req)
	if err != nil {
		c.JSON(apperrors.ToHTTPStatus(err), constants.BuildErrorResponse("Could not update partner", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, partner)
}

func (h *PartnerHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgBadRequest, "invalid id"))
		return
	}

	if err := h.partnerService.Delete(c.Request.Context(), id); err != nil {
		c.JSON(apperrors.ToHTTPStatus(err), constants.BuildErrorResponse("Could not delete partner", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, constants.BuildSuccessResponse(constants.MsgDeleted))
}
