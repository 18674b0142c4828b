package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rumahpeduli/cms-api/internal/constants"
	"github.com/rumahpeduli/cms-api/internal/dto"
	apperrors "github.com/rumahpeduli/cms-api/internal/errors"
	"github.com/rumahpeduli/cms-api/internal/middleware"
	"github.com/rumahpeduli/cms-api/internal/model"
	"github.com/rumahpeduli/cms-api/internal/service"
	"github.com/rumahpeduli/cms-api/pkg/logger"
)

type ActivityHandler struct {
	activityService *service.ActivityService
}

func NewActivityHandler(activityService *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
	}
}

// List is public; anonymous callers and plain members only see
// published activities, moderators and up also see drafts.
func (h *ActivityHandler) List(c *gin.Context) {
	params := constants.ParsePaginationParams(c)

	publishedOnly := true
	if role, ok := middleware.CallerRole(c); ok && role.AtLeast(model.RoleModerator) {
		publishedOnly = false
	}

	activities, total, pageTotal, err := h.activityService.List(c.Request.Context(), params.Limit, params.Offset, params.Search, publishedOnly)
	if err != nil {
		c.JSON(apperrors.ToHTTPStatus(err), constants.BuildErrorResponse("Could not list activities", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, constants.BuildListResponse(total, params.Page, pageTotal, activities))
}

func (h *ActivityHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgBadRequest, "invalid id"))
		return
	}

	activity, err := h.activityService.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(apperrors.ToHTTPStatus(err), constants.BuildErrorResponse("Could not load activity", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, activity)
}

func (h *ActivityHandler) Create(c *gin.Context) {
	var req dto.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", err.Error()))
		return
	}

	activity, err := h.activityService.Create(c.Request.Context(), &req)
	if err != nil {
		logger.GetLogger().Warn("Activity creation failed",
			zap.String("title", req.Title),
			zap.Error(err))
		c.JSON(apperrors.ToHTTPStatus(err), constants.BuildErrorResponse("Could not create activity", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusCreated, activity)
}

func (h *ActivityHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgBadRequest, "invalid id"))
		return
	}

	var req dto.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", err.Error()))
		return
	}

	activity, err := h.activityService.Update(c.Request.Context(), id, &req)
	if err != nil {
		c.JSON(apperrors.ToHTTPStatus(err), constants.BuildErrorResponse("Could not update activity", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, activity)
}

func (h *ActivityHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgBadRequest, "invalid id"))
		return
	}

	if err := h.activityService.Delete(c.Request.Context(), id); err != nil {
		c.JSON(apperrors.ToHTTPStatus(err), constants.BuildErrorResponse("Could not delete activity", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, constants.BuildSuccessResponse(constants.MsgDeleted))
}

// ReplacePrograms swaps the full agenda of an activity. The response is
// the new ordered list.
func (h *ActivityHandler) ReplacePrograms(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgBadRequest, "invalid id"))
		return
	}

	var req dto.ReplaceProgramsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", err.Error()))
		return
	}

	programs, err := h.activityService.ReplacePrograms(c.Request.Context(), id, req.Programs)
	if err != nil {
		logger.GetLogger().Warn("Program replacement failed",
			zap.Uint("activity_id", id),
			zap.Error(err))
		c.JSON(apperrors.ToHTTPStatus(err), constants.BuildErrorResponse("Could not replace programs", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, gin.H{"programs": programs})
}

// ReplaceOrganizations swaps the full participating-organization list.
func (h *ActivityHandler) ReplaceOrganizations(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgBadRequest, "invalid id"))
		return
	}

	var req dto.ReplaceOrganizationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", err.Error()))
		return
	}

	organizations, err := h.activityService.ReplaceOrganizations(c.Request.Context(), id, req.Organizations)
	if err != nil {
		logger.GetLogger().Warn("Organization replacement failed",
			zap.Uint("activity_id", id),
			zap.Error(err))
		c.JSON(apperrors.ToHTTPStatus(err), constants.BuildErrorResponse("Could not replace organizations", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, gin.H{"organizations": organizations})
}
