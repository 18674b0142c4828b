package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rumahpeduli/cms-api/internal/constants"
	"github.com/rumahpeduli/cms-api/internal/dto"
	apperrors "github.com/rumahpeduli/cms-api/internal/errors"
	"github.com/rumahpeduli/cms-api/internal/middleware"
	"github.com/rumahpeduli/cms-api/internal/service"
)

type DailyWorkHandler struct {
	workService *service.DailyWorkService
}

func NewDailyWorkHandler(workService *service.DailyWorkService) *DailyWorkHandler {
	return &DailyWorkHandler{
		workService: workService,
	}
}

func (h *DailyWorkHandler) Create(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, constants.BuildErrorResponse(constants.MsgUnauthorized, nil))
		return
	}

	var req dto.CreateDailyWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", err.Error()))
		return
	}

	work, err := h.workService.Create(c.Request.Context(), callerID, &req)
	if err != nil {
		c.JSON(apperrors.ToHTTPStatus(err), constants.BuildErrorResponse("Could not create entry", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusCreated, work)
}

// List returns the caller's own entries.
func (h *DailyWorkHandler) List(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, constants.BuildErrorResponse(constants.MsgUnauthorized, nil))
		return
	}

	params := constants.ParsePaginationParams(c)

	entries, total, pageTotal, err := h.workService.ListOwn(c.Request.Context(), callerID, params.Limit, params.Offset)
	if err != nil {
		c.JSON(apperrors.ToHTTPStatus(err), constants.BuildErrorResponse("Could not list entries", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, constants.BuildListResponse(total, params.Page, pageTotal, entries))
}

func (h *DailyWorkHandler) Update(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, constants.BuildErrorResponse(constants.MsgUnauthorized, nil))
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgBadRequest, "invalid id"))
		return
	}

	var req dto.UpdateDailyWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", err.Error()))
		return
	}

	work, err := h.workService.Update(c.Request.Context(), callerID, id, &req)
	if err != nil {
		c.JSON(apperrors.ToHTTPStatus(err), constants.BuildErrorResponse("Could not update entry", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, work)
}

func (h *DailyWorkHandler) Delete(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, constants.BuildErrorResponse(constants.MsgUnauthorized, nil))
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgBadRequest, "invalid id"))
		return
	}

	if err := h.workService.Delete(c.Request.Context(), callerID, id); err != nil {
		c.JSON(apperrors.ToHTTPStatus(err), constants.BuildErrorResponse("Could not delete entry", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, constants.BuildSuccessResponse(constants.MsgDeleted))
}

// Statistics serves the admin cross-member view, optionally filtered by
// user and date range.
func (h *DailyWorkHandler) Statistics(c *gin.Context) {
	var filter dto.DailyWorkStatisticsFilter

	if raw := c.Query("user_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgBadRequest, "invalid user_id"))
			return
		}
		filter.UserID = uint(id)
	}
	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgBadRequest, "invalid from date"))
			return
		}
		filter.From = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgBadRequest, "invalid to date"))
			return
		}
		filter.To = &t
	}

	entries, err := h.workService.Statistics(c.Request.Context(), filter)
	if err != nil {
		c.JSON(apperrors.ToHTTPStatus(err), constants.BuildErrorResponse("Could not load statistics", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}
