package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rumahpeduli/cms-api/internal/constants"
	"github.com/rumahpeduli/cms-api/internal/dto"
	apperrors "github.com/rumahpeduli/cms-api/internal/errors"
	"github.com/rumahpeduli/cms-api/internal/middleware"
	"github.com/rumahpeduli/cms-api/internal/service"
	"github.com/rumahpeduli/cms-api/pkg/logger"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Me returns the caller's own profile.
func (h *UserHandler) Me(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, constants.BuildErrorResponse(constants.MsgUnauthorized, nil))
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), callerID)
	if err != nil {
		c.JSON(apperrors.ToHTTPStatus(err), constants.BuildErrorResponse("Could not load profile", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, user)
}

// List returns a page of users for the admin dashboard.
func (h *UserHandler) List(c *gin.Context) {
	params := constants.ParsePaginationParams(c)

	users, total, pageTotal, err := h.userService.List(c.Request.Context(), params.Limit, params.Offset, params.Search)
	if err != nil {
		c.JSON(apperrors.ToHTTPStatus(err), constants.BuildErrorResponse("Could not list users", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, constants.BuildListResponse(total, params.Page, pageTotal, users))
}

// UpdateRole assigns a new role to a user.
func (h *UserHandler) UpdateRole(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgBadRequest, "invalid id"))
		return
	}

	var req dto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", err.Error()))
		return
	}

	user, err := h.userService.UpdateRole(c.Request.Context(), id, req.Role)
	if err != nil {
		logger.GetLogger().Warn("Role update failed",
			zap.Uint("user_id", id),
			zap.String("role", req.Role),
			zap.Error(err))
		c.JSON(apperrors.ToHTTPStatus(err), constants.BuildErrorResponse("Role update failed", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, user)
}

func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
