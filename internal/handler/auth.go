package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rumahpeduli/cms-api/internal/constants"
	"github.com/rumahpeduli/cms-api/internal/dto"
	apperrors "github.com/rumahpeduli/cms-api/internal/errors"
	"github.com/rumahpeduli/cms-api/internal/middleware"
	"github.com/rumahpeduli/cms-api/internal/service"
	"github.com/rumahpeduli/cms-api/pkg/logger"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register creates a new member account.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", err.Error()))
		return
	}

	user, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		logger.GetLogger().Warn("Registration failed",
			zap.String("email", req.Email),
			zap.Error(err))
		c.JSON(apperrors.ToHTTPStatus(err), constants.BuildErrorResponse("Registration failed", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusCreated, user)
}

// RequestOTP issues a fresh login code to a registered email.
func (h *AuthHandler) RequestOTP(c *gin.Context) {
	var req dto.RequestOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", err.Error()))
		return
	}

	if err := h.authService.RequestOTP(c.Request.Context(), req.Email); err != nil {
		logger.GetLogger().Warn("OTP request failed",
			zap.String("email", req.Email),
			zap.Error(err))
		c.JSON(apperrors.ToHTTPStatus(err), constants.BuildErrorResponse("Could not send code", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, constants.BuildSuccessResponse("Code sent"))
}

// VerifyOTP exchanges a valid code for a session token.
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req dto.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", err.Error()))
		return
	}

	response, err := h.authService.VerifyOTP(c.Request.Context(), req.Email, req.OTP)
	if err != nil {
		logger.GetLogger().Warn("OTP verification failed",
			zap.String("email", req.Email),
			zap.Error(err))
		c.JSON(apperrors.ToHTTPStatus(err), constants.BuildErrorResponse("Verification failed", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, response)
}

// VerifySession confirms the bearer token still maps to a live account.
func (h *AuthHandler) VerifySession(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, constants.BuildErrorResponse(constants.MsgUnauthorized, nil))
		return
	}

	response, err := h.authService.VerifySession(c.Request.Context(), callerID)
	if err != nil {
		c.JSON(apperrors.ToHTTPStatus(err), constants.BuildErrorResponse("Session invalid", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, response)
}
