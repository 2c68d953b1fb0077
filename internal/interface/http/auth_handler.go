package http

import (
	"errors"
	"net/http"

	"github.com/prkservices/booking-service/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles the OTP login flow and user profiles
type AuthHandler struct {
	usecase   *usecase.OTPUseCase
	jwtSecret string
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(uc *usecase.OTPUseCase, jwtSecret string) *AuthHandler {
	return &AuthHandler{usecase: uc, jwtSecret: jwtSecret}
}

type generateOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// GenerateOTP handles POST /api/generate-otp
func (h *AuthHandler) GenerateOTP(c *gin.Context) {
	var req generateOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Email is required.",
		})
		return
	}

	if err := h.usecase.Generate(c.Request.Context(), req.Email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to send OTP.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "OTP sent successfully.",
	})
}

type verifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required"`
}

// VerifyOTP handles POST /api/verify-otp
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req verifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Email and OTP are required.",
		})
		return
	}

	user, err := h.usecase.Verify(c.Request.Context(), req.Email, req.OTP)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidOTP) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Invalid or expired OTP.",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to verify OTP.",
		})
		return
	}

	token, err := IssueToken(user, h.jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to issue session token.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "OTP verified successfully.",
		"user":    user,
		"token":   token,
	})
}

// Profile handles GET /api/user-profile/:email
func (h *AuthHandler) Profile(c *gin.Context) {
	user, err := h.usecase.Profile(c.Request.Context(), c.Param("email"))
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "User not found.",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch profile.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
	})
}

type updateProfileRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// UpdateProfile handles POST /api/update-profile
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Email is required.",
		})
		return
	}

	user, err := h.usecase.UpdateProfile(c.Request.Context(), req.Email, req.Name, req.Phone)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "User not found.",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to update profile.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile updated successfully.",
		"user":    user,
	})
}
