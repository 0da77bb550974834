// controllers/otp_controller.go
package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/skillang/skillang_backend/models"
	"github.com/skillang/skillang_backend/services"
	"github.com/skillang/skillang_backend/utils"
)

// OTPController handles OTP issuance and verification
type OTPController struct {
	otp services.OTPManager
}

// NewOTPController creates a new OTP controller
func NewOTPController(otp services.OTPManager) *OTPController {
	return &OTPController{otp: otp}
}

// SendOTP handles POST /send-otp
func (oc *OTPController) SendOTP(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req models.SendOTPRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Email and Name are required!",
		})
	}

	email, err := utils.SanitizeEmail(req.Email)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid email address",
		})
	}

	if err := oc.otp.Issue(ctx, email, req.Name); err != nil {
		log.Printf("Error sending OTP to %s: %v", email, err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: "Error sending OTP",
			Error:   err.Error(),
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "OTP sent successfully!",
	})
}

// verifyOTPRequest accepts the code as either a JSON string or a number;
// both representations of the same digits must verify.
type verifyOTPRequest struct {
	Email string      `json:"email"`
	OTP   json.Number `json:"otp"`
}

// VerifyOTP handles POST /verify-otp
func (oc *OTPController) VerifyOTP(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req verifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid request body",
		})
	}

	// Records are stored under the sanitized address, so verification must
	// normalize the same way or the round trip breaks for mixed-case input.
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.OTP.String() == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Email and OTP are required!",
		})
	}

	ok, err := oc.otp.Verify(ctx, email, req.OTP.String())
	if err != nil {
		if errors.Is(err, services.ErrTooManyAttempts) {
			return c.JSON(http.StatusTooManyRequests, models.Response{
				Success: false,
				Message: "Too many attempts. Please request a new OTP later",
			})
		}
		log.Printf("Error verifying OTP for %s: %v", email, err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: "Error verifying OTP",
			Error:   err.Error(),
		})
	}

	// A missing record and a wrong code read the same, so callers cannot
	// probe which emails requested an OTP.
	if !ok {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid OTP",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "OTP verified successfully!",
	})
}
