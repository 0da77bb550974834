package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skillang/skillang_backend/controllers"
)

// SetupRoutes registers all public endpoints
func SetupRoutes(e *echo.Echo, otpController *controllers.OTPController, submissionController *controllers.SubmissionController) {
	// OTP endpoints
	e.POST("/send-otp", otpController.SendOTP)
	e.POST("/verify-otp", otpController.VerifyOTP)

	// Submission endpoints
	e.POST("/submit-to-google-sheets", submissionController.SubmitToGoogleSheets)
	e.POST("/submit-inquiry", submissionController.SubmitInquiry)
	e.POST("/submit-partnership-to-google-sheets", submissionController.SubmitPartnershipToGoogleSheets)

	e.Match([]string{"GET", "HEAD"}, "/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "OK",
			"message": "Skillang Backend is running",
			"version": "1.0",
		})
	})

	e.Match([]string{"GET", "HEAD"}, "/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status": "healthy",
		})
	})
}
