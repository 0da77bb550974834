package main

import (
	"context"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/skillang/skillang_backend/config"
	"github.com/skillang/skillang_backend/controllers"
	"github.com/skillang/skillang_backend/middleware"
	"github.com/skillang/skillang_backend/repositories"
	"github.com/skillang/skillang_backend/routes"
	"github.com/skillang/skillang_backend/services"
)

// CustomValidator is a custom validator for Echo
type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates the request body
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found")
	}

	ctx := context.Background()

	// Connect to Redis; a nil client means the in-memory OTP store is used
	redisClient := config.ConnectRedis()
	if redisClient != nil {
		defer redisClient.Close()
	}

	// Connect to Google Sheets
	sheetsClient := config.ConnectSheets(ctx)

	// OTP store: Redis when available, process memory otherwise
	var otpStore repositories.OTPStore
	if redisClient != nil {
		otpStore = repositories.NewRedisOTPStore(redisClient)
	} else {
		otpStore = repositories.NewMemoryOTPStore()
	}

	mailer, err := services.NewSMTPMailerFromEnv()
	if err != nil {
		log.Fatal("SMTP configuration error:", err)
	}

	rowSink, err := services.NewSheetsServiceFromEnv(sheetsClient)
	if err != nil {
		log.Fatal("Sheets configuration error:", err)
	}

	// The record sink (MongoDB) is only dialed when inquiries are persisted
	inquiryMode := controllers.InquiryModeFromEnv()
	var inquiryRepo repositories.InquirySaver
	if inquiryMode == controllers.InquiryModeStore {
		client := config.ConnectDB()
		defer client.Disconnect(ctx)
		inquiryRepo = repositories.NewInquiryRepository(client)
	} else {
		log.Println("INQUIRY_MODE=log: inquiries will not be persisted")
	}

	// Create a new Echo instance
	e := echo.New()

	// Initialize custom validator
	customValidator := &CustomValidator{validator: validator.New()}
	e.Validator = customValidator

	// Middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(middleware.GlobalCORS())

	// Initialize controllers
	otpController := controllers.NewOTPController(services.NewOTPService(otpStore, mailer))
	submissionController := controllers.NewSubmissionController(rowSink, inquiryRepo, mailer, inquiryMode)

	routes.SetupRoutes(e, otpController, submissionController)

	// Static assets referenced from the outgoing mail (logo)
	e.Static("/public", "public")

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	e.Logger.Fatal(e.Start(":" + port))
}
