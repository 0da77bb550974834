// controllers/submission_controller.go
package controllers

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/skillang/skillang_backend/models"
	"github.com/skillang/skillang_backend/repositories"
	"github.com/skillang/skillang_backend/services"
	"github.com/skillang/skillang_backend/utils"
)

// Inquiry handling modes for POST /submit-inquiry.
const (
	InquiryModeStore = "store" // validate, then persist to the record sink
	InquiryModeLog   = "log"   // validate and log only, no persistence
)

// InquiryModeFromEnv reads INQUIRY_MODE, defaulting to store.
func InquiryModeFromEnv() string {
	if mode := os.Getenv("INQUIRY_MODE"); mode == InquiryModeLog {
		return InquiryModeLog
	}
	return InquiryModeStore
}

// SubmissionController relays validated form submissions to their sinks.
type SubmissionController struct {
	rows        services.RowSink
	records     repositories.InquirySaver
	mailer      services.Mailer
	inquiryMode string
}

// NewSubmissionController creates a submission controller. records may be nil
// when inquiryMode is log.
func NewSubmissionController(rows services.RowSink, records repositories.InquirySaver, mailer services.Mailer, inquiryMode string) *SubmissionController {
	return &SubmissionController{
		rows:        rows,
		records:     records,
		mailer:      mailer,
		inquiryMode: inquiryMode,
	}
}

// newMeta stamps a submission with the IST processing moment and a reference ID.
func newMeta() models.SubmissionMeta {
	date, clock := utils.ISTDateTime(time.Now())
	return models.SubmissionMeta{
		Date:      date,
		Time:      clock,
		Reference: uuid.NewString(),
	}
}

// SubmitToGoogleSheets handles POST /submit-to-google-sheets: inquiry payload
// to the inquiry spreadsheet.
func (sc *SubmissionController) SubmitToGoogleSheets(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	var req models.InquiryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid request body",
		})
	}

	if result := utils.ValidateInquiry(&req); !result.Valid() {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: result.ErrorMessage(),
		})
	}

	meta := newMeta()
	if err := sc.rows.AppendInquiry(ctx, &req, meta); err != nil {
		log.Printf("Error appending inquiry row (ref %s): %v", meta.Reference, err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: "Server Error: Try again later",
			Error:   err.Error(),
		})
	}

	sc.sendConfirmation(req.Email, req.Name, "inquiry", meta.Reference)

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Data submitted successfully",
	})
}

// SubmitInquiry handles POST /submit-inquiry. Behavior depends on the
// configured inquiry mode: store persists to MongoDB, log only records the
// payload in the server log.
func (sc *SubmissionController) SubmitInquiry(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req models.InquiryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.InquiryResponse{
			Message: "Invalid request body",
		})
	}

	if result := utils.ValidateInquiry(&req); !result.Valid() {
		return c.JSON(http.StatusBadRequest, models.InquiryResponse{
			Message: result.ErrorMessage(),
		})
	}

	meta := newMeta()

	if sc.inquiryMode == InquiryModeLog {
		log.Printf("Inquiry received (ref %s, log-only): origin=%s email=%s lookingFor=%s",
			meta.Reference, req.Origin, req.Email, req.LookingFor)
		return c.JSON(http.StatusOK, models.InquiryResponse{
			Message: "Inquiry submitted successfully!",
		})
	}

	doc := models.InquiryDocument{
		Origin:     req.Origin,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Pincode:    req.Pincode,
		LookingFor: req.LookingFor,
		Country:    req.Country,
		Experience: req.Experience,
		Date:       meta.Date,
		Time:       meta.Time,
		Reference:  meta.Reference,
		CreatedAt:  time.Now(),
	}
	if err := sc.records.Save(ctx, doc); err != nil {
		log.Printf("Error saving inquiry (ref %s): %v", meta.Reference, err)
		return c.JSON(http.StatusInternalServerError, models.InquiryResponse{
			Message: "Server Error",
			Error:   err.Error(),
		})
	}

	sc.sendConfirmation(req.Email, req.Name, "inquiry", meta.Reference)

	return c.JSON(http.StatusOK, models.InquiryResponse{
		Message: "Inquiry submitted successfully!",
	})
}

// SubmitPartnershipToGoogleSheets handles POST /submit-partnership-to-google-sheets.
func (sc *SubmissionController) SubmitPartnershipToGoogleSheets(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	var req models.PartnershipRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid request body",
		})
	}

	if result := utils.ValidatePartnership(&req); !result.Valid() {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: result.ErrorMessage(),
		})
	}

	meta := newMeta()
	if err := sc.rows.AppendPartnership(ctx, &req, meta); err != nil {
		log.Printf("Error appending partnership row (ref %s): %v", meta.Reference, err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: "Server Error: Try again later",
			Error:   err.Error(),
		})
	}

	sc.sendConfirmation(req.Email, req.Name, "partnership request", meta.Reference)

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Partnership data submitted successfully",
	})
}

// sendConfirmation is best-effort: the submission already reached its sink,
// so a mail failure must not fail the request.
func (sc *SubmissionController) sendConfirmation(email, name, kind, reference string) {
	if sc.mailer == nil {
		return
	}
	if err := sc.mailer.SendConfirmation(email, name, kind); err != nil {
		log.Printf("Error sending confirmation email (ref %s): %v", reference, err)
	}
}
