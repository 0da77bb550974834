// services/sheets_service.go
package services

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/api/sheets/v4"

	"github.com/skillang/skillang_backend/models"
)

// RowSink appends validated submissions to spreadsheet storage.
type RowSink interface {
	AppendInquiry(ctx context.Context, req *models.InquiryRequest, meta models.SubmissionMeta) error
	AppendPartnership(ctx context.Context, req *models.PartnershipRequest, meta models.SubmissionMeta) error
}

// Column layouts per sink. The sheet header names are external schema: when a
// sheet column is renamed the mapping changes here, not in the controllers.
var (
	inquiryColumns = []string{
		"Origin", "Name", "Email", "Phone", "Pincode",
		"LookingFor", "Country", "Experience", "Date", "Time", "Reference",
	}
	partnershipColumns = []string{
		"Type", "Name", "Mobile number", "Email", "Company",
		"Designation", "Date", "Time", "Reference",
	}
)

func inquiryValues(req *models.InquiryRequest, meta models.SubmissionMeta) map[string]string {
	return map[string]string{
		"Origin":     req.Origin,
		"Name":       req.Name,
		"Email":      req.Email,
		"Phone":      req.Phone,
		"Pincode":    req.Pincode,
		"LookingFor": req.LookingFor,
		"Country":    req.Country,
		"Experience": req.Experience,
		"Date":       meta.Date,
		"Time":       meta.Time,
		"Reference":  meta.Reference,
	}
}

func partnershipValues(req *models.PartnershipRequest, meta models.SubmissionMeta) map[string]string {
	return map[string]string{
		"Type":          req.Type,
		"Name":          req.Name,
		"Mobile number": req.Phone,
		"Email":         req.Email,
		"Company":       req.CompanyName,
		"Designation":   req.Designation,
		"Date":          meta.Date,
		"Time":          meta.Time,
		"Reference":     meta.Reference,
	}
}

// orderRow lays the mapped values out in the sink's column order.
func orderRow(columns []string, values map[string]string) []interface{} {
	row := make([]interface{}, len(columns))
	for i, col := range columns {
		row[i] = values[col]
	}
	return row
}

// SheetsService appends rows to the inquiry and partnership spreadsheets.
type SheetsService struct {
	svc                *sheets.Service
	inquirySheetID     string
	partnershipSheetID string
}

// NewSheetsServiceFromEnv binds the Sheets client to the spreadsheet IDs
// configured in the environment.
func NewSheetsServiceFromEnv(svc *sheets.Service) (*SheetsService, error) {
	inquiryID := os.Getenv("INQUIRY_SHEET_ID")
	partnershipID := os.Getenv("PARTNERSHIP_SHEET_ID")
	if inquiryID == "" || partnershipID == "" {
		return nil, fmt.Errorf("missing sheet configuration: INQUIRY_SHEET_ID and PARTNERSHIP_SHEET_ID are required")
	}
	return &SheetsService{
		svc:                svc,
		inquirySheetID:     inquiryID,
		partnershipSheetID: partnershipID,
	}, nil
}

func (s *SheetsService) AppendInquiry(ctx context.Context, req *models.InquiryRequest, meta models.SubmissionMeta) error {
	row := orderRow(inquiryColumns, inquiryValues(req, meta))
	return s.appendRow(ctx, s.inquirySheetID, row)
}

func (s *SheetsService) AppendPartnership(ctx context.Context, req *models.PartnershipRequest, meta models.SubmissionMeta) error {
	row := orderRow(partnershipColumns, partnershipValues(req, meta))
	return s.appendRow(ctx, s.partnershipSheetID, row)
}

func (s *SheetsService) appendRow(ctx context.Context, spreadsheetID string, row []interface{}) error {
	valueRange := &sheets.ValueRange{
		Values: [][]interface{}{row},
	}
	_, err := s.svc.Spreadsheets.Values.
		Append(spreadsheetID, "Sheet1", valueRange).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append row to sheet %s: %w", spreadsheetID, err)
	}
	return nil
}
