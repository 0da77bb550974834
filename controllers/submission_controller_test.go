package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/skillang/skillang_backend/models"
)

// ---------------------------------------------------------------------------
// Mocks
// ---------------------------------------------------------------------------

type mockRowSink struct {
	appendInquiryFunc     func(ctx context.Context, req *models.InquiryRequest, meta models.SubmissionMeta) error
	appendPartnershipFunc func(ctx context.Context, req *models.PartnershipRequest, meta models.SubmissionMeta) error
	inquiryCalls          int
	partnershipCalls      int
}

func (m *mockRowSink) AppendInquiry(ctx context.Context, req *models.InquiryRequest, meta models.SubmissionMeta) error {
	m.inquiryCalls++
	if m.appendInquiryFunc != nil {
		return m.appendInquiryFunc(ctx, req, meta)
	}
	return nil
}

func (m *mockRowSink) AppendPartnership(ctx context.Context, req *models.PartnershipRequest, meta models.SubmissionMeta) error {
	m.partnershipCalls++
	if m.appendPartnershipFunc != nil {
		return m.appendPartnershipFunc(ctx, req, meta)
	}
	return nil
}

type mockInquirySaver struct {
	saveFunc func(ctx context.Context, doc models.InquiryDocument) error
	saved    []models.InquiryDocument
}

func (m *mockInquirySaver) Save(ctx context.Context, doc models.InquiryDocument) error {
	m.saved = append(m.saved, doc)
	if m.saveFunc != nil {
		return m.saveFunc(ctx, doc)
	}
	return nil
}

type noopMailer struct {
	confirmations int
}

func (m *noopMailer) SendOTP(to, name, code string) error { return nil }
func (m *noopMailer) SendConfirmation(to, name, kind string) error {
	m.confirmations++
	return nil
}

func newSubmissionContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

const validInquiryBody = `{
	"origin": "study-abroad",
	"name": "Asha",
	"email": "asha@example.com",
	"phone": "9876543210",
	"pincode": "600001",
	"lookingFor": "Nursing in Germany"
}`

const validPartnershipBody = `{
	"type": "University",
	"name": "Ravi",
	"email": "ravi@example.com",
	"phone": "9876500000",
	"companyName": "Acme Education",
	"designation": "Director"
}`

// ---------------------------------------------------------------------------
// POST /submit-to-google-sheets
// ---------------------------------------------------------------------------

func TestSubmitToGoogleSheets_Success(t *testing.T) {
	var gotMeta models.SubmissionMeta
	rows := &mockRowSink{
		appendInquiryFunc: func(ctx context.Context, req *models.InquiryRequest, meta models.SubmissionMeta) error {
			gotMeta = meta
			return nil
		},
	}
	mailer := &noopMailer{}
	sc := NewSubmissionController(rows, nil, mailer, InquiryModeStore)

	c, rec := newSubmissionContext(t, validInquiryBody)
	sc.SubmitToGoogleSheets(c)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}
	if rows.inquiryCalls != 1 {
		t.Errorf("expected one sink write, got %d", rows.inquiryCalls)
	}
	if gotMeta.Date == "" || gotMeta.Time == "" || gotMeta.Reference == "" {
		t.Errorf("expected enriched meta, got %+v", gotMeta)
	}
	if mailer.confirmations != 1 {
		t.Errorf("expected one confirmation mail, got %d", mailer.confirmations)
	}
}

func TestSubmitToGoogleSheets_MissingPincode(t *testing.T) {
	rows := &mockRowSink{}
	sc := NewSubmissionController(rows, nil, nil, InquiryModeStore)

	body := `{"origin":"study-abroad","name":"Asha","email":"asha@example.com","phone":"9876543210","lookingFor":"Nursing"}`
	c, rec := newSubmissionContext(t, body)
	sc.SubmitToGoogleSheets(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp models.Response
	json.NewDecoder(rec.Body).Decode(&resp)
	if !strings.Contains(resp.Message, "Pincode") {
		t.Errorf("expected Pincode in missing list, got %q", resp.Message)
	}
	if rows.inquiryCalls != 0 {
		t.Error("no sink write may be attempted for an invalid payload")
	}
}

func TestSubmitToGoogleSheets_SinkFailure(t *testing.T) {
	rows := &mockRowSink{
		appendInquiryFunc: func(ctx context.Context, req *models.InquiryRequest, meta models.SubmissionMeta) error {
			return errors.New("quota exceeded")
		},
	}
	mailer := &noopMailer{}
	sc := NewSubmissionController(rows, nil, mailer, InquiryModeStore)

	c, rec := newSubmissionContext(t, validInquiryBody)
	sc.SubmitToGoogleSheets(c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var resp models.Response
	json.NewDecoder(rec.Body).Decode(&resp)
	if resp.Success || resp.Message != "Server Error: Try again later" {
		t.Errorf("unexpected response: %+v", resp)
	}
	if resp.Error != "quota exceeded" {
		t.Errorf("expected underlying error detail, got %q", resp.Error)
	}
	if mailer.confirmations != 0 {
		t.Error("no confirmation may be sent when the sink rejects the write")
	}
}

// ---------------------------------------------------------------------------
// POST /submit-inquiry
// ---------------------------------------------------------------------------

func TestSubmitInquiry_StoreModePersists(t *testing.T) {
	records := &mockInquirySaver{}
	sc := NewSubmissionController(&mockRowSink{}, records, nil, InquiryModeStore)

	c, rec := newSubmissionContext(t, validInquiryBody)
	sc.SubmitInquiry(c)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}
	if len(records.saved) != 1 {
		t.Fatalf("expected one saved document, got %d", len(records.saved))
	}
	doc := records.saved[0]
	if doc.Email != "asha@example.com" || doc.Pincode != "600001" {
		t.Errorf("unexpected document: %+v", doc)
	}
	if doc.Reference == "" || doc.Date == "" || doc.Time == "" {
		t.Errorf("expected enriched document, got %+v", doc)
	}
}

func TestSubmitInquiry_LogModeDoesNotPersist(t *testing.T) {
	records := &mockInquirySaver{}
	sc := NewSubmissionController(&mockRowSink{}, records, nil, InquiryModeLog)

	c, rec := newSubmissionContext(t, validInquiryBody)
	sc.SubmitInquiry(c)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(records.saved) != 0 {
		t.Errorf("log mode must not persist, got %d documents", len(records.saved))
	}
	var resp models.InquiryResponse
	json.NewDecoder(rec.Body).Decode(&resp)
	if resp.Message != "Inquiry submitted successfully!" {
		t.Errorf("unexpected message %q", resp.Message)
	}
}

func TestSubmitInquiry_ValidationAppliesInBothModes(t *testing.T) {
	for _, mode := range []string{InquiryModeStore, InquiryModeLog} {
		records := &mockInquirySaver{}
		sc := NewSubmissionController(&mockRowSink{}, records, nil, mode)

		c, rec := newSubmissionContext(t, `{"name":"Asha"}`)
		sc.SubmitInquiry(c)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("mode %s: expected 400, got %d", mode, rec.Code)
		}
		if len(records.saved) != 0 {
			t.Errorf("mode %s: invalid payload must not be persisted", mode)
		}
	}
}

func TestSubmitInquiry_SaveFailure(t *testing.T) {
	records := &mockInquirySaver{
		saveFunc: func(ctx context.Context, doc models.InquiryDocument) error {
			return errors.New("mongo down")
		},
	}
	sc := NewSubmissionController(&mockRowSink{}, records, nil, InquiryModeStore)

	c, rec := newSubmissionContext(t, validInquiryBody)
	sc.SubmitInquiry(c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var resp models.InquiryResponse
	json.NewDecoder(rec.Body).Decode(&resp)
	if resp.Error != "mongo down" {
		t.Errorf("expected error detail, got %q", resp.Error)
	}
}

// ---------------------------------------------------------------------------
// POST /submit-partnership-to-google-sheets
// ---------------------------------------------------------------------------

func TestSubmitPartnership_Success(t *testing.T) {
	var gotReq *models.PartnershipRequest
	rows := &mockRowSink{
		appendPartnershipFunc: func(ctx context.Context, req *models.PartnershipRequest, meta models.SubmissionMeta) error {
			gotReq = req
			return nil
		},
	}
	sc := NewSubmissionController(rows, nil, nil, InquiryModeStore)

	c, rec := newSubmissionContext(t, validPartnershipBody)
	sc.SubmitPartnershipToGoogleSheets(c)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}
	if gotReq == nil || gotReq.CompanyName != "Acme Education" {
		t.Errorf("unexpected sink payload: %+v", gotReq)
	}
}

func TestSubmitPartnership_AllFieldsRequired(t *testing.T) {
	rows := &mockRowSink{}
	sc := NewSubmissionController(rows, nil, nil, InquiryModeStore)

	c, rec := newSubmissionContext(t, `{}`)
	sc.SubmitPartnershipToGoogleSheets(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp models.Response
	json.NewDecoder(rec.Body).Decode(&resp)
	want := "Missing required fields: Type, Name, Email, Phone, Company Name, Designation"
	if resp.Message != want {
		t.Errorf("expected %q, got %q", want, resp.Message)
	}
	if rows.partnershipCalls != 0 {
		t.Error("no sink write may be attempted for an invalid payload")
	}
}

func TestSubmitPartnership_SinkFailure(t *testing.T) {
	rows := &mockRowSink{
		appendPartnershipFunc: func(ctx context.Context, req *models.PartnershipRequest, meta models.SubmissionMeta) error {
			return errors.New("sheet unavailable")
		},
	}
	sc := NewSubmissionController(rows, nil, nil, InquiryModeStore)

	c, rec := newSubmissionContext(t, validPartnershipBody)
	sc.SubmitPartnershipToGoogleSheets(c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var resp models.Response
	json.NewDecoder(rec.Body).Decode(&resp)
	if resp.Success || resp.Message != "Server Error: Try again later" || resp.Error != "sheet unavailable" {
		t.Errorf("unexpected response: %+v", resp)
	}
}
