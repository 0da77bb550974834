// models/submission.go

package models

import "time"

// SendOTPRequest is the body for POST /send-otp
type SendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required"`
}

// InquiryRequest carries a lead-generation form submission.
// Country and Experience are optional; everything else is required.
type InquiryRequest struct {
	Origin     string `json:"origin"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Pincode    string `json:"pincode"`
	LookingFor string `json:"lookingFor"`
	Country    string `json:"country,omitempty"`
	Experience string `json:"experience,omitempty"`
}

// PartnershipRequest carries a partnership form submission. All fields required.
type PartnershipRequest struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	CompanyName string `json:"companyName"`
	Designation string `json:"designation"`
}

// SubmissionMeta is attached to every accepted submission before it is
// forwarded to a sink: processing date/time in IST plus a reference ID.
type SubmissionMeta struct {
	Date      string `json:"date" bson:"date"`
	Time      string `json:"time" bson:"time"`
	Reference string `json:"reference" bson:"reference"`
}

// InquiryDocument is the shape persisted to the enquiry_form collection.
type InquiryDocument struct {
	Origin     string    `bson:"origin"`
	Name       string    `bson:"name"`
	Email      string    `bson:"email"`
	Phone      string    `bson:"phone"`
	Pincode    string    `bson:"pincode"`
	LookingFor string    `bson:"lookingFor"`
	Country    string    `bson:"country,omitempty"`
	Experience string    `bson:"experience,omitempty"`
	Date       string    `bson:"date"`
	Time       string    `bson:"time"`
	Reference  string    `bson:"reference"`
	CreatedAt  time.Time `bson:"createdAt"`
}

// Response is the envelope for the OTP and sheet submission endpoints.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// InquiryResponse matches the legacy /submit-inquiry envelope.
type InquiryResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
