// utils/validate.go
package utils

import (
	"errors"
	"regexp"
	"strings"

	"github.com/skillang/skillang_backend/models"
)

// requiredField pairs an extractor with the display name reported to callers.
// Order in the slice is the order missing fields are reported in.
type requiredField struct {
	display string
	value   func() string
}

// ValidationResult lists every missing required field in declared order.
type ValidationResult struct {
	MissingFields []string
}

// Valid reports whether the payload passed validation.
func (v ValidationResult) Valid() bool {
	return len(v.MissingFields) == 0
}

// ErrorMessage returns the caller-facing message enumerating all missing fields.
func (v ValidationResult) ErrorMessage() string {
	return "Missing required fields: " + strings.Join(v.MissingFields, ", ")
}

func checkRequired(fields []requiredField) ValidationResult {
	var result ValidationResult
	for _, f := range fields {
		if strings.TrimSpace(f.value()) == "" {
			result.MissingFields = append(result.MissingFields, f.display)
		}
	}
	return result
}

// ValidateInquiry checks the required inquiry fields. Country and Experience
// are optional and not checked.
func ValidateInquiry(req *models.InquiryRequest) ValidationResult {
	return checkRequired([]requiredField{
		{"Name", func() string { return req.Name }},
		{"Email", func() string { return req.Email }},
		{"Phone", func() string { return req.Phone }},
		{"Pincode", func() string { return req.Pincode }},
		{"LookingFor", func() string { return req.LookingFor }},
		{"Origin", func() string { return req.Origin }},
	})
}

// ValidatePartnership checks the required partnership fields. An empty or
// whitespace-only string counts as missing, not just an absent key.
func ValidatePartnership(req *models.PartnershipRequest) ValidationResult {
	return checkRequired([]requiredField{
		{"Type", func() string { return req.Type }},
		{"Name", func() string { return req.Name }},
		{"Email", func() string { return req.Email }},
		{"Phone", func() string { return req.Phone }},
		{"Company Name", func() string { return req.CompanyName }},
		{"Designation", func() string { return req.Designation }},
	})
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// SanitizeEmail trims, lowercases and validates an email address.
func SanitizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRegex.MatchString(email) {
		return "", errors.New("invalid email format")
	}
	return email, nil
}
