// services/otp_service.go
package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"time"

	"github.com/skillang/skillang_backend/models"
	"github.com/skillang/skillang_backend/repositories"
)

const (
	otpValidity   = 10 * time.Minute
	maxAttempts   = 5
	attemptWindow = 1 * time.Hour
)

// ErrMissingField is returned when email or code is absent.
var ErrMissingField = errors.New("missing required field")

// ErrTooManyAttempts is returned when verification for an email is locked out.
var ErrTooManyAttempts = errors.New("too many OTP attempts")

// OTPManager issues and verifies one-time passcodes for email addresses.
type OTPManager interface {
	Issue(ctx context.Context, email, name string) error
	Verify(ctx context.Context, email, code string) (bool, error)
}

// OTPService generates, stores and validates OTP codes, delivering them
// through the Mailer.
type OTPService struct {
	store  repositories.OTPStore
	mailer Mailer
	now    func() time.Time
}

// NewOTPService creates an OTP service over the given store and mailer.
func NewOTPService(store repositories.OTPStore, mailer Mailer) *OTPService {
	return &OTPService{store: store, mailer: mailer, now: time.Now}
}

// Issue generates a fresh 4-digit code for the email, overwriting any prior
// code, and dispatches it by mail. If dispatch fails the stored code is
// removed again so no undelivered code stays valid.
func (s *OTPService) Issue(ctx context.Context, email, name string) error {
	if email == "" {
		return ErrMissingField
	}

	code, err := generateOTP()
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}

	issuedAt := s.now()
	rec := models.OTPRecord{
		Email:     email,
		Code:      code,
		IssuedAt:  issuedAt,
		ExpiresAt: issuedAt.Add(otpValidity),
	}
	if err := s.store.Set(ctx, rec); err != nil {
		return fmt.Errorf("failed to save OTP: %w", err)
	}

	if err := s.mailer.SendOTP(email, name, code); err != nil {
		// Keep issuance atomic with dispatch: the submitter never saw this
		// code, so it must not remain verifiable.
		if delErr := s.store.Delete(ctx, email); delErr != nil {
			log.Printf("Error rolling back undelivered OTP for %s: %v", email, delErr)
		}
		return fmt.Errorf("failed to send OTP email: %w", err)
	}
	return nil
}

// Verify compares the submitted code against the stored one. A match deletes
// the record (single-use) and resets the failure counter. Absent records,
// expired records and mismatches are indistinguishable to the caller. Five
// failures within an hour lock the email out for the rest of the window.
func (s *OTPService) Verify(ctx context.Context, email, code string) (bool, error) {
	if email == "" || code == "" {
		return false, ErrMissingField
	}

	attempts, err := s.store.IncrAttempts(ctx, email, attemptWindow)
	if err != nil {
		return false, fmt.Errorf("failed to track OTP attempts: %w", err)
	}
	if attempts > maxAttempts {
		return false, ErrTooManyAttempts
	}

	rec, err := s.store.Get(ctx, email)
	if err != nil {
		return false, fmt.Errorf("failed to load OTP: %w", err)
	}
	if rec == nil || rec.Expired(s.now()) || rec.Code != code {
		return false, nil
	}

	if err := s.store.Delete(ctx, email); err != nil {
		return false, fmt.Errorf("failed to consume OTP: %w", err)
	}
	if err := s.store.ResetAttempts(ctx, email); err != nil {
		log.Printf("Error resetting OTP attempt counter for %s: %v", email, err)
	}
	return true, nil
}

// generateOTP draws a uniformly random 4-digit code in [1000, 9999].
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", n.Int64()+1000), nil
}
