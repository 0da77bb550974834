// services/mail_service.go
package services

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// Mailer delivers formatted email to a submitter. Implementations report only
// dispatched/failed; delivery beyond the SMTP handoff is not observable here.
type Mailer interface {
	SendOTP(to, name, code string) error
	SendConfirmation(to, name, submissionKind string) error
}

// SMTPMailer sends mail through the configured SMTP relay via gomail.
type SMTPMailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// NewSMTPMailerFromEnv reads the SMTP configuration from environment
// variables and fails if any required value is missing.
func NewSMTPMailerFromEnv() (*SMTPMailer, error) {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPortStr := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")
	fromEmail := os.Getenv("FROM_EMAIL")

	if smtpHost == "" || smtpPortStr == "" || smtpUser == "" || smtpPass == "" || fromEmail == "" {
		return nil, fmt.Errorf("missing SMTP configuration")
	}

	smtpPort, err := strconv.Atoi(smtpPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP port: %v", err)
	}

	return &SMTPMailer{
		host:     smtpHost,
		port:     smtpPort,
		username: smtpUser,
		password: smtpPass,
		from:     fromEmail,
	}, nil
}

// SendOTP emails the one-time code with its stated validity period.
func (m *SMTPMailer) SendOTP(to, name, code string) error {
	return m.send(to, "Your Skillang OTP Code", otpBody(name, code))
}

// SendConfirmation emails a submission acknowledgement.
func (m *SMTPMailer) SendConfirmation(to, name, submissionKind string) error {
	subject := "We received your " + submissionKind
	return m.send(to, subject, confirmationBody(name, submissionKind))
}

func (m *SMTPMailer) send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	d := gomail.NewDialer(m.host, m.port, m.username, m.password)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}
	return nil
}

func otpBody(name, code string) string {
	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 500px; padding: 20px; border: 1px solid #ddd; border-radius: 10px;">
			<h2 style="color: #333; text-align: center;">Dear %s,</h2>
			<p style="font-size: 16px; color: #555; text-align: center;">
				Your One-Time Password (OTP) for verification is:
			</p>
			<div style="text-align: center; font-size: 22px; font-weight: bold; background: #f4f4f4; padding: 10px; border-radius: 5px; margin: 10px 0;">
				%s
			</div>
			<p style="font-size: 14px; color: #777; text-align: center;">
				This OTP is valid for <strong>10 minutes</strong>. Please do not share it with anyone.
			</p>
			<p style="font-size: 16px; text-align: center;">
				Thanks &amp; Regards, <br>
				<strong>Skillang Support Team</strong>
			</p>
			<hr>
			<p style="font-size: 12px; color: #aaa; text-align: center;">
				This is a system-generated email. Please do not reply to this email.
			</p>
		</div>
	`, name, code)
}

func confirmationBody(name, submissionKind string) string {
	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 500px; padding: 20px; border: 1px solid #ddd; border-radius: 10px;">
			<h2 style="color: #333; text-align: center;">Dear %s,</h2>
			<p style="font-size: 16px; color: #555; text-align: center;">
				Thank you! We have received your %s and our team will reach out to you shortly.
			</p>
			<p style="font-size: 16px; text-align: center;">
				Thanks &amp; Regards, <br>
				<strong>Skillang Support Team</strong>
			</p>
			<hr>
			<p style="font-size: 12px; color: #aaa; text-align: center;">
				This is a system-generated email. Please do not reply to this email.
			</p>
		</div>
	`, name, submissionKind)
}
