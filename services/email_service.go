package services

import (
	"fmt"
	"storebill_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/resend/resend-go/v3"
)

type EmailService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	client *resend.Client
}

func NewEmailService(logger *gecho.Logger, cfg *structs.Config) *EmailService {
	return &EmailService{
		logger: logger,
		cfg:    cfg,
		client: resend.NewClient(cfg.Email.ApiKey),
	}
}

func (es *EmailService) SendEmail(to []string, subject string, body string) error {
	params := &resend.SendEmailRequest{
		From:    es.cfg.Email.From,
		To:      to,
		Html:    body,
		Subject: subject,
	}

	_, err := es.client.Emails.Send(params)
	if err != nil {
		es.logger.Error("Failed to send email", gecho.Field("error", err), gecho.Field("to", to))
		return err
	}

	return nil
}

// SendOTPEmail delivers a login passcode
func (es *EmailService) SendOTPEmail(email, otp string) error {
	expiryMinutes := int(es.cfg.Cache.OTPExpiry.Minutes())

	body := fmt.Sprintf(`
		<div style="font-family: sans-serif; max-width: 480px; margin: 0 auto;">
			<h2>Your verification code</h2>
			<p>Use this code to continue signing in:</p>
			<p style="font-size: 32px; font-weight: bold; letter-spacing: 8px;">%s</p>
			<p>The code expires in %d minutes. If you did not request it, you can ignore this email.</p>
		</div>`, otp, expiryMinutes)

	return es.SendEmail([]string{email}, "Your verification code", body)
}
