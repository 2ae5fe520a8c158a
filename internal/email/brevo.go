package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"detailing_site_backend/platform/config"
)

// BrevoSender delivers email through the Brevo transactional HTTP API.
type BrevoSender struct {
	apiKey    string
	fromName  string
	fromEmail string
	client    *http.Client
}

type brevoEmailRequest struct {
	Sender struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"sender"`
	To []struct {
		Email string `json:"email"`
	} `json:"to"`
	Subject     string `json:"subject"`
	HTMLContent string `json:"htmlContent"`
}

// NewBrevoSender creates a Brevo-backed Sender.
func NewBrevoSender(cfg config.EmailConfig) *BrevoSender {
	return &BrevoSender{
		apiKey:    cfg.GetBrevoAPIKey(),
		fromName:  cfg.GetEmailFromName(),
		fromEmail: cfg.GetEmailFromAddress(),
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (b *BrevoSender) SendInquiryReceivedEmail(ctx context.Context, toEmail, name string) error {
	content, err := renderEmailTemplate("inquiry_received.html", inquiryReceivedEmailData{
		baseEmailData: baseEmailData{
			Title:   "We got your message",
			Heading: "Thanks for reaching out" + greetingSuffix(name),
		},
		Name: name,
	})
	if err != nil {
		return err
	}
	return b.send(ctx, toEmail, subjectInquiryReceived, content)
}

func (b *BrevoSender) SendBookingReceivedEmail(ctx context.Context, toEmail, name, pkg, date, tm string) error {
	content, err := renderEmailTemplate("booking_received.html", bookingReceivedEmailData{
		baseEmailData: baseEmailData{
			Title:   "We got your booking request",
			Heading: "Thanks for booking" + greetingSuffix(name),
		},
		Name:    name,
		Package: pkg,
		Date:    date,
		Time:    tm,
	})
	if err != nil {
		return err
	}
	return b.send(ctx, toEmail, subjectBookingReceived, content)
}

func (b *BrevoSender) SendInquiryAlertEmail(ctx context.Context, toEmail string, alert InquiryAlert) error {
	content, err := renderEmailTemplate("inquiry_alert.html", inquiryAlertEmailData{
		baseEmailData: baseEmailData{
			Title:   "New inquiry",
			Heading: "New inquiry",
		},
		Alert: alert,
	})
	if err != nil {
		return err
	}
	return b.send(ctx, toEmail, subjectInquiryAlert, content)
}

func (b *BrevoSender) SendBookingAlertEmail(ctx context.Context, toEmail string, alert BookingAlert) error {
	content, err := renderEmailTemplate("booking_alert.html", bookingAlertEmailData{
		baseEmailData: baseEmailData{
			Title:   "New booking",
			Heading: "New booking",
		},
		Alert: alert,
	})
	if err != nil {
		return err
	}
	return b.send(ctx, toEmail, subjectBookingAlert, content)
}

func (b *BrevoSender) send(ctx context.Context, toEmail, subject, htmlContent string) error {
	payload := brevoEmailRequest{
		Subject:     subject,
		HTMLContent: htmlContent,
	}
	payload.Sender.Name = b.fromName
	payload.Sender.Email = b.fromEmail
	payload.To = []struct {
		Email string `json:"email"`
	}{{Email: toEmail}}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "https://api.brevo.com/v3/smtp/email", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("api-key", b.apiKey)
	req.Header.Set("content-type", "application/json")
	req.Header.Set("accept", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("brevo send failed: status %d: %s", resp.StatusCode, string(data))
	}

	return nil
}
