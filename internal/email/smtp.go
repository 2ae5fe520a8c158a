package email

import (
	"context"
	"fmt"
	"time"

	gomail "github.com/wneessen/go-mail"
)

// SMTPSender implements the Sender interface using a direct SMTP connection
// via go-mail. It renders the same HTML templates as BrevoSender but delivers
// through the operator's own SMTP server.
type SMTPSender struct {
	host      string
	port      int
	username  string
	password  string
	fromName  string
	fromEmail string
}

// NewSMTPSender creates a new SMTPSender with the given SMTP credentials.
func NewSMTPSender(host string, port int, username, password, fromEmail, fromName string) *SMTPSender {
	return &SMTPSender{
		host:      host,
		port:      port,
		username:  username,
		password:  password,
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

func (s *SMTPSender) send(ctx context.Context, toEmail, subject, htmlContent string) error {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(s.fromName, s.fromEmail); err != nil {
		return fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.To(toEmail); err != nil {
		return fmt.Errorf("smtp to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlContent)

	client, err := gomail.NewClient(s.host,
		gomail.WithPort(s.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.username),
		gomail.WithPassword(s.password),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(15*time.Second),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return nil
}

func (s *SMTPSender) SendInquiryReceivedEmail(ctx context.Context, toEmail, name string) error {
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
	return s.send(ctx, toEmail, subjectInquiryReceived, content)
}

func (s *SMTPSender) SendBookingReceivedEmail(ctx context.Context, toEmail, name, pkg, date, tm string) error {
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
	return s.send(ctx, toEmail, subjectBookingReceived, content)
}

func (s *SMTPSender) SendInquiryAlertEmail(ctx context.Context, toEmail string, alert InquiryAlert) error {
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
	return s.send(ctx, toEmail, subjectInquiryAlert, content)
}

func (s *SMTPSender) SendBookingAlertEmail(ctx context.Context, toEmail string, alert BookingAlert) error {
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
	return s.send(ctx, toEmail, subjectBookingAlert, content)
}
