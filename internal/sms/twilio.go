// Package sms delivers outbound text messages through the Twilio REST API.
package sms

import (
	"context"
	"fmt"

	"detailing_site_backend/platform/config"
	"detailing_site_backend/platform/phone"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Sender sends a short text message to a phone number.
type Sender interface {
	Send(ctx context.Context, toNumber, body string) error
}

// NoopSender satisfies Sender without delivering anything.
type NoopSender struct{}

func (NoopSender) Send(context.Context, string, string) error { return nil }

// TwilioSender implements Sender using the Twilio Messages API.
type TwilioSender struct {
	client     *twilio.RestClient
	fromNumber string
}

// NewSender constructs the configured Sender implementation. When Twilio
// credentials or the from-number are absent the SMS channel is disabled and
// a NoopSender is returned.
func NewSender(cfg config.SMSConfig) Sender {
	if !cfg.IsSMSEnabled() {
		return NoopSender{}
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.GetTwilioAccountSID(),
		Password: cfg.GetTwilioAuthToken(),
	})

	return &TwilioSender{
		client:     client,
		fromNumber: cfg.GetSMSFromNumber(),
	}
}

// Send delivers the message to toNumber, normalizing it to E.164 first.
func (s *TwilioSender) Send(_ context.Context, toNumber, body string) error {
	params := &twilioapi.CreateMessageParams{}
	params.SetFrom(s.fromNumber)
	params.SetTo(phone.NormalizeE164(toNumber))
	params.SetBody(body)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("twilio send: %w", err)
	}

	return nil
}
