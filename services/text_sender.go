// services/text_sender.go
package services

import (
	"fmt"
	"os"
	"strings"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioSender delivers short messages via Twilio, preferring WhatsApp for
// numbers in E.164 format and falling back to SMS otherwise.
type TwilioSender struct {
	client         *twilio.RestClient
	smsNumber      string
	whatsappNumber string
}

func NewTwilioSenderFromEnv() *TwilioSender {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &TwilioSender{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		smsNumber:      os.Getenv("TWILIO_PHONE_NUMBER"),
		whatsappNumber: os.Getenv("TWILIO_WHATSAPP_NUMBER"),
	}
}

func (t *TwilioSender) Send(to, body string) (string, error) {
	channel := "sms"
	dest := to

	// Use WhatsApp if phone is in E.164 format and starts with '+'
	if strings.HasPrefix(to, "+") && t.whatsappNumber != "" {
		dest = "whatsapp:" + to
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(dest)
	params.SetBody(body)

	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + t.whatsappNumber)
	} else {
		params.SetFrom(t.smsNumber)
	}

	resp, err := t.client.Api.CreateMessage(params)
	if err != nil {
		return channel, fmt.Errorf("failed to send %s to %s: %w", channel, to, err)
	}
	if resp.Sid == nil {
		return channel, fmt.Errorf("%s to %s accepted but no SID returned", channel, to)
	}
	return channel, nil
}

var _ TextSender = (*TwilioSender)(nil)
