// Package notify delivers follow-up reminders to the operator.
package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"construction_console/internal/config"
	"construction_console/internal/usecase/interfaces"
)

var ErrTwilioNotConfigured = errors.New("twilio notifier not configured")

// messageCreator is the slice of the Twilio REST API the notifier needs.
type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// TwilioNotifier sends reminders as SMS to a single operator number.
type TwilioNotifier struct {
	api  messageCreator
	from string
	to   string
	log  *logrus.Entry
}

var _ interfaces.INotifier = (*TwilioNotifier)(nil)

func NewTwilioNotifier(cfg *config.Config) (*TwilioNotifier, error) {
	if cfg == nil || !cfg.TwilioEnabled() {
		return nil, ErrTwilioNotConfigured
	}
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.TwilioAccountSID,
		Password: cfg.TwilioAuthToken,
	})
	return newTwilioNotifier(client.Api, cfg.TwilioFromNumber, cfg.ReminderNotifyTo), nil
}

func newTwilioNotifier(api messageCreator, from, to string) *TwilioNotifier {
	return &TwilioNotifier{api: api, from: from, to: to, log: config.Module("notify.twilio")}
}

func (n *TwilioNotifier) Notify(ctx context.Context, title, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(n.to)
	params.SetFrom(n.from)
	params.SetBody(title + "\n" + body)

	resp, err := n.api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("twilio: send reminder: %w", err)
	}
	entry := n.log.WithField("to", n.to)
	if resp != nil && resp.Sid != nil {
		entry = entry.WithField("sid", *resp.Sid)
	}
	entry.Info("reminder sent")
	return nil
}

// LogNotifier writes reminders to the service log. It is used when no SMS channel is configured.
type LogNotifier struct {
	log *logrus.Entry
}

var _ interfaces.INotifier = (*LogNotifier)(nil)

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{log: config.Module("notify.log")}
}

func (n *LogNotifier) Notify(_ context.Context, title, body string) error {
	n.log.WithFields(logrus.Fields{"title": title, "body": body}).Info("follow-up reminder")
	return nil
}

// New picks Twilio when it is configured and falls back to the log.
func New(cfg *config.Config) interfaces.INotifier {
	if tw, err := NewTwilioNotifier(cfg); err == nil {
		return tw
	}
	return NewLogNotifier()
}
