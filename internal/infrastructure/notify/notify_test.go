package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"construction_console/internal/config"
)

type fakeMessages struct {
	params []*twilioApi.CreateMessageParams
	err    error
}

func (f *fakeMessages) CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error) {
	f.params = append(f.params, params)
	if f.err != nil {
		return nil, f.err
	}
	sid := "SM123"
	return &twilioApi.ApiV2010Message{Sid: &sid}, nil
}

func TestTwilioNotifier_Notify(t *testing.T) {
	api := &fakeMessages{}
	n := newTwilioNotifier(api, "+15005550006", "+919876543210")

	require.NoError(t, n.Notify(context.Background(), "Follow-up Reminder: Asha", "Reason: site visit\nTime: 10:00"))
	require.Len(t, api.params, 1)
	p := api.params[0]
	require.NotNil(t, p.To)
	require.NotNil(t, p.From)
	require.NotNil(t, p.Body)
	assert.Equal(t, "+919876543210", *p.To)
	assert.Equal(t, "+15005550006", *p.From)
	assert.Equal(t, "Follow-up Reminder: Asha\nReason: site visit\nTime: 10:00", *p.Body)
}

func TestTwilioNotifier_Errors(t *testing.T) {
	api := &fakeMessages{err: errors.New("21211 invalid to number")}
	n := newTwilioNotifier(api, "+15005550006", "bogus")
	assert.ErrorContains(t, n.Notify(context.Background(), "t", "b"), "21211")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, n.Notify(ctx, "t", "b"), context.Canceled)
	assert.Len(t, api.params, 1)
}

func TestNew(t *testing.T) {
	_, isLog := New(&config.Config{}).(*LogNotifier)
	assert.True(t, isLog)

	cfg := &config.Config{TwilioAccountSID: "AC1", TwilioAuthToken: "tok", TwilioFromNumber: "+15005550006", ReminderNotifyTo: "+919876543210"}
	_, isTwilio := New(cfg).(*TwilioNotifier)
	assert.True(t, isTwilio)

	_, err := NewTwilioNotifier(nil)
	assert.ErrorIs(t, err, ErrTwilioNotConfigured)
	assert.NoError(t, NewLogNotifier().Notify(context.Background(), "t", "b"))
}
