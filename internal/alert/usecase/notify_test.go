package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"alertr-srv/internal/alert"
	"alertr-srv/pkg/resend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) Send(ctx context.Context, email resend.Email) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func TestNotify(t *testing.T) {
	ft := &fakeTransport{respond: func(r *http.Request, body string) (*http.Response, error) {
		if r.URL.Host == "ntfy.sh" {
			return statusResponse(r, http.StatusForbidden), nil
		}
		return statusResponse(r, http.StatusOK), nil
	}}
	sender := &MockEmailSender{}
	sender.On("Send", mock.Anything, mock.MatchedBy(func(e resend.Email) bool {
		return assert.ObjectsAreEqual([]string{"dev@example.com"}, e.To) && e.Subject != "" && e.HTML != ""
	})).Return(nil).Once()

	uc := newTestUseCase(ft, Options{
		WebhookURL: "https://hooks.internal/alert",
		Email:      sender,
		EmailTo:    []string{"dev@example.com"},
		URLs: []string{
			"slack://T00/B00/XXX",
			"slack://T11/B11/YYY",
			"ntfy://ntfy.sh/topic",
			"bogus",
		},
	})

	report, err := uc.Notify(context.Background(), samplePayload)
	require.NoError(t, err)

	assert.Equal(t, alert.Report{
		{Key: "webhook", Service: "webhook", Success: true},
		{Key: "email", Service: "email", Success: true},
		{Key: "slack", Service: "slack", Success: true},
		{Key: "slack_2", Service: "slack", Success: true},
		{Key: "ntfy", Service: "ntfy", Success: false},
		{Key: "unknown", Service: "unknown", Success: false},
	}, report)
	assert.Equal(t, 4, report.Delivered())
	assert.Equal(t, map[string]bool{
		"webhook": true, "email": true, "slack": true, "slack_2": true, "ntfy": false, "unknown": false,
	}, report.Map())
	sender.AssertExpectations(t)

	var webhookReq *recordedRequest
	for _, r := range ft.requests() {
		if r.URL == "https://hooks.internal/alert" {
			webhookReq = &r
		}
	}
	require.NotNil(t, webhookReq)
	body := decodeBody(t, webhookReq.Body)
	assert.Equal(t, "sess-1", body["session_id"])
	assert.Equal(t, "permission_prompt", body["notification_type"])
	assert.Equal(t, formatMessage(samplePayload).Title, body["title"])
	assert.Equal(t, formatMessage(samplePayload).Body, body["body"])
}

func TestNotifyEmailFailureIsIsolated(t *testing.T) {
	sender := &MockEmailSender{}
	sender.On("Send", mock.Anything, mock.Anything).Return(errors.New("resend down"))

	uc := newTestUseCase(&fakeTransport{}, Options{
		Email:   sender,
		EmailTo: []string{"dev@example.com"},
		URLs:    []string{"gotify://push.example.com/tok"},
	})

	report, err := uc.Notify(context.Background(), samplePayload)
	require.NoError(t, err)
	assert.Equal(t, alert.Report{
		{Key: "email", Service: "email", Success: false},
		{Key: "gotify", Service: "gotify", Success: true},
	}, report)
}

func TestNotifyErrors(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		payload alert.Payload
		wantErr error
	}{
		{"no channels", Options{}, samplePayload, alert.ErrNoChannels},
		{"email without recipients", Options{Email: &MockEmailSender{}}, samplePayload, alert.ErrNoChannels},
		{"missing session", Options{WebhookURL: "https://x"}, alert.Payload{NotificationType: "t"}, alert.ErrInvalidPayload},
		{"missing type", Options{WebhookURL: "https://x"}, alert.Payload{SessionID: "s"}, alert.ErrInvalidPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ft := &fakeTransport{}
			uc := newTestUseCase(ft, tt.opts)

			report, err := uc.Notify(context.Background(), tt.payload)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, report)
			assert.Empty(t, ft.requests())
		})
	}
}

func TestChannels(t *testing.T) {
	uc := newTestUseCase(&fakeTransport{}, Options{
		WebhookURL: "https://x",
		URLs:       []string{"slack://a/b", "Telegram://t@telegram?chats=1", "nope"},
	})

	assert.Equal(t, alert.ChannelStatus{
		Webhook:  true,
		Email:    false,
		Shoutrrr: []string{"slack", "telegram", "unknown"},
	}, uc.Channels())
}
