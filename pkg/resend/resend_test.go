package resend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := NewClient(Config{APIKey: "  "})
	assert.ErrorIs(t, err, ErrAPIKeyRequired)
}

func TestSend(t *testing.T) {
	var (
		gotAuth string
		gotPath string
		gotBody sendRequest
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"em_1"}`))
	}))
	defer srv.Close()

	c, err := NewClient(Config{APIKey: "re_key", BaseURL: srv.URL, Client: srv.Client()})
	require.NoError(t, err)

	err = c.Send(context.Background(), Email{
		To:      []string{"a@example.com, b@example.com", " "},
		Subject: "subject",
		HTML:    "<p>hi</p>",
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer re_key", gotAuth)
	assert.Equal(t, "/emails", gotPath)
	assert.Equal(t, DefaultFrom, gotBody.From)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, gotBody.To)
	assert.Equal(t, "subject", gotBody.Subject)
	assert.Equal(t, "<p>hi</p>", gotBody.HTML)
}

func TestSendErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"invalid from"}`))
	}))
	defer srv.Close()

	c, err := NewClient(Config{APIKey: "re_key", From: "me@example.com", BaseURL: srv.URL, Client: srv.Client()})
	require.NoError(t, err)

	err = c.Send(context.Background(), Email{To: []string{"a@example.com"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid from")

	err = c.Send(context.Background(), Email{To: []string{" , "}})
	assert.ErrorIs(t, err, ErrRecipientRequired)
}

func TestParseRecipients(t *testing.T) {
	assert.Nil(t, ParseRecipients(""))
	assert.Equal(t, []string{"a@x.io"}, ParseRecipients(" a@x.io ,,"))
}
