package email_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-portfolio-backend/pkg/email"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMessage() email.Message {
	return email.Message{
		From:    "Portfolio Contact <noreply@example.com>",
		To:      []string{"inbox@example.com"},
		ReplyTo: "visitor@example.org",
		Subject: "Portfolio contact from Jane Doe <visitor@example.org>",
		Text:    "Hello there!",
		HTML:    "<p>Hello there!</p>",
	}
}

func TestResendClientSend(t *testing.T) {
	t.Run("Should post the expected payload with bearer auth", func(t *testing.T) {
		var (
			gotAuth        string
			gotContentType string
			gotBody        map[string]any
		)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotContentType = r.Header.Get("Content-Type")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"id":"msg_123"}`))
		}))
		defer srv.Close()

		client := email.NewResendClient("re_secret", email.WithBaseURL(srv.URL))
		err := client.Send(context.Background(), testMessage())
		require.NoError(t, err)

		assert.Equal(t, "Bearer re_secret", gotAuth)
		assert.Equal(t, "application/json", gotContentType)
		assert.Equal(t, "Portfolio Contact <noreply@example.com>", gotBody["from"])
		assert.Equal(t, []any{"inbox@example.com"}, gotBody["to"])
		assert.Equal(t, "visitor@example.org", gotBody["reply_to"])
		assert.Equal(t, "Portfolio contact from Jane Doe <visitor@example.org>", gotBody["subject"])
		assert.Equal(t, "Hello there!", gotBody["text"])
		assert.Equal(t, "<p>Hello there!</p>", gotBody["html"])
	})

	t.Run("Should return an error carrying the provider status on non-2xx", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"message":"invalid sender domain"}`, http.StatusUnprocessableEntity)
		}))
		defer srv.Close()

		client := email.NewResendClient("re_secret", email.WithBaseURL(srv.URL))
		err := client.Send(context.Background(), testMessage())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "422")
		assert.Contains(t, err.Error(), "invalid sender domain")
	})

	t.Run("Should fail when the provider is unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // connection refused from here on

		client := email.NewResendClient("re_secret", email.WithBaseURL(srv.URL))
		err := client.Send(context.Background(), testMessage())
		assert.Error(t, err)
	})

	t.Run("Should honor context cancellation while the provider stalls", func(t *testing.T) {
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
		}))
		defer func() {
			close(release)
			srv.Close()
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		client := email.NewResendClient("re_secret", email.WithBaseURL(srv.URL))
		err := client.Send(ctx, testMessage())
		require.Error(t, err)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
