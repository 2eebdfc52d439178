package mail

import (
	"context"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/mail"
	"strings"
	"testing"

	"cumple/config"
	"cumple/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMailer(t *testing.T) *smtpMailer {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.FromName = "Cumple"
	cfg.SMTP.Username = "fiesta@example.com"

	return New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))).(*smtpMailer)
}

func TestSMTPMailer_BuildMessage_MultipartAlternative(t *testing.T) {
	mailer := newTestMailer(t)

	payload, err := mailer.buildMessage(&service.MailMessage{
		To:      "ana@example.com",
		Subject: "Invitación",
		Body:    "Hola Ana,\nven a la fiesta",
	})
	require.NoError(t, err)

	parsed, err := mail.ReadMessage(strings.NewReader(string(payload)))
	require.NoError(t, err)

	assert.Equal(t, "ana@example.com", parsed.Header.Get("To"))

	mediaType, params, err := mime.ParseMediaType(parsed.Header.Get("Content-Type"))
	require.NoError(t, err)
	assert.Equal(t, "multipart/alternative", mediaType)
	require.NotEmpty(t, params["boundary"])

	reader := multipart.NewReader(parsed.Body, params["boundary"])

	textPart, err := reader.NextPart()
	require.NoError(t, err)
	assert.Contains(t, textPart.Header.Get("Content-Type"), "text/plain")
	text, err := io.ReadAll(textPart)
	require.NoError(t, err)
	assert.Equal(t, "Hola Ana,\nven a la fiesta", string(text))

	htmlPart, err := reader.NextPart()
	require.NoError(t, err)
	assert.Contains(t, htmlPart.Header.Get("Content-Type"), "text/html")
	html, err := io.ReadAll(htmlPart)
	require.NoError(t, err)
	assert.Equal(t, "Hola Ana,<br>\nven a la fiesta", string(html))

	_, err = reader.NextPart()
	assert.ErrorIs(t, err, io.EOF)
}

func TestSMTPMailer_Send_RequiresRecipient(t *testing.T) {
	mailer := newTestMailer(t)

	err := mailer.Send(context.Background(), &service.MailMessage{Subject: "Invitación"})

	assert.Error(t, err)
}
