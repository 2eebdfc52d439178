// Package mail implements outbound invitation delivery over SMTP.
package mail

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"mime"
	"mime/multipart"
	"net"
	"net/smtp"
	"net/textproto"
	"strconv"
	"strings"
	"time"

	"cumple/config"
	"cumple/internal/domain/service"
	"cumple/internal/errors"
)

const (
	defaultConnectTimeout  = 10 * time.Second
	defaultGreetingTimeout = 10 * time.Second
)

// smtpMailer implements service.Mailer against a plain SMTP submission
// account (Gmail app password in the household deployment).
type smtpMailer struct {
	cfg    config.SMTPConfig
	from   string
	logger *slog.Logger
}

// New creates an SMTP-backed Mailer.
func New(cfg *config.Config, logger *slog.Logger) service.Mailer {
	from := fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("utf-8", cfg.App.FromName), cfg.SMTP.Username)

	return &smtpMailer{
		cfg:    cfg.SMTP,
		from:   from,
		logger: logger,
	}
}

// Send delivers one message as multipart/alternative: the plain body plus
// an HTML rendering of it.
func (m *smtpMailer) Send(ctx context.Context, msg *service.MailMessage) error {
	if msg == nil || msg.To == "" {
		return errors.New("mail message requires a recipient")
	}

	addr := net.JoinHostPort(m.cfg.Host, strconv.Itoa(m.cfg.Port))

	connectTimeout := m.cfg.ConnectTimeout
	if connectTimeout <= 0 {
		connectTimeout = defaultConnectTimeout
	}
	greetingTimeout := m.cfg.GreetingTimeout
	if greetingTimeout <= 0 {
		greetingTimeout = defaultGreetingTimeout
	}
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < connectTimeout {
			connectTimeout = remaining
		}
	}

	conn, err := net.DialTimeout("tcp", addr, connectTimeout)
	if err != nil {
		return errors.Wrap(err, "failed to connect to SMTP server")
	}

	// Bound the greeting and the rest of the session so a stalled server
	// cannot hang the request.
	if err := conn.SetDeadline(time.Now().Add(greetingTimeout)); err != nil {
		conn.Close()

		return errors.Wrap(err, "failed to set SMTP deadline")
	}

	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		conn.Close()

		return errors.Wrap(err, "SMTP greeting failed")
	}
	defer client.Close()

	// Session continues under a fresh, longer deadline once greeted.
	if err := conn.SetDeadline(time.Now().Add(connectTimeout + greetingTimeout)); err != nil {
		return errors.Wrap(err, "failed to extend SMTP deadline")
	}

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: m.cfg.Host}); err != nil {
			return errors.Wrap(err, "STARTTLS failed")
		}
	}

	if m.cfg.Username != "" {
		auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return errors.Wrap(err, "SMTP authentication failed")
		}
	}

	if err := client.Mail(m.cfg.Username); err != nil {
		return errors.Wrap(err, "MAIL FROM rejected")
	}
	if err := client.Rcpt(msg.To); err != nil {
		return errors.Wrap(err, "RCPT TO rejected")
	}

	payload, err := m.buildMessage(msg)
	if err != nil {
		return errors.Wrap(err, "failed to build message")
	}

	writer, err := client.Data()
	if err != nil {
		return errors.Wrap(err, "DATA rejected")
	}
	if _, err := writer.Write(payload); err != nil {
		return errors.Wrap(err, "failed to write message body")
	}
	if err := writer.Close(); err != nil {
		return errors.Wrap(err, "failed to finish message body")
	}

	if err := client.Quit(); err != nil {
		m.logger.LogAttrs(ctx, slog.LevelDebug, "SMTP QUIT failed",
			slog.String("error", err.Error()),
		)
	}

	m.logger.LogAttrs(ctx, slog.LevelInfo, "Invitation email sent",
		slog.String("to", msg.To),
	)

	return nil
}

// buildMessage renders a multipart/alternative message: the raw text body
// plus an HTML part with newlines turned into line breaks, matching what
// mail clients showed for the original invitations.
func (m *smtpMailer) buildMessage(msg *service.MailMessage) ([]byte, error) {
	var body bytes.Buffer
	alt := multipart.NewWriter(&body)

	textPart, err := alt.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"text/plain; charset=utf-8"},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create text part")
	}
	if _, err := textPart.Write([]byte(msg.Body)); err != nil {
		return nil, errors.Wrap(err, "failed to write text part")
	}

	htmlPart, err := alt.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"text/html; charset=utf-8"},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create html part")
	}
	if _, err := htmlPart.Write([]byte(strings.ReplaceAll(msg.Body, "\n", "<br>\n"))); err != nil {
		return nil, errors.Wrap(err, "failed to write html part")
	}

	if err := alt.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to finish multipart body")
	}

	var b strings.Builder
	b.WriteString("From: " + m.from + "\r\n")
	b.WriteString("To: " + msg.To + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", msg.Subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: multipart/alternative; boundary=" + alt.Boundary() + "\r\n")
	b.WriteString("\r\n")
	b.WriteString(body.String())
	b.WriteString("\r\n")

	return []byte(b.String()), nil
}
