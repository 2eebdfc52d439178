// Package service defines domain-level interfaces for capabilities provided
// by the infrastructure layer.
package service

import "context"

// MailMessage is a fully rendered outbound email. Body is plain text; the
// mailer derives a naive HTML alternative from it.
type MailMessage struct {
	To      string
	Subject string
	Body    string
}

// Mailer dispatches a single email. There is no queue and no retry: calling
// Send twice sends twice.
type Mailer interface {
	Send(ctx context.Context, msg *MailMessage) error
}
