// Package identity talks to the external identity provider's admin API to
// mint single-use invite links. Guests never hold passwords here; the
// provider handles the whole sign-in exchange.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"cumple/config"
	"cumple/internal/domain/service"
	"cumple/internal/errors"
)

const defaultTimeout = 15 * time.Second

type generateLinkRequest struct {
	Type    string              `json:"type"`
	Email   string              `json:"email"`
	Options generateLinkOptions `json:"options"`
}

type generateLinkOptions struct {
	RedirectTo string         `json:"redirectTo,omitempty"`
	Data       map[string]any `json:"data,omitempty"`
}

type generateLinkResponse struct {
	ActionLink string `json:"action_link"`
	Message    string `json:"msg"`
}

// client implements service.ActionLinkService against a GoTrue-compatible
// admin endpoint.
type client struct {
	adminURL   string
	serviceKey string
	httpClient *http.Client
}

// New creates an ActionLinkService backed by the configured provider.
func New(cfg *config.Config) (service.ActionLinkService, error) {
	if cfg.Identity.AdminURL == "" || cfg.Identity.ServiceKey == "" {
		return nil, errors.New("identity provider admin URL and service key must be provided")
	}

	timeout := cfg.Identity.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &client{
		adminURL:   cfg.Identity.AdminURL,
		serviceKey: cfg.Identity.ServiceKey,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// GenerateInviteLink asks the provider for an invite-type action link.
// The "invite" type mints the link without the provider sending its own
// email, leaving delivery to our mailer.
func (c *client) GenerateInviteLink(ctx context.Context, req *service.ActionLinkRequest) (string, error) {
	payload := generateLinkRequest{
		Type:  "invite",
		Email: req.Email,
		Options: generateLinkOptions{
			RedirectTo: req.RedirectTo,
		},
	}
	if req.Name != "" {
		payload.Options.Data = map[string]any{"name": req.Name}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode generate_link request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.adminURL+"/admin/generate_link", bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "failed to build generate_link request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.serviceKey)
	httpReq.Header.Set("apikey", c.serviceKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", errors.Wrap(err, "generate_link request failed")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", errors.Wrap(err, "failed to read generate_link response")
	}

	var parsed generateLinkResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", errors.Wrapf(err, "failed to decode generate_link response (status %d)", resp.StatusCode)
	}

	if resp.StatusCode != http.StatusOK {
		msg := parsed.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}

		return "", errors.Errorf("identity provider rejected generate_link: %s (status %d)", msg, resp.StatusCode)
	}

	if parsed.ActionLink == "" {
		return "", errors.New("identity provider returned no action link")
	}

	return parsed.ActionLink, nil
}
