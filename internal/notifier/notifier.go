// Package notifier contains the outbound email transports. One
// implementation is selected at startup from configuration; all of them
// satisfy ports.Notifier and surface provider errors as ordinary errors.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ezioding/email-reminder/internal/config"
	"github.com/ezioding/email-reminder/internal/ports"
)

const senderName = "Email Reminder Service"

const (
	ServiceMailChannels = "mailchannels"
	ServiceResend       = "resend"
	ServiceBrevo        = "brevo"
	ServiceConsole      = "console"
)

// New selects the transport named by cfg.Service. Unknown values are an
// error rather than a silent fallback.
func New(cfg config.EmailConfig) (ports.Notifier, error) {
	client := &http.Client{Timeout: 30 * time.Second}

	switch cfg.Service {
	case ServiceMailChannels, "":
		return NewMailChannelsSender(client, cfg.From), nil
	case ServiceResend:
		return NewResendSender(client, cfg.From, cfg.APIKey), nil
	case ServiceBrevo:
		return NewBrevoSender(client, cfg.From, cfg.APIKey), nil
	case ServiceConsole:
		return NewConsoleSender(), nil
	default:
		return nil, fmt.Errorf("unknown email service %q", cfg.Service)
	}
}

// postJSON sends the payload and converts any non-2xx response into an
// error carrying the provider's status and body.
func postJSON(ctx context.Context, client *http.Client, provider, url string, headers map[string]string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%s: marshal payload: %w", provider, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%s: build request: %w", provider, err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: send request: %w", provider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%s error: status %d: %s", provider, resp.StatusCode, text)
	}
	return nil
}
