package notifier

import (
	"context"
	"net/http"

	"github.com/ezioding/email-reminder/internal/model"
)

const resendURL = "https://api.resend.com/emails"

type ResendSender struct {
	client *http.Client
	from   string
	apiKey string

	// url is overridable for tests.
	url string
}

func NewResendSender(client *http.Client, from, apiKey string) *ResendSender {
	return &ResendSender{client: client, from: from, apiKey: apiKey, url: resendURL}
}

func (s *ResendSender) Name() string { return ServiceResend }

func (s *ResendSender) Send(ctx context.Context, reminder *model.Reminder) error {
	html, err := RenderHTML(reminder)
	if err != nil {
		return err
	}

	payload := map[string]interface{}{
		"from":    s.from,
		"to":      []string{reminder.TargetEmail},
		"subject": RenderSubject(reminder),
		"html":    html,
	}
	headers := map[string]string{
		"Authorization": "Bearer " + s.apiKey,
	}

	return postJSON(ctx, s.client, ServiceResend, s.url, headers, payload)
}
