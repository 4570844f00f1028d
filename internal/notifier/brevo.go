package notifier

import (
	"context"
	"net/http"

	"github.com/ezioding/email-reminder/internal/model"
)

const brevoURL = "https://api.brevo.com/v3/smtp/email"

type BrevoSender struct {
	client *http.Client
	from   string
	apiKey string

	url string
}

func NewBrevoSender(client *http.Client, from, apiKey string) *BrevoSender {
	return &BrevoSender{client: client, from: from, apiKey: apiKey, url: brevoURL}
}

func (s *BrevoSender) Name() string { return ServiceBrevo }

func (s *BrevoSender) Send(ctx context.Context, reminder *model.Reminder) error {
	html, err := RenderHTML(reminder)
	if err != nil {
		return err
	}

	payload := map[string]interface{}{
		"sender": map[string]string{
			"email": s.from,
			"name":  senderName,
		},
		"to":          []map[string]string{{"email": reminder.TargetEmail}},
		"subject":     RenderSubject(reminder),
		"htmlContent": html,
	}
	headers := map[string]string{
		"api-key": s.apiKey,
	}

	return postJSON(ctx, s.client, ServiceBrevo, s.url, headers, payload)
}
