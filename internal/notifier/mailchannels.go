package notifier

import (
	"context"
	"net/http"

	"github.com/ezioding/email-reminder/internal/model"
)

const mailChannelsURL = "https://api.mailchannels.net/tx/v1/send"

// MailChannelsSender is the default transport; the API takes no key.
type MailChannelsSender struct {
	client *http.Client
	from   string
}

func NewMailChannelsSender(client *http.Client, from string) *MailChannelsSender {
	return &MailChannelsSender{client: client, from: from}
}

func (s *MailChannelsSender) Name() string { return ServiceMailChannels }

func (s *MailChannelsSender) Send(ctx context.Context, reminder *model.Reminder) error {
	html, err := RenderHTML(reminder)
	if err != nil {
		return err
	}

	payload := map[string]interface{}{
		"personalizations": []map[string]interface{}{
			{"to": []map[string]string{{"email": reminder.TargetEmail}}},
		},
		"from": map[string]string{
			"email": s.from,
			"name":  senderName,
		},
		"subject": RenderSubject(reminder),
		"content": []map[string]string{
			{"type": "text/html", "value": html},
		},
	}

	return postJSON(ctx, s.client, ServiceMailChannels, mailChannelsURL, nil, payload)
}
