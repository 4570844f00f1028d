package notifier

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/ezioding/email-reminder/internal/model"
)

// emailTemplate mirrors the layout users already receive: header card,
// description, optional link button, and a footer that differs for one-time
// and recurring reminders.
var emailTemplate = template.Must(template.New("reminder").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background-color: #f8f9fa; border-left: 4px solid #0066cc; padding: 20px; margin-bottom: 20px;">
        <h2 style="margin: 0 0 10px 0; color: #0066cc;">📅 定时提醒</h2>
        <h3 style="margin: 0; color: #333;">{{.Title}}</h3>
    </div>

    <div style="padding: 20px; background-color: #ffffff; border: 1px solid #e0e0e0; border-radius: 5px;">
        <p style="font-size: 16px; margin-bottom: 15px;">{{.Description}}</p>
        {{if .URL}}<div style="margin: 20px 0;">
            <a href="{{.URL}}"
               style="display: inline-block; background-color: #0066cc; color: #ffffff; padding: 12px 24px; text-decoration: none; border-radius: 5px;">
                点击访问
            </a>
        </div>{{end}}

        <hr style="border: none; border-top: 1px solid #e0e0e0; margin: 20px 0;">

        {{if .IsOneTime}}<p style="font-size: 12px; color: #666;">这是一封一次性提醒邮件。</p>
        {{else}}<p style="font-size: 12px; color: #666;">
            这是一封自动提醒邮件，每隔 {{.IntervalDays}} 天发送一次。<br>
            已发送次数: {{.SendNumber}} 次
        </p>{{end}}
    </div>

    <div style="margin-top: 20px; padding: 15px; background-color: #f8f9fa; border-radius: 5px; font-size: 12px; color: #666; text-align: center;">
        <p style="margin: 0;">由 Email Reminder Service 自动发送</p>
    </div>
</body>
</html>`))

type templateData struct {
	Title        string
	Description  string
	URL          string
	IsOneTime    bool
	IntervalDays int
	SendNumber   int
}

// RenderSubject returns the email subject line for a reminder.
func RenderSubject(r *model.Reminder) string {
	return fmt.Sprintf("📅 提醒: %s", r.Title)
}

// RenderHTML returns the email body. SendNumber counts the send being
// prepared, so it is sent_count + 1.
func RenderHTML(r *model.Reminder) (string, error) {
	data := templateData{
		Title:       r.Title,
		Description: r.Description,
		IsOneTime:   r.IsOneTime,
		SendNumber:  r.SentCount + 1,
	}
	if r.URL != nil {
		data.URL = *r.URL
	}
	if r.IntervalDays != nil {
		data.IntervalDays = *r.IntervalDays
	}

	var buf bytes.Buffer
	if err := emailTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render email template: %w", err)
	}
	return buf.String(), nil
}
