package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/ezioding/email-reminder/internal/config"
	"github.com/ezioding/email-reminder/internal/model"
)

func strPtr(v string) *string { return &v }
func intPtr(v int) *int       { return &v }

func sampleReminder() *model.Reminder {
	return &model.Reminder{
		ID:           uuid.New(),
		Title:        "renew domain",
		Description:  "example.com expires soon",
		URL:          strPtr("https://registrar.example.com"),
		TargetEmail:  "ops@example.com",
		IntervalDays: intPtr(30),
		SentCount:    2,
	}
}

func TestNewSelectsService(t *testing.T) {
	t.Parallel()

	tests := []struct {
		service string
		want    string
	}{
		{"", ServiceMailChannels},
		{"mailchannels", ServiceMailChannels},
		{"resend", ServiceResend},
		{"brevo", ServiceBrevo},
		{"console", ServiceConsole},
	}

	for _, tt := range tests {
		tt := tt
		t.Run("service "+tt.service, func(t *testing.T) {
			t.Parallel()
			n, err := New(config.EmailConfig{Service: tt.service, From: "noreply@example.com"})
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if n.Name() != tt.want {
				t.Errorf("Name() = %q, want %q", n.Name(), tt.want)
			}
		})
	}

	if _, err := New(config.EmailConfig{Service: "pigeon"}); err == nil {
		t.Error("New() with unknown service must fail")
	}
}

func TestRenderSubject(t *testing.T) {
	t.Parallel()

	got := RenderSubject(sampleReminder())
	if got != "📅 提醒: renew domain" {
		t.Errorf("RenderSubject() = %q", got)
	}
}

func TestRenderHTML(t *testing.T) {
	t.Parallel()

	r := sampleReminder()
	html, err := RenderHTML(r)
	if err != nil {
		t.Fatalf("RenderHTML() error = %v", err)
	}
	for _, want := range []string{
		r.Title,
		r.Description,
		*r.URL,
		"每隔 30 天",
		"已发送次数: 3 次", // sent_count 2, this is the third send
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered html missing %q", want)
		}
	}
}

func TestRenderHTMLOneTime(t *testing.T) {
	t.Parallel()

	r := sampleReminder()
	r.IsOneTime = true
	r.URL = nil
	r.IntervalDays = nil

	html, err := RenderHTML(r)
	if err != nil {
		t.Fatalf("RenderHTML() error = %v", err)
	}
	if !strings.Contains(html, "一次性提醒") {
		t.Error("one-time footer missing")
	}
	if strings.Contains(html, "点击访问") {
		t.Error("link button rendered without a url")
	}
}

func TestResendSend(t *testing.T) {
	t.Parallel()

	var gotAuth string
	var gotPayload map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sender := NewResendSender(server.Client(), "noreply@example.com", "rs-key")
	sender.url = server.URL

	if err := sender.Send(context.Background(), sampleReminder()); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if gotAuth != "Bearer rs-key" {
		t.Errorf("Authorization = %q, want bearer key", gotAuth)
	}
	if gotPayload["from"] != "noreply@example.com" {
		t.Errorf("from = %v", gotPayload["from"])
	}
	to, ok := gotPayload["to"].([]interface{})
	if !ok || len(to) != 1 || to[0] != "ops@example.com" {
		t.Errorf("to = %v, want the target email", gotPayload["to"])
	}
	if _, ok := gotPayload["html"]; !ok {
		t.Error("payload missing html body")
	}
}

func TestBrevoSend(t *testing.T) {
	t.Parallel()

	var gotKey string
	var gotPayload map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("api-key")
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	sender := NewBrevoSender(server.Client(), "noreply@example.com", "bv-key")
	sender.url = server.URL

	if err := sender.Send(context.Background(), sampleReminder()); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if gotKey != "bv-key" {
		t.Errorf("api-key = %q", gotKey)
	}
	if _, ok := gotPayload["htmlContent"]; !ok {
		t.Error("payload missing htmlContent")
	}
	senderField, ok := gotPayload["sender"].(map[string]interface{})
	if !ok || senderField["email"] != "noreply@example.com" {
		t.Errorf("sender = %v", gotPayload["sender"])
	}
}

func TestSendProviderError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"invalid api key"}`))
	}))
	defer server.Close()

	sender := NewResendSender(server.Client(), "noreply@example.com", "bad")
	sender.url = server.URL

	err := sender.Send(context.Background(), sampleReminder())
	if err == nil {
		t.Fatal("Send() error = nil, want provider error")
	}
	if !strings.Contains(err.Error(), "401") || !strings.Contains(err.Error(), "invalid api key") {
		t.Errorf("error %q must carry the provider status and body", err)
	}
}

func TestConsoleSend(t *testing.T) {
	t.Parallel()

	sender := NewConsoleSender()
	if err := sender.Send(context.Background(), sampleReminder()); err != nil {
		t.Errorf("Send() error = %v", err)
	}
	if sender.Name() != ServiceConsole {
		t.Errorf("Name() = %q", sender.Name())
	}
}
