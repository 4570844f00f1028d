package config

import (
	"testing"
	"time"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig("", "")
	if err != nil {
		t.Fatalf("NewConfig() error = %v", err)
	}

	if cfg.Server.Address != ":8080" {
		t.Errorf("Server.Address = %q, want :8080", cfg.Server.Address)
	}
	if cfg.Server.MetricsAddress != ":9090" {
		t.Errorf("Server.MetricsAddress = %q, want :9090", cfg.Server.MetricsAddress)
	}
	if cfg.Email.Service != "mailchannels" {
		t.Errorf("Email.Service = %q, want mailchannels", cfg.Email.Service)
	}
	if cfg.Check.Period != "1m" || cfg.Check.ItemTimeout != "30s" {
		t.Errorf("Check = %+v, want period 1m and item timeout 30s", cfg.Check)
	}
	if cfg.StoreRetry.Attempts == 0 || cfg.NotifierRetry.Attempts == 0 {
		t.Errorf("retry defaults missing: store=%+v notifier=%+v", cfg.StoreRetry, cfg.NotifierRetry)
	}
}

func TestMakeStrategy(t *testing.T) {
	got := MakeStrategy(RetryConfig{Attempts: 3, DelayMilliseconds: 250, Backoff: 2})

	if got.Attempts != 3 {
		t.Errorf("Attempts = %d, want 3", got.Attempts)
	}
	if got.Delay != 250*time.Millisecond {
		t.Errorf("Delay = %v, want 250ms", got.Delay)
	}
	if got.Backoff != 2 {
		t.Errorf("Backoff = %v, want 2", got.Backoff)
	}
}
