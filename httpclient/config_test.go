package httpclient

import (
	"testing"
	"time"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{BaseURL: "http://example.com"}
	cfg.ApplyDefaults()

	if cfg.Headers["Accept"] != "application/json" {
		t.Errorf("expected Accept default, got %q", cfg.Headers["Accept"])
	}
	if cfg.Timeout != 0 {
		t.Errorf("Timeout must stay at transport default, got %v", cfg.Timeout)
	}
}

func TestConfig_ApplyDefaults_KeepsAccept(t *testing.T) {
	cfg := Config{
		BaseURL: "http://example.com",
		Headers: map[string]string{"Accept": "text/plain"},
	}
	cfg.ApplyDefaults()

	if cfg.Headers["Accept"] != "text/plain" {
		t.Errorf("explicit Accept must not be overwritten, got %q", cfg.Headers["Accept"])
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{BaseURL: "http://example.com"}, false},
		{"valid with timeout", Config{BaseURL: "http://example.com", Timeout: 5 * time.Second}, false},
		{"missing base url", Config{}, true},
		{"negative timeout", Config{BaseURL: "http://example.com", Timeout: -1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
