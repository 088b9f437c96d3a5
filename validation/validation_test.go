package validation

import (
	"strings"
	"testing"
)

type sample struct {
	Endpoint string `json:"endpoint" validate:"required,url"`
	Count    int    `json:"count" validate:"min=1"`
}

func TestValidate_OK(t *testing.T) {
	err := Validate(sample{Endpoint: "https://example.com", Count: 3})
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_Failure(t *testing.T) {
	err := Validate(sample{})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	// Field names come from json tags.
	if !strings.Contains(err.Error(), "endpoint") {
		t.Errorf("expected json tag name in message, got %q", err.Error())
	}
}
