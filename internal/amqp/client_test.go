package amqp

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestExponentialBackoff(t *testing.T) {
	tests := []struct {
		attempt  int
		expected time.Duration
	}{
		{0, 1 * time.Second},
		{1, 2 * time.Second},
		{2, 4 * time.Second},
		{3, 8 * time.Second},
		{4, 16 * time.Second},
		{5, 30 * time.Second},  // capped at 30s
		{10, 30 * time.Second}, // capped at 30s
		{63, 30 * time.Second}, // shift overflow still capped
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("attempt_%d", tt.attempt), func(t *testing.T) {
			result := exponentialBackoff(tt.attempt)
			if result != tt.expected {
				t.Errorf("exponentialBackoff(%d) = %v, want %v", tt.attempt, result, tt.expected)
			}
		})
	}
}

func TestIsConnectionError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"connection refused", errors.New("connection refused"), true},
		{"closed connection", errors.New("connection closed"), true},
		{"EOF", errors.New("unexpected EOF"), true},
		{"broken pipe", errors.New("broken pipe"), true},
		{"closed network connection", errors.New("use of closed network connection"), true},
		{"wrapped dial error", fmt.Errorf("dial AMQP: %w", errors.New("connection refused")), true},
		{"other error", errors.New("some other error"), false},
		{"validation error", errors.New("invalid input"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := isConnectionError(tt.err)
			if result != tt.expected {
				t.Errorf("isConnectionError(%v) = %v, want %v", tt.err, result, tt.expected)
			}
		})
	}
}

func TestEnvelopeRoundTrip(t *testing.T) {
	msg := NewLedgerUpdatedMessage(3, "0xABC")
	if msg.ID == "" || msg.Type != TypeLedgerUpdated {
		t.Fatalf("unexpected envelope: %+v", msg)
	}

	body, err := msg.ToJSON()
	if err != nil {
		t.Fatal(err)
	}
	got, err := EnvelopeFromJSON(body)
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != msg.ID || got.Count != 3 || got.Address != "0xABC" {
		t.Fatalf("decoded envelope = %+v", got)
	}
}

func TestEnvelopeFromJSONRejectsGarbage(t *testing.T) {
	if _, err := EnvelopeFromJSON([]byte("{broken")); err == nil {
		t.Fatal("expected decode error")
	}
}
