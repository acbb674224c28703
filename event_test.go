package bento

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTrackEvents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Events []map[string]interface{} `json:"events"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if len(body.Events) != 1 {
			t.Fatalf("events = %d, want 1", len(body.Events))
		}
		ev := body.Events[0]
		if ev["type"] != "$purchase" {
			t.Errorf("type = %v", ev["type"])
		}
		if _, present := ev["fields"]; present {
			t.Error("fields present in JSON, want omitted when nil")
		}
		if _, present := ev["details"]; !present {
			t.Error("details missing from JSON")
		}
		w.Write([]byte(`{"results": 1, "failed": 0}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	err := client.TrackEvents(context.Background(), []Event{{
		Type:    "$purchase",
		Email:   "user@example.com",
		Details: map[string]interface{}{"value": 49.99},
	}})
	if err != nil {
		t.Fatalf("TrackEvents() error = %v", err)
	}
}

func TestTrackEvents_PartialFailure(t *testing.T) {
	server, _ := newCountingServer(t, http.StatusOK, `{"results": 1, "failed": 2}`)

	client := newTestClient(t, server.URL)

	err := client.TrackEvents(context.Background(), []Event{
		{Type: "a", Email: "a@example.com"},
		{Type: "b", Email: "b@example.com"},
		{Type: "c", Email: "c@example.com"},
	})

	var partial *PartialFailureError
	if !errors.As(err, &partial) {
		t.Fatalf("error = %v, want *PartialFailureError", err)
	}
	if partial.Succeeded != 1 || partial.Failed != 2 {
		t.Errorf("partial = %+v", partial)
	}
}

func TestTrackEvents_Validation(t *testing.T) {
	server, count := newCountingServer(t, http.StatusOK, `{"results": 1}`)

	client := newTestClient(t, server.URL)

	tests := []struct {
		name   string
		events []Event
		target error
	}{
		{"empty batch", nil, ErrInvalidRequest},
		{"bad email", []Event{{Type: "x", Email: "nope"}}, ErrInvalidEmail},
		{"missing type", []Event{{Email: "user@example.com"}}, ErrInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := client.TrackEvents(context.Background(), tt.events)
			if !errors.Is(err, tt.target) {
				t.Errorf("error = %v, want %v", err, tt.target)
			}
		})
	}

	if *count != 0 {
		t.Errorf("requests = %d, want 0", *count)
	}
}
