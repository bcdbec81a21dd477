package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestLLMService_Complete(t *testing.T) {
	var gotBody chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"{\"recommendations\":[]}"}}]}`))
	}))
	defer server.Close()

	svc := NewLLMService(&LLMConfig{Model: "gpt-4o-mini", APIKey: "test-key", BaseURL: server.URL})

	schema := map[string]interface{}{"type": "object"}
	raw, err := svc.Complete(context.Background(), "recommend things", schema)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != `{"recommendations":[]}` {
		t.Errorf("unexpected payload %q", raw)
	}

	if gotBody.Model != "gpt-4o-mini" {
		t.Errorf("unexpected model %q", gotBody.Model)
	}
	if len(gotBody.Messages) != 1 || gotBody.Messages[0].Content != "recommend things" {
		t.Errorf("unexpected messages %+v", gotBody.Messages)
	}
	if gotBody.ResponseFormat == nil || gotBody.ResponseFormat.Type != "json_schema" {
		t.Fatalf("expected json_schema response format, got %+v", gotBody.ResponseFormat)
	}
	if gotBody.ResponseFormat.JSONSchema.Name != "recommendations" {
		t.Errorf("unexpected schema name %q", gotBody.ResponseFormat.JSONSchema.Name)
	}
}

func TestLLMService_ErrorResponses(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{
			name:    "http error with message",
			status:  http.StatusTooManyRequests,
			body:    `{"error":{"message":"rate limit exceeded","type":"rate_limit"}}`,
			wantErr: "rate limit exceeded",
		},
		{
			name:    "http error without body",
			status:  http.StatusBadGateway,
			body:    "",
			wantErr: "HTTP 502",
		},
		{
			name:    "ok status but no choices",
			status:  http.StatusOK,
			body:    `{"choices":[]}`,
			wantErr: "no response",
		},
		{
			name:    "ok status but empty content",
			status:  http.StatusOK,
			body:    `{"choices":[{"message":{"content":""}}]}`,
			wantErr: "no response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			svc := NewLLMService(&LLMConfig{Model: "gpt-4o-mini", APIKey: "k", BaseURL: server.URL})
			_, err := svc.Complete(context.Background(), "prompt", nil)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %q", tt.wantErr, err)
			}
		})
	}
}
