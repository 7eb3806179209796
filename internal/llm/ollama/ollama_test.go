// internal/llm/ollama/ollama_test.go
package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dwhitmore/finlens/internal/llm"
)

func TestProvider_ImplementsInterface(t *testing.T) {
	var _ llm.Provider = (*Provider)(nil)
}

func TestNew_DefaultEndpoint(t *testing.T) {
	p, err := New("", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.endpoint != "http://localhost:11434" {
		t.Errorf("expected default endpoint http://localhost:11434, got %s", p.endpoint)
	}
}

func TestNew_DefaultModel(t *testing.T) {
	p, err := New("", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.model != "mistral" {
		t.Errorf("expected default model mistral, got %s", p.model)
	}
}

func TestGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}

		var req ollamaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		if req.Stream {
			t.Error("streaming should be disabled")
		}
		if req.Options.NumPredict != 900 {
			t.Errorf("expected num_predict 900, got %d", req.Options.NumPredict)
		}

		json.NewEncoder(w).Encode(ollamaResponse{
			Message:         ollamaMessage{Role: "assistant", Content: "1. Company Overview ..."},
			Done:            true,
			DoneReason:      "stop",
			PromptEvalCount: 120,
			EvalCount:       80,
		})
	}))
	defer srv.Close()

	p, _ := New(srv.URL, "mistral")
	resp, err := p.Generate(context.Background(), llm.Request{
		Prompt:    "Analyze AAPL",
		MaxTokens: 900,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Text != "1. Company Overview ..." {
		t.Errorf("unexpected text: %s", resp.Text)
	}
	if resp.Usage.OutputTokens != 80 {
		t.Errorf("expected 80 output tokens, got %d", resp.Usage.OutputTokens)
	}
}

func TestGenerate_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	p, _ := New(srv.URL, "")
	if _, err := p.Generate(context.Background(), llm.Request{Prompt: "x"}); err == nil {
		t.Error("expected error on server failure")
	}
}
