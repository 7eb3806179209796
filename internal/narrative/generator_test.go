package narrative

import (
	"context"
	"errors"
	"testing"

	"github.com/dwhitmore/finlens/internal/core"
	"github.com/dwhitmore/finlens/internal/llm"
)

// fakeProvider returns a canned response or error.
type fakeProvider struct {
	resp *llm.Response
	err  error
	last llm.Request
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func TestGenerator_Generate(t *testing.T) {
	fake := &fakeProvider{
		resp: &llm.Response{
			Text:  "1. Company Overview ...",
			Usage: llm.Usage{InputTokens: 200, OutputTokens: 150},
		},
	}
	g := NewGenerator(fake, nil)

	text, usage, err := g.Generate(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "1. Company Overview ..." {
		t.Errorf("unexpected text: %s", text)
	}
	if usage.OutputTokens != 150 {
		t.Errorf("expected usage passthrough, got %+v", usage)
	}
	if fake.last.MaxTokens != 900 {
		t.Errorf("expected bounded output of 900 tokens, got %d", fake.last.MaxTokens)
	}
}

func TestGenerator_FailureIsClassified(t *testing.T) {
	fake := &fakeProvider{err: errors.New("connection refused")}
	g := NewGenerator(fake, nil)

	_, _, err := g.Generate(context.Background(), "prompt")
	if !errors.Is(err, core.ErrLLMFailed) {
		t.Errorf("expected LLM_FAILED, got %v", err)
	}
}

func TestGenerator_CancelledContext(t *testing.T) {
	fake := &fakeProvider{err: context.Canceled}
	g := NewGenerator(fake, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := g.Generate(ctx, "prompt")
	if !errors.Is(err, core.ErrLLMTimeout) {
		t.Errorf("expected LLM_TIMEOUT for cancelled context, got %v", err)
	}
}
