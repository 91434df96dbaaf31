// Package llmtest provides a scripted llm.Client for tests.
package llmtest

import (
	"context"
	"sync"

	"github.com/jonathan/career-advisor/internal/llm"
)

// Reply is one scripted answer. A nil Err returns Text.
type Reply struct {
	Text string
	Err  error
}

// Fake replays scripted replies in order and records the prompts it received.
// When the script runs out the last reply is repeated. If Block is set, calls
// wait for ctx to finish and return its error.
type Fake struct {
	mu      sync.Mutex
	replies []Reply
	prompts []string
	calls   int

	Block bool
}

// New returns a Fake that answers with replies in order.
func New(replies ...Reply) *Fake {
	return &Fake{replies: replies}
}

// Text returns a Fake that always answers text.
func Text(text string) *Fake {
	return New(Reply{Text: text})
}

// Failing returns a Fake that always fails with err.
func Failing(err error) *Fake {
	return New(Reply{Err: err})
}

func (f *Fake) next(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	idx := f.calls
	f.calls++
	block := f.Block
	var reply Reply
	if len(f.replies) > 0 {
		reply = f.replies[min(idx, len(f.replies)-1)]
	}
	f.mu.Unlock()

	if block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	if reply.Err != nil {
		return "", reply.Err
	}
	return reply.Text, nil
}

// GenerateContent returns the next scripted reply
func (f *Fake) GenerateContent(ctx context.Context, prompt string, _ llm.ModelTier) (string, error) {
	return f.next(ctx, prompt)
}

// GenerateJSON returns the next scripted reply cleaned like a real provider would
func (f *Fake) GenerateJSON(ctx context.Context, prompt string, _ llm.ModelTier) (string, error) {
	text, err := f.next(ctx, prompt)
	if err != nil {
		return "", err
	}
	return llm.CleanJSONBlock(text), nil
}

// GetModel returns a fixed name
func (f *Fake) GetModel(llm.ModelTier) string { return "fake-model" }

// Provider returns a fixed provider name
func (f *Fake) Provider() llm.Provider { return llm.Provider("fake") }

// Close is a no-op
func (f *Fake) Close() error { return nil }

// Calls reports how many generate calls were made.
func (f *Fake) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// Prompts returns a copy of the received prompts.
func (f *Fake) Prompts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.prompts...)
}

// LastPrompt returns the most recent prompt, or "" if none.
func (f *Fake) LastPrompt() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.prompts) == 0 {
		return ""
	}
	return f.prompts[len(f.prompts)-1]
}
