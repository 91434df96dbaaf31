// Package advisor orchestrates career advice, preparation plans, mentor chat
// and skills-gap analysis on top of an optional language model.
package advisor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/career-advisor/internal/cards"
	"github.com/jonathan/career-advisor/internal/chat"
	"github.com/jonathan/career-advisor/internal/llm"
	"github.com/jonathan/career-advisor/internal/prompts"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultTimeout bounds a single provider call.
	DefaultTimeout = 30 * time.Second
	// DefaultHistoryLimit is how many prior chat messages are sent to the model.
	DefaultHistoryLimit = 20
)

// Options configures a Service.
type Options struct {
	// Client is the language model. Nil runs the service offline with canned
	// replies and the deterministic analyzer.
	Client       llm.Client
	Store        chat.Store
	Timeout      time.Duration
	HistoryLimit int
	Logger       logrus.FieldLogger
}

// Service answers advisor requests
type Service struct {
	client       llm.Client
	store        chat.Store
	timeout      time.Duration
	historyLimit int
	log          logrus.FieldLogger
}

// New creates a Service. A nil Store gets a MemoryStore with default options.
func New(opts Options) *Service {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.HistoryLimit <= 0 {
		opts.HistoryLimit = DefaultHistoryLimit
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	if opts.Store == nil {
		memOpts := chat.DefaultMemoryOptions()
		memOpts.SweepInterval = 0
		opts.Store = chat.NewMemoryStore(memOpts)
	}

	return &Service{
		client:       opts.Client,
		store:        opts.Store,
		timeout:      opts.Timeout,
		historyLimit: opts.HistoryLimit,
		log:          opts.Logger,
	}
}

// Online reports whether a language model is configured.
func (s *Service) Online() bool {
	return s.client != nil
}

// Provider names the configured provider, or "none".
func (s *Service) Provider() string {
	if s.client == nil {
		return string(llm.ProviderNone)
	}
	return string(s.client.Provider())
}

// Advice suggests career paths for the profile.
func (s *Service) Advice(ctx context.Context, p Profile) (AdviceResult, error) {
	if s.client == nil {
		text, err := prompts.CannedAdvice()
		if err != nil {
			return AdviceResult{}, err
		}
		return AdviceResult{Result: text, Cards: cards.ParseCareerAdvice(text), Source: SourceCanned}, nil
	}

	prompt, err := prompts.Advice(p.prompt())
	if err != nil {
		return AdviceResult{}, err
	}
	text, err := s.generate(ctx, "advice", prompt)
	if err != nil {
		return AdviceResult{}, err
	}
	return AdviceResult{Result: text, Cards: cards.ParseCareerAdvice(text), Source: SourceAI}, nil
}

// Prep builds a preparation plan for role. A blank role becomes prompts.DefaultRole.
func (s *Service) Prep(ctx context.Context, p Profile, role string) (PrepResult, error) {
	role = strings.TrimSpace(role)
	if role == "" {
		role = prompts.DefaultRole
	}

	var (
		text   string
		source string
		err    error
	)
	if s.client == nil {
		text, err = prompts.CannedPrep(role)
		source = SourceCanned
	} else {
		var prompt string
		prompt, err = prompts.Prep(p.prompt(), role)
		if err == nil {
			text, err = s.generate(ctx, "preparation plan", prompt)
		}
		source = SourceAI
	}
	if err != nil {
		return PrepResult{}, err
	}

	result := PrepResult{Role: role, Result: text, Source: source}
	if plan := cards.ParsePrepPlan(text); !plan.Empty() {
		result.Plan = &plan
	}
	return result, nil
}

// Chat answers one mentor question. History comes from the session store
// when SessionID is set, otherwise from the request; only the last
// HistoryLimit messages reach the model.
func (s *Service) Chat(ctx context.Context, req ChatRequest) (ChatResult, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return ChatResult{}, fmt.Errorf("%w: message is required", ErrInvalidInput)
	}

	sessionID := req.SessionID
	var history []chat.Message
	switch {
	case sessionID != "":
		h, err := s.store.History(ctx, sessionID, s.historyLimit)
		if err != nil {
			return ChatResult{}, fmt.Errorf("failed to load chat history: %w", err)
		}
		history = h
	case len(req.History) > 0:
		history = chat.Tail(req.History, s.historyLimit)
	default:
		sessionID = chat.NewSessionID()
	}

	var (
		reply  string
		source string
		err    error
	)
	if s.client == nil {
		reply, err = prompts.CannedChat(message)
		source = SourceCanned
	} else {
		var prompt string
		prompt, err = prompts.Chat(message, turns(history))
		if err == nil {
			reply, err = s.generate(ctx, "chat response", prompt)
		}
		source = SourceAI
	}
	if err != nil {
		return ChatResult{}, err
	}

	if sessionID != "" {
		now := time.Now().UTC()
		err := s.store.Append(ctx, sessionID,
			chat.Message{Role: chat.RoleUser, Content: message, CreatedAt: now},
			chat.Message{Role: chat.RoleAssistant, Content: reply, CreatedAt: now},
		)
		if err != nil {
			s.log.WithError(err).WithField("session_id", sessionID).Warn("failed to save chat turn")
		}
	}

	return ChatResult{Response: reply, SessionID: sessionID, Source: source}, nil
}

// EndChat forgets a chat session.
func (s *Service) EndChat(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID)
}

// generate calls the model under the service timeout and wraps failures as
// *UpstreamError.
func (s *Service) generate(ctx context.Context, op, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	text, err := s.client.GenerateContent(ctx, prompt, llm.TierStandard)
	fields := logrus.Fields{
		"op":       op,
		"provider": s.client.Provider(),
		"model":    s.client.GetModel(llm.TierStandard),
		"duration": time.Since(start).String(),
	}
	if err != nil {
		s.log.WithFields(fields).WithError(err).Error("model call failed")
		return "", &UpstreamError{Op: op, Cause: err}
	}
	s.log.WithFields(fields).Debug("model call succeeded")
	return strings.TrimSpace(text), nil
}

func turns(history []chat.Message) []prompts.Turn {
	out := make([]prompts.Turn, len(history))
	for i, m := range history {
		out[i] = prompts.Turn{Role: string(m.Role), Content: m.Content}
	}
	return out
}
