package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jonathan/career-advisor/internal/advisor"
	"github.com/jonathan/career-advisor/internal/chat"
	"github.com/jonathan/career-advisor/internal/config"
	"github.com/jonathan/career-advisor/internal/db"
	"github.com/jonathan/career-advisor/internal/llm"
	"github.com/sirupsen/logrus"
)

const (
	retryBackoff        = 500 * time.Millisecond
	maxMessagesPerChat  = 50
	chatSessionIdleTime = 2 * time.Hour
	idleSweepInterval   = 10 * time.Minute
)

// app holds the wired dependencies of a command.
type app struct {
	cfg     *config.Config
	log     *logrus.Logger
	advisor *advisor.Service
	closers []func()
}

// Close releases resources in reverse order of acquisition.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// appOptions controls what newApp wires.
type appOptions struct {
	offline  bool // Never construct a model client
	useStore bool // Connect the chat store (server only)
}

// newApp loads configuration and builds the advisor service.
func newApp(ctx context.Context, g *globalOptions, logOut io.Writer, opts appOptions) (*app, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return nil, err
	}
	if g.logLevel != "" {
		cfg.LogLevel = g.logLevel
	}

	log, err := cfg.NewLogger(logOut)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, log: log}
	advOpts := advisor.Options{
		Timeout: cfg.Timeout(),
		Logger:  log,
	}

	if !opts.offline {
		client, err := newLLMClient(ctx, cfg)
		if err != nil {
			a.Close()
			return nil, err
		}
		if client != nil {
			a.closers = append(a.closers, func() { _ = client.Close() })
			advOpts.Client = llm.WithRetry(client, cfg.LLMRetries, retryBackoff)
		}
	}

	if opts.useStore {
		store, closeStore, err := newChatStore(ctx, cfg, log)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.closers = append(a.closers, closeStore)
		advOpts.Store = store
	}

	a.advisor = advisor.New(advOpts)
	return a, nil
}

// newLLMClient returns nil when the configuration selects no provider.
func newLLMClient(ctx context.Context, cfg *config.Config) (llm.Client, error) {
	llmCfg := cfg.LLMConfig()
	if llmCfg == nil {
		return nil, nil
	}
	client, err := llm.NewClient(ctx, llmCfg, cfg.APIKey())
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", llmCfg.Provider, err)
	}
	return client, nil
}

// newChatStore uses PostgreSQL when DATABASE_URL is set and memory otherwise.
func newChatStore(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (chat.Store, func(), error) {
	if cfg.DatabaseURL == "" {
		memOpts := chat.DefaultMemoryOptions()
		memOpts.MaxMessages = maxMessagesPerChat
		memOpts.TTL = chatSessionIdleTime
		store := chat.NewMemoryStore(memOpts)
		log.Info("chat sessions kept in memory")
		return store, store.Close, nil
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	if err := database.Migrate(ctx); err != nil {
		database.Close()
		return nil, nil, err
	}

	store := db.NewChatStore(database, maxMessagesPerChat, chatSessionIdleTime)
	if n, err := store.DeleteIdleSessions(ctx, chatSessionIdleTime); err != nil {
		log.WithError(err).Warn("failed to delete idle chat sessions")
	} else if n > 0 {
		log.WithField("count", n).Info("deleted idle chat sessions")
	}

	sweepCtx, stopSweep := context.WithCancel(context.WithoutCancel(ctx))
	done := make(chan struct{})
	go func() {
		defer close(done)
		store.RunIdleSweeper(sweepCtx, chatSessionIdleTime, idleSweepInterval, log)
	}()

	log.Info("chat sessions stored in PostgreSQL")
	return store, func() {
		stopSweep()
		<-done
		database.Close()
	}, nil
}
