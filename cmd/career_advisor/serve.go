package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonathan/career-advisor/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd(g *globalOptions) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long:  `Start an HTTP server exposing the advice, preparation plan, chat and skills-analysis endpoints, plus the static front end when STATIC_DIR is set.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, g, port, cmd.Flags().Changed("port"))
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (overrides PORT)")
	return cmd
}

func runServe(ctx context.Context, g *globalOptions, port int, portSet bool) error {
	a, err := newApp(ctx, g, os.Stderr, appOptions{useStore: true})
	if err != nil {
		return err
	}
	defer a.Close()

	if !portSet {
		port = a.cfg.Port
	}

	srv, err := server.New(server.Config{
		Port:      port,
		StaticDir: a.cfg.StaticDir,
		Advisor:   a.advisor,
		Logger:    a.log,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Run(ctx)
}
