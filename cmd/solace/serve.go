package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/solacebot/solace/internal/chat"
	"github.com/solacebot/solace/internal/completion"
	"github.com/solacebot/solace/internal/config"
	"github.com/solacebot/solace/internal/fallback"
	"github.com/solacebot/solace/internal/server"
	"github.com/solacebot/solace/internal/session"
)

func newServeCmd() *cobra.Command {
	var (
		configPath string
		port       int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the chat HTTP server",
		Long:  "Serves the chat API, proxying to the completions endpoint and degrading to canned fallbacks when it is unreachable.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, configPath, port)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "path to Solace config file")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "port to listen on (overrides config)")
	return cmd
}

func runServe(cmd *cobra.Command, configPath string, port int) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if port > 0 {
		cfg.Server.Port = port
	}

	client := completion.New(completion.Opts{
		APIKey:      cfg.APIKey,
		BaseURL:     cfg.Completion.BaseURL,
		Model:       cfg.Completion.Model,
		Temperature: cfg.Completion.Temperature,
		MaxTokens:   cfg.Completion.MaxTokens,
	})
	if !client.Configured() {
		log.Printf("serve: %s not set, running in fallback-only mode", config.EnvAPIKey)
	}

	svc, err := chat.NewService(chat.Opts{
		Store:    session.NewStore(),
		Client:   client,
		Fallback: fallback.New(nil),
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		fmt.Fprintf(cmd.OutOrStdout(), "\nReceived %s, shutting down...\n", sig)
		cancel()
	}()

	return server.Start(ctx, server.StartOpts{
		Service:      svc,
		Port:         cfg.Server.Port,
		CookieName:   cfg.Session.CookieName,
		CookieMaxAge: cfg.Session.CookieMaxAge,
		Out:          cmd.OutOrStdout(),
	})
}
