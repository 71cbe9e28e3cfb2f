// Package main is the entry point for the todoboard CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"todoboard/internal/backend/googletasks"
	"todoboard/internal/cli"
	"todoboard/internal/commands"
	"todoboard/internal/config"
	"todoboard/internal/service"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
		// A second interrupt kills a shell still blocked on stdin.
		signal.Reset(syscall.SIGINT, syscall.SIGTERM)
	}()

	factory := func(ctx context.Context, cfg *config.Config) (service.Source, error) {
		if !cfg.HasOAuthClient() {
			return nil, fmt.Errorf("%s not found in %s", config.OAuthClientFile, cfg.Dir)
		}
		if !cfg.HasToken() {
			return nil, fmt.Errorf("no token, not logged in (run: %s login)", config.AppName)
		}
		return googletasks.New(ctx, cfg)
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
