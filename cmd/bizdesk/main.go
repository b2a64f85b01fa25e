package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"bizdesk/internal/cli"
	"bizdesk/internal/config"
	"bizdesk/internal/kvstore"
	"bizdesk/internal/logger"
	"bizdesk/internal/session"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load configuration: %v\n", err)
		return 1
	}

	// Informational logs would interleave with command output.
	level := cfg.LogLevel
	if level == "info" {
		level = "warn"
	}
	logger.Init(cfg.Env, level)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kv, err := kvstore.OpenSQLite(ctx, cfg.SessionPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open session store: %v\n", err)
		return 1
	}
	defer kv.Close()

	sess, err := session.New(ctx, cfg.APIURL, &http.Client{Timeout: cfg.RequestTimeout}, kv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to restore session: %v\n", err)
		return 1
	}

	app := cli.New(sess, cli.Options{PageSize: cfg.PageSize})
	if err := app.Run(ctx, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		app.PrintError(err)
		return 1
	}
	return 0
}
