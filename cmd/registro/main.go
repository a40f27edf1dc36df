package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/rafabd1/Registro/internal/app"
	"github.com/rafabd1/Registro/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, warning, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if warning != "" {
		fmt.Fprintln(os.Stderr, "Warning:", warning)
	}

	a, err := app.New(cfg, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer a.Close()

	// Direct subcommand form: `registro <command> [args]`. Without arguments
	// the interactive menu runs.
	if len(os.Args) > 1 {
		if err := a.RunCommand(ctx, os.Args[1], os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			a.Close()
			os.Exit(1)
		}
		return
	}

	if err := a.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		a.Close()
		os.Exit(1)
	}
}
