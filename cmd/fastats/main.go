// cmd/fastats/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"fakit/internal/statsapp"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	code := statsapp.RunContext(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
