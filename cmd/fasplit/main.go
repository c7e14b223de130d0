// cmd/fasplit/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"fakit/internal/splitapp"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	code := splitapp.RunContext(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
