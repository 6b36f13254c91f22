package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	registry := NewRegistry(&MigrateCommand{}, &WaitForDBCommand{}, &ReplayDeadLetterCommand{})
	code := registry.Dispatch(ctx, NewConsole(), os.Args[1:])
	stop()
	os.Exit(code)
}
