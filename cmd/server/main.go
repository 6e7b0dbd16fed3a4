// Command server runs the HTTP API: draft lifecycle, council generation,
// and the cron-invoked scheduled-publish sweep.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/postroom/postroom-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
