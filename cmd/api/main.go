package main

import (
	"log/slog"
	"os"

	"github.com/evently/event-booking-api/internal/app"
)

func main() {
	err := app.Run()
	if err != nil {
		slog.Error("server terminated", "error", err)
		os.Exit(1)
	}
}
