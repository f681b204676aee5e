package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/lvlath-edit/internal/cli"
)

var version = "dev"

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	// Ctrl+C cancels the running search; the best record is still printed
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	defer func() {
		signal.Stop(c)
		cancel()
	}()
	go func() {
		select {
		case <-c:
			cancel()
		case <-ctx.Done():
		}
	}()

	cli.Execute(ctx, version)
}
