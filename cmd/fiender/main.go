// Package main is the entry point for the fiender CLI
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/fiender/internal/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(newApp()).ExecuteContext(ctx); err != nil {
		printError(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// printError writes the one-line diagnostic. Coded errors get their class
// once, followed by the message of every layer.
func printError(w io.Writer, err error) {
	var coded *errors.Error
	if errors.As(err, &coded) {
		_, _ = fmt.Fprintf(w, "Error: %s: %s\n", coded.Code.Kind(), errors.MessageChain(err))
		return
	}
	_, _ = fmt.Fprintf(w, "Error: %v\n", err)
}
