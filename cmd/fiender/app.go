package main

import (
	"io"
	"log/slog"
	"time"

	"github.com/KirkDiggler/fiender/internal/clients/external"
	"github.com/KirkDiggler/fiender/internal/orchestrators/dice"
	"github.com/KirkDiggler/fiender/internal/orchestrators/lookup"
)

// app carries flag values and the service constructors shared by every
// command. Tests swap the constructors for mocks.
type app struct {
	// Connection flags
	baseURL string
	timeout time.Duration
	verbose bool

	newLookup func(client external.Client) (lookup.Service, error)
	newDice   func(client external.Client) (dice.Service, error)
}

func newApp() *app {
	return &app{
		newLookup: func(client external.Client) (lookup.Service, error) {
			return lookup.NewOrchestrator(&lookup.Config{Client: client})
		},
		newDice: func(client external.Client) (dice.Service, error) {
			return dice.NewOrchestrator(&dice.Config{Client: client})
		},
	}
}

// setupLogging installs a text handler on w, Debug level when verbose
func (a *app) setupLogging(w io.Writer) {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// createClient creates the Open5e client from the connection flags
func (a *app) createClient() (external.Client, error) {
	return external.New(&external.Config{
		BaseURL:     a.baseURL,
		HTTPTimeout: a.timeout,
	})
}

func (a *app) lookupService() (lookup.Service, error) {
	client, err := a.createClient()
	if err != nil {
		return nil, err
	}
	return a.newLookup(client)
}

func (a *app) diceService() (dice.Service, error) {
	client, err := a.createClient()
	if err != nil {
		return nil, err
	}
	return a.newDice(client)
}
