// Package main is the entry point for the tripweaver terminal client.
// Its sole responsibility is wiring dependencies together and starting the
// display program. No business logic belongs here.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"tripweaver/internal/config"
	"tripweaver/internal/display"
	"tripweaver/internal/gateway"
	"tripweaver/internal/planner"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "tripweaver:", err)
		os.Exit(1)
	}
}

func run() error {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// --- Flags ------------------------------------------------------------
	var in planner.Input
	flag.StringVar(&in.Budget, "budget", "", "trip budget (required)")
	flag.StringVar(&in.Interests, "interests", "", "comma-separated interests (required)")
	flag.StringVar(&in.Duration, "duration", "", "trip duration in days (required)")
	flag.StringVar(&in.Source, "source", "", "starting location (required)")
	flag.StringVar(&in.Destination, "destination", "", "destination (optional)")
	flag.StringVar(&in.Requests, "requests", "", "special requests (optional)")

	email := flag.String("email", cfg.Email, "user email for saving itineraries")
	password := flag.String("password", "", "password; when set, log in before starting")
	list := flag.Bool("list", false, "list saved itineraries for -email and exit")
	flag.Parse()

	// --- Logger -----------------------------------------------------------
	// The terminal UI owns stdout, so structured logs go to a file.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logFile.Close()
	logger := slog.New(slog.NewJSONHandler(logFile, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	// --- Gateway ----------------------------------------------------------
	hc := &http.Client{
		Timeout:   cfg.HTTPTimeout,
		Transport: gateway.NewLoggingTransport(nil, logger),
	}
	gw := gateway.New(cfg.APIBaseURL, gateway.WithHTTPClient(hc))

	// --- Identity ---------------------------------------------------------
	// The resolved email is passed down explicitly; nothing reads it from
	// ambient state after this point.
	ctx := context.Background()
	if *password != "" {
		if *email == "" {
			return fmt.Errorf("-password requires -email")
		}
		if _, err := gw.Login(ctx, *email, *password); err != nil {
			return fmt.Errorf("login failed: %w", err)
		}
		logger.Info("logged in", "email", *email)
	} else if *email != "" {
		// Best-effort profile check: an unknown email still lets the user
		// browse, it just means saves will be rejected by the backend.
		if _, err := gw.UserInfo(ctx, *email); err != nil {
			logger.Warn("could not verify user profile", "email", *email, "error", err)
		}
	}

	// --- List mode --------------------------------------------------------
	if *list {
		return listItineraries(ctx, gw, *email)
	}

	// --- Display ----------------------------------------------------------
	// Validation runs here so missing mandatory fields fail fast, before
	// the terminal UI starts or any network call is made.
	if err := in.Validate(); err != nil {
		return err
	}

	builder := planner.NewBuilder(gw)
	model := display.New(builder, gw, logger, *email, in)

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	return nil
}

// listItineraries prints a one-line summary per saved itinerary.
func listItineraries(ctx context.Context, gw *gateway.Client, email string) error {
	if email == "" {
		return fmt.Errorf("-list requires -email")
	}
	saved, err := gw.FetchItineraries(ctx, email)
	if err != nil {
		return err
	}
	if len(saved) == 0 {
		fmt.Println("no saved itineraries")
		return nil
	}
	for i, s := range saved {
		it := s.Itinerary
		fmt.Printf("%d. %s → %s, %d days (saved %s)\n",
			i+1, it.Source, it.DestinationName(), len(it.Days.Days), s.CreatedAt)
	}
	return nil
}
