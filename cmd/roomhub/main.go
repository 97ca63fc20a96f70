// Package main implements the RoomHub terminal client: an animated banner
// plus a form that assigns a task to a housemate through a running RoomHub
// server.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/BenjaminLindeen/RoomHub/internal/submit"
	"github.com/BenjaminLindeen/RoomHub/internal/tui"
)

func main() {
	serverURL := flag.String("server", "http://localhost:8080", "base URL of the RoomHub server")
	page := flag.String("page", "", "house page the form belongs to, e.g. /house/42")
	token := flag.String("token", "", "access token from /auth/login, sent as a bearer token")
	delay := flag.Duration("type-delay", 0, "banner per-character delay (default 150ms)")
	flag.Parse()

	if *page == "" {
		fmt.Fprintln(os.Stderr, "missing required -page flag, e.g. -page /house/42")
		os.Exit(2)
	}
	if _, err := submit.HouseIDFromPage(*page); err != nil {
		fmt.Fprintf(os.Stderr, "invalid -page value %q: %v\n", *page, err)
		os.Exit(2)
	}

	submitter := submit.New(*serverURL, nil)
	if *token != "" {
		submitter = submitter.WithToken(*token)
	}

	model := tui.New(tui.Config{
		PageURL:   *page,
		Submitter: submitter,
		TypeDelay: *delay,
	})

	program := tea.NewProgram(model)
	finalModel, err := program.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error running program: %v\n", err)
		os.Exit(1)
	}

	type navigator interface{ NavigationTarget() string }
	if nav, ok := finalModel.(navigator); ok && nav.NavigationTarget() != "" {
		fmt.Printf("Task assigned. House page: %s%s\n", *serverURL, nav.NavigationTarget())
	}
}
