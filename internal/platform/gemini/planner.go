// Package gemini implements the menu.Planner interface using Google's
// Gemini API to generate weekly menus for a house.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/BenjaminLindeen/RoomHub/internal/config"
	"github.com/BenjaminLindeen/RoomHub/internal/domain"
	"github.com/BenjaminLindeen/RoomHub/internal/service/menu"
	"google.golang.org/genai"
)

// ErrInvalidConfig indicates the planner configuration is incomplete.
var ErrInvalidConfig = errors.New("invalid gemini planner configuration")

// ErrEmptyPlan indicates the model returned no usable text.
var ErrEmptyPlan = errors.New("gemini returned an empty menu plan")

// Planner implements menu.Planner backed by the Gemini API.
type Planner struct {
	logger *slog.Logger
	client *genai.Client
	model  string
}

// Ensure Planner implements menu.Planner
var _ menu.Planner = (*Planner)(nil)

// NewPlanner creates a Gemini-backed menu planner from the menu
// configuration.
func NewPlanner(ctx context.Context, logger *slog.Logger, cfg config.MenuConfig) (*Planner, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", ErrInvalidConfig)
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", ErrInvalidConfig, err)
	}

	return &Planner{
		logger: logger,
		client: client,
		model:  cfg.ModelName,
	}, nil
}

// PlanWeeklyMenu implements menu.Planner.
func (p *Planner) PlanWeeklyMenu(
	ctx context.Context,
	members []string,
	restrictions []menu.MemberRestrictions,
) (string, error) {
	prompt := buildPrompt(members, restrictions)

	p.logger.InfoContext(ctx, "requesting weekly menu from Gemini",
		"model", p.model,
		"member_count", len(members))

	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini menu generation failed: %w", err)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyPlan
	}

	return text, nil
}

// buildPrompt renders the planner prompt from house members and their
// restrictions.
func buildPrompt(members []string, restrictions []menu.MemberRestrictions) string {
	days := make([]string, 0, 7)
	for d := 0; d < 7; d++ {
		days = append(days, domain.DayName(time.Weekday((d+1)%7)))
	}

	var b strings.Builder
	b.WriteString("Create a weekly dinner menu (")
	b.WriteString(strings.Join(days, ", "))
	b.WriteString(") for a shared household.\n")
	b.WriteString("Assign one housemate to cook each day, spreading the load evenly.\n\n")

	b.WriteString("Housemates: ")
	b.WriteString(strings.Join(members, ", "))
	b.WriteString("\n")

	if len(restrictions) > 0 {
		b.WriteString("\nRestrictions to respect:\n")
		for _, r := range restrictions {
			b.WriteString("- ")
			b.WriteString(r.Member)
			if r.Dietary != "" {
				b.WriteString("; dietary: ")
				b.WriteString(r.Dietary)
			}
			if r.Schedule != "" {
				b.WriteString("; schedule: ")
				b.WriteString(r.Schedule)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\nFormat the answer as one line per day, \"Day: dish (cook)\".")
	return b.String()
}
