// Package tui implements the terminal client for RoomHub: an animated
// banner cycling through the app's taglines and a form for assigning a
// task to a housemate, submitted to the server the house page lives on.
package tui

import (
	"context"
	"net/url"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/BenjaminLindeen/RoomHub/internal/submit"
)

// Banner cycle shape: each character appears after one delay, the full
// phrase holds for ten delays, deletion runs a character per delay, and the
// empty frame holds for five delays before the next phrase.
const (
	defaultTypeDelay = 150 * time.Millisecond
	fullHoldFactor   = 10
	emptyHoldFactor  = 5
)

var (
	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))
)

// Config wires runtime options into the TUI program.
type Config struct {
	// PageURL is the house page the form lives on, e.g. /house/42. The
	// house to assign into is derived from its trailing path segment.
	PageURL string

	// Submitter posts the form to the server.
	Submitter *submit.Submitter

	// Phrases cycled by the banner. Empty selects the defaults.
	Phrases []string

	// TypeDelay is the banner's per-character delay. Zero selects the
	// default.
	TypeDelay time.Duration
}

// DefaultPhrases are the taglines cycled when none are configured.
var DefaultPhrases = []string{
	"Welcome to RoomHub",
	"Share chores, not arguments",
	"Plan the week together",
}

// Messages.

// bannerTickMsg advances the banner animation by one step.
type bannerTickMsg struct{}

// submitResultMsg carries the outcome of a form submission.
type submitResultMsg struct {
	target string
	err    error
}

// Form field indices.
const (
	fieldTaskName = iota
	fieldAssignee
	fieldDueDate
	fieldCount
)

type model struct {
	config Config

	// Banner animation state.
	phrases     []string
	typeDelay   time.Duration
	phraseIdx   int
	revealed    int
	deleting    bool
	holdsLeft   int
	bannerFrame string

	// Form state.
	inputs  []textinput.Model
	focused int

	// A submission in flight blocks further submits until it resolves.
	submitting bool
	navTarget  string
	errMsg     string

	width int
}

// New returns a tea.Model ready to be mounted into a Program.
func New(config Config) tea.Model {
	// Empty phrases have no character to reveal or delete; drop them so the
	// banner cycle always has work to do.
	phrases := make([]string, 0, len(config.Phrases))
	for _, p := range config.Phrases {
		if p != "" {
			phrases = append(phrases, p)
		}
	}
	if len(phrases) == 0 {
		phrases = DefaultPhrases
	}
	typeDelay := config.TypeDelay
	if typeDelay <= 0 {
		typeDelay = defaultTypeDelay
	}

	nameInput := textinput.New()
	nameInput.Placeholder = "Take out the trash"
	nameInput.CharLimit = 200
	nameInput.Width = 40
	nameInput.Focus()

	assigneeInput := textinput.New()
	assigneeInput.Placeholder = "housemate ID"
	assigneeInput.CharLimit = 20
	assigneeInput.Width = 40

	dueDateInput := textinput.New()
	dueDateInput.Placeholder = "2026-09-01T18:00"
	dueDateInput.CharLimit = 16
	dueDateInput.Width = 40

	return &model{
		config:    config,
		phrases:   phrases,
		typeDelay: typeDelay,
		inputs:    []textinput.Model{nameInput, assigneeInput, dueDateInput},
	}
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.bannerTickCmd(m.typeDelay))
}

func (m *model) bannerTickCmd(wait time.Duration) tea.Cmd {
	return tea.Tick(wait, func(time.Time) tea.Msg {
		return bannerTickMsg{}
	})
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab, tea.KeyDown:
			m.focusField((m.focused + 1) % fieldCount)
			return m, nil
		case tea.KeyShiftTab, tea.KeyUp:
			m.focusField((m.focused + fieldCount - 1) % fieldCount)
			return m, nil
		case tea.KeyEnter:
			if m.focused < fieldCount-1 {
				m.focusField(m.focused + 1)
				return m, nil
			}
			return m, m.submitCmd()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case bannerTickMsg:
		wait := m.advanceBanner()
		return m, m.bannerTickCmd(wait)

	case submitResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.navTarget = msg.target
		m.errMsg = ""
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m *model) focusField(idx int) {
	m.inputs[m.focused].Blur()
	m.focused = idx
	m.inputs[m.focused].Focus()
}

// advanceBanner moves the animation one step forward and returns how long
// to wait before the next step.
func (m *model) advanceBanner() time.Duration {
	if m.holdsLeft > 0 {
		m.holdsLeft--
		return m.typeDelay
	}

	phrase := []rune(m.phrases[m.phraseIdx])

	if m.deleting {
		m.revealed--
		m.bannerFrame = string(phrase[:m.revealed])
		if m.revealed == 0 {
			m.deleting = false
			m.phraseIdx = (m.phraseIdx + 1) % len(m.phrases)
			m.holdsLeft = emptyHoldFactor - 1
		}
		return m.typeDelay
	}

	m.revealed++
	m.bannerFrame = string(phrase[:m.revealed])
	if m.revealed == len(phrase) {
		m.deleting = true
		m.holdsLeft = fullHoldFactor - 1
	}
	return m.typeDelay
}

// submitCmd posts the form unless a submission is already in flight.
func (m *model) submitCmd() tea.Cmd {
	if m.submitting {
		return nil
	}
	m.submitting = true
	m.errMsg = ""

	fields := url.Values{}
	fields.Set("task-name", m.inputs[fieldTaskName].Value())
	fields.Set("person", m.inputs[fieldAssignee].Value())
	fields.Set("task-due-date", m.inputs[fieldDueDate].Value())

	submitter := m.config.Submitter
	pageURL := m.config.PageURL

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		target, err := submitter.Submit(ctx, pageURL, fields)
		return submitResultMsg{target: target, err: err}
	}
}

func (m *model) View() string {
	var b []byte

	b = append(b, bannerStyle.Render("  "+m.bannerFrame+"▌")...)
	b = append(b, "\n\n"...)

	labels := []string{"Task", "Assign to", "Due"}
	for i, input := range m.inputs {
		b = append(b, labelStyle.Render("  "+labels[i])...)
		b = append(b, '\n')
		b = append(b, "  "+input.View()...)
		b = append(b, "\n\n"...)
	}

	switch {
	case m.submitting:
		b = append(b, statusStyle.Render("  Assigning task...")...)
	case m.navTarget != "":
		b = append(b, statusStyle.Render("  Task assigned! Go to "+m.navTarget)...)
	case m.errMsg != "":
		b = append(b, errorStyle.Render("  "+m.errMsg)...)
	default:
		b = append(b, hintStyle.Render("  tab: next field · enter: submit · esc: quit")...)
	}
	b = append(b, '\n')

	return string(b)
}

// NavigationTarget reports where the server told the client to go after a
// successful submission, or empty if none happened.
func (m *model) NavigationTarget() string {
	return m.navTarget
}
