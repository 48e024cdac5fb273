package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// spinnerDoneMsg signals that the background work finished.
type spinnerDoneMsg struct{}

type spinnerModel struct {
	spinner  spinner.Model
	message  string
	quitting bool
}

func newSpinnerModel(message string) spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Line
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return spinnerModel{spinner: s, message: message}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerDoneMsg:
		m.quitting = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

func (m spinnerModel) View() string {
	if m.quitting {
		return ""
	}
	return fmt.Sprintf("%s %s\n", m.spinner.View(), m.message)
}

// runWithSpinner executes fn in the background while showing a spinner.
// Without a terminal it falls back to a plain status line.
func runWithSpinner(message string, fn func() error) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Println(message)
		return fn()
	}

	program := tea.NewProgram(newSpinnerModel(message))
	done := make(chan error, 1)
	go func() {
		done <- fn()
		program.Send(spinnerDoneMsg{})
	}()

	if _, err := program.Run(); err != nil {
		// Spinner display failed; the work itself still finishes.
		return <-done
	}
	return <-done
}
