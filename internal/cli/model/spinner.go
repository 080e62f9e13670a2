package model

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TaskModel shows a spinner while a single blocking task runs. Used for
// container creation, which may trigger an implicit image pull.
type TaskModel struct {
	spinner  spinner.Model
	label    string
	task     func() error
	err      error
	quitting bool
}

type taskDoneMsg struct {
	err error
}

func NewTaskModel(label string, task func() error) TaskModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return TaskModel{
		spinner: s,
		label:   label,
		task:    task,
	}
}

func (m TaskModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, runTask(m.task))
}

func (m TaskModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		default:
			return m, nil
		}
	case taskDoneMsg:
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

func (m TaskModel) View() string {
	if m.quitting {
		return "Cancelled.\n"
	}
	return fmt.Sprintf(" %s %s...\n", m.spinner.View(), m.label)
}

func runTask(task func() error) tea.Cmd {
	return func() tea.Msg {
		return taskDoneMsg{err: task()}
	}
}

// RunTask runs the task under the spinner and returns its error. A key
// cancellation before the task finishes is reported as an error so the
// caller does not proceed on an unfinished launch.
func RunTask(label string, task func() error) error {
	p := tea.NewProgram(NewTaskModel(label, task))
	modelInterface, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running spinner program: %w", err)
	}

	final, ok := modelInterface.(TaskModel)
	if !ok {
		return fmt.Errorf("could not type assert tea model to concrete type")
	}
	if final.quitting {
		return fmt.Errorf("cancelled while %s", label)
	}
	return final.err
}
