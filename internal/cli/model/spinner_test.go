package model

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestTaskModelQuitsWhenTaskFinishes(t *testing.T) {
	m := NewTaskModel("Creating container", func() error { return nil })

	updated, cmd := m.Update(taskDoneMsg{err: errors.New("boom")})
	final := updated.(TaskModel)

	assert.EqualError(t, final.err, "boom")
	assert.NotNil(t, cmd, "completion must quit the program")
}

func TestTaskModelCancelKeys(t *testing.T) {
	m := NewTaskModel("Creating container", func() error { return nil })

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	final := updated.(TaskModel)

	assert.True(t, final.quitting)
	assert.Equal(t, "Cancelled.\n", final.View())
}
