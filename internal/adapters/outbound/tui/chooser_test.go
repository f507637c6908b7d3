package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/fixhook/fixhook/internal/domain"
)

func press(m chooserModel, keys ...tea.KeyMsg) chooserModel {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(chooserModel)
	}
	return m
}

func newChooser() chooserModel {
	return chooserModel{
		message: "Fix ready",
		choices: []domain.Choice{domain.ChoiceApply, domain.ChoiceShowDiff, domain.ChoiceCancel},
	}
}

func TestChooser_EnterPicksCursor(t *testing.T) {
	m := press(newChooser(), tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.done)
	assert.Equal(t, domain.ChoiceShowDiff, m.chosen)
}

func TestChooser_CursorWraps(t *testing.T) {
	m := press(newChooser(), tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, domain.ChoiceCancel, m.chosen)
}

func TestChooser_Hotkey(t *testing.T) {
	m := press(newChooser(), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	assert.True(t, m.done)
	assert.Equal(t, domain.ChoiceApply, m.chosen)
}

func TestChooser_EscCancels(t *testing.T) {
	m := press(newChooser(), tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, domain.ChoiceCancel, m.chosen)
}

func TestChooser_View(t *testing.T) {
	m := newChooser()
	view := m.View()
	assert.Contains(t, view, "Fix ready")
	assert.Contains(t, view, "Apply")
	assert.Contains(t, view, "Show Diff")

	done := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, done.View())
}
