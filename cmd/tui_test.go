package cmd

import (
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guismus/DanjonBot/internal/data"
	"github.com/Guismus/DanjonBot/internal/session"
)

type stubExecutor struct {
	inputs []string
}

func (s *stubExecutor) Execute(input string) (*session.Result, error) {
	s.inputs = append(s.inputs, input)
	switch input {
	case "stats Kael":
		return &session.Result{Messages: []string{"```\nAventurier: Kael\n```"}}, nil
	case "stats Panne":
		return nil, errors.New("disk gone")
	}
	return nil, fmt.Errorf("%w: %q", session.ErrUnknownCommand, input)
}

var tuiRoster = []data.Adventurer{
	{Name: "Kael", Race: data.Humain, Rank: "C", Level: 10},
	{Name: "Mira", Race: data.Elfe, Rank: "B", Level: 12},
}

func typeLine(m *replModel, line string) tea.Cmd {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(line)})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return cmd
}

func TestCompletions(t *testing.T) {
	names := []string{"Kael", "Mira"}
	tests := []struct {
		input string
		want  []string
	}{
		{input: "", want: nil},
		{input: "at", want: []string{"attaque ", "attack "}},
		{input: "s", want: []string{"stats "}},
		{input: "attaque k", want: []string{"attaque Kael "}},
		{input: "attaque Kael ", want: nil},
		{input: "attaque Kael -w", want: []string{"attaque Kael -weapon "}},
		{input: "attaque Kael -weapon ", want: []string{"attaque Kael -weapon Moyen ", "attaque Kael -weapon Leger ", "attaque Kael -weapon Lourd "}},
		{input: "attaque Kael -weapon L", want: []string{"attaque Kael -weapon Leger ", "attaque Kael -weapon Lourd "}},
		{input: "stats Mira ", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, completions(tt.input, names))
		})
	}
}

func TestREPLModelLogsReplies(t *testing.T) {
	exec := &stubExecutor{}
	m := newREPLModel(exec, tuiRoster)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	typeLine(m, "stats Kael")
	assert.Equal(t, []string{"stats Kael"}, exec.inputs)
	assert.Contains(t, m.logContent, "> stats Kael\nAventurier: Kael")
	assert.NotContains(t, m.logContent, "```")
	assert.Empty(t, m.textInput.Value())

	typeLine(m, "stats Panne")
	assert.Contains(t, m.logContent, "Error: disk gone")

	typeLine(m, "bonjour")
	assert.Contains(t, m.logContent, replUsage)

	view := m.View()
	assert.Contains(t, view, "Mira (Elfe, niv. 12, rang B)")
	assert.Contains(t, view, "Aventurier: Kael")
}

func TestREPLModelHistory(t *testing.T) {
	m := newREPLModel(&stubExecutor{}, nil)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	typeLine(m, "stats Kael")
	typeLine(m, "stats Kael")
	typeLine(m, "attack Kael Mira")

	assert.Equal(t, []string{"stats Kael", "attack Kael Mira"}, m.history)

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "attack Kael Mira", m.textInput.Value())
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "stats Kael", m.textInput.Value())
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "attack Kael Mira", m.textInput.Value())
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Empty(t, m.textInput.Value())
}

func TestREPLModelTabCompletes(t *testing.T) {
	m := newREPLModel(&stubExecutor{}, tuiRoster)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("attaque Mi")})
	require.True(t, m.showList)
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "attaque Mira ", m.textInput.Value())
}

func TestREPLModelQuits(t *testing.T) {
	for _, line := range []string{"exit", "quit"} {
		m := newREPLModel(&stubExecutor{}, nil)
		cmd := typeLine(m, line)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}

	m := newREPLModel(&stubExecutor{}, nil)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
