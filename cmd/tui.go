/*
Copyright © 2026 Guismus
*/
package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Guismus/DanjonBot/internal/combat"
	"github.com/Guismus/DanjonBot/internal/data"
	"github.com/Guismus/DanjonBot/internal/parser"
	"github.com/Guismus/DanjonBot/internal/session"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			MarginBottom(1)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F25D94"))

	rosterBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(0, 2)

	logBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#04B575")).
			Padding(0, 1)

	autocompleteStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#F25D94"))
)

const (
	replWelcome = "Danjon shell. Type 'exit' to quit."
	replUsage   = "commands: attaque|attack|roll <attacker> [-weapon <type>] <defender> [-weapon <type>], stats <name>"
)

var replVerbs = []string{"attaque ", "attack ", "roll ", "stats ", "exit", "quit"}

// executor runs one chat line; *session.Session is the real one.
type executor interface {
	Execute(input string) (*session.Result, error)
}

type suggestion string

func (s suggestion) Title() string       { return string(s) }
func (s suggestion) Description() string { return "" }
func (s suggestion) FilterValue() string { return string(s) }

type replModel struct {
	exec        executor
	roster      []data.Adventurer
	names       []string
	textInput   textinput.Model
	viewport    viewport.Model
	suggestions list.Model
	history     []string
	historyIdx  int
	logContent  string
	width       int
	height      int
	showList    bool
}

func newREPLModel(exec executor, roster []data.Adventurer) *replModel {
	ti := textinput.New()
	ti.Placeholder = "attaque Kael -weapon Lourd Mira"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 60

	vp := viewport.New(0, 0)
	vp.SetContent(replWelcome)

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetHeight(1)
	delegate.SetSpacing(0)
	sugList := list.New([]list.Item{}, delegate, 50, 7)
	sugList.SetShowTitle(false)
	sugList.SetShowStatusBar(false)
	sugList.SetFilteringEnabled(false)
	sugList.SetShowHelp(false)

	names := make([]string, 0, len(roster))
	for _, a := range roster {
		names = append(names, a.Name)
	}

	return &replModel{
		exec:        exec,
		roster:      roster,
		names:       names,
		textInput:   ti,
		viewport:    vp,
		suggestions: sugList,
		historyIdx:  -1,
		logContent:  replWelcome,
	}
}

func (m *replModel) Init() tea.Cmd {
	return textinput.Blink
}

// completions proposes full input lines extending val: verbs first, then
// adventurer names, weapon markers and weapon categories.
func completions(val string, names []string) []string {
	if val == "" {
		return nil
	}
	var candidates []string
	prefix := val
	if i := strings.LastIndexByte(val, ' '); i < 0 {
		candidates = replVerbs
	} else {
		prefix = val[i+1:]
		previous := strings.Fields(val[:i])
		switch {
		case len(previous) > 0 && previous[len(previous)-1] == parser.WeaponMarker:
			for _, w := range []string{combat.WeaponMoyen, combat.WeaponLeger, combat.WeaponLourd} {
				candidates = append(candidates, w+" ")
			}
		case prefix == "":
			return nil
		case strings.HasPrefix(prefix, "-"):
			candidates = []string{parser.WeaponMarker + " "}
		default:
			for _, n := range names {
				candidates = append(candidates, n+" ")
			}
		}
	}

	base := val[:len(val)-len(prefix)]
	var out []string
	for _, c := range candidates {
		if len(prefix) < len(c) && strings.HasPrefix(strings.ToLower(c), strings.ToLower(prefix)) {
			out = append(out, base+c)
		}
	}
	return out
}

func (m *replModel) updateSuggestions() {
	found := completions(m.textInput.Value(), m.names)
	items := make([]list.Item, 0, len(found))
	for _, c := range found {
		items = append(items, suggestion(c))
	}
	m.suggestions.SetItems(items)
	m.showList = len(items) > 0
	if m.showList {
		h := len(items)
		if h > 10 {
			h = 10
		}
		if h < 4 {
			h = 4
		}
		m.suggestions.SetHeight(h)
		m.suggestions.ResetSelected()
	}
}

// run executes one line and returns the log entry for it.
func (m *replModel) run(line string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "> %s\n", line)
	res, err := m.exec.Execute(line)
	switch {
	case errors.Is(err, session.ErrUnknownCommand):
		b.WriteString(infoStyle.Render(replUsage))
	case err != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", err)))
	default:
		for _, msg := range res.Messages {
			b.WriteString(strings.Trim(msg, "`\n"))
			b.WriteByte('\n')
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		lsCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyUp:
			if m.showList {
				m.suggestions, lsCmd = m.suggestions.Update(msg)
			} else if len(m.history) > 0 {
				if m.historyIdx == -1 {
					m.historyIdx = len(m.history) - 1
				} else if m.historyIdx > 0 {
					m.historyIdx--
				}
				m.textInput.SetValue(m.history[m.historyIdx])
				m.updateSuggestions()
			}

		case tea.KeyDown:
			if m.showList {
				m.suggestions, lsCmd = m.suggestions.Update(msg)
			} else if len(m.history) > 0 && m.historyIdx != -1 {
				if m.historyIdx < len(m.history)-1 {
					m.historyIdx++
					m.textInput.SetValue(m.history[m.historyIdx])
				} else {
					m.historyIdx = -1
					m.textInput.SetValue("")
				}
				m.updateSuggestions()
			}

		case tea.KeyTab:
			if m.showList {
				if s, ok := m.suggestions.SelectedItem().(suggestion); ok {
					m.textInput.SetValue(string(s))
					m.textInput.SetCursor(len(s))
					m.updateSuggestions()
				}
			}

		case tea.KeyEnter:
			val := strings.TrimSpace(m.textInput.Value())
			if val == "exit" || val == "quit" {
				return m, tea.Quit
			}
			if val != "" {
				if len(m.history) == 0 || m.history[len(m.history)-1] != val {
					m.history = append(m.history, val)
				}
				m.historyIdx = -1
				m.textInput.SetValue("")
				m.updateSuggestions()

				m.logContent += "\n\n" + m.run(val)
				m.viewport.SetContent(m.logContent)
				m.viewport.GotoBottom()
			}

		default:
			m.textInput, tiCmd = m.textInput.Update(msg)
			m.updateSuggestions()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 4
		m.suggestions.SetWidth(msg.Width - 6)
	}

	m.viewport, vpCmd = m.viewport.Update(msg)

	listH := 0
	if m.showList {
		listH = m.suggestions.Height() + 2
	}
	overhead := lipgloss.Height(titleStyle.Render("Danjon")) +
		lipgloss.Height(m.renderRoster()) +
		1 + listH +
		lipgloss.Height(infoStyle.Render("info")) + 6
	m.viewport.Height = m.height - overhead
	if m.viewport.Height < 4 {
		m.viewport.Height = 4
	}

	return m, tea.Batch(tiCmd, vpCmd, lsCmd)
}

func (m *replModel) renderRoster() string {
	var b strings.Builder
	b.WriteString("Aventuriers\n")
	if len(m.roster) == 0 {
		b.WriteString("aucun aventurier chargé")
	}
	for _, a := range m.roster {
		fmt.Fprintf(&b, "\n %s (%s, niv. %d, rang %s)", a.Name, a.Race, a.Level, a.Rank)
	}
	w := m.width - 4
	if w < 20 {
		w = 20
	}
	return rosterBoxStyle.Width(w).Render(b.String())
}

func (m *replModel) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	inputArea := m.textInput.View()
	if m.showList {
		inputArea = lipgloss.JoinVertical(lipgloss.Left, inputArea, autocompleteStyle.Render(m.suggestions.View()))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(" Danjon "),
		m.renderRoster(),
		logBoxStyle.Width(m.width-4).Render(m.viewport.View()),
		"",
		inputArea,
		infoStyle.Render("(esc to quit, tab to complete, up/down history)"),
	)
}

// RunTUI drives exec from an interactive terminal shell until the user quits.
func RunTUI(exec executor, roster []data.Adventurer, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(newREPLModel(exec, roster), tea.WithAltScreen(), tea.WithInput(in), tea.WithOutput(out))
	_, err := p.Run()
	return err
}
