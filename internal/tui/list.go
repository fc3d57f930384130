package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cashmeredev/berrysnip/internal/clipboard"
	"github.com/cashmeredev/berrysnip/internal/model"
	"github.com/cashmeredev/berrysnip/internal/service"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	searchStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Reverse(true)
	emptyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// listState survives across sub-flows: it is the only UI state the terminal
// front end keeps between full-screen sessions.
type listState struct {
	selected int
	search   string
}

type clearStatusMsg struct{}

// listModel is the full-screen list. The snippet slice is never treated as a
// cache: it is re-fetched from the store on every key press, so the view
// always reflects the latest records.
type listModel struct {
	svc    *service.SnippetService
	copier *clipboard.Copier

	state    listState
	snippets []model.Snippet
	loadErr  error

	searching   bool
	searchInput textinput.Model

	status  string
	statErr bool

	width  int
	height int

	// Set just before quitting; read by the outer loop.
	action action
	target int64
}

func newListModel(svc *service.SnippetService, copier *clipboard.Copier, st listState) listModel {
	in := textinput.New()
	in.Prompt = "Search: "
	in.SetValue(st.search)

	m := listModel{
		svc:         svc,
		copier:      copier,
		state:       st,
		searchInput: in,
		width:       80,
		height:      24,
	}
	m.reload()
	return m
}

func (m *listModel) reload() {
	snippets, err := m.svc.List(context.Background(), m.state.search, "")
	if err != nil {
		m.loadErr = err
		m.snippets = nil
		return
	}
	m.loadErr = nil
	m.snippets = snippets
	m.clampSelection()
}

// visibleRows is how many list rows fit between the chrome above and below.
func (m *listModel) visibleRows() int {
	rows := m.height - 7
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *listModel) clampSelection() {
	max := min(len(m.snippets), m.visibleRows()) - 1
	if max < 0 {
		max = 0
	}
	if m.state.selected > max {
		m.state.selected = max
	}
	if m.state.selected < 0 {
		m.state.selected = 0
	}
}

func (m *listModel) selectedSnippet() (model.Snippet, bool) {
	if len(m.snippets) == 0 || m.state.selected >= len(m.snippets) {
		return model.Snippet{}, false
	}
	return m.snippets[m.state.selected], true
}

func (m listModel) Init() tea.Cmd {
	return nil
}

func (m listModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampSelection()
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearching(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m listModel) updateSearching(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.state.search = m.searchInput.Value()
		m.state.selected = 0
		m.searching = false
		m.searchInput.Blur()
		m.reload()
		return m, nil
	case tea.KeyEsc:
		m.searchInput.SetValue(m.state.search)
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m listModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Every key press re-queries the store before the next render.
	m.reload()

	switch msg.String() {
	case "q", "ctrl+c":
		m.action = actionQuit
		return m, tea.Quit

	case "up":
		if m.state.selected > 0 {
			m.state.selected--
		}

	case "down":
		limit := min(len(m.snippets), m.visibleRows()) - 1
		if m.state.selected < limit {
			m.state.selected++
		}

	case "a":
		m.action = actionAdd
		return m, tea.Quit

	case "e":
		if s, ok := m.selectedSnippet(); ok {
			m.action = actionEdit
			m.target = s.ID
			return m, tea.Quit
		}

	case "d":
		if s, ok := m.selectedSnippet(); ok {
			m.action = actionDelete
			m.target = s.ID
			return m, tea.Quit
		}

	case "enter":
		if s, ok := m.selectedSnippet(); ok {
			m.action = actionView
			m.target = s.ID
			return m, tea.Quit
		}

	case "y":
		if s, ok := m.selectedSnippet(); ok {
			if err := m.copier.Copy(s.Content); err != nil {
				m.status = err.Error()
				m.statErr = true
			} else {
				m.status = "Copied to clipboard!"
				m.statErr = false
			}
			return m, tea.Tick(time.Second, func(time.Time) tea.Msg {
				return clearStatusMsg{}
			})
		}

	case "/":
		m.searching = true
		m.searchInput.SetValue(m.state.search)
		m.searchInput.Focus()
	}

	return m, nil
}

func (m listModel) View() string {
	var b strings.Builder

	title := "BerrySnip - Snippet Manager"
	pad := (m.width - lipgloss.Width(title)) / 2
	if pad < 0 {
		pad = 0
	}
	b.WriteString(strings.Repeat(" ", pad) + headerStyle.Render(title) + "\n\n")

	if m.searching {
		b.WriteString("  " + m.searchInput.View() + "\n\n")
	} else {
		b.WriteString("  " + searchStyle.Render("Search: "+m.state.search+"_") + "\n\n")
	}

	switch {
	case m.loadErr != nil:
		b.WriteString("  " + errorStyle.Render("Error loading snippets: "+m.loadErr.Error()) + "\n")
	case len(m.snippets) == 0:
		b.WriteString("  " + emptyStyle.Render("No snippets found. Press 'a' to add one.") + "\n")
	default:
		for i, s := range m.snippets {
			if i >= m.visibleRows() {
				break
			}
			line := fmt.Sprintf("%2d. %s", i+1, truncate(s.Title, m.width-10))
			if i == m.state.selected {
				line = selectedStyle.Render(line)
			}
			b.WriteString("  " + line + "\n")
		}
	}

	filled := strings.Count(b.String(), "\n")
	for i := filled; i < m.height-2; i++ {
		b.WriteString("\n")
	}

	help := "[Up/Down]Nav [Enter]View [a]Add [e]Edit [d]Del [y]Yank [/]Search [q]Quit"
	b.WriteString("  " + footerStyle.Render(truncate(help, m.width-4)))
	if m.status != "" {
		style := statusStyle
		if m.statErr {
			style = errorStyle
		}
		b.WriteString("\n  " + style.Render(m.status))
	}

	return b.String()
}

func truncate(s string, max int) string {
	if max <= 3 {
		return s
	}
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
