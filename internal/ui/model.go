package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"minidb/internal/engine"
	"minidb/internal/sql"
)

// Model is the REPL application state.
type Model struct {
	engine      *engine.Engine
	queryEditor textarea.Model
	resultTable table.Model
	help        help.Model
	keys        keyMap

	width    int
	height   int
	showHelp bool

	lastResult *engine.Result
	lastError  error
	lastTook   time.Duration
}

func NewModel(eng *engine.Engine) Model {
	ta := textarea.New()
	ta.Placeholder = "Enter a SQL statement, end it with ';' ..."
	ta.CharLimit = 4000
	ta.ShowLineNumbers = true
	ta.SetHeight(5)
	ta.Focus()

	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(textMuted)
	ta.FocusedStyle.Text = lipgloss.NewStyle().Foreground(textPrimary)
	ta.FocusedStyle.LineNumber = lipgloss.NewStyle().Foreground(textMuted)

	t := table.New(
		table.WithColumns([]table.Column{{Title: "Results", Width: 60}}),
		table.WithFocused(false),
		table.WithHeight(10),
	)
	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(primaryColor).
		BorderBottom(true).
		Bold(true).
		Foreground(primaryColor)
	ts.Selected = ts.Selected.Foreground(textPrimary).Background(bgLight)
	t.SetStyles(ts)

	return Model{
		engine:      eng,
		queryEditor: ta,
		resultTable: t,
		help:        help.New(),
		keys:        keys,
	}
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

type resultMsg struct {
	result *engine.Result
	err    error
	took   time.Duration
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.queryEditor.SetWidth(m.width - 6)
		m.resultTable.SetHeight(max(4, m.height-18))

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Execute):
			if input := strings.TrimSpace(m.queryEditor.Value()); input != "" {
				return m, m.executeScript(input)
			}

		case key.Matches(msg, m.keys.Clear):
			m.queryEditor.SetValue("")
			m.lastResult = nil
			m.lastError = nil

		case key.Matches(msg, m.keys.ShowTables):
			return m, m.showTables()

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
		}

	case resultMsg:
		m.lastResult = msg.result
		m.lastError = msg.err
		m.lastTook = msg.took
		if msg.err == nil && msg.result != nil && len(msg.result.Columns) > 0 {
			m.fillResultTable(msg.result)
		}
	}

	var cmd tea.Cmd
	m.queryEditor, cmd = m.queryEditor.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var sections []string

	sections = append(sections, m.renderHeader())
	sections = append(sections, editorStyle.Render(m.queryEditor.View()))

	switch {
	case m.lastError != nil:
		sections = append(sections, errorBoxStyle.Render("ERROR: "+m.lastError.Error()))
	case m.lastResult != nil && len(m.lastResult.Columns) > 0:
		header := lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true).
			Render(fmt.Sprintf("%d rows (%v)", m.lastResult.Count, m.lastTook))
		sections = append(sections, header+"\n"+m.resultTable.View())
	case m.lastResult != nil && m.lastResult.Message != "":
		sections = append(sections, messageStyle.Render(m.lastResult.Message))
	}

	sections = append(sections, m.renderStatusBar())

	if m.showHelp {
		sections = append(sections, helpBoxStyle.Render(m.help.FullHelpView([][]key.Binding{{
			m.keys.Execute, m.keys.Clear, m.keys.ShowTables, m.keys.Help, m.keys.Quit,
		}})))
	}

	return strings.Join(sections, "\n")
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("minidb")
	badge := badgeStyle.Render(fmt.Sprintf("%d tables", len(m.engine.ListTables())))
	return lipgloss.JoinHorizontal(lipgloss.Left, title, "  ", badge)
}

func (m Model) renderStatusBar() string {
	hint := "ctrl+e execute | ctrl+t tables | ctrl+h help | ctrl+c quit"
	width := m.width - 2
	if width < 0 {
		width = 0
	}
	return statusBarStyle.Width(width).Render(hint)
}

// executeScript parses the editor content into statements and runs them in
// order; the last result wins the display.
func (m Model) executeScript(input string) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()

		var last *engine.Result
		for _, raw := range sql.SplitScript(input) {
			stmt, err := sql.Parse(raw)
			if err != nil {
				return resultMsg{err: err, took: time.Since(start)}
			}
			res, err := m.engine.Execute(stmt)
			if err != nil {
				return resultMsg{err: err, took: time.Since(start)}
			}
			last = res
		}
		return resultMsg{result: last, took: time.Since(start)}
	}
}

func (m Model) showTables() tea.Cmd {
	return func() tea.Msg {
		names := m.engine.ListTables()
		res := &engine.Result{
			Columns: []string{"table"},
			Count:   int64(len(names)),
		}
		for _, name := range names {
			res.Rows = append(res.Rows, map[string]sql.Value{"table": sql.TextValue(name)})
		}
		return resultMsg{result: res}
	}
}

func (m *Model) fillResultTable(res *engine.Result) {
	columns := make([]table.Column, len(res.Columns))
	for i, col := range res.Columns {
		columns[i] = table.Column{Title: col, Width: columnWidth(col, res, i)}
	}

	rows := make([]table.Row, len(res.Rows))
	for i, r := range res.Rows {
		cells := make(table.Row, len(res.Columns))
		for j, col := range res.Columns {
			cells[j] = r.Get(col).String()
		}
		rows[i] = cells
	}

	m.resultTable.SetColumns(columns)
	m.resultTable.SetRows(rows)
}

func columnWidth(name string, res *engine.Result, idx int) int {
	const minWidth, maxWidth = 8, 32

	width := len(name) + 2
	for _, r := range res.Rows {
		if w := len(r.Get(res.Columns[idx]).String()) + 2; w > width {
			width = w
		}
	}
	if width < minWidth {
		return minWidth
	}
	if width > maxWidth {
		return maxWidth
	}
	return width
}
