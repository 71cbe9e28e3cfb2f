// Package ui renders the session board in the terminal.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"todoboard/internal/service"
)

// ErrNotTTY is returned by Run when the output is not a terminal.
var ErrNotTTY = errors.New("tui requires a TTY")

// Run shows the board until the user quits or ctx is cancelled.
func Run(ctx context.Context, b service.Board, in io.Reader, out io.Writer) error {
	if !IsTTY(out) {
		return ErrNotTTY
	}

	m := New(b)
	defer m.Close()

	program := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type snapshotMsg struct {
	snap service.Snapshot
}

// waitForSnapshot yields the next snapshot, or nothing once Close has
// closed the channel.
func waitForSnapshot(ch <-chan service.Snapshot) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-ch
		if !ok {
			return nil
		}
		return snapshotMsg{snap: snap}
	}
}

// Model is the bubbletea model of the board. Every edit goes straight to
// the store; the view is always rebuilt from a snapshot.
type Model struct {
	board   service.Board
	updates <-chan service.Snapshot
	stop    func()

	snap service.Snapshot
	keys KeyMap
	help help.Model

	// cursor
	col, row int

	adding bool
	input  textinput.Model
	errMsg string

	width int
}

// New creates a board model subscribed to b. Call Close when done.
func New(b service.Board) Model {
	ti := textinput.New()
	ti.Placeholder = "What needs doing?"
	ti.Prompt = "❯ "
	ti.PromptStyle = InputPromptStyle
	ti.CharLimit = 0
	ti.Width = 60

	updates, stop := service.Watch(b)
	return Model{
		board:   b,
		updates: updates,
		stop:    stop,
		snap:    b.Snapshot(),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		input:   ti,
	}
}

// Close unsubscribes from the store and releases a pending waitForSnapshot.
func (m Model) Close() {
	if m.stop != nil {
		m.stop()
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return waitForSnapshot(m.updates)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case snapshotMsg:
		// Edits made here already refreshed snap; only accept newer state.
		if msg.snap.Version > m.snap.Version {
			m.snap = msg.snap
			m.clampCursor()
		}
		return m, waitForSnapshot(m.updates)

	case tea.KeyMsg:
		if m.adding {
			return m.updateForm(msg)
		}
		return m.updateBoard(msg)
	}
	return m, nil
}

func (m Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Left):
		if m.col > 0 {
			m.col--
			m.clampCursor()
		}

	case key.Matches(msg, m.keys.Right):
		if m.col < len(m.snap.Columns())-1 {
			m.col++
			m.clampCursor()
		}

	case key.Matches(msg, m.keys.Up):
		if m.row > 0 {
			m.row--
		}

	case key.Matches(msg, m.keys.Down):
		if m.row < len(m.columnTasks())-1 {
			m.row++
		}

	case key.Matches(msg, m.keys.Add):
		// New tasks land in the column under the cursor.
		if cols := m.snap.Columns(); m.col < len(cols) {
			m.board.SetSelectedStatus(cols[m.col].Status)
		}
		if m.snap.SelectedCategory == "" && len(m.snap.Categories) > 0 {
			m.board.SetSelectedCategory(m.snap.Categories[0])
		}
		m.refresh()
		m.adding = true
		m.errMsg = ""
		m.input.SetValue("")
		cmd := m.input.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.Toggle):
		if task, ok := m.selected(); ok {
			m.board.ToggleCompletion(task.ID)
			m.refresh()
		}

	case key.Matches(msg, m.keys.Delete):
		if task, ok := m.selected(); ok {
			m.board.DeleteTask(task.ID)
			m.refresh()
		}

	case key.Matches(msg, m.keys.MoveUp):
		tasks := m.columnTasks()
		if m.row > 0 && m.row < len(tasks) {
			m.board.Reorder(tasks[m.row].ID, tasks[m.row-1].ID)
			m.row--
			m.refresh()
		}

	case key.Matches(msg, m.keys.MoveDown):
		tasks := m.columnTasks()
		if m.row+1 < len(tasks) {
			m.board.Reorder(tasks[m.row].ID, tasks[m.row+1].ID)
			m.row++
			m.refresh()
		}

	case key.Matches(msg, m.keys.Filter):
		m.board.SetFilterCategory(nextFilter(m.snap.Categories, m.snap.FilterCategory))
		m.refresh()
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.adding = false
		m.errMsg = ""
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		text := m.input.Value()
		if strings.TrimSpace(text) == "" {
			m.errMsg = "text required"
			return m, nil
		}
		m.board.AddTask(text, m.snap.SelectedCategory, m.snap.SelectedStatus)
		m.refresh()
		m.adding = false
		m.errMsg = ""
		m.input.Blur()
		// Put the cursor on the new task, the last of its column.
		m.row = len(m.columnTasks()) - 1
		m.clampCursor()
		return m, nil

	case key.Matches(msg, m.keys.Category):
		m.board.SetSelectedCategory(nextCategory(m.snap.Categories, m.snap.SelectedCategory))
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) refresh() {
	m.snap = m.board.Snapshot()
	m.clampCursor()
}

func (m *Model) clampCursor() {
	cols := m.snap.Columns()
	if m.col >= len(cols) {
		m.col = len(cols) - 1
	}
	if m.col < 0 {
		m.col = 0
	}
	n := len(m.columnTasks())
	if m.row >= n {
		m.row = n - 1
	}
	if m.row < 0 {
		m.row = 0
	}
}

func (m Model) columnTasks() []service.Task {
	cols := m.snap.Columns()
	if m.col < 0 || m.col >= len(cols) {
		return nil
	}
	return cols[m.col].Tasks
}

func (m Model) selected() (service.Task, bool) {
	tasks := m.columnTasks()
	if m.row < 0 || m.row >= len(tasks) {
		return service.Task{}, false
	}
	return tasks[m.row], true
}

// nextFilter cycles all -> first category -> ... -> last category -> all.
func nextFilter(categories []string, current string) string {
	if current == "" {
		if len(categories) == 0 {
			return ""
		}
		return categories[0]
	}
	for i, c := range categories {
		if c == current && i+1 < len(categories) {
			return categories[i+1]
		}
	}
	return ""
}

// nextCategory cycles through categories without an empty step.
func nextCategory(categories []string, current string) string {
	if len(categories) == 0 {
		return current
	}
	for i, c := range categories {
		if c == current {
			return categories[(i+1)%len(categories)]
		}
	}
	return categories[0]
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("todoboard"))
	filter := "all"
	if m.snap.FilterCategory != "" {
		filter = m.snap.FilterCategory
	}
	b.WriteString(FilterStyle.Render("filter: " + filter))
	b.WriteString("\n")

	cols := m.snap.Columns()
	rendered := make([]string, len(cols))
	for i, col := range cols {
		rendered[i] = m.renderColumn(i, col)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	b.WriteString("\n")

	if m.adding {
		form := fmt.Sprintf("New task in %s  @%s\n%s",
			m.snap.SelectedStatus, CategoryStyle.Render(m.snap.SelectedCategory), m.input.View())
		if m.errMsg != "" {
			form += "\n" + ErrorStyle.Render("error: "+m.errMsg)
		}
		b.WriteString(FormStyle.Render(form))
		b.WriteString("\n")
		b.WriteString(m.help.View(formKeys{m.keys}))
		return b.String()
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderColumn(i int, col service.Column) string {
	var lines []string
	lines = append(lines, ColumnTitleStyle.Render(fmt.Sprintf("%s (%d)", col.Status, len(col.Tasks))))

	if len(col.Tasks) == 0 {
		lines = append(lines, EmptyStyle.Render("empty"))
	}
	for j, task := range col.Tasks {
		box := "[ ]"
		style := TaskStyle
		if task.Completed {
			box = "[x]"
			style = DoneTaskStyle
		}
		if i == m.col && j == m.row && !m.adding {
			style = SelectedTaskStyle
		}
		line := style.Render(box+" "+task.Text) + " " + CategoryStyle.Render("@"+task.Category)
		lines = append(lines, line)
	}

	style := ColumnStyle
	if i == m.col {
		style = ActiveColumnStyle
	}
	return style.Render(strings.Join(lines, "\n"))
}
