// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tui

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/danielhkuo/quickly-rank/ballot"
	"github.com/danielhkuo/quickly-rank/editor"
	"github.com/danielhkuo/quickly-rank/projector"
)

// Lines above the first rank row: title and a blank line.
const headerLines = 2

const helpText = "click/drag to move · ↑↓ rank · ←→ ties · tab focus · 1-9 place · n new rank · s split · enter done · q quit"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	targetStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true)
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true)
	draggedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Underline(true)
	emptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is a terminal projector for an editor. Terminal cells are the
// coordinate space: X is the column and Y the line.
type Model struct {
	ed    *editor.Editor
	title string

	lines  []projector.Line
	layout projector.Layout

	// pressed is the candidate under the left button, until release.
	pressed  ballot.Candidate
	dragging bool

	done     bool
	quitting bool
}

// New creates a model drawing ed.
func New(ed *editor.Editor, title string) *Model {
	m := &Model{ed: ed, title: title, pressed: ballot.NoCandidate}
	m.render()
	return m
}

// Editor returns the edited ballot's editor.
func (m *Model) Editor() *editor.Editor { return m.ed }

// Submitted reports whether the voter confirmed the ballot with enter
// rather than quitting.
func (m *Model) Submitted() bool { return m.done }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	m.render()
	return m, cmd
}

// render lays out the current ballot, lets queued continuations run
// against it, then lays out again so restored focus is visible.
func (m *Model) render() {
	m.relayout()
	m.ed.Rendered()
	m.relayout()
}

func (m *Model) relayout() {
	m.lines, m.layout = projector.Lines(projector.View(m.ed.Snapshot()), headerLines)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	s := msg.String()
	switch s {
	case "q", "ctrl+c":
		m.quitting = true
		return tea.Quit
	case "tab":
		m.cycleFocus(1)
		return nil
	case "shift+tab":
		m.cycleFocus(-1)
		return nil
	case "s":
		if c, ok := m.ed.Focused(); ok {
			m.ed.ContextClick(c)
		}
		return nil
	case "n":
		m.ed.KeyDownOnRow(editor.KeyEnter, m.ed.TrailingRank())
		return nil
	}

	if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		m.ed.KeyDownOnRow(editor.KeyEnter, int(s[0]-'1'))
		return nil
	}

	k, ok := editor.ParseKey(s)
	if !ok {
		return nil
	}
	if _, focused := m.ed.Focused(); !focused && k == editor.KeyEnter {
		m.done = true
		return tea.Quit
	}
	m.ed.KeyDown(k)
	return nil
}

// cycleFocus moves focus through candidates in display order.
func (m *Model) cycleFocus(step int) {
	var order []ballot.Candidate
	for _, group := range m.ed.Snapshot().Groups {
		order = append(order, group...)
	}
	if len(order) == 0 {
		return
	}

	i := 0
	if c, ok := m.ed.Focused(); ok {
		i = slices.Index(order, c) + step
	} else if step < 0 {
		i = len(order) - 1
	}
	i = (i + len(order)) % len(order)
	m.ed.Focus(order[i])
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	p := editor.Point{X: float64(msg.X), Y: float64(msg.Y)}

	switch msg.Action {
	case tea.MouseActionPress:
		m.ed.PointerDown()
		switch msg.Button {
		case tea.MouseButtonLeft:
			if c, ok := m.layout.CandidateAt(p); ok {
				m.ed.ClickCandidate(c)
				m.pressed = c
			} else if rank, ok := m.layout.RankAt(p); ok {
				m.ed.ClickRow(rank)
			}
		case tea.MouseButtonRight:
			if c, ok := m.layout.CandidateAt(p); ok {
				m.ed.ContextClick(c)
			}
		}

	case tea.MouseActionMotion:
		if msg.Button != tea.MouseButtonLeft || m.pressed == ballot.NoCandidate {
			return
		}
		if !m.dragging {
			m.ed.DragStart(m.pressed)
			m.dragging = true
		}
		if rank, ok := m.layout.RankAt(p); ok {
			m.ed.DragOver(rank)
		}

	case tea.MouseActionRelease:
		if m.dragging {
			if rank, ok := m.layout.RankAt(p); ok {
				m.ed.Drop(rank)
			}
			m.ed.DragEnd()
		}
		m.dragging = false
		m.pressed = ballot.NoCandidate
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting || m.done {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(m.title))
	sb.WriteString("\n\n")
	for _, line := range m.lines {
		for i, seg := range line.Segments {
			sb.WriteString(segmentStyle(line, i, seg).Render(seg.Text))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render(helpText))
	return sb.String()
}

// Styles only change colors and attributes so the layout stays valid.
func segmentStyle(line projector.Line, i int, seg projector.Segment) lipgloss.Style {
	switch {
	case i == 0 && line.DropTarget:
		return targetStyle
	case i == 0:
		return labelStyle
	case seg.Dragged:
		return draggedStyle
	case seg.Focused:
		return focusedStyle
	case seg.Candidate == ballot.NoCandidate:
		return emptyStyle
	}
	return lipgloss.NewStyle()
}
