package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/danielhkuo/quickly-rank/editor"
)

// Run shows the editor full screen until the voter submits or quits.
func Run(ctx context.Context, ed *editor.Editor, title string) (submitted bool, err error) {
	m := New(ed, title)
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return false, fmt.Errorf("terminal editor failed: %w", err)
	}
	ed.Teardown()
	return m.Submitted(), nil
}
