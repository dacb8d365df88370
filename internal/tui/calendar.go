package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"lazybear/internal/store"
)

// RunCalendar opens the interactive month-calendar board.
func RunCalendar(ctx context.Context, st *store.Store, out io.Writer) error {
	m := newCalModel(ctx, st)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
