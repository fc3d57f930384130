// Package tui is the terminal front end: a full-screen snippet list with
// line-oriented sub-flows for add, edit, delete, and detail view.
//
// The interface is modal by construction. The list is a bubbletea program;
// when a sub-flow key is pressed the program quits (tearing down the
// alternate screen), the sub-flow runs as a plain synchronous form, and the
// loop restarts the full-screen program. Exactly one of the two modes is ever
// active.
package tui

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cashmeredev/berrysnip/internal/clipboard"
	"github.com/cashmeredev/berrysnip/internal/service"
)

// action is what the list program asks the outer loop to do after it quits.
type action int

const (
	actionQuit action = iota
	actionAdd
	actionEdit
	actionDelete
	actionView
)

// App owns the pieces every state of the terminal UI needs.
type App struct {
	svc    *service.SnippetService
	copier *clipboard.Copier
	logger *slog.Logger
}

func NewApp(svc *service.SnippetService, copier *clipboard.Copier, logger *slog.Logger) *App {
	return &App{svc: svc, copier: copier, logger: logger}
}

// Run drives the state machine until the user quits.
func (a *App) Run() error {
	ctx := context.Background()
	st := listState{}

	for {
		m := newListModel(a.svc, a.copier, st)
		final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
		if err != nil {
			return fmt.Errorf("tui: running list view: %w", err)
		}

		lm, ok := final.(listModel)
		if !ok {
			return fmt.Errorf("tui: unexpected final model %T", final)
		}
		st = lm.state

		switch lm.action {
		case actionQuit:
			return nil

		case actionAdd:
			if err := a.RunAdd(ctx); err != nil {
				return err
			}
			st.selected = 0

		case actionEdit:
			if err := a.runEdit(ctx, lm.target); err != nil {
				return err
			}

		case actionDelete:
			if err := a.runDelete(ctx, lm.target); err != nil {
				return err
			}
			if st.selected > 0 {
				st.selected--
			}

		case actionView:
			if err := a.runView(ctx, lm.target); err != nil {
				return err
			}
		}
	}
}
