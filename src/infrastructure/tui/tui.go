package tui

import (
	"context"

	"slack-delay-sender/src/application/usecases/scheduler"

	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the form until the user quits or ctx is done. save may be nil.
func Run(ctx context.Context, s *scheduler.Scheduler, title, webhookURL string, save SaveFunc) error {
	program := tea.NewProgram(
		NewModel(s, title, webhookURL).WithSave(save),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	_, err := program.Run()
	return err
}
