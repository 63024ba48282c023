package cli

import (
	"errors"

	"github.com/alexanderramin/workstats/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTallyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "tally [personnel|bikes]",
		Short:     "Open the interactive counter screen",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(domain.KindPersonnel), string(domain.KindBikes)},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			k := domain.KindPersonnel
			if len(args) == 1 {
				parsed, err := domain.ParseKind(args[0])
				if err != nil {
					return err
				}
				k = parsed
			}
			if k == domain.KindOffice {
				return errors.New("office has no counters; use \"workstats office set\"")
			}
			if !app.interactive() {
				return errors.New("tally needs an interactive terminal")
			}

			st, err := app.Settings.Settings(ctx)
			if err != nil {
				return err
			}
			model, err := newTallyModel(ctx, app.Counters, k, tallyOptions{
				Lang:      st.Language,
				Date:      app.now().In(app.location()),
				Vibration: st.Vibration,
				Bell:      cmd.OutOrStdout(),
			})
			if err != nil {
				return err
			}

			p := tea.NewProgram(model,
				tea.WithContext(ctx),
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
				tea.WithReportFocus(),
			)
			_, err = p.Run()
			return err
		},
	}
}
