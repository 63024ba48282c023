package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/workstats/internal/analysis"
	"github.com/alexanderramin/workstats/internal/cli/formatter"
	"github.com/alexanderramin/workstats/internal/domain"
	"github.com/alexanderramin/workstats/internal/notify"
	"github.com/alexanderramin/workstats/internal/report"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse, analyze and clear saved entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listHistory(cmd, app, "")
		},
	}

	cmd.AddCommand(
		newHistoryListCmd(app),
		newHistoryReportCmd(app),
		newHistoryClearCmd(app),
		newHistoryAnalyzeCmd(app),
	)

	return cmd
}

func newHistoryListCmd(app *App) *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entries grouped by day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listHistory(cmd, app, kind)
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "Only show personnel, bikes or office")
	return cmd
}

func listHistory(cmd *cobra.Command, app *App, kind string) error {
	ctx := cmd.Context()
	groups, err := app.History.GroupedHistory(ctx)
	if err != nil {
		return err
	}
	if kind != "" {
		k, err := domain.ParseKind(kind)
		if err != nil {
			return err
		}
		groups = filterGroups(groups, k)
	}
	printf(cmd, "%s", formatter.FormatHistory(groups, app.language(ctx), app.now(), app.location()))
	return nil
}

func filterGroups(groups []domain.DayGroup, k domain.Kind) []domain.DayGroup {
	var out []domain.DayGroup
	for _, g := range groups {
		for _, kg := range g.Kinds {
			if kg.Kind == k {
				out = append(out, domain.DayGroup{Day: g.Day, Kinds: []domain.KindGroup{kg}})
			}
		}
	}
	return out
}

func newHistoryReportCmd(app *App) *cobra.Command {
	var doCopy bool
	cmd := &cobra.Command{
		Use:   "report ID",
		Short: "Print the report of a saved entry (ID or ID prefix)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			entries, err := app.History.History(ctx)
			if err != nil {
				return err
			}
			e, err := findEntry(entries, args[0])
			if err != nil {
				return err
			}
			text := report.Entry(e, app.location(), app.language(ctx))
			printLine(cmd, text)
			if doCopy && app.Copier != nil {
				s := app.labels(ctx)
				if err := app.Copier.Copy(text); err != nil {
					app.toast(cmd, notify.Error(fmt.Sprintf("%s: %v", s.CopyFailed, err)))
					return nil
				}
				app.toast(cmd, notify.Success(s.Copied))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&doCopy, "copy", false, "Copy the report to the clipboard")
	return cmd
}

// findEntry resolves an entry by full ID or unique prefix.
func findEntry(entries []domain.HistoryEntry, id string) (domain.HistoryEntry, error) {
	var matches []domain.HistoryEntry
	for _, e := range entries {
		if e.ID == id {
			return e, nil
		}
		if strings.HasPrefix(e.ID, id) {
			matches = append(matches, e)
		}
	}
	switch len(matches) {
	case 0:
		return domain.HistoryEntry{}, fmt.Errorf("entry %q not found", id)
	case 1:
		return matches[0], nil
	}
	return domain.HistoryEntry{}, fmt.Errorf("entry prefix %q is ambiguous (%d matches)", id, len(matches))
}

func newHistoryClearCmd(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every saved entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s := app.labels(ctx)
			ok, err := app.confirm(yes, s.ConfirmClear)
			if err != nil || !ok {
				return err
			}
			res, err := app.History.ClearHistory(ctx)
			if err != nil {
				return err
			}
			app.toast(cmd, notify.Info(s.Cleared))
			app.warn(cmd, res.Warnings)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func newHistoryAnalyzeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze",
		Short: "Summarize the most recent entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var stop func()
			if app.interactive() {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Analyzing history...")
			}
			sum, err := app.History.Analyze(ctx)
			if stop != nil {
				stop()
			}
			if err != nil {
				return err
			}

			source := "model"
			if sum.Source == analysis.SourceDeterministic {
				source = "summary"
			}
			printLine(cmd, formatter.RenderBox(source, sum.Text))
			if sum.EntryCount > 0 {
				printLine(cmd, formatter.Dim(fmt.Sprintf("%d entries", sum.EntryCount)))
			}
			return nil
		},
	}
}
