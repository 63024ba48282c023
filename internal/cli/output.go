package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/workstats/internal/app"
	"github.com/alexanderramin/workstats/internal/domain"
	"github.com/alexanderramin/workstats/internal/notify"
	"github.com/alexanderramin/workstats/internal/report"
	"github.com/spf13/cobra"
)

func (a *App) coldStart(cmd *cobra.Command) error {
	if a.Start == nil {
		return nil
	}
	res, err := a.Start.ColdStart(cmd.Context())
	if err != nil {
		return fmt.Errorf("opening workspace: %w", err)
	}
	a.warn(cmd, res.Warnings)
	return nil
}

// toast prints t to the command output and forwards it to the configured
// notifier. Notifier failures are ignored.
func (a *App) toast(cmd *cobra.Command, t notify.Toast) {
	_ = notify.TerminalNotifier{W: cmd.OutOrStdout()}.Notify(t)
	if a.Notifier != nil {
		_ = a.Notifier.Notify(t)
	}
}

// warn turns persistence warnings into error toasts. The edit itself has
// already been applied in memory.
func (a *App) warn(cmd *cobra.Command, warnings []error) {
	if len(warnings) == 0 {
		return
	}
	s := a.labels(cmd.Context())
	for _, w := range warnings {
		a.toast(cmd, notify.Error(fmt.Sprintf("%s: %v", s.SaveError, w)))
	}
}

func (a *App) language(ctx context.Context) domain.Language {
	if a.Settings == nil {
		return domain.DefaultSettings().Language
	}
	st, err := a.Settings.Settings(ctx)
	if err != nil {
		return domain.DefaultSettings().Language
	}
	return st.Language
}

func (a *App) labels(ctx context.Context) report.Strings {
	return report.For(a.language(ctx))
}

// reportSubmit prints the toasts that follow a submit: the sync outcome and
// any persistence warnings.
func (a *App) reportSubmit(cmd *cobra.Command, res *app.SubmitResult) {
	s := a.labels(cmd.Context())
	switch {
	case res.Sync.Attempted && !res.Sync.Sent:
		a.toast(cmd, notify.Error(s.SyncFailed))
	case res.Sync.Sent:
		a.toast(cmd, notify.Success(s.Synced))
	case res.Saved():
		a.toast(cmd, notify.Success(s.Success))
	}
	a.warn(cmd, res.Warnings)
}

func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}

func printLine(cmd *cobra.Command, s string) {
	fmt.Fprintln(cmd.OutOrStdout(), s)
}
