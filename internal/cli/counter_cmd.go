package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/workstats/internal/cli/formatter"
	"github.com/alexanderramin/workstats/internal/domain"
	"github.com/alexanderramin/workstats/internal/notify"
	"github.com/alexanderramin/workstats/internal/share"
	"github.com/spf13/cobra"
)

func newCounterCmd(app *App, k domain.Kind) *cobra.Command {
	short := "Count personnel per zone and parking"
	if k == domain.KindBikes {
		short = "Count bikes per category"
	}
	cmd := &cobra.Command{
		Use:   string(k),
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showCounts(cmd, app, k)
		},
	}

	cmd.AddCommand(
		newAdjustCmd(app, k, "add", "Add to a category", 1),
		newAdjustCmd(app, k, "sub", "Subtract from a category, never below zero", -1),
		&cobra.Command{
			Use:   "show",
			Short: "Show the current draft",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return showCounts(cmd, app, k)
			},
		},
		newClearDraftCmd(app, k),
		newCopyCmd(app, k),
		newShareCmd(app, k),
	)
	if k == domain.KindBikes {
		cmd.AddCommand(newPhotoCmd(app))
	}

	return cmd
}

func showCounts(cmd *cobra.Command, app *App, k domain.Kind) error {
	ctx := cmd.Context()
	counts, err := app.Counters.Counts(ctx, k)
	if err != nil {
		return err
	}
	printLine(cmd, formatter.FormatCounts(k, counts, app.language(ctx)))
	return nil
}

func newAdjustCmd(app *App, k domain.Kind, use, short string, sign int) *cobra.Command {
	return &cobra.Command{
		Use:   use + " CATEGORY [N]",
		Short: short,
		Long: "CATEGORY is a catalog key, its label or its number from \"show\".\n" +
			"N defaults to 1.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			key, err := resolveCategory(k, args[0])
			if err != nil {
				return err
			}
			n := 1
			if len(args) == 2 {
				n, err = strconv.Atoi(args[1])
				if err != nil || n < 1 {
					return fmt.Errorf("amount %q must be a positive integer", args[1])
				}
			}

			res, err := app.Counters.Adjust(ctx, k, key, sign*n)
			if err != nil {
				return err
			}
			printf(cmd, "%s: %s\n", app.labels(ctx).CategoryLabel(key), formatter.Bold(strconv.Itoa(res.Value)))
			app.warn(cmd, res.Warnings)
			return nil
		},
	}
}

func newClearDraftCmd(app *App, k domain.Kind) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Reset the draft to zero",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s := app.labels(ctx)
			ok, err := app.confirm(yes, s.ConfirmClear)
			if err != nil || !ok {
				return err
			}
			res, err := app.Counters.ClearDraft(ctx, k)
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

func newCopyCmd(app *App, k domain.Kind) *cobra.Command {
	return &cobra.Command{
		Use:   "copy",
		Short: "Save today's entry and copy the report to the clipboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			res, err := app.Submit.Submit(ctx, k)
			if err != nil {
				return err
			}
			printLine(cmd, res.Report)
			app.reportSubmit(cmd, res)

			s := app.labels(ctx)
			if app.Copier == nil {
				app.toast(cmd, notify.Error(s.CopyFailed))
				return nil
			}
			if err := app.Copier.Copy(res.Report); err != nil {
				app.toast(cmd, notify.Error(fmt.Sprintf("%s: %v", s.CopyFailed, err)))
				return nil
			}
			app.toast(cmd, notify.Success(s.Copied))
			return nil
		},
	}
}

func newShareCmd(app *App, k domain.Kind) *cobra.Command {
	return &cobra.Command{
		Use:   "share",
		Short: "Save today's entry and share the report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			res, err := app.Submit.Submit(ctx, k)
			if err != nil {
				return err
			}
			printLine(cmd, res.Report)
			app.reportSubmit(cmd, res)

			content := shareContent(res.Entry, res.Report)
			if content.Title == "" {
				content.Title = app.labels(ctx).Summary(k, "")
			}
			shareReport(cmd, app, content)
			return nil
		},
	}
}

// shareReport hands content to the sharer. Failures are toasts; the entry
// is already committed.
func shareReport(cmd *cobra.Command, app *App, c share.Content) {
	s := app.labels(cmd.Context())
	sharer := app.Sharer
	if sharer == nil {
		sharer = share.FallbackSharer{Copier: app.Copier}
	}
	out, err := sharer.Share(cmd.Context(), c)
	if err != nil {
		app.toast(cmd, notify.Error(fmt.Sprintf("%s: %v", s.CopyFailed, err)))
		return
	}
	switch out.Method {
	case share.MethodClipboard:
		app.toast(cmd, notify.Success(s.Copied))
	default:
		app.toast(cmd, notify.Success(fmt.Sprintf("%s: %s", s.Shared, out.Location)))
	}
}

func shareContent(e *domain.HistoryEntry, text string) share.Content {
	c := share.Content{Text: text}
	if e != nil {
		c.Title = e.Summary
		c.Files = e.Images
	}
	return c
}
