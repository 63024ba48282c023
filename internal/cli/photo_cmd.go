package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/workstats/internal/cli/formatter"
	"github.com/alexanderramin/workstats/internal/domain"
	"github.com/alexanderramin/workstats/internal/imaging"
	"github.com/alexanderramin/workstats/internal/notify"
	"github.com/spf13/cobra"
)

func newPhotoCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "photo",
		Short: "Manage photos attached to today's bikes entry",
	}

	cmd.AddCommand(
		newPhotoAddCmd(app),
		newPhotoListCmd(app),
		newPhotoRemoveCmd(app),
		newPhotoClearCmd(app),
	)

	return cmd
}

func newPhotoAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add FILE...",
		Short: "Compress and attach one or more images",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			compress := app.Compress
			if compress == nil {
				compress = imaging.Compress
			}

			for _, path := range args {
				a, err := compressFile(compress, path)
				if err != nil {
					return err
				}
				res, err := app.Attachments.AttachImage(ctx, a)
				if err != nil {
					return err
				}
				printf(cmd, "Attached %s (%s)\n", path, formatter.FormatBytes(len(a.Data)))
				app.warn(cmd, res.Warnings)
			}
			return nil
		},
	}
}

func compressFile(compress func(r io.Reader) (domain.Attachment, error), path string) (domain.Attachment, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Attachment{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	a, err := compress(f)
	if err != nil {
		return domain.Attachment{}, fmt.Errorf("compressing %s: %w", path, err)
	}
	return a, nil
}

func newPhotoListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List attached photos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := app.Attachments.Images(cmd.Context())
			if err != nil {
				return err
			}
			printf(cmd, "%s", formatter.FormatImages(set))
			return nil
		},
	}
}

func newPhotoRemoveCmd(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "rm N",
		Short: "Remove the photo at position N",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			idx, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			ok, err := app.confirm(yes, fmt.Sprintf("Remove photo %s?", args[0]))
			if err != nil || !ok {
				return err
			}
			res, err := app.Attachments.RemoveImage(ctx, idx)
			if err != nil {
				return err
			}
			app.toast(cmd, notify.Info(fmt.Sprintf("Removed photo %s", args[0])))
			app.warn(cmd, res.Warnings)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func newPhotoClearCmd(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every attached photo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s := app.labels(ctx)
			ok, err := app.confirm(yes, s.ConfirmClear)
			if err != nil || !ok {
				return err
			}
			res, err := app.Attachments.ClearImages(ctx)
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
