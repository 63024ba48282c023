package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/workstats/internal/cli/formatter"
	"github.com/alexanderramin/workstats/internal/domain"
	"github.com/alexanderramin/workstats/internal/notify"
	"github.com/spf13/cobra"
)

func newOfficeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "office",
		Short: "Weekly office supply log per room",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showRooms(cmd, app)
		},
	}

	cmd.AddCommand(
		newOfficeSetCmd(app),
		newOfficeShowCmd(app),
		&cobra.Command{
			Use:   "rooms",
			Short: "List rooms and how many items each has recorded",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return showRooms(cmd, app)
			},
		},
		newOfficeSyncCmd(app),
		newClearDraftCmd(app, domain.KindOffice),
	)

	return cmd
}

func showRooms(cmd *cobra.Command, app *App) error {
	ctx := cmd.Context()
	office, err := app.Office.Office(ctx)
	if err != nil {
		return err
	}
	printLine(cmd, formatter.FormatRooms(office, app.language(ctx)))
	return nil
}

func newOfficeSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set ROOM ITEM [VALUE]",
		Short: "Record an item value for a room",
		Long: "VALUE is a number inside the item's range or \"-\" for empty.\n" +
			"Without VALUE an interactive picker offers the item's grid.",
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			room, err := resolveRoom(args[0])
			if err != nil {
				return err
			}
			item, err := resolveOfficeItem(args[1])
			if err != nil {
				return err
			}

			var raw string
			switch {
			case len(args) == 3:
				raw = args[2]
			case app.interactive():
				if raw, err = selectOfficeValue(room, item); err != nil {
					return err
				}
			default:
				return errors.New("VALUE is required without a terminal")
			}
			v, err := domain.ParseOfficeValue(raw)
			if err != nil {
				return err
			}

			res, err := app.Office.SetOffice(ctx, room, item, v)
			if err != nil {
				return err
			}
			if !res.Written {
				app.toast(cmd, notify.Info(fmt.Sprintf("%s is not used in room %s", item, room)))
				return nil
			}
			printf(cmd, "%s %s: %s = %s\n", app.labels(ctx).Room, room, item, formatter.FormatOfficeValue(v))
			app.warn(cmd, res.Warnings)
			return nil
		},
	}
}

func newOfficeShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [ROOM]",
		Short: "Show one room, or every room when omitted",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return showRooms(cmd, app)
			}
			ctx := cmd.Context()
			room, err := resolveRoom(args[0])
			if err != nil {
				return err
			}
			office, err := app.Office.Office(ctx)
			if err != nil {
				return err
			}
			printLine(cmd, formatter.FormatRoom(room, office.Room(room), app.language(ctx)))
			return nil
		},
	}
}

func newOfficeSyncCmd(app *App) *cobra.Command {
	var doShare bool
	cmd := &cobra.Command{
		Use:   "sync ROOM",
		Short: "Send one room's values and save them to history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			room, err := resolveRoom(args[0])
			if err != nil {
				return err
			}
			res, err := app.Submit.SyncOffice(ctx, room)
			if errors.Is(err, domain.ErrNoRoomData) {
				app.toast(cmd, notify.Error(app.labels(ctx).NoRoomData))
				return err
			}
			if err != nil {
				return err
			}
			printLine(cmd, res.Report)
			app.reportSubmit(cmd, res)
			if doShare {
				shareReport(cmd, app, shareContent(res.Entry, res.Report))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&doShare, "share", false, "Also share the report")
	return cmd
}
