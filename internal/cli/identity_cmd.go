package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/workstats/internal/cli/formatter"
	"github.com/alexanderramin/workstats/internal/domain"
	"github.com/alexanderramin/workstats/internal/notify"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *App) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store the identity posted by the login widget",
		Long: "Reads the widget's user JSON from --file or stdin. The assertion is\n" +
			"stored as-is; its hash is not verified.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var r io.Reader = app.stdin()
			if file != "" {
				f, err := os.Open(file)
				if err != nil {
					return fmt.Errorf("opening %s: %w", file, err)
				}
				defer f.Close()
				r = f
			}

			id, err := decodeIdentity(r)
			if err != nil {
				return err
			}
			if err := app.Identity.Login(ctx, id); err != nil {
				return err
			}
			app.toast(cmd, notify.Success(fmt.Sprintf("Signed in as %s", id.DisplayName())))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the identity JSON from a file")
	return cmd
}

func decodeIdentity(r io.Reader) (domain.Identity, error) {
	var id domain.Identity
	if err := json.NewDecoder(r).Decode(&id); err != nil {
		return domain.Identity{}, fmt.Errorf("decoding identity: %w", err)
	}
	if id.ID == 0 || id.DisplayName() == "" {
		return domain.Identity{}, errors.New("identity must carry an id and a name")
	}
	return id, nil
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in identity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := app.Identity.Whoami(cmd.Context())
			if err != nil {
				return err
			}
			if id == nil {
				printLine(cmd, formatter.Dim("Not signed in."))
				return nil
			}
			printf(cmd, "%s", formatter.FormatIdentity(*id))
			return nil
		},
	}
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored identity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Identity.Logout(cmd.Context()); err != nil {
				return err
			}
			app.toast(cmd, notify.Info("Signed out"))
			return nil
		},
	}
}
