package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/alexanderramin/workstats/internal/cli/formatter"
	"github.com/alexanderramin/workstats/internal/domain"
	"github.com/alexanderramin/workstats/internal/notify"
	"github.com/alexanderramin/workstats/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// enumFlag is a pflag.Value restricted to a fixed set of choices.
type enumFlag struct {
	choices []string
	value   string
	set     bool
}

var _ pflag.Value = (*enumFlag)(nil)

func newEnumFlag(choices ...string) *enumFlag {
	return &enumFlag{choices: choices}
}

func (f *enumFlag) String() string { return f.value }

func (f *enumFlag) Type() string { return strings.Join(f.choices, "|") }

func (f *enumFlag) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if !slices.Contains(f.choices, s) {
		return fmt.Errorf("must be one of %s", strings.Join(f.choices, ", "))
	}
	f.value, f.set = s, true
	return nil
}

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showSettings(cmd, app)
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show preferences",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return showSettings(cmd, app)
			},
		},
		newSettingsSetCmd(app),
	)

	return cmd
}

func showSettings(cmd *cobra.Command, app *App) error {
	ctx := cmd.Context()
	st, err := app.Settings.Settings(ctx)
	if err != nil {
		return err
	}
	var id *domain.Identity
	if app.Identity != nil {
		id, err = app.Identity.Whoami(ctx)
		if err != nil {
			return err
		}
	}
	printLine(cmd, formatter.FormatSettings(st, id, st.Language))
	return nil
}

func newSettingsSetCmd(app *App) *cobra.Command {
	lang := newEnumFlag(string(domain.LangUA), string(domain.LangEN), string(domain.LangNL))
	theme := newEnumFlag(string(domain.ThemeDark), string(domain.ThemeLight))
	var vibration bool
	var webhook string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change one or more preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var p domain.SettingsPatch
			if lang.set {
				l := domain.Language(lang.value)
				p.Language = &l
			}
			if theme.set {
				t := domain.Theme(theme.value)
				p.Theme = &t
			}
			if cmd.Flags().Changed("vibration") {
				p.Vibration = &vibration
			}
			if cmd.Flags().Changed("webhook") {
				w := strings.TrimSpace(webhook)
				p.WebhookURL = &w
			}
			if p == (domain.SettingsPatch{}) {
				return fmt.Errorf("nothing to change; see --help")
			}

			st, warnings, err := app.Settings.UpdateSettings(ctx, p)
			if err != nil {
				return err
			}
			app.warn(cmd, warnings)
			app.toast(cmd, notify.Success(report.For(st.Language).Success))
			return nil
		},
	}

	cmd.Flags().Var(lang, "language", "Interface and report language")
	cmd.Flags().Var(theme, "theme", "Color theme")
	cmd.Flags().BoolVar(&vibration, "vibration", true, "Ring the terminal bell on every tally")
	cmd.Flags().StringVar(&webhook, "webhook", "", "Webhook URL for remote sync (empty disables)")

	return cmd
}
