package cli

import (
	"io"
	"os"
	"time"

	"github.com/alexanderramin/workstats/internal/app"
	"github.com/alexanderramin/workstats/internal/domain"
	"github.com/alexanderramin/workstats/internal/notify"
	"github.com/alexanderramin/workstats/internal/share"
	"github.com/spf13/cobra"
)

// Workspace is the full set of use cases the commands drive.
type Workspace interface {
	app.ColdStartUseCase
	app.CounterUseCase
	app.OfficeUseCase
	app.AttachmentUseCase
	app.SubmitUseCase
	app.HistoryUseCase
	app.SettingsUseCase
	app.IdentityUseCase
}

// App holds references to all use cases and outer adapters used by CLI
// commands.
type App struct {
	Start       app.ColdStartUseCase
	Counters    app.CounterUseCase
	Office      app.OfficeUseCase
	Attachments app.AttachmentUseCase
	Submit      app.SubmitUseCase
	History     app.HistoryUseCase
	Settings    app.SettingsUseCase
	Identity    app.IdentityUseCase

	Sharer   share.Sharer
	Copier   share.Copier
	Notifier notify.Notifier

	// Compress turns an image file into a stored attachment.
	Compress func(r io.Reader) (domain.Attachment, error)

	// IsInteractive reports whether prompts and the tally screen may run.
	IsInteractive func() bool

	Now      func() time.Time
	Location *time.Location
	Stdin    io.Reader
}

// NewApp wires every use case to one workspace.
func NewApp(ws Workspace) *App {
	return &App{
		Start:       ws,
		Counters:    ws,
		Office:      ws,
		Attachments: ws,
		Submit:      ws,
		History:     ws,
		Settings:    ws,
		Identity:    ws,
	}
}

// NewRootCmd creates the top-level "workstats" command and registers all
// subcommands against the provided App. The workspace cold start runs before
// any subcommand touches state.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "workstats",
		Short:         "Daily tallies for personnel, bikes and office supplies",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.coldStart(cmd)
		},
	}

	root.AddCommand(
		newCounterCmd(app, domain.KindPersonnel),
		newCounterCmd(app, domain.KindBikes),
		newOfficeCmd(app),
		newHistoryCmd(app),
		newSettingsCmd(app),
		newLoginCmd(app),
		newWhoamiCmd(app),
		newLogoutCmd(app),
		newTallyCmd(app),
	)

	return root
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) location() *time.Location {
	if a.Location != nil {
		return a.Location
	}
	return time.Local
}

func (a *App) stdin() io.Reader {
	if a.Stdin != nil {
		return a.Stdin
	}
	return os.Stdin
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}
