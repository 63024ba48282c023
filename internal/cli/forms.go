package cli

import (
	"errors"
	"strconv"

	"github.com/alexanderramin/workstats/internal/cli/formatter"
	"github.com/alexanderramin/workstats/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// errConfirmRequired is returned by destructive commands run without a
// terminal and without --yes.
var errConfirmRequired = errors.New("confirmation required: pass --yes")

func workstatsHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// confirm asks a yes/no question. --yes skips the prompt; without a
// terminal the answer cannot be collected and errConfirmRequired is returned.
func (a *App) confirm(yes bool, title string) (bool, error) {
	if yes {
		return true, nil
	}
	if !a.interactive() {
		return false, errConfirmRequired
	}
	var ok bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	).WithTheme(workstatsHuhTheme()).WithShowHelp(false).Run()
	return ok, err
}

// officeValueOptions mirrors the entry grid: the empty sentinel followed by
// every non-zero value of the item's range.
func officeValueOptions(item string) []huh.Option[string] {
	opts := []huh.Option[string]{huh.NewOption(domain.EmptyMark, domain.EmptyMark)}
	for _, n := range domain.RangeFor(item).Choices() {
		s := strconv.Itoa(n)
		opts = append(opts, huh.NewOption(s, s))
	}
	return opts
}

// selectOfficeValue prompts for an office value from the item's grid.
func selectOfficeValue(room, item string) (string, error) {
	var value string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(item).
				Description("Room " + room).
				Options(officeValueOptions(item)...).
				Value(&value),
		),
	).WithTheme(workstatsHuhTheme()).WithShowHelp(false).Run()
	return value, err
}
