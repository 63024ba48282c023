// Package notify shows short confirmation toasts in the terminal and,
// optionally, as desktop notifications.
package notify

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/gen2brain/beeep"
)

// ToastDuration is how long an interactive toast stays visible.
const ToastDuration = 2500 * time.Millisecond

// Level is the tone of a toast.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// Toast is one short message.
type Toast struct {
	Level   Level
	Message string
}

// Success builds a success toast.
func Success(msg string) Toast { return Toast{Level: LevelSuccess, Message: msg} }

// Error builds an error toast.
func Error(msg string) Toast { return Toast{Level: LevelError, Message: msg} }

// Info builds an informational toast.
func Info(msg string) Toast { return Toast{Level: LevelInfo, Message: msg} }

// Notifier displays toasts.
type Notifier interface {
	Notify(t Toast) error
}

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A3BE8C")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#BF616A")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#88C0D0"))
)

// Render formats a toast as a single styled line.
func Render(t Toast) string {
	switch t.Level {
	case LevelSuccess:
		return successStyle.Render("✓ " + t.Message)
	case LevelError:
		return errorStyle.Render("✗ " + t.Message)
	}
	return infoStyle.Render("• " + t.Message)
}

// TerminalNotifier prints toasts to a writer.
type TerminalNotifier struct {
	W io.Writer
}

func (n TerminalNotifier) Notify(t Toast) error {
	_, err := fmt.Fprintln(n.W, Render(t))
	return err
}

// DesktopNotifier raises a desktop notification per toast. Errors use an
// alert so they stay on screen.
type DesktopNotifier struct {
	Title  string
	notify func(title, message string) error
	alert  func(title, message string) error
}

// NewDesktopNotifier creates a DesktopNotifier using the OS notification
// service.
func NewDesktopNotifier(title string) *DesktopNotifier {
	return &DesktopNotifier{
		Title:  title,
		notify: func(t, m string) error { return beeep.Notify(t, m, "") },
		alert:  func(t, m string) error { return beeep.Alert(t, m, "") },
	}
}

func (n *DesktopNotifier) Notify(t Toast) error {
	send := n.notify
	if t.Level == LevelError {
		send = n.alert
	}
	if err := send(n.Title, t.Message); err != nil {
		return fmt.Errorf("desktop notification: %w", err)
	}
	return nil
}

// Multi fans a toast out to every notifier and returns the first error.
type Multi []Notifier

func (m Multi) Notify(t Toast) error {
	var first error
	for _, n := range m {
		if n == nil {
			continue
		}
		if err := n.Notify(t); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Bell rings the terminal bell, standing in for haptic feedback.
func Bell(w io.Writer) {
	_, _ = io.WriteString(w, "\a")
}
