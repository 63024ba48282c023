package formatter

import (
	"strings"
	"time"

	"github.com/alexanderramin/workstats/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + strings.TrimRight(content, "\n"))
	}

	return boxStyle.Render(strings.TrimRight(content, "\n"))
}

// RelativeTimeFrom returns a human-friendly age such as "3 hours ago".
func RelativeTimeFrom(t, now time.Time) string {
	return humanize.RelTime(t, now, "ago", "from now")
}

// HumanDay returns "Today", "Yesterday" or a DD/MM/YYYY date for a day key
// (YYYY-MM-DD) relative to now in loc.
func HumanDay(dayKey string, now time.Time, loc *time.Location) string {
	if dayKey == domain.DayKey(now, loc) {
		return "Today"
	}
	if dayKey == domain.DayKey(now.AddDate(0, 0, -1), loc) {
		return "Yesterday"
	}
	d, err := time.ParseInLocation("2006-01-02", dayKey, loc)
	if err != nil {
		return dayKey
	}
	return d.Format(domain.ReportDateLayout)
}

// ClockTime returns HH:MM in loc.
func ClockTime(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format("15:04")
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatBytes renders a byte count such as "84 kB".
func FormatBytes(n int) string {
	if n <= 0 {
		return "0 B"
	}
	return humanize.Bytes(uint64(n))
}

// FormatCount renders a counter value; zero is dimmed.
func FormatCount(n int) string {
	if n == 0 {
		return Dim("0")
	}
	return StyleBold.Render(humanize.Comma(int64(n)))
}

// FormatOfficeValue renders an office value; the empty sentinel is dimmed.
func FormatOfficeValue(v domain.OfficeValue) string {
	if v.Empty {
		return Dim(domain.EmptyMark)
	}
	return StyleBold.Render(v.String())
}
