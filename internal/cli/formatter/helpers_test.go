package formatter

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/workstats/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ansiPattern matches ANSI escape sequences.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

var now = time.Date(2026, 3, 4, 15, 0, 0, 0, time.UTC)

func TestHumanDay(t *testing.T) {
	tests := []struct {
		name string
		day  string
		want string
	}{
		{"today", "2026-03-04", "Today"},
		{"yesterday", "2026-03-03", "Yesterday"},
		{"older", "2026-02-27", "27/02/2026"},
		{"garbage passes through", "soon", "soon"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HumanDay(tt.day, now, time.UTC))
		})
	}
}

func TestRelativeTimeFrom(t *testing.T) {
	assert.Equal(t, "3 hours ago", RelativeTimeFrom(now.Add(-3*time.Hour), now))
	assert.Equal(t, "2 days ago", RelativeTimeFrom(now.AddDate(0, 0, -2), now))
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "0 B", FormatBytes(0))
	assert.Equal(t, "84 kB", FormatBytes(84_000))
}

func TestFormatCountAndOfficeValue(t *testing.T) {
	assert.Equal(t, "1,250", stripANSI(FormatCount(1250)))
	assert.Equal(t, "0", stripANSI(FormatCount(0)))
	assert.Equal(t, "-", stripANSI(FormatOfficeValue(domain.Empty)))
	assert.Equal(t, "7", stripANSI(FormatOfficeValue(domain.Count(7))))
}

func TestTruncID(t *testing.T) {
	id := "a1b2c3d4-e5f6-7890-abcd-ef1234567890"
	got := TruncID(id)
	assert.Contains(t, got, "a1b2c3d4")
	assert.NotContains(t, got, "e5f6")

	got = TruncID("short")
	assert.Contains(t, got, "short")
}

func TestRenderBox(t *testing.T) {
	result := RenderBox("TEST", "content here")
	assert.Contains(t, result, "TEST")
	assert.Contains(t, result, "content here")
	assert.Contains(t, result, "╭")
	assert.Contains(t, result, "╰")
}

func TestRenderBoxWithoutTitle(t *testing.T) {
	result := RenderBox("", "just content")
	assert.Contains(t, result, "just content")
	assert.Contains(t, result, "╭")
}

func TestRenderTableAligned_RightAlignsNumbers(t *testing.T) {
	out := stripANSI(RenderTableAligned(
		[]string{"NAME", "N"},
		[][]string{{"a", "5"}, {"bb", "120"}},
		[]bool{false, true},
	))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "a       5", lines[2])
	assert.Equal(t, "bb    120", lines[3])
}

func TestRenderFill(t *testing.T) {
	assert.Equal(t, "████░░░░ 10/20", stripANSI(RenderFill(10, 20, 8)))
	assert.Equal(t, "████████ 30/20", stripANSI(RenderFill(30, 20, 8)))
	assert.Equal(t, "░░", stripANSI(RenderFill(1, 0, 1)))
}
