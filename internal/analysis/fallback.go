package analysis

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/alexanderramin/workstats/internal/domain"
	"github.com/alexanderramin/workstats/internal/report"
)

// Deterministic builds a per-domain summary straight from the entries
// without using a model. Used when the model is disabled or fails.
func Deterministic(entries []domain.HistoryEntry, lang domain.Language, loc *time.Location) *Summary {
	s := report.For(lang)
	if len(entries) == 0 {
		return &Summary{Text: s.NoHistory, Source: SourceDeterministic}
	}

	byKind := make(map[domain.Kind][]domain.HistoryEntry)
	var unsynced int
	for _, e := range entries {
		byKind[e.Kind] = append(byKind[e.Kind], e)
		if !e.Synced {
			unsynced++
		}
	}

	var lines []string
	for _, k := range domain.AllKinds {
		group := byKind[k]
		if len(group) == 0 {
			continue
		}
		lines = append(lines, kindLine(s, k, group, loc))
	}
	lines = append(lines, fmt.Sprintf("%s: %d/%d", s.Local, unsynced, len(entries)))

	return &Summary{
		Text:       strings.Join(lines, "\n"),
		Source:     SourceDeterministic,
		EntryCount: len(entries),
	}
}

func kindLine(s report.Strings, k domain.Kind, group []domain.HistoryEntry, loc *time.Location) string {
	first, last := group[len(group)-1].Date, group[0].Date
	span := domain.DayKey(first, loc)
	if !domain.SameCalendarDay(first, last, loc) {
		span += ".." + domain.DayKey(last, loc)
	}

	if k == domain.KindOffice {
		rooms := make(map[string]int)
		for _, e := range group {
			rooms[e.Room] += e.ItemCount()
		}
		return fmt.Sprintf("%s [%s] ×%d, %s %s: %d %s",
			s.Office, span, len(group), s.Room, strings.Join(slices.Sorted(maps.Keys(rooms)), ", "),
			sumValues(rooms), s.Items)
	}

	totals, peaks := domain.CounterMap{}, domain.CounterMap{}
	for _, e := range group {
		for key, n := range e.Counts {
			totals.Increment(key, n)
			if n > peaks[key] {
				peaks[key] = n
			}
		}
	}
	line := fmt.Sprintf("%s [%s] ×%d, Σ %d", s.KindLabel(k), span, len(group), totals.Total())
	// max is the highest value any single entry recorded.
	if key, n, ok := topCategory(peaks); ok {
		line += fmt.Sprintf(", max %s %d", s.CategoryLabel(key), n)
	}
	return line
}

func topCategory(m domain.CounterMap) (string, int, bool) {
	keys := slices.SortedFunc(maps.Keys(m), func(a, b string) int {
		if c := cmp.Compare(m[b], m[a]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	if len(keys) == 0 || m[keys[0]] == 0 {
		return "", 0, false
	}
	return keys[0], m[keys[0]], true
}

func sumValues(m map[string]int) int {
	var n int
	for _, v := range m {
		n += v
	}
	return n
}
