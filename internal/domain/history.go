package domain

import (
	"cmp"
	"slices"
	"time"
)

// HistoryEntry is a finalized, dated snapshot of one domain's counts.
type HistoryEntry struct {
	ID      string    `json:"id"`
	Date    time.Time `json:"date"`
	Kind    Kind      `json:"type"`
	Summary string    `json:"summary"`

	// Counts is set for personnel and bikes.
	Counts CounterMap `json:"counts,omitempty"`

	// Room and Items are set for office.
	Room  string                 `json:"room,omitempty"`
	Items map[string]OfficeValue `json:"items,omitempty"`

	Images AttachmentSet `json:"images,omitempty"`
	Synced bool          `json:"synced"`
}

// ItemCount returns how many categories or items carry a value.
func (e HistoryEntry) ItemCount() int {
	if e.Kind == KindOffice {
		var n int
		for _, v := range e.Items {
			if !v.Empty {
				n++
			}
		}
		return n
	}
	var n int
	for _, v := range e.Counts {
		if v > 0 {
			n++
		}
	}
	return n
}

// Ledger is the ordered history, newest entry first.
type Ledger struct {
	Entries []HistoryEntry
}

// UpsertResult describes what an upsert did.
type UpsertResult struct {
	Entry    HistoryEntry
	Replaced bool
}

// UpsertForToday merges e into the ledger. For daily-singleton domains an
// existing entry of the same domain on e's calendar day is replaced in place
// and keeps its id. Everything else is prepended.
func (l *Ledger) UpsertForToday(e HistoryEntry, loc *time.Location) UpsertResult {
	if e.Kind.DailySingleton() {
		if i := l.indexForDay(e.Kind, e.Date, loc); i >= 0 {
			e.ID = l.Entries[i].ID
			l.Entries[i] = e
			return UpsertResult{Entry: e, Replaced: true}
		}
	}
	l.Prepend(e)
	return UpsertResult{Entry: e}
}

// Prepend inserts e as the newest entry.
func (l *Ledger) Prepend(e HistoryEntry) {
	l.Entries = slices.Insert(l.Entries, 0, e)
}

// MarkSynced sets the synced flag of the entry with id.
func (l *Ledger) MarkSynced(id string, synced bool) bool {
	i := slices.IndexFunc(l.Entries, func(x HistoryEntry) bool { return x.ID == id })
	if i < 0 {
		return false
	}
	l.Entries[i].Synced = synced
	return true
}

// Clear removes every entry.
func (l *Ledger) Clear() {
	l.Entries = nil
}

// Len returns the number of entries.
func (l *Ledger) Len() int {
	return len(l.Entries)
}

// FindForDay returns the entry of kind recorded on day's calendar day.
func (l *Ledger) FindForDay(kind Kind, day time.Time, loc *time.Location) (HistoryEntry, bool) {
	i := l.indexForDay(kind, day, loc)
	if i < 0 {
		return HistoryEntry{}, false
	}
	return l.Entries[i], true
}

func (l *Ledger) indexForDay(kind Kind, day time.Time, loc *time.Location) int {
	return slices.IndexFunc(l.Entries, func(x HistoryEntry) bool {
		return x.Kind == kind && SameCalendarDay(x.Date, day, loc)
	})
}

// Newest returns up to n entries sorted by date, newest first.
func (l *Ledger) Newest(n int) []HistoryEntry {
	sorted := l.SortedByDate()
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// SortedByDate returns a copy of the entries, newest first. Ties keep
// ledger order.
func (l *Ledger) SortedByDate() []HistoryEntry {
	out := slices.Clone(l.Entries)
	slices.SortStableFunc(out, func(a, b HistoryEntry) int {
		return b.Date.Compare(a.Date)
	})
	return out
}

// KindGroup is the entries of one domain within a day.
type KindGroup struct {
	Kind    Kind
	Entries []HistoryEntry
}

// DayGroup is the entries recorded on one calendar day.
type DayGroup struct {
	Day   string
	Kinds []KindGroup
}

// Group projects the ledger into day groups (newest day first), each split
// by domain in display order.
func (l *Ledger) Group(loc *time.Location) []DayGroup {
	byDay := make(map[string]map[Kind][]HistoryEntry)
	for _, e := range l.SortedByDate() {
		day := DayKey(e.Date, loc)
		if byDay[day] == nil {
			byDay[day] = make(map[Kind][]HistoryEntry)
		}
		byDay[day][e.Kind] = append(byDay[day][e.Kind], e)
	}

	days := make([]string, 0, len(byDay))
	for d := range byDay {
		days = append(days, d)
	}
	slices.SortFunc(days, func(a, b string) int { return cmp.Compare(b, a) })

	groups := make([]DayGroup, 0, len(days))
	for _, d := range days {
		g := DayGroup{Day: d}
		for _, k := range AllKinds {
			if entries := byDay[d][k]; len(entries) > 0 {
				g.Kinds = append(g.Kinds, KindGroup{Kind: k, Entries: entries})
			}
		}
		groups = append(groups, g)
	}
	return groups
}
