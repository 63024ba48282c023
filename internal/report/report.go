// Package report renders drafts and history entries as the plain text that
// is copied or shared.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/workstats/internal/domain"
)

// NoData is the body of a report with nothing to show.
const NoData = "No data"

// Counts renders a personnel or bikes draft: the date header, then one
// "label: value" line per non-zero category in catalog order.
func Counts(k domain.Kind, counts domain.CounterMap, date time.Time, lang domain.Language) string {
	s := For(lang)
	var b strings.Builder
	b.WriteString(date.Format(domain.ReportDateLayout))
	b.WriteByte('\n')

	var lines int
	for _, key := range domain.CategoriesFor(k) {
		if n := counts.Get(key); n > 0 {
			fmt.Fprintf(&b, "%s: %d\n", s.CategoryLabel(key), n)
			lines++
		}
	}
	if lines == 0 {
		b.WriteString(NoData)
	}
	return strings.TrimRight(b.String(), "\n")
}

// Office renders one room's items in display order, skipping empty values.
func Office(room string, items map[string]domain.OfficeValue, date time.Time, lang domain.Language) string {
	s := For(lang)
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s %s\n", date.Format(domain.ReportDateLayout), s.Room, room)

	var lines int
	for _, item := range domain.ItemsForRoom(room) {
		v, ok := items[item]
		if !ok || v.Empty {
			continue
		}
		fmt.Fprintf(&b, "%s: %d\n", item, v.N)
		lines++
	}
	if lines == 0 {
		b.WriteString(NoData)
	}
	return strings.TrimRight(b.String(), "\n")
}

// Entry renders a stored history entry the same way its draft was rendered.
func Entry(e domain.HistoryEntry, loc *time.Location, lang domain.Language) string {
	date := e.Date
	if loc != nil {
		date = date.In(loc)
	}
	if e.Kind == domain.KindOffice {
		return Office(e.Room, e.Items, date, lang)
	}
	return Counts(e.Kind, e.Counts, date, lang)
}
