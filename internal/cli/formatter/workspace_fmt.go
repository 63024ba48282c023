package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/workstats/internal/domain"
	"github.com/alexanderramin/workstats/internal/report"
)

const fillWidth = 8

// FormatCounts renders every catalog category of a counting domain with its
// 1-based index, so commands can address categories by number.
func FormatCounts(k domain.Kind, counts domain.CounterMap, lang domain.Language) string {
	s := report.For(lang)
	cats := domain.CategoriesFor(k)
	rows := make([][]string, 0, len(cats))
	for i, key := range cats {
		rows = append(rows, []string{
			Dim(strconv.Itoa(i + 1)),
			s.CategoryLabel(key),
			FormatCount(counts.Get(key)),
		})
	}

	var b strings.Builder
	b.WriteString(RenderTableAligned([]string{"#", "CATEGORY", "COUNT"}, rows, []bool{true, false, true}))
	fmt.Fprintf(&b, "\n%s %s", Dim("Σ"), Bold(strconv.Itoa(counts.Total())))
	return RenderBox(s.KindLabel(k), b.String())
}

// FormatRoom renders the items a room exposes with their value and how far
// it reaches into the item's range.
func FormatRoom(room string, items map[string]domain.OfficeValue, lang domain.Language) string {
	s := report.For(lang)
	rows := make([][]string, 0, len(domain.ItemsForRoom(room)))
	for _, item := range domain.ItemsForRoom(room) {
		v, ok := items[item]
		r := domain.RangeFor(item)
		fill := Dim(fmt.Sprintf("0-%d", r.Max))
		if ok && !v.Empty {
			fill = RenderFill(v.N, r.Max, fillWidth)
		}
		value := Dim("·")
		if ok {
			value = FormatOfficeValue(v)
		}
		rows = append(rows, []string{item, value, fill})
	}
	title := fmt.Sprintf("%s %s", s.Room, room)
	if domain.IsLimitedRoom(room) {
		title += " (limited)"
	}
	return RenderBox(title, RenderTableAligned([]string{"ITEM", "VALUE", "RANGE"}, rows, []bool{false, true, false}))
}

// FormatRooms lists every office room with the number of recorded items.
func FormatRooms(office domain.OfficeMap, lang domain.Language) string {
	s := report.For(lang)
	rows := make([][]string, 0, len(domain.OfficeRooms))
	for _, room := range domain.OfficeRooms {
		recorded := len(office[room])
		count := Dim("-")
		if recorded > 0 {
			count = StyleGreen.Render(fmt.Sprintf("%d %s", recorded, s.Items))
		}
		kind := Dim("full")
		if domain.IsLimitedRoom(room) {
			kind = StyleYellow.Render("limited")
		}
		rows = append(rows, []string{room, kind, count})
	}
	return RenderBox(s.Office, RenderTable([]string{strings.ToUpper(s.Room), "ITEMS", "RECORDED"}, rows))
}

// FormatHistory renders the ledger grouped by day, then domain.
func FormatHistory(groups []domain.DayGroup, lang domain.Language, now time.Time, loc *time.Location) string {
	s := report.For(lang)
	if len(groups) == 0 {
		return Dim(s.NoHistory) + "\n"
	}

	var b strings.Builder
	for gi, g := range groups {
		if gi > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Header(HumanDay(g.Day, now, loc)))
		b.WriteString("\n")
		for _, kg := range g.Kinds {
			b.WriteString(KindColor(kg.Kind).Bold(true).Render(s.KindLabel(kg.Kind)))
			b.WriteString("\n")
			for _, e := range kg.Entries {
				b.WriteString(historyLine(s, e, now, loc))
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}

func historyLine(s report.Strings, e domain.HistoryEntry, now time.Time, loc *time.Location) string {
	parts := []string{
		"  " + Dim(ClockTime(e.Date, loc)),
		StyleFg.Render(e.Summary),
		fmt.Sprintf("%d %s", e.ItemCount(), s.Items),
		SyncIndicator(e.Synced, s.Synced, s.Local),
	}
	if n := len(e.Images); n > 0 {
		parts = append(parts, Dim(fmt.Sprintf("photos %d (%s)", n, FormatBytes(e.Images.Size()))))
	}
	parts = append(parts, Dim(RelativeTimeFrom(e.Date, now)), TruncID(e.ID))
	return strings.Join(parts, "  ")
}

// FormatImages lists the bike photo draft.
func FormatImages(set domain.AttachmentSet) string {
	if len(set) == 0 {
		return Dim("No photos attached.") + "\n"
	}
	rows := make([][]string, 0, len(set))
	for i, a := range set {
		rows = append(rows, []string{Dim(strconv.Itoa(i + 1)), a.MIME, FormatBytes(len(a.Data))})
	}
	out := RenderTableAligned([]string{"#", "TYPE", "SIZE"}, rows, []bool{true, false, true})
	return out + fmt.Sprintf("%s %s\n", Dim("total"), FormatBytes(set.Size()))
}

// FormatSettings renders the preferences and the signed-in identity.
func FormatSettings(st domain.Settings, id *domain.Identity, lang domain.Language) string {
	s := report.For(lang)
	webhook := Dim("not set")
	if st.HasWebhook() {
		webhook = st.WebhookURL
	}
	onOff := func(b bool) string {
		if b {
			return StyleGreen.Render("on")
		}
		return Dim("off")
	}
	user := Dim("signed out")
	if id != nil {
		user = id.DisplayName()
	}
	rows := [][]string{
		{s.Language, string(st.Language)},
		{s.DarkTheme, onOff(st.Theme == domain.ThemeDark)},
		{s.Vibration, onOff(st.Vibration)},
		{s.Webhook, webhook},
		{"User", user},
	}
	return RenderBox(s.Settings, RenderTable([]string{"SETTING", "VALUE"}, rows))
}

// FormatIdentity renders the stored identity assertion.
func FormatIdentity(id domain.Identity) string {
	rows := [][]string{
		{"name", id.DisplayName()},
		{"id", strconv.FormatInt(id.ID, 10)},
	}
	if id.Username != "" {
		rows = append(rows, []string{"username", "@" + id.Username})
	}
	if id.AuthDate > 0 {
		rows = append(rows, []string{"issued", id.IssuedAt().UTC().Format(time.RFC3339)})
	}
	return RenderTable([]string{"FIELD", "VALUE"}, rows)
}
