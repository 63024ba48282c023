package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/workstats/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatCounts_ListsCatalogWithIndexes(t *testing.T) {
	out := stripANSI(FormatCounts(domain.KindPersonnel,
		domain.CounterMap{"Zone 230": 4, domain.ParkingKey: 2}, domain.LangEN))

	assert.Contains(t, out, "PERSONNEL")
	assert.Contains(t, out, "Zone 220")
	assert.Contains(t, out, "Total Parking")
	assert.Contains(t, out, "8  Total Parking")
	assert.Contains(t, out, "Σ 6")
}

func TestFormatRoom_LimitedRoomShowsLimitedItems(t *testing.T) {
	out := stripANSI(FormatRoom("20", map[string]domain.OfficeValue{
		"EK 13": domain.Count(1),
		"EK 14": domain.Empty,
	}, domain.LangEN))

	assert.Contains(t, out, "ROOM 20 (LIMITED)")
	assert.Contains(t, out, "EK 13")
	assert.NotContains(t, out, "EK 1 ")
	assert.Contains(t, out, "1/1")
	assert.Contains(t, out, "EK 14")
}

func TestFormatRooms_CountsRecordedItems(t *testing.T) {
	office := domain.OfficeMap{}
	office.Set("162", "EK 7 A", domain.Count(4))
	office.Set("162", "EK 1", domain.Empty)

	out := stripANSI(FormatRooms(office, domain.LangEN))
	assert.Contains(t, out, "2 items")
	assert.Contains(t, out, "limited")
}

func TestFormatHistory(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "No history yet\n", stripANSI(FormatHistory(nil, domain.LangEN, now, time.UTC)))
	})

	t.Run("grouped", func(t *testing.T) {
		ledger := domain.Ledger{}
		ledger.Prepend(domain.HistoryEntry{
			ID: "11111111-aaaa", Date: now.AddDate(0, 0, -1), Kind: domain.KindPersonnel,
			Summary: "Personnel & Cars", Counts: domain.CounterMap{"Zone 220": 3},
		})
		ledger.Prepend(domain.HistoryEntry{
			ID: "22222222-bbbb", Date: now.Add(-2 * time.Hour), Kind: domain.KindBikes,
			Summary: "Bikes", Counts: domain.CounterMap{"MPA": 1}, Synced: true,
			Images: domain.AttachmentSet{{MIME: "image/jpeg", Data: make([]byte, 2000)}},
		})

		out := stripANSI(FormatHistory(ledger.Group(time.UTC), domain.LangEN, now, time.UTC))
		assert.Contains(t, out, "TODAY")
		assert.Contains(t, out, "YESTERDAY")
		assert.Contains(t, out, "13:00")
		assert.Contains(t, out, "● Synced")
		assert.Contains(t, out, "○ Local")
		assert.Contains(t, out, "photos 1 (2.0 kB)")
		assert.Contains(t, out, "2 hours ago")
		assert.Less(t, indexOf(out, "TODAY"), indexOf(out, "YESTERDAY"))
	})
}

func TestFormatImages(t *testing.T) {
	assert.Contains(t, stripANSI(FormatImages(nil)), "No photos attached.")

	out := stripANSI(FormatImages(domain.AttachmentSet{
		{MIME: "image/jpeg", Data: make([]byte, 1500)},
		{MIME: "image/jpeg", Data: make([]byte, 500)},
	}))
	assert.Contains(t, out, "1.5 kB")
	assert.Contains(t, out, "total 2.0 kB")
}

func TestFormatSettings(t *testing.T) {
	st := domain.DefaultSettings()
	out := stripANSI(FormatSettings(st, nil, domain.LangEN))
	assert.Contains(t, out, "not set")
	assert.Contains(t, out, "signed out")

	st.WebhookURL = "https://hook.example"
	out = stripANSI(FormatSettings(st, &domain.Identity{FirstName: "Olena"}, domain.LangEN))
	assert.Contains(t, out, "https://hook.example")
	assert.Contains(t, out, "Olena")
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
