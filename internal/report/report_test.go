package report

import (
	"testing"
	"time"

	"github.com/alexanderramin/workstats/internal/domain"
	"github.com/stretchr/testify/assert"
)

var reportDate = time.Date(2026, 3, 4, 9, 30, 0, 0, time.UTC)

func TestCounts_PersonnelOrderAndParkingLabel(t *testing.T) {
	counts := domain.CounterMap{
		domain.ParkingKey: 12,
		"Zone 240":        3,
		"Zone 220":        5,
		"Zone 230":        0,
	}

	got := Counts(domain.KindPersonnel, counts, reportDate, domain.LangEN)

	assert.Equal(t, "04/03/2026\nZone 220: 5\nZone 240: 3\nTotal Parking: 12", got)
}

func TestCounts_TranslatedParking(t *testing.T) {
	got := Counts(domain.KindPersonnel, domain.CounterMap{domain.ParkingKey: 1}, reportDate, domain.LangNL)
	assert.Equal(t, "04/03/2026\nTotaal parkeren: 1", got)
}

func TestCounts_EmptyDraftsSayNoData(t *testing.T) {
	tests := []struct {
		name   string
		counts domain.CounterMap
	}{
		{"nil", nil},
		{"empty", domain.CounterMap{}},
		{"all zero", domain.CounterMap{"MPA": 0, "MV": 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, "04/03/2026\nNo data", Counts(domain.KindBikes, tt.counts, reportDate, domain.LangUA))
		})
	}
}

func TestOffice_SkipsEmptyAndHidden(t *testing.T) {
	items := map[string]domain.OfficeValue{
		"EK 13": domain.Count(1),
		"EK 14": domain.Empty,
		"EK 1":  domain.Count(3), // hidden in a limited room
	}

	got := Office("20", items, reportDate, domain.LangEN)

	assert.Equal(t, "04/03/2026\nRoom 20\nEK 13: 1", got)
}

func TestEntry_UsesLocationForDate(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)
	e := domain.HistoryEntry{
		Kind:   domain.KindBikes,
		Date:   time.Date(2026, 3, 4, 22, 0, 0, 0, time.UTC),
		Counts: domain.CounterMap{"MPA": 2},
	}

	assert.Equal(t, "05/03/2026\nMPA: 2", Entry(e, loc, domain.LangEN))
}

func TestStrings_SummaryAndFallback(t *testing.T) {
	en := For(domain.LangEN)
	assert.Equal(t, "Personnel & Cars", en.Summary(domain.KindPersonnel, ""))
	assert.Equal(t, "Bikes", en.Summary(domain.KindBikes, ""))
	assert.Equal(t, "Office - Room 162", en.Summary(domain.KindOffice, "162"))

	assert.Equal(t, For(domain.LangUA), For(domain.Language("fr")))
}
