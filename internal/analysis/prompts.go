package analysis

import (
	"fmt"
	"time"

	"github.com/alexanderramin/workstats/internal/domain"
)

var languageNames = map[domain.Language]string{
	domain.LangUA: "Ukrainian",
	domain.LangEN: "English",
	domain.LangNL: "Dutch",
}

func systemPrompt(lang domain.Language) string {
	name, ok := languageNames[lang]
	if !ok {
		name = languageNames[domain.LangUA]
	}
	return fmt.Sprintf(`You review tally history from a facility team.
Entries are personnel and car counts per zone, bike counts per category, or
office supply levels per room. Write at most five short sentences in %s.
Point out trends, unusually high or low counts, and entries that were not synced.
Only use numbers that appear in the data. Do not use markdown.`, name)
}

type promptEntry struct {
	Date    string         `json:"date"`
	Type    domain.Kind    `json:"type"`
	Summary string         `json:"summary"`
	Counts  map[string]int `json:"counts,omitempty"`
	Room    string         `json:"room,omitempty"`
	Items   map[string]any `json:"items,omitempty"`
	Synced  bool           `json:"synced"`
}

// promptEntries strips images and normalizes dates for the model.
func promptEntries(entries []domain.HistoryEntry, loc *time.Location) []promptEntry {
	out := make([]promptEntry, 0, len(entries))
	for _, e := range entries {
		pe := promptEntry{
			Date:    domain.DayKey(e.Date, loc),
			Type:    e.Kind,
			Summary: e.Summary,
			Room:    e.Room,
			Synced:  e.Synced,
		}
		if len(e.Counts) > 0 {
			pe.Counts = e.Counts
		}
		if len(e.Items) > 0 {
			pe.Items = make(map[string]any, len(e.Items))
			for k, v := range e.Items {
				if v.Empty {
					pe.Items[k] = domain.EmptyMark
					continue
				}
				pe.Items[k] = v.N
			}
		}
		out = append(out, pe)
	}
	return out
}
