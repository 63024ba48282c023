package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/workstats/internal/domain"
	"github.com/alexanderramin/workstats/internal/report"
)

// resolveCategory resolves a category argument which can be:
//   - the exact catalog key ("Zone 220", "MPA")
//   - a case-insensitive key or translated label ("zone 220", "Total Parking")
//   - the 1-based position shown by "show"
func resolveCategory(k domain.Kind, input string) (string, error) {
	cats := domain.CategoriesFor(k)
	if n, err := strconv.Atoi(input); err == nil {
		if n < 1 || n > len(cats) {
			return "", fmt.Errorf("%s category #%d: %w", k, n, domain.ErrUnknownCategory)
		}
		return cats[n-1], nil
	}
	for _, key := range cats {
		if key == input {
			return key, nil
		}
	}
	for _, key := range cats {
		if strings.EqualFold(key, input) || matchesLabel(key, input) {
			return key, nil
		}
	}
	return "", fmt.Errorf("%s category %q: %w", k, input, domain.ErrUnknownCategory)
}

func matchesLabel(key, input string) bool {
	for _, lang := range []domain.Language{domain.LangUA, domain.LangEN, domain.LangNL} {
		if strings.EqualFold(report.For(lang).CategoryLabel(key), input) {
			return true
		}
	}
	return false
}

// resolveOfficeItem accepts "EK 7 A", "ek7a" or "7A".
func resolveOfficeItem(input string) (string, error) {
	norm := func(s string) string {
		s = strings.ToUpper(strings.ReplaceAll(s, " ", ""))
		return strings.TrimPrefix(s, "EK")
	}
	want := norm(input)
	for _, item := range domain.OfficeItems {
		if norm(item) == want {
			return item, nil
		}
	}
	return "", fmt.Errorf("office item %q: %w", input, domain.ErrUnknownCategory)
}

// resolveRoom validates an office room argument.
func resolveRoom(input string) (string, error) {
	room := strings.TrimSpace(input)
	if !domain.IsOfficeRoom(room) {
		return "", fmt.Errorf("room %q: %w", input, domain.ErrUnknownRoom)
	}
	return room, nil
}

// parseIndex turns a 1-based photo position into a 0-based index.
func parseIndex(input string) (int, error) {
	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("photo number %q: %w", input, err)
	}
	return n - 1, nil
}
