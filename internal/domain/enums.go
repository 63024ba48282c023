package domain

import (
	"fmt"
	"strings"
)

// Kind identifies one of the three data-entry domains.
type Kind string

const (
	KindPersonnel Kind = "personnel"
	KindBikes     Kind = "bikes"
	KindOffice    Kind = "office"
)

// AllKinds lists the domains in display order.
var AllKinds = []Kind{KindPersonnel, KindBikes, KindOffice}

// ParseKind resolves a user-supplied domain name.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindPersonnel:
		return KindPersonnel, nil
	case KindBikes:
		return KindBikes, nil
	case KindOffice:
		return KindOffice, nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownKind)
}

// DailySingleton reports whether the ledger keeps at most one entry per
// calendar day for this domain.
func (k Kind) DailySingleton() bool {
	return k == KindPersonnel || k == KindBikes
}

// Cadence returns how often the domain's draft is discarded.
func (k Kind) Cadence() ResetCadence {
	if k == KindOffice {
		return ResetWeekly
	}
	return ResetDaily
}

// ResetCadence is the granularity at which stale drafts are discarded.
type ResetCadence string

const (
	ResetDaily  ResetCadence = "daily"
	ResetWeekly ResetCadence = "weekly"
)

type Language string

const (
	LangUA Language = "ua"
	LangEN Language = "en"
	LangNL Language = "nl"
)

// ValidLanguages is the canonical set of accepted language codes.
var ValidLanguages = map[Language]bool{LangUA: true, LangEN: true, LangNL: true}

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// ValidThemes is the canonical set of accepted theme names.
var ValidThemes = map[Theme]bool{ThemeDark: true, ThemeLight: true}
