package domain

import "strings"

// Settings are the user preferences persisted in the settings blob.
type Settings struct {
	Language   Language `json:"language"`
	Theme      Theme    `json:"theme"`
	Vibration  bool     `json:"vibration"`
	WebhookURL string   `json:"webhookUrl"`
}

// DefaultSettings returns the settings used when none are stored.
func DefaultSettings() Settings {
	return Settings{
		Language:  LangUA,
		Theme:     ThemeDark,
		Vibration: true,
	}
}

// SettingsPatch holds optional updates; nil fields are left unchanged.
type SettingsPatch struct {
	Language   *Language
	Theme      *Theme
	Vibration  *bool
	WebhookURL *string
}

// Apply returns s with the non-nil fields of p applied. Unknown languages and
// themes are ignored.
func (s Settings) Apply(p SettingsPatch) Settings {
	if p.Language != nil && ValidLanguages[*p.Language] {
		s.Language = *p.Language
	}
	if p.Theme != nil && ValidThemes[*p.Theme] {
		s.Theme = *p.Theme
	}
	s.Vibration = BoolFromPtrWithDefault(s.Vibration, p.Vibration)
	if p.WebhookURL != nil {
		s.WebhookURL = *p.WebhookURL
	}
	return s
}

// Normalize replaces missing or invalid fields with defaults.
func (s Settings) Normalize() Settings {
	def := DefaultSettings()
	if !ValidLanguages[s.Language] {
		s.Language = def.Language
	}
	if !ValidThemes[s.Theme] {
		s.Theme = def.Theme
	}
	return s
}

// HasWebhook reports whether remote sync is configured.
func (s Settings) HasWebhook() bool {
	return strings.TrimSpace(s.WebhookURL) != ""
}
