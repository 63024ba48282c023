package report

import "github.com/alexanderramin/workstats/internal/domain"

// Strings holds the user-facing labels for one language.
type Strings struct {
	Personnel    string
	Bikes        string
	Office       string
	History      string
	Settings     string
	Cars         string
	Parking      string
	Room         string
	Copied       string
	CopyFailed   string
	Shared       string
	Success      string
	SaveError    string
	SyncFailed   string
	NoRoomData   string
	Synced       string
	Local        string
	NoHistory    string
	Items        string
	Cleared      string
	ConfirmClear string
	Vibration    string
	DarkTheme    string
	Language     string
	Webhook      string
}

var translations = map[domain.Language]Strings{
	domain.LangEN: {
		Personnel:    "Personnel",
		Bikes:        "Bikes",
		Office:       "Office",
		History:      "History",
		Settings:     "Settings",
		Cars:         "Cars",
		Parking:      "Total Parking",
		Room:         "Room",
		Copied:       "Copied to clipboard!",
		CopyFailed:   "Copy failed",
		Shared:       "Shared",
		Success:      "Saved Successfully",
		SaveError:    "Error Saving",
		SyncFailed:   "Saved locally (sync failed)",
		NoRoomData:   "No data for this room",
		Synced:       "Synced",
		Local:        "Local",
		NoHistory:    "No history yet",
		Items:        "items",
		Cleared:      "Cleared",
		ConfirmClear: "Are you sure?",
		Vibration:    "Haptic Feedback",
		DarkTheme:    "Dark Mode",
		Language:     "Language",
		Webhook:      "API URL",
	},
	domain.LangUA: {
		Personnel:    "Персонал",
		Bikes:        "Велосипеди",
		Office:       "Канцелярія",
		History:      "Історія",
		Settings:     "Налаштування",
		Cars:         "Авто",
		Parking:      "Всього авто",
		Room:         "Кімната",
		Copied:       "Скопійовано!",
		CopyFailed:   "Не вдалося скопіювати",
		Shared:       "Надіслано",
		Success:      "Успішно збережено",
		SaveError:    "Помилка збереження",
		SyncFailed:   "Збережено локально (помилка синхронізації)",
		NoRoomData:   "Немає даних для цієї кімнати",
		Synced:       "Синхр.",
		Local:        "Локально",
		NoHistory:    "Історія порожня",
		Items:        "товарів",
		Cleared:      "Очищено",
		ConfirmClear: "Ви впевнені?",
		Vibration:    "Вібрація",
		DarkTheme:    "Темна тема",
		Language:     "Мова",
		Webhook:      "API URL",
	},
	domain.LangNL: {
		Personnel:    "Personeel",
		Bikes:        "Fietsen",
		Office:       "Kantoor",
		History:      "Geschiedenis",
		Settings:     "Instellingen",
		Cars:         "Auto's",
		Parking:      "Totaal parkeren",
		Room:         "Kamer",
		Copied:       "Gekopieerd!",
		CopyFailed:   "Kopiëren mislukt",
		Shared:       "Gedeeld",
		Success:      "Succesvol opgeslagen",
		SaveError:    "Fout bij opslaan",
		SyncFailed:   "Lokaal opgeslagen (synchronisatie mislukt)",
		NoRoomData:   "Geen gegevens voor deze kamer",
		Synced:       "Gesynct",
		Local:        "Lokaal",
		NoHistory:    "Nog geen geschiedenis",
		Items:        "items",
		Cleared:      "Gewist",
		ConfirmClear: "Weet u het zeker?",
		Vibration:    "Trilling",
		DarkTheme:    "Donkere modus",
		Language:     "Taal",
		Webhook:      "API URL",
	},
}

// For returns the labels for lang, falling back to Ukrainian.
func For(lang domain.Language) Strings {
	if s, ok := translations[lang]; ok {
		return s
	}
	return translations[domain.LangUA]
}

// KindLabel returns the translated domain name.
func (s Strings) KindLabel(k domain.Kind) string {
	switch k {
	case domain.KindPersonnel:
		return s.Personnel
	case domain.KindBikes:
		return s.Bikes
	case domain.KindOffice:
		return s.Office
	}
	return string(k)
}

// Summary returns the history summary for a submit of kind k. Room is only
// used for office.
func (s Strings) Summary(k domain.Kind, room string) string {
	switch k {
	case domain.KindPersonnel:
		return s.Personnel + " & " + s.Cars
	case domain.KindOffice:
		return s.Office + " - " + s.Room + " " + room
	}
	return s.KindLabel(k)
}

// CategoryLabel returns the display label of a counter key.
func (s Strings) CategoryLabel(key string) string {
	if key == domain.ParkingKey {
		return s.Parking
	}
	return key
}
