package store

import (
	"database/sql"

	"github.com/Alok-2331/NutriSnap/internal/db"
)

// Theme lives under its own kv key, independent of the AppState snapshot,
// so it can be read before the rest of the app initializes.
const ThemeKey = "theme"

const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// LoadTheme returns the persisted theme, defaulting to light when the key is
// missing or holds an unknown value.
func LoadTheme(sqldb *sql.DB) string {
	value, ok, err := db.GetValue(sqldb, ThemeKey)
	if err != nil || !ok {
		return ThemeLight
	}
	if value != ThemeDark && value != ThemeLight {
		return ThemeLight
	}
	return value
}

func SaveTheme(sqldb *sql.DB, theme string) error {
	return db.SetValue(sqldb, ThemeKey, theme)
}
