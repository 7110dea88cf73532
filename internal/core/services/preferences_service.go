package services

import (
	"cultura-cupping/internal/core/state"
	"cultura-cupping/internal/pkg/i18n"
)

// PreferencesService exposes the language preference and translation
// lookup of the application state to the UI layer
type PreferencesService struct {
	appState *state.AppState
}

// NewPreferencesService creates a new preferences service
func NewPreferencesService(appState *state.AppState) *PreferencesService {
	return &PreferencesService{appState: appState}
}

// SetLanguage switches the UI language; unknown codes are rejected and
// the current language stays in effect
func (s *PreferencesService) SetLanguage(code string) error {
	return s.appState.SetLanguage(code)
}

// Language returns the active language code
func (s *PreferencesService) Language() string {
	return string(s.appState.Language())
}

// Text resolves one translation key, falling back to the key itself
func (s *PreferencesService) Text(key string) string {
	return s.appState.Text(key)
}

// Texts returns the full translation table for the active language so
// the UI can render everything in one round trip
func (s *PreferencesService) Texts() map[string]string {
	return i18n.Table(s.appState.Language())
}
