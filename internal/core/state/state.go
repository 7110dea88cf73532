// Package state holds the per-instance application state: the current
// authenticated identity, the language preference and the in-progress
// flavor selection. Account-owned data (sessions, saved profiles, stats)
// lives in the repositories and survives logout; everything here is
// transient working state.
package state

import (
	"sync"

	"cultura-cupping/internal/core/domain"
	"cultura-cupping/internal/pkg/i18n"
)

// AppState is the explicit application-state container. One instance per
// server; constructed with New, no package-level singleton. A single
// identity is active at a time; a new login replaces the previous one.
type AppState struct {
	mu        sync.Mutex
	current   *domain.Account
	language  i18n.Language
	selection map[string]bool
}

// New creates a fresh application state: no identity, language en,
// empty flavor selection
func New() *AppState {
	return &AppState{
		language:  i18n.Default,
		selection: make(map[string]bool),
	}
}

// Login sets the current identity. The previous identity's working
// selection is discarded.
func (s *AppState) Login(account *domain.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = account
	s.selection = make(map[string]bool)
}

// Logout clears the current identity and the working flavor selection.
// Saved sessions and profiles belong to the account record and are not
// touched.
func (s *AppState) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	s.selection = make(map[string]bool)
}

// Current returns the active account, or nil when logged out
func (s *AppState) Current() *domain.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// SetLanguage switches the UI language. Unknown codes are rejected and
// the current language stays unchanged.
func (s *AppState) SetLanguage(code string) error {
	lang := i18n.Language(code)
	if !lang.Valid() {
		return domain.ErrUnsupportedLanguage
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.language = lang
	return nil
}

// Language returns the active UI language
func (s *AppState) Language() i18n.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}

// Text resolves a translation key in the active language, falling back
// to the key itself
func (s *AppState) Text(key string) string {
	return i18n.Text(s.Language(), key)
}

// ToggleDescriptor flips membership of a descriptor in the working
// selection and reports whether it is now selected. Catalog validation
// is the flavor service's job.
func (s *AppState) ToggleDescriptor(descriptor string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selection[descriptor] {
		delete(s.selection, descriptor)
		return false
	}
	s.selection[descriptor] = true
	return true
}

// Selected reports whether a descriptor is in the working selection
func (s *AppState) Selected(descriptor string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection[descriptor]
}

// SelectionSize returns the number of selected descriptors
func (s *AppState) SelectionSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.selection)
}

// ClearSelection empties the working selection
func (s *AppState) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = make(map[string]bool)
}
