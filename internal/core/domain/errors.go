package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInternalServer     = errors.New("internal server error")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Account errors
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
)

// Flavor errors
var (
	ErrUnknownDescriptor = errors.New("descriptor not in flavor catalog")
	ErrProfileNotFound   = errors.New("flavor profile not found")
)

// State errors
var (
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrNotLoggedIn         = errors.New("no account is logged in")
)

// Session errors
var (
	ErrSessionNotFound = errors.New("cupping session not found")
)

// Violation is a single field-level rule violation
type Violation struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// RegistrationError carries every registration rule violated at once so
// the caller can show the whole list, not just the first failure.
type RegistrationError struct {
	Violations []Violation
}

func (e *RegistrationError) Error() string {
	return "registration failed: " + joinViolations(e.Violations)
}

// Has reports whether a violation exists for the given field
func (e *RegistrationError) Has(field string) bool {
	for _, v := range e.Violations {
		if v.Field == field {
			return true
		}
	}
	return false
}

// ValidationError carries every session-creation rule violated at once
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	return "validation failed: " + joinViolations(e.Violations)
}

// Has reports whether a violation exists for the given field
func (e *ValidationError) Has(field string) bool {
	for _, v := range e.Violations {
		if v.Field == field {
			return true
		}
	}
	return false
}

func joinViolations(vs []Violation) string {
	parts := make([]string, 0, len(vs))
	for _, v := range vs {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Reason))
	}
	return strings.Join(parts, "; ")
}
