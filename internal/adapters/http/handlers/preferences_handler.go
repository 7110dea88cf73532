package handlers

import (
	"errors"

	"cultura-cupping/internal/core/domain"
	"cultura-cupping/internal/core/services"
	"cultura-cupping/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// PreferencesHandler handles language preference and translation endpoints.
// These routes are public: the login screen is translated before anyone
// authenticates.
type PreferencesHandler struct {
	preferencesService *services.PreferencesService
}

// NewPreferencesHandler creates a new preferences handler
func NewPreferencesHandler(preferencesService *services.PreferencesService) *PreferencesHandler {
	return &PreferencesHandler{preferencesService: preferencesService}
}

// SetLanguageRequest represents a language change request body
type SetLanguageRequest struct {
	Language string `json:"language"`
}

// GetLanguage returns the active language and its translation table
// @Summary Active language
// @Description Return the active language code and its full translation table
// @Tags Preferences
// @Produce json
// @Success 200 {object} response.Response
// @Router /preferences/language [get]
func (h *PreferencesHandler) GetLanguage(c *fiber.Ctx) error {
	return response.Success(c, "", fiber.Map{
		"language": h.preferencesService.Language(),
		"texts":    h.preferencesService.Texts(),
	})
}

// SetLanguage switches the UI language
// @Summary Set language
// @Description Switch the UI language; only en and es are supported
// @Tags Preferences
// @Accept json
// @Produce json
// @Param body body SetLanguageRequest true "Language code"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /preferences/language [put]
func (h *PreferencesHandler) SetLanguage(c *fiber.Ctx) error {
	var req SetLanguageRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.preferencesService.SetLanguage(req.Language); err != nil {
		if errors.Is(err, domain.ErrUnsupportedLanguage) {
			return response.BadRequest(c, "Unsupported language")
		}
		return response.InternalServerError(c, "Failed to set language")
	}

	return response.Success(c, "Language updated", fiber.Map{
		"language": h.preferencesService.Language(),
		"texts":    h.preferencesService.Texts(),
	})
}

// Text resolves a single translation key
// @Summary Translate key
// @Description Resolve one translation key in the active language; unknown keys come back verbatim
// @Tags Preferences
// @Produce json
// @Param key path string true "Translation key"
// @Success 200 {object} response.Response
// @Router /preferences/text/{key} [get]
func (h *PreferencesHandler) Text(c *fiber.Ctx) error {
	key := c.Params("key")
	return response.Success(c, "", fiber.Map{
		"key":  key,
		"text": h.preferencesService.Text(key),
	})
}
