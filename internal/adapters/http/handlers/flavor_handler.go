package handlers

import (
	"errors"

	"cultura-cupping/internal/core/domain"
	"cultura-cupping/internal/core/services"
	"cultura-cupping/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// FlavorHandler handles flavor catalog and profile-builder endpoints
type FlavorHandler struct {
	flavorService *services.FlavorService
}

// NewFlavorHandler creates a new flavor handler
func NewFlavorHandler(flavorService *services.FlavorService) *FlavorHandler {
	return &FlavorHandler{flavorService: flavorService}
}

// ToggleRequest represents a descriptor toggle request body
type ToggleRequest struct {
	Descriptor string `json:"descriptor"`
}

// SaveProfileRequest represents a profile save request body
type SaveProfileRequest struct {
	Name string `json:"name"`
}

// Catalog returns the flavor wheel
// @Summary Flavor catalog
// @Description Return the static flavor wheel in display order
// @Tags Flavors
// @Produce json
// @Success 200 {object} response.Response
// @Router /flavors/catalog [get]
func (h *FlavorHandler) Catalog(c *fiber.Ctx) error {
	return response.Success(c, "", h.flavorService.Catalog())
}

// Selection returns the working selection
// @Summary Working flavor selection
// @Description Return the in-progress descriptor selection in catalog order
// @Tags Flavors
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /flavors/selection [get]
func (h *FlavorHandler) Selection(c *fiber.Ctx) error {
	return response.Success(c, "", fiber.Map{
		"descriptors": h.flavorService.Selection(),
	})
}

// Toggle flips a descriptor in the working selection
// @Summary Toggle flavor descriptor
// @Description Flip a descriptor's membership in the working selection; toggling twice restores the original set
// @Tags Flavors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ToggleRequest true "Descriptor to toggle"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /flavors/toggle [post]
func (h *FlavorHandler) Toggle(c *fiber.Ctx) error {
	var req ToggleRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Descriptor == "" {
		return response.BadRequest(c, "Descriptor is required")
	}

	selected, err := h.flavorService.Toggle(req.Descriptor)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownDescriptor) {
			return response.NotFound(c, "Descriptor not in flavor catalog")
		}
		return response.InternalServerError(c, "Failed to toggle descriptor")
	}

	return response.Success(c, "", fiber.Map{
		"descriptor":  req.Descriptor,
		"selected":    selected,
		"descriptors": h.flavorService.Selection(),
	})
}

// SaveProfile snapshots the working selection under a name
// @Summary Save flavor profile
// @Description Save the working selection as a named profile; the selection stays as it is
// @Tags Flavors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SaveProfileRequest true "Profile name"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /flavors/profiles [post]
func (h *FlavorHandler) SaveProfile(c *fiber.Ctx) error {
	accountID, ok := c.Locals("accountID").(string)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req SaveProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	profile, err := h.flavorService.Save(c.Context(), accountID, req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return response.BadRequest(c, "Profile name is required")
		}
		return response.InternalServerError(c, "Failed to save profile")
	}

	return response.Created(c, "Flavor profile saved", profile)
}

// ListProfiles returns the saved profiles
// @Summary List flavor profiles
// @Description List the current account's saved profiles in creation order
// @Tags Flavors
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /flavors/profiles [get]
func (h *FlavorHandler) ListProfiles(c *fiber.Ctx) error {
	accountID, ok := c.Locals("accountID").(string)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	profiles, err := h.flavorService.ListProfiles(c.Context(), accountID)
	if err != nil {
		return response.InternalServerError(c, "Failed to list profiles")
	}

	return response.Success(c, "", profiles)
}
