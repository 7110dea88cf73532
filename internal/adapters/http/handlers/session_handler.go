package handlers

import (
	"errors"

	"cultura-cupping/internal/core/domain"
	"cultura-cupping/internal/core/services"
	"cultura-cupping/internal/pkg/pagination"
	"cultura-cupping/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// SessionHandler handles cupping-session endpoints
type SessionHandler struct {
	sessionService *services.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionService *services.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// Create handles session creation
// @Summary Create cupping session
// @Description Create a session from a fully-filled form; all violations are returned together
// @Tags Sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateSessionInput true "Session form"
// @Success 201 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /sessions [post]
func (h *SessionHandler) Create(c *fiber.Ctx) error {
	accountID, ok := c.Locals("accountID").(string)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req services.CreateSessionInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	session, err := h.sessionService.CreateSession(c.Context(), accountID, &req)
	if err != nil {
		var valErr *domain.ValidationError
		if errors.As(err, &valErr) {
			return response.ValidationFailed(c, "Session validation failed", valErr.Violations)
		}
		return response.InternalServerError(c, "Failed to create session")
	}

	return response.Created(c, "Cupping session created", session)
}

// List handles paginated session listing
// @Summary List cupping sessions
// @Description List the current account's sessions in creation order
// @Tags Sessions
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /sessions [get]
func (h *SessionHandler) List(c *fiber.Ctx) error {
	accountID, ok := c.Locals("accountID").(string)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	sessions, err := h.sessionService.ListSessions(c.Context(), accountID)
	if err != nil {
		return response.InternalServerError(c, "Failed to list sessions")
	}

	params := pagination.GetParams(c)
	page, total := pagination.Slice(sessions, params)

	return response.Success(c, "", pagination.NewResponse(page, params, total))
}

// GetByID handles single-session lookup
// @Summary Get cupping session
// @Description Look one session up inside the current account's sequence
// @Tags Sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /sessions/{id} [get]
func (h *SessionHandler) GetByID(c *fiber.Ctx) error {
	accountID, ok := c.Locals("accountID").(string)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	session, err := h.sessionService.GetSession(c.Context(), accountID, c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return response.NotFound(c, "Session not found")
		}
		return response.InternalServerError(c, "Failed to get session")
	}

	return response.Success(c, "", session)
}
