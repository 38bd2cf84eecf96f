package backlog

import (
	"backlog-manager/core/logger"
	"backlog-manager/feature/backlog/errs"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the backlog feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the backlog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/", h.HandleHome)
	app.Get("/log/:user", h.HandleUserLog)
	app.Post("/users", h.HandleSignup)
	app.Post("/sync", h.HandleSync)
}

// HandleHome is the landing endpoint.
// @Summary Home
// @Description Returns a welcome message.
// @Tags backlog
// @Produce plain
// @Success 200 {string} string "Welcome!"
// @Router / [get]
func (h *Handler) HandleHome(c *fiber.Ctx) error {
	return c.SendString("Welcome!")
}

// HandleUserLog returns the game backlog for one user.
// @Summary User Log
// @Description Returns the tracked game names for a user, looked up by id or username.
// @Tags backlog
// @Produce json
// @Param user path string true "User id or username"
// @Success 200 {object} backlog.UserLog
// @Failure 404 {object} map[string]string "User not found"
// @Router /log/{user} [get]
func (h *Handler) HandleUserLog(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	log, err := h.service.GetUserLog(c.Context(), c.Params("user"))
	if err != nil {
		if errs.IsKind(err, errs.KindNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
		}
		l.Error("Failed to load user log", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(log)
}

type signupRequest struct {
	Username string `json:"username"`
	SteamID  string `json:"steam_id"`
}

// HandleSignup creates a tracked user.
// @Summary Signup
// @Description Creates a user. steam_id is optional; users without one are never synced.
// @Tags backlog
// @Accept json
// @Produce json
// @Param body body backlog.signupRequest true "User to create"
// @Success 201 {object} models.User
// @Failure 400 {object} map[string]string "Invalid request"
// @Router /users [post]
func (h *Handler) HandleSignup(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	user, err := h.service.SignupUser(c.Context(), req.Username, req.SteamID)
	if err != nil {
		if errs.IsKind(err, errs.KindConfig) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Failed to create user", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// HandleSync triggers one sync pass.
// @Summary Run Sync Pass
// @Description Fetches every eligible user's Steam library and reconciles it into the backlog. May take a while.
// @Tags backlog
// @Produce json
// @Success 200 {object} backlog.Report
// @Failure 500 {object} map[string]string "Sync failed"
// @Router /sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Sync pass triggered over HTTP")

	report, err := h.service.RunSync(c.Context())
	if err != nil {
		l.Error("Sync pass failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(report)
}
