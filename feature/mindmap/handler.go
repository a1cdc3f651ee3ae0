package mindmap

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/rubbishhaha/vocab/core/logger"
	"github.com/rubbishhaha/vocab/feature/mindmap/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for mind-map synchronization.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the mindmap routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/mindmap")
	group.Get("/", h.HandleCurrent)
	group.Post("/sync", h.HandleSync)
}

// HandleCurrent returns the currently persisted snapshot.
// @Summary Get Current Snapshot
// @Description Returns the stored mind-map snapshot without performing any merge or mutation.
// @Tags mindmap
// @Accept json
// @Produce json
// @Success 200 {object} models.Snapshot "Stored Snapshot"
// @Failure 404 {object} map[string]string "No Data"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /mindmap [get]
func (h *Handler) HandleCurrent(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	snap, err := h.service.Current(c.Context())
	if err != nil {
		if errors.Is(err, ErrNoData) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no data"})
		}
		l.Error("Snapshot fetch failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(snap)
}

// HandleSync merges the pushed snapshot with the stored one.
// @Summary Synchronize Snapshot
// @Description Merges the client's snapshot with the stored one and persists the result. An empty body pushes nothing and returns the stored snapshot.
// @Tags mindmap
// @Accept json
// @Produce json
// @Param snapshot body models.Snapshot false "Client Snapshot"
// @Success 200 {object} models.Snapshot "Merged Snapshot"
// @Failure 400 {object} map[string]string "Invalid or Missing Data"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /mindmap/sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var local *models.Snapshot
	if body := bytes.TrimSpace(c.Body()); len(body) > 0 {
		local = new(models.Snapshot)
		if err := json.Unmarshal(body, local); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid snapshot payload"})
		}
		// The merge layer assumes well-formed trees; reject malformed
		// input here instead.
		if err := local.Validate(); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
	}

	merged, err := h.service.Sync(c.Context(), local)
	if err != nil {
		if errors.Is(err, ErrNoData) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "no data provided"})
		}
		l.Error("Sync failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(merged)
}
