package vocab

import (
	"errors"

	"github.com/rubbishhaha/vocab/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the word-tracking blob.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the vocab routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/vocab")
	group.Get("/", h.HandleGetWords)
	group.Put("/", h.HandlePutWords)
}

// HandleGetWords returns the stored word list.
// @Summary Get Word List
// @Description Returns the stored word-tracking JSON blob.
// @Tags vocab
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Word List"
// @Failure 404 {object} map[string]string "No Data"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /vocab [get]
func (h *Handler) HandleGetWords(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	data, err := h.service.Words(c.Context())
	if err != nil {
		if errors.Is(err, ErrNoData) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no data"})
		}
		l.Error("Word list fetch failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(data)
}

// HandlePutWords replaces the stored word list.
// @Summary Store Word List
// @Description Replaces the stored word-tracking JSON blob wholesale.
// @Tags vocab
// @Accept json
// @Produce json
// @Param words body map[string]interface{} true "Word List"
// @Success 204 "Stored"
// @Failure 400 {object} map[string]string "Invalid JSON"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /vocab [put]
func (h *Handler) HandlePutWords(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if err := h.service.SaveWords(c.Context(), c.Body()); err != nil {
		if errors.Is(err, ErrInvalidJSON) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "payload must be valid JSON"})
		}
		l.Error("Word list store failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
