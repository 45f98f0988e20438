package api

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"wikoo-core/internal/domain/entity"
	"wikoo-core/internal/logger"
	"wikoo-core/internal/usecase"
)

const homeMessage = "Wikoo backend running — Gemini + Google Calendar & Gmail reminders!"

type Handler struct {
	orchestrator *usecase.Orchestrator
	clinics      *usecase.ClinicDirectory
	reminders    *usecase.ReminderService
	validate     *validator.Validate
	logger       logger.Interface
}

func NewHandler(orch *usecase.Orchestrator, clinics *usecase.ClinicDirectory, reminders *usecase.ReminderService, log logger.Interface) *Handler {
	return &Handler{
		orchestrator: orch,
		clinics:      clinics,
		reminders:    reminders,
		validate:     newValidator(),
		logger:       log.Named("api"),
	}
}

func (h *Handler) Home(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": homeMessage})
}

// HandleChat always answers 200 once the body is valid; upstream failures
// surface only as fallback text.
func (h *Handler) HandleChat(c *fiber.Ctx) error {
	var body chatRequestBody
	if err := h.bind(c, &body); err != nil {
		return err
	}

	resp := h.orchestrator.Chat(c.UserContext(), body.toEntity(c.IP()))
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *Handler) HandleReport(c *fiber.Ctx) error {
	var body reportRequestBody
	if err := h.bind(c, &body); err != nil {
		return err
	}

	resp := h.orchestrator.Report(c.UserContext(), body.toEntity(c.IP()))
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *Handler) HandleClinics(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	latStr, lonStr := c.Query("lat"), c.Query("lon")
	if latStr == "" || lonStr == "" {
		return c.JSON(fiber.Map{"clinics": h.clinics.All(limit)})
	}

	lat, errLat := strconv.ParseFloat(latStr, 64)
	lon, errLon := strconv.ParseFloat(lonStr, 64)
	if errLat != nil || errLon != nil || lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "lat and lon must be valid coordinates"})
	}
	return c.JSON(fiber.Map{"clinics": h.clinics.Nearby(lat, lon, limit)})
}

func (h *Handler) HandleEmailReminder(c *fiber.Ctx) error {
	var body reminderRequestBody
	if err := h.bind(c, &body); err != nil {
		return err
	}

	to, err := h.reminders.Send(c.UserContext(), body.toEntity())
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrMailerNotConfigured):
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"message": "Email reminders are not configured."})
		case errors.Is(err, entity.ErrNoRecipient):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "No recipient for the reminder."})
		default:
			h.logger.Error("email reminder failed", "request_id", requestID(c), "error", err)
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": "Could not send the reminder email."})
		}
	}
	return c.JSON(fiber.Map{"message": "Reminder sent to " + to + "!"})
}

// bind parses the JSON body into dst and validates it.
func (h *Handler) bind(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		h.logger.Debug("invalid request body", "request_id", requestID(c), "error", err)
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(dst); err != nil {
		return &ValidationError{Details: validationDetails(err)}
	}
	return nil
}
