package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/api/dto"
	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/auth"
	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/observability"
	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/service"
	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/triage"
)

const ticketMissingMessage = "ticket text missing"

// ClassifyHandler serves the form page and the JSON prediction API.
type ClassifyHandler struct {
	service *service.ClassificationService
}

// NewClassifyHandler constructs handler.
func NewClassifyHandler(classificationService *service.ClassificationService) *ClassifyHandler {
	return &ClassifyHandler{service: classificationService}
}

// Home GET and POST /. Only a POST without a ticket field renders the page without
// a result; a present field is classified even when blank.
func (h *ClassifyHandler) Home(c *fiber.Ctx) error {
	data := fiber.Map{"Ticket": "", "Result": nil}
	if c.Method() == fiber.MethodPost {
		ticket, ok := formField(c, "ticket")
		data["Ticket"] = ticket
		if ok {
			result, err := h.service.Classify(c.UserContext(), service.ClassifyInput{
				Text:      ticket,
				RequestID: observability.RequestID(c),
			})
			if err != nil {
				return err
			}
			resp := dto.NewPredictResponse(result)
			data["Result"] = &resp
		}
	}
	return c.Render("index", data)
}

// Predict POST /predict.
func (h *ClassifyHandler) Predict(c *fiber.Ctx) error {
	if !isJSONBody(c) {
		return ticketMissing(c)
	}
	var req dto.PredictRequest
	if err := c.BodyParser(&req); err != nil || req.Ticket == nil {
		return ticketMissing(c)
	}
	ticket := strings.TrimFunc(*req.Ticket, triage.IsSpace)
	if ticket == "" {
		return ticketMissing(c)
	}

	result, err := h.service.Classify(c.UserContext(), service.ClassifyInput{
		Text:      ticket,
		RequestID: observability.RequestID(c),
		ClientID:  auth.ClientID(c),
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.NewPredictResponse(result))
}

func ticketMissing(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: ticketMissingMessage})
}

// formField reads a urlencoded or multipart field and reports whether it was sent.
func formField(c *fiber.Ctx, key string) (string, bool) {
	if args := c.Request().PostArgs(); args.Has(key) {
		return string(args.Peek(key)), true
	}
	if form, err := c.MultipartForm(); err == nil {
		if values, ok := form.Value[key]; ok && len(values) > 0 {
			return values[0], true
		}
	}
	return "", false
}

// isJSONBody accepts application/json and +json media types, with or without parameters.
func isJSONBody(c *fiber.Ctx) bool {
	mediaType, _, _ := strings.Cut(string(c.Request().Header.ContentType()), ";")
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))
	return mediaType == fiber.MIMEApplicationJSON || strings.HasSuffix(mediaType, "+json")
}
