package handlers

import (
	"errors"
	"log"

	"fraudtriage/internal/models"
	"fraudtriage/internal/services/triage"
	"fraudtriage/internal/utils/pagination"
	"fraudtriage/internal/utils/response"
	"fraudtriage/internal/utils/validation"

	"github.com/gofiber/fiber/v2"
)

type TriageHandler struct {
	triageService triage.Service
}

func NewTriageHandler(triageService triage.Service) *TriageHandler {
	return &TriageHandler{
		triageService: triageService,
	}
}

// analyzeRequest mirrors the transaction payload. Amount is a pointer so a
// missing field can be told apart from zero.
type analyzeRequest struct {
	TransactionID string    `json:"transaction_id"`
	Amount        *float64  `json:"amount"`
	Features      []float64 `json:"features"`
	VelocityFlag  bool      `json:"velocity_flag"`
	GeoMismatch   bool      `json:"geo_mismatch"`
}

// AnalyzeTransaction scores a transaction and returns its risk score,
// priority and explanation.
func (h *TriageHandler) AnalyzeTransaction(c *fiber.Ctx) error {
	var input analyzeRequest
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if v := validation.ValidateTransaction(input.Amount, input.TransactionID, input.Features); !v.Valid() {
		return response.ValidationError(c, v)
	}

	result, err := h.triageService.Analyze(c.UserContext(), models.Transaction{
		TransactionID: input.TransactionID,
		Amount:        *input.Amount,
		Features:      input.Features,
		VelocityFlag:  input.VelocityFlag,
		GeoMismatch:   input.GeoMismatch,
	})
	if err != nil {
		switch {
		case errors.Is(err, triage.ErrInvalidTransaction):
			return response.BadRequest(c, err.Error())
		case errors.Is(err, triage.ErrScoringFailed), errors.Is(err, triage.ErrInvalidScore):
			log.Printf("Scoring error for transaction %q: %v", input.TransactionID, err)
			return response.BadGateway(c, "Risk scoring unavailable")
		default:
			log.Printf("Triage error for transaction %q: %v", input.TransactionID, err)
			return response.ServerError(c, "Failed to analyze transaction")
		}
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

// GetAlert returns one recorded assessment.
func (h *TriageHandler) GetAlert(c *fiber.Ctx) error {
	assessment, err := h.triageService.GetAssessment(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, triage.ErrAssessmentNotFound) {
			return response.NotFound(c, "Alert not found")
		}
		log.Printf("Alert lookup error: %v", err)
		return response.ServerError(c, "Failed to retrieve alert")
	}

	return response.Success(c, "Alert retrieved successfully", assessment)
}

// ListAlerts returns the analyst queue, newest first, optionally filtered by priority.
func (h *TriageHandler) ListAlerts(c *fiber.Ctx) error {
	p := pagination.ParseFromRequest(c)

	filter := models.AssessmentFilter{Limit: p.Limit, Offset: p.Offset}
	if raw := c.Query("priority"); raw != "" {
		priority, ok := models.ParsePriority(raw)
		if !ok {
			return response.BadRequest(c, "priority must be one of HIGH, MEDIUM, LOW")
		}
		filter.Priority = priority
	}

	assessments, total, err := h.triageService.ListAssessments(c.UserContext(), filter)
	if err != nil {
		if errors.Is(err, triage.ErrInvalidFilter) {
			return response.BadRequest(c, err.Error())
		}
		log.Printf("Alert listing error: %v", err)
		return response.ServerError(c, "Failed to retrieve alerts")
	}

	p.Total = total
	return c.JSON(pagination.Response(p, assessments))
}
