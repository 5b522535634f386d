package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"fraudtriage/internal/models"
	"fraudtriage/internal/services/scoring"
	"fraudtriage/internal/services/triage"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTriageService struct {
	mock.Mock
}

func (m *MockTriageService) Analyze(ctx context.Context, tx models.Transaction) (*models.TriageResult, error) {
	args := m.Called(ctx, tx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TriageResult), args.Error(1)
}

func (m *MockTriageService) GetAssessment(ctx context.Context, id string) (*models.Assessment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Assessment), args.Error(1)
}

func (m *MockTriageService) ListAssessments(ctx context.Context, filter models.AssessmentFilter) ([]models.Assessment, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Assessment), args.Get(1).(int64), args.Error(2)
}

func newTriageApp(svc triage.Service) *fiber.App {
	h := NewTriageHandler(svc)
	app := fiber.New()
	app.Post("/analyze-transaction", h.AnalyzeTransaction)
	app.Get("/alerts", h.ListAlerts)
	app.Get("/alerts/:id", h.GetAlert)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return resp.StatusCode, out
}

func TestAnalyzeTransaction_EndToEnd(t *testing.T) {
	svc := triage.NewService(scoring.NewStaticScorer(0.91), nil, nil, nil)
	app := newTriageApp(svc)

	status, body := postJSON(t, app, "/analyze-transaction",
		`{"amount": 1200, "velocity_flag": true, "features": [0.1, 0.2]}`)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 0.91, body["risk_score"])
	assert.Equal(t, "HIGH", body["priority"])
	explanation := body["explanation"].(string)
	assert.True(t, strings.HasPrefix(explanation,
		"This transaction was flagged for review with a HIGH priority. The fraud risk model assigned a risk score of 0.91. "))
	assert.Contains(t, explanation, "Multiple rapid transactions")
	assert.NotContains(t, explanation, "location differs")
}

func TestAnalyzeTransaction_FlagsDefaultFalse(t *testing.T) {
	svc := new(MockTriageService)
	svc.On("Analyze", mock.Anything, models.Transaction{Amount: 100}).
		Return(&models.TriageResult{RiskScore: 0.2, Priority: models.PriorityLow, Explanation: "x"}, nil)

	status, body := postJSON(t, newTriageApp(svc), "/analyze-transaction", `{"amount": 100}`)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "LOW", body["priority"])
	svc.AssertExpectations(t)
}

func TestAnalyzeTransaction_Errors(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(*MockTriageService)
		status    int
		errMsg    string
	}{
		{
			name:   "missing amount",
			body:   `{"velocity_flag": true}`,
			status: fiber.StatusBadRequest,
			errMsg: "amount is required",
		},
		{
			name:   "negative amount",
			body:   `{"amount": -5}`,
			status: fiber.StatusBadRequest,
			errMsg: "non-negative",
		},
		{
			name:   "malformed body",
			body:   `{"amount": `,
			status: fiber.StatusBadRequest,
		},
		{
			name: "scorer unavailable",
			body: `{"amount": 10}`,
			setupMock: func(s *MockTriageService) {
				s.On("Analyze", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("%w: timeout", triage.ErrScoringFailed))
			},
			status: fiber.StatusBadGateway,
		},
		{
			name: "score out of range",
			body: `{"amount": 10}`,
			setupMock: func(s *MockTriageService) {
				s.On("Analyze", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("%w: 1.4", triage.ErrInvalidScore))
			},
			status: fiber.StatusBadGateway,
		},
		{
			name: "unexpected failure",
			body: `{"amount": 10}`,
			setupMock: func(s *MockTriageService) {
				s.On("Analyze", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))
			},
			status: fiber.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockTriageService)
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}

			status, body := postJSON(t, newTriageApp(svc), "/analyze-transaction", tt.body)
			assert.Equal(t, tt.status, status)
			if tt.errMsg != "" {
				assert.Contains(t, body["error"], tt.errMsg)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestGetAlert(t *testing.T) {
	svc := new(MockTriageService)
	svc.On("GetAssessment", mock.Anything, "known").
		Return(&models.Assessment{ID: "known", Priority: models.PriorityMedium}, nil)
	svc.On("GetAssessment", mock.Anything, "missing").Return(nil, triage.ErrAssessmentNotFound)
	app := newTriageApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/alerts/known", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/alerts/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestListAlerts(t *testing.T) {
	svc := new(MockTriageService)
	svc.On("ListAssessments", mock.Anything, models.AssessmentFilter{Priority: models.PriorityHigh, Limit: 5, Offset: 5}).
		Return([]models.Assessment{{ID: "a"}}, int64(6), nil)
	app := newTriageApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/alerts?priority=high&page=2&limit=5", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data []models.Assessment    `json:"data"`
		Meta map[string]interface{} `json:"meta"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Data, 1)
	assert.Equal(t, float64(2), body.Meta["total_pages"])
	svc.AssertExpectations(t)

	resp, err = app.Test(httptest.NewRequest("GET", "/alerts?priority=urgent", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
