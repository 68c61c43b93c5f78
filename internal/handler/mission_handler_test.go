package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lingopath/internal/dto"
	"lingopath/internal/middleware"
	"lingopath/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMissionService struct {
	mock.Mock
}

func (m *MockMissionService) GetNextMission(ctx context.Context, userID string) (*dto.NextMissionResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.NextMissionResponse), args.Error(1)
}

func (m *MockMissionService) SubmitAnswer(ctx context.Context, slug, userID string, req *dto.SubmitAnswerRequest) (*dto.AnswerResponse, error) {
	args := m.Called(ctx, slug, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AnswerResponse), args.Error(1)
}

func (m *MockMissionService) GetCompletions(ctx context.Context, userID string) ([]dto.MissionCompletionItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.MissionCompletionItem), args.Error(1)
}

// fakeAuth injects a fixed user identity the way Protected does.
func fakeAuth(userID string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(middleware.UserIDKey, userID)
		return c.Next()
	}
}

func missionTestApp(svc *MockMissionService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	h := NewMissionHandler(svc, validation.NewValidator())

	group := app.Group("/api/missions", fakeAuth("user-1"))
	group.Get("/next", h.GetNextMission)
	group.Get("/completions", h.GetCompletions)
	group.Post("/:slug/answer", h.SubmitAnswer)
	return app
}

func TestGetNextMissionHandler(t *testing.T) {
	svc := new(MockMissionService)
	svc.On("GetNextMission", mock.Anything, "user-1").Return(&dto.NextMissionResponse{
		Mission: &dto.MissionView{ID: "mission-1", Slug: "greetings", Title: "Greetings"},
		CurrentQuestion: &dto.MissionQuestionView{
			QuestionNumber: 1,
			Text:           "Q1",
			Options:        []string{"a", "b"},
		},
	}, nil)

	app := missionTestApp(svc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/missions/next", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.NextMissionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotNil(t, body.Mission)
	assert.Equal(t, "greetings", body.Mission.Slug)
	assert.Equal(t, 1, body.CurrentQuestion.QuestionNumber)
}

func TestSubmitAnswerHandler_Success(t *testing.T) {
	svc := new(MockMissionService)
	svc.On("SubmitAnswer", mock.Anything, "greetings", "user-1", mock.AnythingOfType("*dto.SubmitAnswerRequest")).
		Return(&dto.AnswerResponse{IsCorrect: true, CurrentScore: 1}, nil)

	app := missionTestApp(svc)

	payload := bytes.NewBufferString(`{"question_number":1,"selected_option_index":0}`)
	req := httptest.NewRequest(http.MethodPost, "/api/missions/greetings/answer", payload)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.AnswerResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.IsCorrect)

	// Option index 0 must have survived parsing and validation.
	sent := svc.Calls[0].Arguments.Get(3).(*dto.SubmitAnswerRequest)
	require.NotNil(t, sent.SelectedOptionIndex)
	assert.Equal(t, 0, *sent.SelectedOptionIndex)
}

func TestSubmitAnswerHandler_MissingOptionIndexIs400(t *testing.T) {
	svc := new(MockMissionService)
	app := missionTestApp(svc)

	payload := bytes.NewBufferString(`{"question_number":1}`)
	req := httptest.NewRequest(http.MethodPost, "/api/missions/greetings/answer", payload)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	svc.AssertNotCalled(t, "SubmitAnswer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitAnswerHandler_BadSlugIs400(t *testing.T) {
	svc := new(MockMissionService)
	app := missionTestApp(svc)

	payload := bytes.NewBufferString(`{"question_number":1,"selected_option_index":0}`)
	req := httptest.NewRequest(http.MethodPost, "/api/missions/BAD%20SLUG/answer", payload)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetCompletionsHandler(t *testing.T) {
	svc := new(MockMissionService)
	svc.On("GetCompletions", mock.Anything, "user-1").Return([]dto.MissionCompletionItem{
		{ID: "c1", MissionID: "mission-1", MissionTitle: "Greetings", Score: 2, TotalQuestions: 2},
	}, nil)

	app := missionTestApp(svc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/missions/completions", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body []dto.MissionCompletionItem
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, "Greetings", body[0].MissionTitle)
}
