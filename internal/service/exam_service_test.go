package service

import (
	"context"
	"testing"
	"time"

	"lingopath/internal/domain"
	"lingopath/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockExamRepository struct {
	mock.Mock
}

func (m *MockExamRepository) GetAllExams(ctx context.Context) ([]domain.Exam, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Exam), args.Error(1)
}

func (m *MockExamRepository) GetQuestionCounts(ctx context.Context) (map[string]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func (m *MockExamRepository) GetExamBySlug(ctx context.Context, slug string) (*domain.Exam, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Exam), args.Error(1)
}

func (m *MockExamRepository) CreateSubmission(ctx context.Context, submission *domain.ExamSubmission) error {
	args := m.Called(ctx, submission)
	return args.Error(0)
}

func (m *MockExamRepository) GetSubmissionsByExamAndUser(ctx context.Context, examID, userID string) ([]domain.ExamSubmission, error) {
	args := m.Called(ctx, examID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExamSubmission), args.Error(1)
}

func placementExam() *domain.Exam {
	return &domain.Exam{
		ID:    "exam-1",
		Slug:  "placement",
		Title: "Placement Test",
		Questions: []domain.ExamQuestion{
			{ID: "q1", ExamID: "exam-1", QuestionNumber: 1, Type: domain.QuestionTypeText, Text: "Past of go", CorrectAnswer: "went"},
			{ID: "q2", ExamID: "exam-1", QuestionNumber: 2, Type: domain.QuestionTypeRadio, Text: "Pick", Options: []string{"a", "b"}, CorrectOptionIndex: 0},
		},
	}
}

func TestGetExams_IncludesQuestionCounts(t *testing.T) {
	repo := new(MockExamRepository)
	repo.On("GetAllExams", mock.Anything).Return([]domain.Exam{
		{ID: "exam-1", Slug: "placement", Title: "Placement Test"},
		{ID: "exam-2", Slug: "verbs", Title: "Irregular Verbs"},
	}, nil)
	repo.On("GetQuestionCounts", mock.Anything).Return(map[string]int{"exam-1": 2}, nil)

	svc := NewExamService(repo, newMemoryCache(), time.Minute)

	items, err := svc.GetExams(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].QuestionCount)
	assert.Equal(t, 0, items[1].QuestionCount)
}

func TestGetExamBySlug_OmitsAnswerKeysAndCaches(t *testing.T) {
	repo := new(MockExamRepository)
	repo.On("GetExamBySlug", mock.Anything, "placement").Return(placementExam(), nil).Once()

	svc := NewExamService(repo, newMemoryCache(), time.Minute)

	resp, err := svc.GetExamBySlug(context.Background(), "placement")
	require.NoError(t, err)
	require.Len(t, resp.Questions, 2)
	assert.Equal(t, "text", resp.Questions[0].Type)

	// Second call must be served from cache; the mock allows one repo hit.
	again, err := svc.GetExamBySlug(context.Background(), "placement")
	require.NoError(t, err)
	assert.Equal(t, resp.ID, again.ID)
	repo.AssertExpectations(t)
}

func TestGetExamBySlug_NotFound(t *testing.T) {
	repo := new(MockExamRepository)
	repo.On("GetExamBySlug", mock.Anything, "missing").Return(nil, nil)

	svc := NewExamService(repo, newMemoryCache(), time.Minute)

	_, err := svc.GetExamBySlug(context.Background(), "missing")
	require.Error(t, err)
	domainErr, ok := err.(*domain.DomainError)
	require.True(t, ok)
	assert.Equal(t, domain.CodeExamNotFound, domainErr.Code)
}

func TestSubmitExam_GradesAndPersists(t *testing.T) {
	repo := new(MockExamRepository)
	repo.On("GetExamBySlug", mock.Anything, "placement").Return(placementExam(), nil)
	repo.On("CreateSubmission", mock.Anything, mock.AnythingOfType("*domain.ExamSubmission")).Return(nil)

	svc := NewExamService(repo, newMemoryCache(), time.Minute)

	resp, err := svc.SubmitExam(context.Background(), "placement", "user-1", &dto.SubmitExamRequest{
		Answers: map[string]string{"1": "went", "2": "1"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Score)
	assert.Equal(t, 2, resp.TotalQuestions)
	assert.Equal(t, 50, resp.Percentage)
	assert.NotEmpty(t, resp.SubmissionID)
	require.Len(t, resp.Results, 2)
	assert.True(t, resp.Results[0].Correct)
	assert.False(t, resp.Results[1].Correct)

	stored := repo.Calls[len(repo.Calls)-1].Arguments.Get(1).(*domain.ExamSubmission)
	assert.Equal(t, "user-1", stored.UserID)
	assert.Equal(t, 1, stored.Score)
	assert.Equal(t, map[string]string{"1": "went", "2": "1"}, stored.Answers)
}

func TestSubmitExam_RepeatSubmissionsBothStored(t *testing.T) {
	repo := new(MockExamRepository)
	repo.On("GetExamBySlug", mock.Anything, "placement").Return(placementExam(), nil)
	repo.On("CreateSubmission", mock.Anything, mock.AnythingOfType("*domain.ExamSubmission")).Return(nil).Twice()

	svc := NewExamService(repo, newMemoryCache(), time.Minute)

	first, err := svc.SubmitExam(context.Background(), "placement", "user-1", &dto.SubmitExamRequest{
		Answers: map[string]string{"1": "went", "2": "0"},
	})
	require.NoError(t, err)
	second, err := svc.SubmitExam(context.Background(), "placement", "user-1", &dto.SubmitExamRequest{
		Answers: map[string]string{},
	})
	require.NoError(t, err)

	assert.NotEqual(t, first.SubmissionID, second.SubmissionID)
	assert.Equal(t, 100, first.Percentage)
	assert.Equal(t, 0, second.Percentage)
	repo.AssertExpectations(t)
}

func TestGetSubmissionHistory(t *testing.T) {
	now := time.Now()
	repo := new(MockExamRepository)
	repo.On("GetExamBySlug", mock.Anything, "placement").Return(placementExam(), nil)
	repo.On("GetSubmissionsByExamAndUser", mock.Anything, "exam-1", "user-1").Return([]domain.ExamSubmission{
		{ID: "s2", ExamID: "exam-1", UserID: "user-1", Score: 2, TotalQuestions: 2, SubmittedAt: now},
		{ID: "s1", ExamID: "exam-1", UserID: "user-1", Score: 1, TotalQuestions: 2, SubmittedAt: now.Add(-time.Hour)},
	}, nil)

	svc := NewExamService(repo, newMemoryCache(), time.Minute)

	items, err := svc.GetSubmissionHistory(context.Background(), "placement", "user-1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "s2", items[0].SubmissionID)
	assert.Equal(t, "s1", items[1].SubmissionID)
}
