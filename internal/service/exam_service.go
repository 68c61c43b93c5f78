package service

import (
	"context"
	"encoding/json"
	"time"

	"lingopath/internal/cache"
	"lingopath/internal/domain"
	"lingopath/internal/dto"
	"lingopath/internal/logger"
	"lingopath/internal/util"

	"go.uber.org/zap"
)

// ExamService defines the interface for exam operations.
type ExamService interface {
	GetExams(ctx context.Context) ([]dto.ExamListItem, error)
	GetExamBySlug(ctx context.Context, slug string) (*dto.ExamDetailResponse, error)
	SubmitExam(ctx context.Context, slug, userID string, req *dto.SubmitExamRequest) (*dto.ExamSubmitResult, error)
	GetSubmissionHistory(ctx context.Context, slug, userID string) ([]dto.ExamSubmissionHistoryItem, error)
}

type examServiceImpl struct {
	examRepo   domain.ExamRepository
	cache      domain.Cache
	contentTTL time.Duration
}

// NewExamService creates a new instance of ExamService.
func NewExamService(examRepo domain.ExamRepository, cacheClient domain.Cache, contentTTL time.Duration) ExamService {
	return &examServiceImpl{
		examRepo:   examRepo,
		cache:      cacheClient,
		contentTTL: contentTTL,
	}
}

// GetExams lists all exams in display order with their question counts.
func (s *examServiceImpl) GetExams(ctx context.Context) ([]dto.ExamListItem, error) {
	exams, err := s.examRepo.GetAllExams(ctx)
	if err != nil {
		return nil, domain.NewInternalError("failed to list exams", err)
	}

	counts, err := s.examRepo.GetQuestionCounts(ctx)
	if err != nil {
		return nil, domain.NewInternalError("failed to count exam questions", err)
	}

	items := make([]dto.ExamListItem, 0, len(exams))
	for _, exam := range exams {
		items = append(items, dto.ExamListItem{
			ID:            exam.ID,
			Slug:          exam.Slug,
			Title:         exam.Title,
			Description:   exam.Description,
			QuestionCount: counts[exam.ID],
		})
	}
	return items, nil
}

// GetExamBySlug returns the taking view of an exam. The response carries no
// answer keys, so it is safe to cache as-is.
func (s *examServiceImpl) GetExamBySlug(ctx context.Context, slug string) (*dto.ExamDetailResponse, error) {
	appLogger := logger.Get()
	cacheKey := cache.GenerateCacheKey("exam", "detail", slug)

	cached, err := s.cache.Get(ctx, cacheKey)
	if err == nil {
		var resp dto.ExamDetailResponse
		if err := json.Unmarshal([]byte(cached), &resp); err == nil {
			return &resp, nil
		}
		appLogger.Warn("Failed to unmarshal cached exam detail", zap.String("key", cacheKey), zap.Error(err))
	} else if err != domain.ErrCacheMiss {
		appLogger.Warn("Cache get failed for exam detail", zap.String("key", cacheKey), zap.Error(err))
	}

	exam, err := s.examRepo.GetExamBySlug(ctx, slug)
	if err != nil {
		return nil, domain.NewInternalError("failed to load exam", err)
	}
	if exam == nil {
		return nil, domain.NewExamNotFoundError(slug)
	}

	resp := toExamDetailResponse(exam)

	if data, err := json.Marshal(resp); err == nil {
		if err := s.cache.Set(ctx, cacheKey, string(data), s.contentTTL); err != nil {
			appLogger.Warn("Cache set failed for exam detail", zap.String("key", cacheKey), zap.Error(err))
		}
	}
	return resp, nil
}

// SubmitExam grades a bulk answer sheet and records the attempt. Every
// submission is stored; history is never overwritten.
func (s *examServiceImpl) SubmitExam(ctx context.Context, slug, userID string, req *dto.SubmitExamRequest) (*dto.ExamSubmitResult, error) {
	exam, err := s.examRepo.GetExamBySlug(ctx, slug)
	if err != nil {
		return nil, domain.NewInternalError("failed to load exam", err)
	}
	if exam == nil {
		return nil, domain.NewExamNotFoundError(slug)
	}

	graded := exam.Grade(req.Answers)

	submission := &domain.ExamSubmission{
		ID:             util.NewULID(),
		ExamID:         exam.ID,
		UserID:         userID,
		Answers:        req.Answers,
		Score:          graded.Score,
		TotalQuestions: graded.TotalQuestions,
		SubmittedAt:    time.Now(),
	}
	if err := s.examRepo.CreateSubmission(ctx, submission); err != nil {
		return nil, domain.NewInternalError("failed to record submission", err)
	}

	logger.Get().Info("Exam submitted",
		zap.String("examSlug", slug),
		zap.String("userID", userID),
		zap.Int("score", graded.Score),
		zap.Int("total", graded.TotalQuestions))

	results := make([]dto.QuestionResultView, 0, len(graded.Results))
	for _, r := range graded.Results {
		results = append(results, dto.QuestionResultView{
			QuestionNumber: r.QuestionNumber,
			Correct:        r.Correct,
			Submitted:      r.Submitted,
			Answered:       r.Answered,
		})
	}

	return &dto.ExamSubmitResult{
		SubmissionID:   submission.ID,
		Score:          graded.Score,
		TotalQuestions: graded.TotalQuestions,
		Percentage:     graded.Percentage,
		Results:        results,
	}, nil
}

// GetSubmissionHistory lists a user's past attempts at one exam, newest first.
func (s *examServiceImpl) GetSubmissionHistory(ctx context.Context, slug, userID string) ([]dto.ExamSubmissionHistoryItem, error) {
	exam, err := s.examRepo.GetExamBySlug(ctx, slug)
	if err != nil {
		return nil, domain.NewInternalError("failed to load exam", err)
	}
	if exam == nil {
		return nil, domain.NewExamNotFoundError(slug)
	}

	submissions, err := s.examRepo.GetSubmissionsByExamAndUser(ctx, exam.ID, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load submissions", err)
	}

	items := make([]dto.ExamSubmissionHistoryItem, 0, len(submissions))
	for _, sub := range submissions {
		items = append(items, dto.ExamSubmissionHistoryItem{
			SubmissionID:   sub.ID,
			Score:          sub.Score,
			TotalQuestions: sub.TotalQuestions,
			SubmittedAt:    sub.SubmittedAt,
		})
	}
	return items, nil
}

func toExamDetailResponse(exam *domain.Exam) *dto.ExamDetailResponse {
	questions := make([]dto.ExamQuestionView, 0, len(exam.Questions))
	for _, q := range exam.Questions {
		questions = append(questions, dto.ExamQuestionView{
			QuestionNumber: q.QuestionNumber,
			Type:           string(q.Type),
			Text:           q.Text,
			Options:        q.Options,
		})
	}
	return &dto.ExamDetailResponse{
		ID:          exam.ID,
		Slug:        exam.Slug,
		Title:       exam.Title,
		Description: exam.Description,
		HTMLContent: exam.HTMLContent,
		Questions:   questions,
	}
}
