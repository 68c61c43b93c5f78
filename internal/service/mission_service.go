package service

import (
	"context"

	"lingopath/internal/domain"
	"lingopath/internal/dto"
	"lingopath/internal/logger"
	"lingopath/internal/util"

	"go.uber.org/zap"
)

// MissionService defines the interface for mission progression operations.
type MissionService interface {
	GetNextMission(ctx context.Context, userID string) (*dto.NextMissionResponse, error)
	SubmitAnswer(ctx context.Context, slug, userID string, req *dto.SubmitAnswerRequest) (*dto.AnswerResponse, error)
	GetCompletions(ctx context.Context, userID string) ([]dto.MissionCompletionItem, error)
}

type missionServiceImpl struct {
	missionRepo domain.MissionRepository
	txManager   domain.TransactionManager
}

// NewMissionService creates a new instance of MissionService.
func NewMissionService(missionRepo domain.MissionRepository, txManager domain.TransactionManager) MissionService {
	return &missionServiceImpl{
		missionRepo: missionRepo,
		txManager:   txManager,
	}
}

// GetNextMission returns the lowest-ordered mission the user has not
// completed, together with the question to answer next. Progress is created
// lazily on first sight of a mission, so re-requesting resumes mid-mission
// instead of restarting. When every mission is done, Mission is null and a
// message says so.
func (s *missionServiceImpl) GetNextMission(ctx context.Context, userID string) (*dto.NextMissionResponse, error) {
	mission, err := s.missionRepo.GetNextIncompleteMission(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to find next mission", err)
	}
	if mission == nil {
		return &dto.NextMissionResponse{
			Mission: nil,
			Message: "All missions completed",
		}, nil
	}

	progress, err := s.missionRepo.GetProgress(ctx, userID, mission.ID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load progress", err)
	}
	if progress == nil {
		progress = domain.NewMissionProgress(userID, mission.ID)
		progress.ID = util.NewULID()
		if err := s.missionRepo.CreateProgress(ctx, progress); err != nil {
			return nil, domain.NewInternalError("failed to create progress", err)
		}
		logger.Get().Info("Mission started",
			zap.String("missionSlug", mission.Slug),
			zap.String("userID", userID))
	}

	resp := &dto.NextMissionResponse{
		Mission: &dto.MissionView{
			ID:          mission.ID,
			Slug:        mission.Slug,
			Title:       mission.Title,
			Description: mission.Description,
		},
		Progress: &dto.MissionProgressView{
			CurrentQuestionNumber: progress.CurrentQuestionNumber,
			QuestionsAnswered:     progress.QuestionsAnswered,
			CurrentScore:          progress.CurrentScore,
			Completed:             progress.Completed,
		},
	}
	if q := mission.QuestionByNumber(progress.CurrentQuestionNumber); q != nil {
		resp.CurrentQuestion = toMissionQuestionView(q)
	}
	return resp, nil
}

// SubmitAnswer grades one answer against the user's current position in the
// mission. The answer must target the current question exactly; the stored
// row only advances when its position is unchanged since this request read
// it, so two racing submissions cannot both count.
func (s *missionServiceImpl) SubmitAnswer(ctx context.Context, slug, userID string, req *dto.SubmitAnswerRequest) (*dto.AnswerResponse, error) {
	mission, err := s.missionRepo.GetMissionBySlug(ctx, slug)
	if err != nil {
		return nil, domain.NewInternalError("failed to load mission", err)
	}
	if mission == nil {
		return nil, domain.NewMissionNotFoundError(slug)
	}

	progress, err := s.missionRepo.GetProgress(ctx, userID, mission.ID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load progress", err)
	}
	if progress == nil {
		progress = domain.NewMissionProgress(userID, mission.ID)
		progress.ID = util.NewULID()
		if err := s.missionRepo.CreateProgress(ctx, progress); err != nil {
			return nil, domain.NewInternalError("failed to create progress", err)
		}
	}

	expectedCurrent := progress.CurrentQuestionNumber
	outcome, err := progress.Apply(mission, req.QuestionNumber, *req.SelectedOptionIndex)
	if err != nil {
		return nil, err
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.missionRepo.AdvanceProgress(txCtx, progress, expectedCurrent); err != nil {
			return err
		}
		if outcome.Completed {
			completion := &domain.MissionCompletion{
				ID:             util.NewULID(),
				UserID:         userID,
				MissionID:      mission.ID,
				MissionTitle:   mission.Title,
				Score:          progress.CurrentScore,
				TotalQuestions: outcome.TotalQuestions,
				CompletedAt:    *progress.CompletedAt,
			}
			return s.missionRepo.CreateCompletion(txCtx, completion)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if outcome.Completed {
		logger.Get().Info("Mission completed",
			zap.String("missionSlug", slug),
			zap.String("userID", userID),
			zap.Int("score", outcome.Score),
			zap.Int("total", outcome.TotalQuestions))
	}

	resp := &dto.AnswerResponse{
		IsCorrect:    outcome.IsCorrect,
		CurrentScore: outcome.Score,
		Completed:    outcome.Completed,
	}
	if outcome.Completed {
		score := outcome.Score
		total := outcome.TotalQuestions
		percentage := outcome.Percentage
		resp.FinalScore = &score
		resp.TotalQuestions = &total
		resp.Percentage = &percentage
	} else if q := mission.QuestionByNumber(outcome.NextQuestionNumber); q != nil {
		resp.NextQuestion = toMissionQuestionView(q)
	}
	return resp, nil
}

// GetCompletions lists the user's completed missions, most recent first.
func (s *missionServiceImpl) GetCompletions(ctx context.Context, userID string) ([]dto.MissionCompletionItem, error) {
	completions, err := s.missionRepo.GetCompletionsByUser(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load completions", err)
	}

	items := make([]dto.MissionCompletionItem, 0, len(completions))
	for _, c := range completions {
		items = append(items, dto.MissionCompletionItem{
			ID:             c.ID,
			MissionID:      c.MissionID,
			MissionTitle:   c.MissionTitle,
			Score:          c.Score,
			TotalQuestions: c.TotalQuestions,
			CompletedAt:    c.CompletedAt,
		})
	}
	return items, nil
}

func toMissionQuestionView(q *domain.MissionQuestion) *dto.MissionQuestionView {
	return &dto.MissionQuestionView{
		QuestionNumber: q.QuestionNumber,
		Text:           q.Text,
		Options:        q.Options,
	}
}
