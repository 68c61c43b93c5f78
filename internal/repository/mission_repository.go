package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"lingopath/internal/domain"
	"lingopath/internal/repository/models"
	"lingopath/internal/util"

	"github.com/jmoiron/sqlx"
)

// sqlxMissionRepository implements domain.MissionRepository using sqlx.
type sqlxMissionRepository struct {
	db *sqlx.DB
}

// NewSQLXMissionRepository creates a new instance of sqlxMissionRepository.
func NewSQLXMissionRepository(db *sqlx.DB) domain.MissionRepository {
	return &sqlxMissionRepository{db: db}
}

func toDomainMission(m *models.Mission) *domain.Mission {
	if m == nil {
		return nil
	}
	return &domain.Mission{
		ID:          m.ID,
		Slug:        m.Slug,
		Title:       m.Title,
		Description: m.Description.String,
		OrderIndex:  m.OrderIndex,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toDomainMissionProgress(m *models.MissionProgress) *domain.MissionProgress {
	if m == nil {
		return nil
	}
	var completedAt *time.Time
	if m.CompletedAt.Valid {
		completedAt = &m.CompletedAt.Time
	}
	return &domain.MissionProgress{
		ID:                    m.ID,
		UserID:                m.UserID,
		MissionID:             m.MissionID,
		CurrentQuestionNumber: m.CurrentQuestionNumber,
		QuestionsAnswered:     m.QuestionsAnswered,
		CurrentScore:          m.CurrentScore,
		Completed:             m.Completed != 0,
		CompletedAt:           completedAt,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}

func fromDomainMissionProgress(p *domain.MissionProgress) *models.MissionProgress {
	if p == nil {
		return nil
	}
	completed := 0
	if p.Completed {
		completed = 1
	}
	var completedAt sql.NullTime
	if p.CompletedAt != nil {
		completedAt = util.TimeToNullTime(*p.CompletedAt)
	}
	return &models.MissionProgress{
		ID:                    p.ID,
		UserID:                p.UserID,
		MissionID:             p.MissionID,
		CurrentQuestionNumber: p.CurrentQuestionNumber,
		QuestionsAnswered:     p.QuestionsAnswered,
		CurrentScore:          p.CurrentScore,
		Completed:             completed,
		CompletedAt:           completedAt,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}
}

func (r *sqlxMissionRepository) loadQuestions(ctx context.Context, mission *domain.Mission) error {
	query := `SELECT * FROM mission_questions WHERE mission_id = :mission_id ORDER BY question_number`

	stmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare mission questions query: %w", err)
	}
	defer stmt.Close()

	var rows []models.MissionQuestion
	if err := stmt.SelectContext(ctx, &rows, map[string]interface{}{"mission_id": mission.ID}); err != nil {
		return fmt.Errorf("failed to get mission questions: %w", err)
	}

	mission.Questions = make([]domain.MissionQuestion, 0, len(rows))
	for _, row := range rows {
		mission.Questions = append(mission.Questions, domain.MissionQuestion{
			ID:                 row.ID,
			MissionID:          row.MissionID,
			QuestionNumber:     row.QuestionNumber,
			Text:               row.Text,
			Options:            row.Options,
			CorrectOptionIndex: row.CorrectOptionIndex,
		})
	}
	return nil
}

// GetMissionBySlug retrieves a mission with its questions ordered by
// question number. Returns (nil, nil) when the slug is unknown.
func (r *sqlxMissionRepository) GetMissionBySlug(ctx context.Context, slug string) (*domain.Mission, error) {
	stmt, err := r.db.PrepareNamedContext(ctx, `SELECT * FROM missions WHERE slug = :slug`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare mission query: %w", err)
	}
	defer stmt.Close()

	var row models.Mission
	if err := stmt.GetContext(ctx, &row, map[string]interface{}{"slug": slug}); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get mission by slug: %w", err)
	}

	mission := toDomainMission(&row)
	if err := r.loadQuestions(ctx, mission); err != nil {
		return nil, err
	}
	return mission, nil
}

// GetNextIncompleteMission returns the lowest-order mission the user has not
// completed, with questions loaded, or (nil, nil) when all are done.
func (r *sqlxMissionRepository) GetNextIncompleteMission(ctx context.Context, userID string) (*domain.Mission, error) {
	query := `SELECT m.* FROM missions m
	          WHERE NOT EXISTS (
	              SELECT 1 FROM mission_progress p
	              WHERE p.mission_id = m.id
	                AND p.user_id = :user_id
	                AND p.completed = 1
	          )
	          ORDER BY m.order_index
	          FETCH FIRST 1 ROWS ONLY`

	stmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare next mission query: %w", err)
	}
	defer stmt.Close()

	var row models.Mission
	if err := stmt.GetContext(ctx, &row, map[string]interface{}{"user_id": userID}); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get next mission: %w", err)
	}

	mission := toDomainMission(&row)
	if err := r.loadQuestions(ctx, mission); err != nil {
		return nil, err
	}
	return mission, nil
}

// GetProgress returns (nil, nil) when the user has not started the mission.
func (r *sqlxMissionRepository) GetProgress(ctx context.Context, userID, missionID string) (*domain.MissionProgress, error) {
	query := `SELECT * FROM mission_progress WHERE user_id = :user_id AND mission_id = :mission_id`

	stmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare progress query: %w", err)
	}
	defer stmt.Close()

	var row models.MissionProgress
	args := map[string]interface{}{"user_id": userID, "mission_id": missionID}
	if err := stmt.GetContext(ctx, &row, args); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get mission progress: %w", err)
	}
	return toDomainMissionProgress(&row), nil
}

// CreateProgress inserts the lazily-created progress row for a first
// getNextMission call.
func (r *sqlxMissionRepository) CreateProgress(ctx context.Context, progress *domain.MissionProgress) error {
	query := `INSERT INTO mission_progress
	            (id, user_id, mission_id, current_question_number, questions_answered,
	             current_score, completed, completed_at, created_at, updated_at)
	          VALUES
	            (:id, :user_id, :mission_id, :current_question_number, :questions_answered,
	             :current_score, :completed, :completed_at, :created_at, :updated_at)`

	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, fromDomainMissionProgress(progress)); err != nil {
		return fmt.Errorf("failed to create mission progress: %w", err)
	}
	return nil
}

// AdvanceProgress writes the advanced row only if the stored position still
// equals expectedCurrent. Two racing submissions both read the same row, but
// only the first conditional update matches; the second affects zero rows
// and surfaces a progress conflict instead of double-advancing.
func (r *sqlxMissionRepository) AdvanceProgress(ctx context.Context, progress *domain.MissionProgress, expectedCurrent int) error {
	query := `UPDATE mission_progress SET
	            current_question_number = :current_question_number,
	            questions_answered = :questions_answered,
	            current_score = :current_score,
	            completed = :completed,
	            completed_at = :completed_at,
	            updated_at = :updated_at
	          WHERE user_id = :user_id
	            AND mission_id = :mission_id
	            AND current_question_number = :expected_current`

	row := fromDomainMissionProgress(progress)
	args := map[string]interface{}{
		"current_question_number": row.CurrentQuestionNumber,
		"questions_answered":      row.QuestionsAnswered,
		"current_score":           row.CurrentScore,
		"completed":               row.Completed,
		"completed_at":            row.CompletedAt,
		"updated_at":              row.UpdatedAt,
		"user_id":                 row.UserID,
		"mission_id":              row.MissionID,
		"expected_current":        expectedCurrent,
	}

	result, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, args)
	if err != nil {
		return fmt.Errorf("failed to advance mission progress: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewProgressConflictError()
	}
	return nil
}

// CreateCompletion appends an immutable completion history row.
func (r *sqlxMissionRepository) CreateCompletion(ctx context.Context, completion *domain.MissionCompletion) error {
	if completion.CompletedAt.IsZero() {
		completion.CompletedAt = time.Now()
	}

	row := &models.MissionCompletion{
		ID:             completion.ID,
		UserID:         completion.UserID,
		MissionID:      completion.MissionID,
		MissionTitle:   completion.MissionTitle,
		Score:          completion.Score,
		TotalQuestions: completion.TotalQuestions,
		CompletedAt:    completion.CompletedAt,
	}

	query := `INSERT INTO mission_completions (id, user_id, mission_id, mission_title, score, total_questions, completed_at)
	          VALUES (:id, :user_id, :mission_id, :mission_title, :score, :total_questions, :completed_at)`

	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("failed to create mission completion: %w", err)
	}
	return nil
}

// GetCompletionsByUser returns completion history, most recent first.
func (r *sqlxMissionRepository) GetCompletionsByUser(ctx context.Context, userID string) ([]domain.MissionCompletion, error) {
	query := `SELECT * FROM mission_completions WHERE user_id = :user_id ORDER BY completed_at DESC`

	stmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare completions query: %w", err)
	}
	defer stmt.Close()

	var rows []models.MissionCompletion
	if err := stmt.SelectContext(ctx, &rows, map[string]interface{}{"user_id": userID}); err != nil {
		return nil, fmt.Errorf("failed to list mission completions: %w", err)
	}

	completions := make([]domain.MissionCompletion, 0, len(rows))
	for _, row := range rows {
		completions = append(completions, domain.MissionCompletion{
			ID:             row.ID,
			UserID:         row.UserID,
			MissionID:      row.MissionID,
			MissionTitle:   row.MissionTitle,
			Score:          row.Score,
			TotalQuestions: row.TotalQuestions,
			CompletedAt:    row.CompletedAt,
		})
	}
	return completions, nil
}
