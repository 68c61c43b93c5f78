package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"lingopath/internal/domain"
	"lingopath/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// sqlxExamRepository implements domain.ExamRepository using sqlx.
type sqlxExamRepository struct {
	db *sqlx.DB
}

// NewSQLXExamRepository creates a new instance of sqlxExamRepository.
func NewSQLXExamRepository(db *sqlx.DB) domain.ExamRepository {
	return &sqlxExamRepository{db: db}
}

func toDomainExam(m *models.Exam) *domain.Exam {
	if m == nil {
		return nil
	}
	return &domain.Exam{
		ID:          m.ID,
		Slug:        m.Slug,
		Title:       m.Title,
		Description: m.Description.String,
		HTMLContent: m.HTMLContent.String,
		OrderIndex:  m.OrderIndex,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toDomainExamQuestion(m *models.ExamQuestion) domain.ExamQuestion {
	return domain.ExamQuestion{
		ID:                 m.ID,
		ExamID:             m.ExamID,
		QuestionNumber:     m.QuestionNumber,
		Type:               domain.QuestionType(m.QType),
		Text:               m.Text,
		Options:            m.Options,
		CorrectAnswer:      m.CorrectAnswer.String,
		CorrectOptionIndex: int(m.CorrectOptionIndex.Int64),
	}
}

// GetAllExams returns exam headers ordered by order_index, without questions.
func (r *sqlxExamRepository) GetAllExams(ctx context.Context) ([]domain.Exam, error) {
	var rows []models.Exam
	query := `SELECT * FROM exams ORDER BY order_index`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list exams: %w", err)
	}

	exams := make([]domain.Exam, 0, len(rows))
	for i := range rows {
		exams = append(exams, *toDomainExam(&rows[i]))
	}
	return exams, nil
}

// GetQuestionCounts returns the number of questions per exam ID.
func (r *sqlxExamRepository) GetQuestionCounts(ctx context.Context) (map[string]int, error) {
	type countRow struct {
		ExamID string `db:"exam_id"`
		Cnt    int    `db:"cnt"`
	}
	var rows []countRow
	query := `SELECT exam_id, COUNT(*) AS cnt FROM exam_questions GROUP BY exam_id`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to count exam questions: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.ExamID] = row.Cnt
	}
	return counts, nil
}

// GetExamBySlug retrieves an exam with its questions ordered by question
// number. Returns (nil, nil) when the slug is unknown.
func (r *sqlxExamRepository) GetExamBySlug(ctx context.Context, slug string) (*domain.Exam, error) {
	stmt, err := r.db.PrepareNamedContext(ctx, `SELECT * FROM exams WHERE slug = :slug`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare exam query: %w", err)
	}
	defer stmt.Close()

	var examRow models.Exam
	if err := stmt.GetContext(ctx, &examRow, map[string]interface{}{"slug": slug}); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get exam by slug: %w", err)
	}

	var questionRows []models.ExamQuestion
	query := `SELECT * FROM exam_questions WHERE exam_id = :exam_id ORDER BY question_number`
	qStmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare exam questions query: %w", err)
	}
	defer qStmt.Close()

	if err := qStmt.SelectContext(ctx, &questionRows, map[string]interface{}{"exam_id": examRow.ID}); err != nil {
		return nil, fmt.Errorf("failed to get exam questions: %w", err)
	}

	exam := toDomainExam(&examRow)
	exam.Questions = make([]domain.ExamQuestion, 0, len(questionRows))
	for i := range questionRows {
		exam.Questions = append(exam.Questions, toDomainExamQuestion(&questionRows[i]))
	}
	return exam, nil
}

// CreateSubmission appends a graded submission; history is never overwritten.
func (r *sqlxExamRepository) CreateSubmission(ctx context.Context, submission *domain.ExamSubmission) error {
	answersJSON, err := json.Marshal(submission.Answers)
	if err != nil {
		return fmt.Errorf("failed to encode submission answers: %w", err)
	}

	if submission.SubmittedAt.IsZero() {
		submission.SubmittedAt = time.Now()
	}

	row := &models.ExamSubmission{
		ID:             submission.ID,
		ExamID:         submission.ExamID,
		UserID:         submission.UserID,
		Answers:        string(answersJSON),
		Score:          submission.Score,
		TotalQuestions: submission.TotalQuestions,
		SubmittedAt:    submission.SubmittedAt,
	}

	query := `INSERT INTO exam_submissions (id, exam_id, user_id, answers, score, total_questions, submitted_at)
	          VALUES (:id, :exam_id, :user_id, :answers, :score, :total_questions, :submitted_at)`

	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("failed to create exam submission: %w", err)
	}
	return nil
}

// GetSubmissionsByExamAndUser returns the caller's history, most recent first.
func (r *sqlxExamRepository) GetSubmissionsByExamAndUser(ctx context.Context, examID, userID string) ([]domain.ExamSubmission, error) {
	query := `SELECT * FROM exam_submissions
	          WHERE exam_id = :exam_id AND user_id = :user_id
	          ORDER BY submitted_at DESC`

	stmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare submissions query: %w", err)
	}
	defer stmt.Close()

	var rows []models.ExamSubmission
	args := map[string]interface{}{"exam_id": examID, "user_id": userID}
	if err := stmt.SelectContext(ctx, &rows, args); err != nil {
		return nil, fmt.Errorf("failed to list exam submissions: %w", err)
	}

	submissions := make([]domain.ExamSubmission, 0, len(rows))
	for _, row := range rows {
		var answers map[string]string
		if err := json.Unmarshal([]byte(row.Answers), &answers); err != nil {
			return nil, fmt.Errorf("failed to decode submission answers: %w", err)
		}
		submissions = append(submissions, domain.ExamSubmission{
			ID:             row.ID,
			ExamID:         row.ExamID,
			UserID:         row.UserID,
			Answers:        answers,
			Score:          row.Score,
			TotalQuestions: row.TotalQuestions,
			SubmittedAt:    row.SubmittedAt,
		})
	}
	return submissions, nil
}
