package domain

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"
)

// QuestionType distinguishes free-text questions from multiple-choice ones.
type QuestionType string

const (
	QuestionTypeText  QuestionType = "text"
	QuestionTypeRadio QuestionType = "radio"
)

// Exam represents a multi-question assessment graded in one bulk submission.
type Exam struct {
	ID          string
	Slug        string
	Title       string
	Description string
	HTMLContent string
	OrderIndex  int
	Questions   []ExamQuestion
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ExamQuestion is one entry in an exam. QuestionNumber is dense 1..N per exam.
// Options and CorrectOptionIndex apply to radio questions, CorrectAnswer to
// text questions.
type ExamQuestion struct {
	ID                 string
	ExamID             string
	QuestionNumber     int
	Type               QuestionType
	Text               string
	Options            []string
	CorrectAnswer      string
	CorrectOptionIndex int
}

// ExamSubmission is an append-only record of one grading run. Repeat
// submissions accumulate; nothing is overwritten.
type ExamSubmission struct {
	ID             string
	ExamID         string
	UserID         string
	Answers        map[string]string
	Score          int
	TotalQuestions int
	SubmittedAt    time.Time
}

// QuestionResult is the per-question outcome of a grading run.
type QuestionResult struct {
	QuestionNumber int
	Correct        bool
	Submitted      string
	Answered       bool
}

// GradeResult is the outcome of grading a full submission.
type GradeResult struct {
	Score          int
	TotalQuestions int
	Percentage     int
	Results        []QuestionResult
}

// NormalizeAnswer fixes the text comparison policy: surrounding whitespace
// is ignored and matching is case-insensitive.
func NormalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Grade compares submitted answers (keyed by question number as a string)
// against the stored keys. Missing answers count as incorrect, never as
// errors. A zero-question exam grades to 0%.
func (e *Exam) Grade(answers map[string]string) GradeResult {
	result := GradeResult{
		TotalQuestions: len(e.Questions),
		Results:        make([]QuestionResult, 0, len(e.Questions)),
	}

	for _, q := range e.Questions {
		submitted, answered := answers[strconv.Itoa(q.QuestionNumber)]
		qr := QuestionResult{
			QuestionNumber: q.QuestionNumber,
			Submitted:      submitted,
			Answered:       answered,
		}
		if answered {
			qr.Correct = q.IsCorrect(submitted)
		}
		if qr.Correct {
			result.Score++
		}
		result.Results = append(result.Results, qr)
	}

	if result.TotalQuestions > 0 {
		result.Percentage = int(math.Round(float64(result.Score) / float64(result.TotalQuestions) * 100))
	}
	return result
}

// IsCorrect checks one submitted value against this question's key.
// Radio answers are submitted as string-encoded option indices.
func (q *ExamQuestion) IsCorrect(submitted string) bool {
	switch q.Type {
	case QuestionTypeRadio:
		idx, err := strconv.Atoi(strings.TrimSpace(submitted))
		if err != nil {
			return false
		}
		return idx == q.CorrectOptionIndex
	default:
		return NormalizeAnswer(submitted) == NormalizeAnswer(q.CorrectAnswer)
	}
}

// ExamRepository defines the interface for exam content and submission
// persistence. Content lookups return (nil, nil) when no row matches.
type ExamRepository interface {
	// GetAllExams returns exam headers ordered by OrderIndex, without questions.
	GetAllExams(ctx context.Context) ([]Exam, error)

	// GetQuestionCounts returns the number of questions per exam ID.
	GetQuestionCounts(ctx context.Context) (map[string]int, error)

	GetExamBySlug(ctx context.Context, slug string) (*Exam, error)
	CreateSubmission(ctx context.Context, submission *ExamSubmission) error
	GetSubmissionsByExamAndUser(ctx context.Context, examID, userID string) ([]ExamSubmission, error)
}
