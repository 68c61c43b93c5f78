package domain

import (
	"context"
	"math"
	"time"
)

// Mission is a gamified, single-question-at-a-time quiz with persistent
// per-user progress and score.
type Mission struct {
	ID          string
	Slug        string
	Title       string
	Description string
	OrderIndex  int
	Questions   []MissionQuestion
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MissionQuestion is one multiple-choice entry. QuestionNumber is dense
// 1..N per mission and defines the answer order.
type MissionQuestion struct {
	ID                 string
	MissionID          string
	QuestionNumber     int
	Text               string
	Options            []string
	CorrectOptionIndex int
}

// QuestionByNumber returns the question with the given number, or nil.
func (m *Mission) QuestionByNumber(number int) *MissionQuestion {
	for i := range m.Questions {
		if m.Questions[i].QuestionNumber == number {
			return &m.Questions[i]
		}
	}
	return nil
}

// MissionProgress is the mutable per-(user, mission) record tracking the
// current position and score. While incomplete the invariant
// QuestionsAnswered == CurrentQuestionNumber-1 holds; Completed implies
// QuestionsAnswered equals the mission's question count.
type MissionProgress struct {
	ID                    string
	UserID                string
	MissionID             string
	CurrentQuestionNumber int
	QuestionsAnswered     int
	CurrentScore          int
	Completed             bool
	CompletedAt           *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// NewMissionProgress starts a fresh attempt at the first question.
func NewMissionProgress(userID, missionID string) *MissionProgress {
	now := time.Now()
	return &MissionProgress{
		UserID:                userID,
		MissionID:             missionID,
		CurrentQuestionNumber: 1,
		QuestionsAnswered:     0,
		CurrentScore:          0,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}

// AnswerOutcome is the result of applying one answer to a progress record.
type AnswerOutcome struct {
	IsCorrect          bool
	Score              int
	Completed          bool
	NextQuestionNumber int // set when the mission continues
	TotalQuestions     int
	Percentage         int // set when the mission completes
}

// Apply grades one answer and advances the progress in memory. A completed
// mission rejects further answers, and the submitted question number must
// match the current position exactly; stale or out-of-order submissions
// are an error, never silently accepted.
func (p *MissionProgress) Apply(m *Mission, questionNumber, selectedOptionIndex int) (AnswerOutcome, error) {
	if p.Completed {
		return AnswerOutcome{}, NewMissionCompletedError(m.Slug)
	}
	if questionNumber != p.CurrentQuestionNumber {
		return AnswerOutcome{}, NewQuestionMismatchError(questionNumber, p.CurrentQuestionNumber)
	}

	question := m.QuestionByNumber(questionNumber)
	if question == nil {
		return AnswerOutcome{}, NewInvalidInputError("question number out of range")
	}

	correct := selectedOptionIndex == question.CorrectOptionIndex
	if correct {
		p.CurrentScore++
	}
	p.QuestionsAnswered++
	p.CurrentQuestionNumber++
	p.UpdatedAt = time.Now()

	outcome := AnswerOutcome{
		IsCorrect:      correct,
		Score:          p.CurrentScore,
		TotalQuestions: len(m.Questions),
	}

	if p.CurrentQuestionNumber > len(m.Questions) {
		now := time.Now()
		p.Completed = true
		p.CompletedAt = &now
		outcome.Completed = true
		outcome.Percentage = int(math.Round(float64(p.CurrentScore) / float64(len(m.Questions)) * 100))
	} else {
		outcome.NextQuestionNumber = p.CurrentQuestionNumber
	}

	return outcome, nil
}

// MissionCompletion is an immutable history row written once per full
// completion. MissionTitle is denormalized so history survives content edits.
type MissionCompletion struct {
	ID             string
	UserID         string
	MissionID      string
	MissionTitle   string
	Score          int
	TotalQuestions int
	CompletedAt    time.Time
}

// MissionRepository defines the interface for mission content, progress and
// completion persistence. Lookups return (nil, nil) when no row matches.
type MissionRepository interface {
	GetMissionBySlug(ctx context.Context, slug string) (*Mission, error)

	// GetNextIncompleteMission returns the mission with the lowest order
	// index the user has not completed, or (nil, nil) when all are done.
	GetNextIncompleteMission(ctx context.Context, userID string) (*Mission, error)

	GetProgress(ctx context.Context, userID, missionID string) (*MissionProgress, error)
	CreateProgress(ctx context.Context, progress *MissionProgress) error

	// AdvanceProgress persists an advanced progress row only if the stored
	// current_question_number still equals expectedCurrent, guaranteeing
	// at-most-once advancement per question across concurrent requests and
	// stateless instances. A lost race returns a PROGRESS_CONFLICT error.
	AdvanceProgress(ctx context.Context, progress *MissionProgress, expectedCurrent int) error

	CreateCompletion(ctx context.Context, completion *MissionCompletion) error
	GetCompletionsByUser(ctx context.Context, userID string) ([]MissionCompletion, error)
}
