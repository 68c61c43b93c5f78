package models

import (
	"database/sql"
	"time"
)

// Mission is the row model for the missions table.
type Mission struct {
	ID          string         `db:"id"`
	Slug        string         `db:"slug"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	OrderIndex  int            `db:"order_index"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (Mission) TableName() string {
	return "missions"
}

// MissionQuestion is the row model for the mission_questions table.
type MissionQuestion struct {
	ID                 string      `db:"id"`
	MissionID          string      `db:"mission_id"`
	QuestionNumber     int         `db:"question_number"`
	Text               string      `db:"text"`
	Options            StringSlice `db:"options"`
	CorrectOptionIndex int         `db:"correct_option_index"`
}

func (MissionQuestion) TableName() string {
	return "mission_questions"
}

// MissionProgress is the row model for the mission_progress table;
// (user_id, mission_id) is unique. Completed is stored as 0/1.
type MissionProgress struct {
	ID                    string       `db:"id"`
	UserID                string       `db:"user_id"`
	MissionID             string       `db:"mission_id"`
	CurrentQuestionNumber int          `db:"current_question_number"`
	QuestionsAnswered     int          `db:"questions_answered"`
	CurrentScore          int          `db:"current_score"`
	Completed             int          `db:"completed"`
	CompletedAt           sql.NullTime `db:"completed_at"`
	CreatedAt             time.Time    `db:"created_at"`
	UpdatedAt             time.Time    `db:"updated_at"`
}

func (MissionProgress) TableName() string {
	return "mission_progress"
}

// MissionCompletion is the row model for the mission_completions table.
type MissionCompletion struct {
	ID             string    `db:"id"`
	UserID         string    `db:"user_id"`
	MissionID      string    `db:"mission_id"`
	MissionTitle   string    `db:"mission_title"`
	Score          int       `db:"score"`
	TotalQuestions int       `db:"total_questions"`
	CompletedAt    time.Time `db:"completed_at"`
}

func (MissionCompletion) TableName() string {
	return "mission_completions"
}
