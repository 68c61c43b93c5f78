package models

import (
	"database/sql"
	"time"
)

// Exam is the row model for the exams table.
type Exam struct {
	ID          string         `db:"id"`
	Slug        string         `db:"slug"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	HTMLContent sql.NullString `db:"html_content"`
	OrderIndex  int            `db:"order_index"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (Exam) TableName() string {
	return "exams"
}

// ExamQuestion is the row model for the exam_questions table. Options holds
// the ordered choice list for radio questions as JSON text.
type ExamQuestion struct {
	ID                 string         `db:"id"`
	ExamID             string         `db:"exam_id"`
	QuestionNumber     int            `db:"question_number"`
	QType              string         `db:"qtype"`
	Text               string         `db:"text"`
	Options            StringSlice    `db:"options"`
	CorrectAnswer      sql.NullString `db:"correct_answer"`
	CorrectOptionIndex sql.NullInt64  `db:"correct_option_index"`
}

func (ExamQuestion) TableName() string {
	return "exam_questions"
}

// ExamSubmission is the row model for the exam_submissions table. Answers
// is the submitted map serialized as JSON text.
type ExamSubmission struct {
	ID             string    `db:"id"`
	ExamID         string    `db:"exam_id"`
	UserID         string    `db:"user_id"`
	Answers        string    `db:"answers"`
	Score          int       `db:"score"`
	TotalQuestions int       `db:"total_questions"`
	SubmittedAt    time.Time `db:"submitted_at"`
}

func (ExamSubmission) TableName() string {
	return "exam_submissions"
}
