package dto

import "time"

// ExamListItem is one entry in GET /exams.
type ExamListItem struct {
	ID            string `json:"id"`
	Slug          string `json:"slug"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	QuestionCount int    `json:"question_count"`
}

// ExamQuestionView is an exam question as shown to the test taker.
// Answer keys are never included.
type ExamQuestionView struct {
	QuestionNumber int      `json:"question_number"`
	Type           string   `json:"type"`
	Text           string   `json:"text"`
	Options        []string `json:"options,omitempty"`
}

// ExamDetailResponse is the body of GET /exams/:slug.
type ExamDetailResponse struct {
	ID          string             `json:"id"`
	Slug        string             `json:"slug"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	HTMLContent string             `json:"html_content,omitempty"`
	Questions   []ExamQuestionView `json:"questions"`
}

// SubmitExamRequest is the body for POST /exams/:slug/submit. Answers are
// keyed by question number; radio answers are string-encoded option indices.
// @Description Request body for bulk exam submission
type SubmitExamRequest struct {
	Answers map[string]string `json:"answers" validate:"required"`
}

// QuestionResultView is the per-question outcome in a submit response.
type QuestionResultView struct {
	QuestionNumber int    `json:"question_number"`
	Correct        bool   `json:"correct"`
	Submitted      string `json:"submitted,omitempty"`
	Answered       bool   `json:"answered"`
}

// ExamSubmitResult is the body of a successful exam submission.
type ExamSubmitResult struct {
	SubmissionID   string               `json:"submission_id"`
	Score          int                  `json:"score"`
	TotalQuestions int                  `json:"total_questions"`
	Percentage     int                  `json:"percentage"`
	Results        []QuestionResultView `json:"results"`
}

// ExamSubmissionHistoryItem is one entry in GET /exams/:slug/submissions,
// most recent first.
type ExamSubmissionHistoryItem struct {
	SubmissionID   string    `json:"submission_id"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	SubmittedAt    time.Time `json:"submitted_at"`
}
