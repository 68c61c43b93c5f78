package dto

import "time"

// MissionView is the mission header shown alongside the current question.
type MissionView struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// MissionQuestionView is a mission question as shown to the learner.
// The correct option index is never included.
type MissionQuestionView struct {
	QuestionNumber int      `json:"question_number"`
	Text           string   `json:"text"`
	Options        []string `json:"options"`
}

// MissionProgressView mirrors the stored progress row.
type MissionProgressView struct {
	CurrentQuestionNumber int  `json:"current_question_number"`
	QuestionsAnswered     int  `json:"questions_answered"`
	CurrentScore          int  `json:"current_score"`
	Completed             bool `json:"completed"`
}

// NextMissionResponse is the body of GET /missions/next. Mission is null
// with a message when every mission has been completed.
type NextMissionResponse struct {
	Mission         *MissionView         `json:"mission"`
	CurrentQuestion *MissionQuestionView `json:"current_question,omitempty"`
	Progress        *MissionProgressView `json:"progress,omitempty"`
	Message         string               `json:"message,omitempty"`
}

// SubmitAnswerRequest is the body for POST /missions/:slug/answer.
// SelectedOptionIndex is a pointer so index 0 survives required-field checks.
// @Description Request body for a single mission answer
type SubmitAnswerRequest struct {
	QuestionNumber      int  `json:"question_number" validate:"required"`
	SelectedOptionIndex *int `json:"selected_option_index" validate:"required"`
}

// AnswerResponse is the body of a graded mission answer. NextQuestion is
// present while the mission continues; the final fields appear once the
// mission completes.
type AnswerResponse struct {
	IsCorrect      bool                 `json:"is_correct"`
	CurrentScore   int                  `json:"current_score"`
	Completed      bool                 `json:"completed"`
	NextQuestion   *MissionQuestionView `json:"next_question,omitempty"`
	FinalScore     *int                 `json:"final_score,omitempty"`
	TotalQuestions *int                 `json:"total_questions,omitempty"`
	Percentage     *int                 `json:"percentage,omitempty"`
}

// MissionCompletionItem is one entry in GET /missions/completions,
// most recent first.
type MissionCompletionItem struct {
	ID             string    `json:"id"`
	MissionID      string    `json:"mission_id"`
	MissionTitle   string    `json:"mission_title"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	CompletedAt    time.Time `json:"completed_at"`
}
