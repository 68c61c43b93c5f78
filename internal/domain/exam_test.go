package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func gradingExam() *Exam {
	return &Exam{
		ID:   "exam-1",
		Slug: "placement",
		Questions: []ExamQuestion{
			{ID: "q1", QuestionNumber: 1, Type: QuestionTypeText, Text: "Past tense of go", CorrectAnswer: "went"},
			{ID: "q2", QuestionNumber: 2, Type: QuestionTypeRadio, Text: "Pick one", Options: []string{"a", "b", "c"}, CorrectOptionIndex: 2},
			{ID: "q3", QuestionNumber: 3, Type: QuestionTypeText, Text: "Opposite of hot", CorrectAnswer: "Cold"},
		},
	}
}

func TestGrade_AllCorrect(t *testing.T) {
	exam := gradingExam()

	result := exam.Grade(map[string]string{
		"1": "went",
		"2": "2",
		"3": "cold",
	})

	assert.Equal(t, 3, result.Score)
	assert.Equal(t, 3, result.TotalQuestions)
	assert.Equal(t, 100, result.Percentage)
	for _, r := range result.Results {
		assert.True(t, r.Correct, "question %d", r.QuestionNumber)
	}
}

func TestGrade_AllWrong(t *testing.T) {
	exam := gradingExam()

	result := exam.Grade(map[string]string{
		"1": "goed",
		"2": "0",
		"3": "hot",
	})

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, 0, result.Percentage)
}

func TestGrade_MissingAnswersCountAsIncorrect(t *testing.T) {
	exam := gradingExam()

	result := exam.Grade(map[string]string{"1": "went"})

	assert.Equal(t, 1, result.Score)
	assert.Equal(t, 3, result.TotalQuestions)
	assert.Equal(t, 33, result.Percentage)
	assert.True(t, result.Results[0].Answered)
	assert.False(t, result.Results[1].Answered)
	assert.False(t, result.Results[1].Correct)
	assert.False(t, result.Results[2].Answered)
}

func TestGrade_TextNormalization(t *testing.T) {
	exam := gradingExam()

	result := exam.Grade(map[string]string{
		"1": "  WENT ",
		"3": "cOlD",
	})

	assert.Equal(t, 2, result.Score)
}

func TestGrade_RadioAnswerWithWhitespace(t *testing.T) {
	exam := gradingExam()

	result := exam.Grade(map[string]string{"2": " 2 "})

	assert.Equal(t, 1, result.Score)
}

func TestGrade_RadioAnswerNotANumber(t *testing.T) {
	exam := gradingExam()

	result := exam.Grade(map[string]string{"2": "c"})

	assert.Equal(t, 0, result.Score)
}

func TestGrade_EmptyExam(t *testing.T) {
	exam := &Exam{ID: "empty", Slug: "empty"}

	result := exam.Grade(map[string]string{"1": "anything"})

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, 0, result.TotalQuestions)
	assert.Equal(t, 0, result.Percentage)
	assert.Empty(t, result.Results)
}

func TestGrade_ExtraAnswersIgnored(t *testing.T) {
	exam := gradingExam()

	result := exam.Grade(map[string]string{
		"1":  "went",
		"99": "stray",
	})

	assert.Equal(t, 1, result.Score)
	assert.Len(t, result.Results, 3)
}

func TestNormalizeAnswer(t *testing.T) {
	assert.Equal(t, "went", NormalizeAnswer("  Went "))
	assert.Equal(t, "", NormalizeAnswer("   "))
	assert.Equal(t, "two words", NormalizeAnswer("Two Words"))
}
