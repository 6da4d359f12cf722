package dto

import "time"

type OptionCreateDTO struct {
	Text     string `json:"text" binding:"required"`
	Position int    `json:"position" binding:"required,min=1"`
}

type QuestionCreateDTO struct {
	Text          string            `json:"text" binding:"required"`
	Type          string            `json:"type" binding:"required,oneof=multiple_choice true_false short_answer"`
	Options       []OptionCreateDTO `json:"options,omitempty" binding:"omitempty,dive"`
	CorrectAnswer string            `json:"correct_answer" binding:"required"`
	Explanation   string            `json:"explanation,omitempty"`
	Points        int               `json:"points" binding:"required,gt=0"`
	Position      int               `json:"position" binding:"required,min=1"`
}

type QuizCreateDTO struct {
	CourseID         uint                `json:"course_id" binding:"required"`
	Title            string              `json:"title" binding:"required"`
	Description      string              `json:"description,omitempty"`
	TimeLimitMinutes int                 `json:"time_limit_minutes" binding:"min=0"`
	MaxAttempts      int                 `json:"max_attempts" binding:"required,min=1"`
	Randomize        bool                `json:"randomize"`
	ShowAnswers      bool                `json:"show_answers"`
	AvailableFrom    *time.Time          `json:"available_from,omitempty"`
	AvailableUntil   *time.Time          `json:"available_until,omitempty"`
	Questions        []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
}

type OptionDTO struct {
	ID       uint   `json:"id"`
	Text     string `json:"text"`
	Position int    `json:"position"`
}

// SanitizedQuestionDTO is the learner-facing view of a question: the answer
// key and explanation are never exposed before submission.
type SanitizedQuestionDTO struct {
	ID       uint        `json:"id"`
	Text     string      `json:"text"`
	Type     string      `json:"type"`
	Options  []OptionDTO `json:"options,omitempty"`
	Points   int         `json:"points"`
	Position int         `json:"position"`
}

type QuizResponseDTO struct {
	ID               uint                   `json:"id"`
	CourseID         uint                   `json:"course_id"`
	Title            string                 `json:"title"`
	Description      string                 `json:"description,omitempty"`
	TimeLimitMinutes int                    `json:"time_limit_minutes"`
	MaxAttempts      int                    `json:"max_attempts"`
	AvailableFrom    *time.Time             `json:"available_from,omitempty"`
	AvailableUntil   *time.Time             `json:"available_until,omitempty"`
	Questions        []SanitizedQuestionDTO `json:"questions,omitempty"`
	CreatedAt        time.Time              `json:"created_at"`
}

type QuizSummaryDTO struct {
	ID            uint      `json:"id"`
	CourseID      uint      `json:"course_id"`
	Title         string    `json:"title"`
	MaxAttempts   int       `json:"max_attempts"`
	TotalAttempts int       `json:"total_attempts"`
	AverageScore  float64   `json:"average_score"`
	CreatedAt     time.Time `json:"created_at"`
}
