package dto

import "time"

// AttemptStartedDTO is the response to a start-quiz call: the attempt handle,
// the time budget, and the question list with the answer key stripped.
type AttemptStartedDTO struct {
	AttemptID        uint                   `json:"attempt_id"`
	AttemptNumber    int                    `json:"attempt_number"`
	StartedAt        time.Time              `json:"started_at"`
	TimeLimitMinutes int                    `json:"time_limit_minutes"`
	Questions        []SanitizedQuestionDTO `json:"questions"`
}

type AnswerSubmitDTO struct {
	QuestionID uint   `json:"question_id" binding:"required"`
	Value      string `json:"value"`
}

type AttemptSubmitDTO struct {
	Answers          []AnswerSubmitDTO `json:"answers" binding:"required,dive"`
	TimeSpentSeconds int               `json:"time_spent_seconds" binding:"min=0"`
}

type AnswerResultDTO struct {
	QuestionID     uint   `json:"question_id"`
	SubmittedValue string `json:"submitted_value"`
	IsCorrect      bool   `json:"is_correct"`
	PointsEarned   int    `json:"points_earned"`
}

type AttemptResultDTO struct {
	AttemptID     uint              `json:"attempt_id"`
	AttemptNumber int               `json:"attempt_number"`
	SubmittedAt   time.Time         `json:"submitted_at"`
	Score         int               `json:"score"`
	TotalPoints   int               `json:"total_points"`
	Percentage    int               `json:"percentage"`
	CorrectCount  int               `json:"correct_count"`
	PointsAwarded int               `json:"points_awarded"` // zero when the quiz was already completed once
	Answers       []AnswerResultDTO `json:"answers,omitempty"`
}

type AttemptSummaryDTO struct {
	ID            uint       `json:"id"`
	QuizID        uint       `json:"quiz_id"`
	AttemptNumber int        `json:"attempt_number"`
	StartedAt     time.Time  `json:"started_at"`
	SubmittedAt   *time.Time `json:"submitted_at,omitempty"`
	Status        string     `json:"status"`
	Score         int        `json:"score"`
	TotalPoints   int        `json:"total_points"`
	Percentage    int        `json:"percentage"`
}
