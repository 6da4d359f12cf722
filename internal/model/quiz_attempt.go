package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AttemptStatusInProgress = "in_progress"
	AttemptStatusSubmitted  = "submitted"
	AttemptStatusAbandoned  = "abandoned"
)

// QuizAttempt is one learner's timed run through a quiz. It is created on
// start and mutated exactly once on submit; submitted is terminal.
type QuizAttempt struct {
	ID               uint            `gorm:"primarykey" json:"id"`
	QuizID           uint            `json:"quiz_id" gorm:"not null;index"`
	LearnerID        uuid.UUID       `json:"learner_id" gorm:"type:uuid;not null;index"`
	AttemptNumber    int             `json:"attempt_number" gorm:"not null"` // 1-based per (learner, quiz)
	StartedAt        time.Time       `json:"started_at" gorm:"not null"`
	SubmittedAt      *time.Time      `json:"submitted_at,omitempty"`
	Status           string          `json:"status" gorm:"not null;default:'in_progress';index"`
	Score            int             `json:"score" gorm:"not null;default:0"`
	TotalPoints      int             `json:"total_points" gorm:"not null;default:0"`
	Percentage       int             `json:"percentage" gorm:"not null;default:0"`
	TimeSpentSeconds int             `json:"time_spent_seconds" gorm:"not null;default:0"`
	Answers          []AttemptAnswer `json:"answers,omitempty" gorm:"foreignKey:AttemptID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
	DeletedAt        gorm.DeletedAt  `gorm:"index" json:"-"`
}

type AttemptAnswer struct {
	ID             uint   `gorm:"primarykey" json:"id"`
	AttemptID      uint   `json:"attempt_id" gorm:"not null;index"`
	QuestionID     uint   `json:"question_id" gorm:"not null;index"`
	SubmittedValue string `json:"submitted_value" gorm:"type:text"`
	IsCorrect      bool   `json:"is_correct" gorm:"not null;default:false"`
	PointsEarned   int    `json:"points_earned" gorm:"not null;default:0"`
}
