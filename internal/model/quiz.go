package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	QuestionTypeMultipleChoice = "multiple_choice"
	QuestionTypeTrueFalse      = "true_false"
	QuestionTypeShortAnswer    = "short_answer"
)

type Quiz struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	CourseID         uint           `json:"course_id" gorm:"not null;index"`
	Title            string         `json:"title" gorm:"not null"`
	Description      string         `json:"description,omitempty"`
	TimeLimitMinutes int            `json:"time_limit_minutes" gorm:"not null;default:0"` // 0 = no limit
	MaxAttempts      int            `json:"max_attempts" gorm:"not null;default:1"`
	Randomize        bool           `json:"randomize" gorm:"not null;default:false"`
	ShowAnswers      bool           `json:"show_answers" gorm:"not null;default:false"`
	AvailableFrom    *time.Time     `json:"available_from,omitempty"`
	AvailableUntil   *time.Time     `json:"available_until,omitempty"`
	TotalAttempts    int            `json:"total_attempts" gorm:"not null;default:0"`
	AverageScore     float64        `json:"average_score" gorm:"not null;default:0"`
	Questions        []Question     `json:"questions,omitempty" gorm:"foreignKey:QuizID"`
	Attempts         []QuizAttempt  `json:"attempts,omitempty" gorm:"foreignKey:QuizID"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

type Question struct {
	ID            uint             `gorm:"primarykey" json:"id"`
	QuizID        uint             `json:"quiz_id" gorm:"not null;index"`
	Text          string           `json:"text" gorm:"type:text;not null"`
	Type          string           `json:"type" gorm:"not null"` // multiple_choice, true_false, short_answer
	Options       []QuestionOption `json:"options,omitempty" gorm:"foreignKey:QuestionID"`
	CorrectAnswer string           `json:"correct_answer" gorm:"not null"`
	Explanation   string           `json:"explanation,omitempty" gorm:"type:text"`
	Points        int              `json:"points" gorm:"not null"`
	Position      int              `json:"position" gorm:"not null"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	DeletedAt     gorm.DeletedAt   `gorm:"index" json:"-"`
}

type QuestionOption struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	QuestionID uint   `json:"question_id" gorm:"not null;index"`
	Text       string `json:"text" gorm:"not null"`
	Position   int    `json:"position" gorm:"not null"`
}
