package dto

import (
	"time"

	"github.com/google/uuid"
)

type AssignmentCreateDTO struct {
	CourseID          uint      `json:"course_id" binding:"required"`
	Title             string    `json:"title" binding:"required"`
	Description       string    `json:"description,omitempty"`
	DueDate           time.Time `json:"due_date" binding:"required"`
	SubmissionType    string    `json:"submission_type" binding:"required,oneof=text file url"`
	AllowLate         bool      `json:"allow_late"`
	LatePenaltyPerDay int       `json:"late_penalty_per_day" binding:"min=0,max=100"`
	MaxScore          int       `json:"max_score" binding:"required,gt=0"`
	PointsReward      int       `json:"points_reward" binding:"min=0"`
}

type AssignmentResponseDTO struct {
	ID                uint      `json:"id"`
	CourseID          uint      `json:"course_id"`
	Title             string    `json:"title"`
	Description       string    `json:"description,omitempty"`
	DueDate           time.Time `json:"due_date"`
	SubmissionType    string    `json:"submission_type"`
	AllowLate         bool      `json:"allow_late"`
	LatePenaltyPerDay int       `json:"late_penalty_per_day"`
	MaxScore          int       `json:"max_score"`
	TotalSubmissions  int       `json:"total_submissions"`
	LateSubmissions   int       `json:"late_submissions"`
	OnTimeSubmissions int       `json:"on_time_submissions"`
	AverageScore      float64   `json:"average_score"`
	CreatedAt         time.Time `json:"created_at"`
}

type SubmissionCreateDTO struct {
	Content string `json:"content,omitempty"`
	FileURL string `json:"file_url,omitempty"`
}

type SubmissionResponseDTO struct {
	ID            uint       `json:"id"`
	AssignmentID  uint       `json:"assignment_id"`
	LearnerID     uuid.UUID  `json:"learner_id"`
	SubmittedAt   time.Time  `json:"submitted_at"`
	IsLate        bool       `json:"is_late"`
	LatePenalty   int        `json:"late_penalty"`
	Status        string     `json:"status"`
	GradeScore    *float64   `json:"grade_score,omitempty"`
	Feedback      string     `json:"feedback,omitempty"`
	GradedAt      *time.Time `json:"graded_at,omitempty"`
	PointsAwarded int        `json:"points_awarded,omitempty"`
}

type GradeSubmissionDTO struct {
	Score    float64 `json:"score" binding:"min=0"`
	Feedback string  `json:"feedback,omitempty"`
}
