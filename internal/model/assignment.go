package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SubmissionTypeText = "text"
	SubmissionTypeFile = "file"
	SubmissionTypeURL  = "url"

	SubmissionStatusSubmitted = "submitted"
	SubmissionStatusLate      = "late"
	SubmissionStatusGraded    = "graded"
)

type Assignment struct {
	ID                uint                   `gorm:"primarykey" json:"id"`
	CourseID          uint                   `json:"course_id" gorm:"not null;index"`
	Title             string                 `json:"title" gorm:"not null"`
	Description       string                 `json:"description,omitempty" gorm:"type:text"`
	DueDate           time.Time              `json:"due_date" gorm:"not null"`
	SubmissionType    string                 `json:"submission_type" gorm:"not null;default:'text'"` // text, file, url
	AllowLate         bool                   `json:"allow_late" gorm:"not null;default:false"`
	LatePenaltyPerDay int                    `json:"late_penalty_per_day" gorm:"not null;default:0"` // percent per day
	MaxScore          int                    `json:"max_score" gorm:"not null;default:100"`
	PointsReward      int                    `json:"points_reward" gorm:"not null;default:0"` // 0 = use configured default
	TotalSubmissions  int                    `json:"total_submissions" gorm:"not null;default:0"`
	LateSubmissions   int                    `json:"late_submissions" gorm:"not null;default:0"`
	OnTimeSubmissions int                    `json:"on_time_submissions" gorm:"not null;default:0"`
	AverageScore      float64                `json:"average_score" gorm:"not null;default:0"` // mean over graded submissions
	Submissions       []AssignmentSubmission `json:"submissions,omitempty" gorm:"foreignKey:AssignmentID"`
	CreatedAt         time.Time              `json:"created_at"`
	UpdatedAt         time.Time              `json:"updated_at"`
	DeletedAt         gorm.DeletedAt         `gorm:"index" json:"-"`
}

// AssignmentSubmission is one learner's submission; one per learner per
// assignment, terminal once graded.
type AssignmentSubmission struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	AssignmentID uint           `json:"assignment_id" gorm:"not null;uniqueIndex:idx_assignment_learner"`
	LearnerID    uuid.UUID      `json:"learner_id" gorm:"type:uuid;not null;uniqueIndex:idx_assignment_learner;index"`
	Content      string         `json:"content,omitempty" gorm:"type:text"`
	FileURL      string         `json:"file_url,omitempty"`
	SubmittedAt  time.Time      `json:"submitted_at" gorm:"not null"`
	IsLate       bool           `json:"is_late" gorm:"not null;default:false"`
	LatePenalty  int            `json:"late_penalty" gorm:"not null;default:0"` // percent deducted at grading time
	Status       string         `json:"status" gorm:"not null;default:'submitted'"`
	GradeScore   *float64       `json:"grade_score,omitempty"`
	Feedback     string         `json:"feedback,omitempty" gorm:"type:text"`
	GradedBy     *uuid.UUID     `json:"graded_by,omitempty" gorm:"type:uuid"`
	GradedAt     *time.Time     `json:"graded_at,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
