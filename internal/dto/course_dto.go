package dto

import (
	"time"

	"github.com/google/uuid"
)

// LectureCreateDTO is used within CourseCreateDTO and for adding lectures to
// an existing course.
type LectureCreateDTO struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content,omitempty"`
	Position int    `json:"position" binding:"required,min=1"`
}

type CourseCreateDTO struct {
	Title       string             `json:"title" binding:"required"`
	Description string             `json:"description,omitempty"`
	Lectures    []LectureCreateDTO `json:"lectures,omitempty" binding:"omitempty,dive"`
}

type LectureResponseDTO struct {
	ID       uint   `json:"id"`
	CourseID uint   `json:"course_id"`
	Title    string `json:"title"`
	Content  string `json:"content,omitempty"`
	Position int    `json:"position"`
}

type CourseResponseDTO struct {
	ID          uint                 `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description,omitempty"`
	Lectures    []LectureResponseDTO `json:"lectures,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}

type CourseSummaryDTO struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type EnrollmentDTO struct {
	ID         uint      `json:"id"`
	CourseID   uint      `json:"course_id"`
	LearnerID  uuid.UUID `json:"learner_id"`
	EnrolledAt time.Time `json:"enrolled_at"`
	Progress   int       `json:"progress"`
}

// ProgressDTO is returned after a completion event recomputes progress.
type ProgressDTO struct {
	CourseID          uint `json:"course_id"`
	CompletedLectures int  `json:"completed_lectures"`
	TotalLectures     int  `json:"total_lectures"`
	Progress          int  `json:"progress"`
	PointsAwarded     int  `json:"points_awarded"`
}

type DashboardDTO struct {
	LearnerID       uuid.UUID         `json:"learner_id"`
	OverallProgress int               `json:"overall_progress"` // mean of per-enrollment progress
	Enrollments     []EnrollmentDTO   `json:"enrollments"`
	Balance         *LedgerBalanceDTO `json:"balance,omitempty"`
	RecentActivity  []TransactionDTO  `json:"recent_activity,omitempty"`
}
