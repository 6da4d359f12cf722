package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Enrollment links a learner to a course and carries the derived progress
// state. A learner appears at most once per course (composite unique index).
type Enrollment struct {
	ID                   uint                  `gorm:"primarykey" json:"id"`
	CourseID             uint                  `json:"course_id" gorm:"not null;uniqueIndex:idx_course_learner"`
	LearnerID            uuid.UUID             `json:"learner_id" gorm:"type:uuid;not null;uniqueIndex:idx_course_learner;index"`
	EnrolledAt           time.Time             `json:"enrolled_at" gorm:"autoCreateTime"`
	Progress             int                   `json:"progress" gorm:"not null;default:0"` // 0-100, lecture-centric
	CompletedLectures    []CompletedLecture    `json:"completed_lectures,omitempty" gorm:"foreignKey:EnrollmentID"`
	CompletedAssignments []CompletedAssignment `json:"completed_assignments,omitempty" gorm:"foreignKey:EnrollmentID"`
	CompletedQuizzes     []CompletedQuiz       `json:"completed_quizzes,omitempty" gorm:"foreignKey:EnrollmentID"`
	CreatedAt            time.Time             `json:"created_at"`
	UpdatedAt            time.Time             `json:"updated_at"`
	DeletedAt            gorm.DeletedAt        `gorm:"index" json:"-"`
}

// CompletedLecture is one completed-lecture mark on an enrollment, keyed by
// (enrollment, lecture) so a lecture cannot be counted twice.
type CompletedLecture struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	EnrollmentID uint      `json:"enrollment_id" gorm:"not null;uniqueIndex:idx_enrollment_lecture"`
	LectureID    uint      `json:"lecture_id" gorm:"not null;uniqueIndex:idx_enrollment_lecture"`
	CompletedAt  time.Time `json:"completed_at" gorm:"autoCreateTime"`
}

type CompletedAssignment struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	EnrollmentID uint      `json:"enrollment_id" gorm:"not null;uniqueIndex:idx_enrollment_assignment"`
	AssignmentID uint      `json:"assignment_id" gorm:"not null;uniqueIndex:idx_enrollment_assignment"`
	CompletedAt  time.Time `json:"completed_at" gorm:"autoCreateTime"`
}

// CompletedQuiz records the first completed attempt per quiz on an enrollment.
// Display state only; the ledger transaction log is what prevents double
// awards.
type CompletedQuiz struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	EnrollmentID uint      `json:"enrollment_id" gorm:"not null;uniqueIndex:idx_enrollment_quiz"`
	QuizID       uint      `json:"quiz_id" gorm:"not null;uniqueIndex:idx_enrollment_quiz"`
	Score        int       `json:"score"`
	Percentage   int       `json:"percentage"`
	CompletedAt  time.Time `json:"completed_at" gorm:"autoCreateTime"`
}
