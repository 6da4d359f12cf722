package repository

import (
	"github.com/google/uuid"
	"github.com/ptminh/learnhub/internal/model"
	"gorm.io/gorm"
)

type AssignmentRepository interface {
	Create(assignment *model.Assignment) error
	FindByID(id uint) (*model.Assignment, error)
	FindAllByCourse(courseID uint) ([]model.Assignment, error)
	FindSubmission(assignmentID uint, learnerID uuid.UUID) (*model.AssignmentSubmission, error)
	FindSubmissionByID(id uint) (*model.AssignmentSubmission, error)
	AddSubmission(submission *model.AssignmentSubmission) error
	UpdateSubmission(submission *model.AssignmentSubmission) error
	IncrementSubmissionStats(assignmentID uint, late bool) error
	// RecomputeAverageScore refreshes the mean over graded submissions.
	RecomputeAverageScore(assignmentID uint) error
}

type assignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) Create(assignment *model.Assignment) error {
	return r.db.Create(assignment).Error
}

func (r *assignmentRepository) FindByID(id uint) (*model.Assignment, error) {
	var assignment model.Assignment
	err := r.db.First(&assignment, id).Error
	return &assignment, err
}

func (r *assignmentRepository) FindAllByCourse(courseID uint) ([]model.Assignment, error) {
	var assignments []model.Assignment
	err := r.db.Where("course_id = ?", courseID).Order("due_date ASC").Find(&assignments).Error
	return assignments, err
}

func (r *assignmentRepository) FindSubmission(assignmentID uint, learnerID uuid.UUID) (*model.AssignmentSubmission, error) {
	var submission model.AssignmentSubmission
	err := r.db.Where("assignment_id = ? AND learner_id = ?", assignmentID, learnerID).First(&submission).Error
	return &submission, err
}

func (r *assignmentRepository) FindSubmissionByID(id uint) (*model.AssignmentSubmission, error) {
	var submission model.AssignmentSubmission
	err := r.db.First(&submission, id).Error
	return &submission, err
}

func (r *assignmentRepository) AddSubmission(submission *model.AssignmentSubmission) error {
	return r.db.Create(submission).Error
}

func (r *assignmentRepository) UpdateSubmission(submission *model.AssignmentSubmission) error {
	return r.db.Save(submission).Error
}

func (r *assignmentRepository) IncrementSubmissionStats(assignmentID uint, late bool) error {
	updates := map[string]interface{}{
		"total_submissions": gorm.Expr("total_submissions + 1"),
	}
	if late {
		updates["late_submissions"] = gorm.Expr("late_submissions + 1")
	} else {
		updates["on_time_submissions"] = gorm.Expr("on_time_submissions + 1")
	}
	return r.db.Model(&model.Assignment{}).Where("id = ?", assignmentID).Updates(updates).Error
}

func (r *assignmentRepository) RecomputeAverageScore(assignmentID uint) error {
	return r.db.Model(&model.Assignment{}).Where("id = ?", assignmentID).
		Update("average_score", r.db.Model(&model.AssignmentSubmission{}).
			Select("COALESCE(AVG(grade_score), 0)").
			Where("assignment_id = ? AND status = ?", assignmentID, model.SubmissionStatusGraded)).
		Error
}
