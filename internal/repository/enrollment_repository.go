package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/ptminh/learnhub/internal/model"
	"gorm.io/gorm"
)

type EnrollmentRepository interface {
	Create(enrollment *model.Enrollment) error
	FindByCourseAndLearner(courseID uint, learnerID uuid.UUID) (*model.Enrollment, error)
	FindAllByLearner(learnerID uuid.UUID) ([]model.Enrollment, error)
	UpdateProgress(enrollmentID uint, progress int) error
	AddCompletedLecture(completed *model.CompletedLecture) error
	HasCompletedLecture(enrollmentID, lectureID uint) (bool, error)
	CountCompletedLectures(enrollmentID uint) (int64, error)
	AddCompletedQuiz(completed *model.CompletedQuiz) error
	HasCompletedQuiz(enrollmentID, quizID uint) (bool, error)
	AddCompletedAssignment(completed *model.CompletedAssignment) error
	HasCompletedAssignment(enrollmentID, assignmentID uint) (bool, error)
}

type enrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

func (r *enrollmentRepository) Create(enrollment *model.Enrollment) error {
	return r.db.Create(enrollment).Error
}

func (r *enrollmentRepository) FindByCourseAndLearner(courseID uint, learnerID uuid.UUID) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	err := r.db.Where("course_id = ? AND learner_id = ?", courseID, learnerID).First(&enrollment).Error
	return &enrollment, err
}

func (r *enrollmentRepository) FindAllByLearner(learnerID uuid.UUID) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.db.Where("learner_id = ?", learnerID).Order("enrolled_at ASC").Find(&enrollments).Error
	return enrollments, err
}

func (r *enrollmentRepository) UpdateProgress(enrollmentID uint, progress int) error {
	return r.db.Model(&model.Enrollment{}).Where("id = ?", enrollmentID).Update("progress", progress).Error
}

func (r *enrollmentRepository) AddCompletedLecture(completed *model.CompletedLecture) error {
	return r.db.Create(completed).Error
}

func (r *enrollmentRepository) HasCompletedLecture(enrollmentID, lectureID uint) (bool, error) {
	return r.exists(&model.CompletedLecture{}, "enrollment_id = ? AND lecture_id = ?", enrollmentID, lectureID)
}

func (r *enrollmentRepository) CountCompletedLectures(enrollmentID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.CompletedLecture{}).Where("enrollment_id = ?", enrollmentID).Count(&count).Error
	return count, err
}

func (r *enrollmentRepository) AddCompletedQuiz(completed *model.CompletedQuiz) error {
	return r.db.Create(completed).Error
}

func (r *enrollmentRepository) HasCompletedQuiz(enrollmentID, quizID uint) (bool, error) {
	return r.exists(&model.CompletedQuiz{}, "enrollment_id = ? AND quiz_id = ?", enrollmentID, quizID)
}

func (r *enrollmentRepository) AddCompletedAssignment(completed *model.CompletedAssignment) error {
	return r.db.Create(completed).Error
}

func (r *enrollmentRepository) HasCompletedAssignment(enrollmentID, assignmentID uint) (bool, error) {
	return r.exists(&model.CompletedAssignment{}, "enrollment_id = ? AND assignment_id = ?", enrollmentID, assignmentID)
}

func (r *enrollmentRepository) exists(modelPtr interface{}, query string, args ...interface{}) (bool, error) {
	err := r.db.Where(query, args...).First(modelPtr).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
