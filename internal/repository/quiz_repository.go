package repository

import (
	"github.com/ptminh/learnhub/internal/model"
	"gorm.io/gorm"
)

type QuizRepository interface {
	Create(quiz *model.Quiz) error
	FindByID(id uint) (*model.Quiz, error)
	FindByIDWithQuestions(id uint) (*model.Quiz, error)
	FindAllByCourse(courseID uint) ([]model.Quiz, error)
	UpdateStats(quizID uint, totalAttempts int, averageScore float64) error
}

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Create(quiz *model.Quiz) error {
	// Creates associated questions and their options in one go.
	return r.db.Create(quiz).Error
}

func (r *quizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.db.First(&quiz, id).Error
	return &quiz, err
}

func (r *quizRepository) FindByIDWithQuestions(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.position ASC")
		}).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_options.position ASC")
		}).
		First(&quiz, id).Error
	return &quiz, err
}

func (r *quizRepository) FindAllByCourse(courseID uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.db.Where("course_id = ?", courseID).Order("created_at ASC").Find(&quizzes).Error
	return quizzes, err
}

func (r *quizRepository) UpdateStats(quizID uint, totalAttempts int, averageScore float64) error {
	return r.db.Model(&model.Quiz{}).Where("id = ?", quizID).Updates(map[string]interface{}{
		"total_attempts": totalAttempts,
		"average_score":  averageScore,
	}).Error
}
