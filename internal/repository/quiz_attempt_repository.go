package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/ptminh/learnhub/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Sentinel errors the attempt store reports; the service layer maps them onto
// the caller-facing taxonomy.
var (
	ErrAttemptLimitReached = errors.New("attempt limit reached")
	ErrActiveAttempt       = errors.New("an attempt is already in progress")
	ErrNotInProgress       = errors.New("attempt is not in progress")
)

type QuizAttemptRepository interface {
	// CreateWithinLimit inserts a new in-progress attempt after re-checking,
	// under a row lock on the quiz, that the learner has neither an active
	// attempt nor exhausted maxAttempts. Sets AttemptNumber.
	CreateWithinLimit(attempt *model.QuizAttempt, maxAttempts int) error
	FindInProgress(quizID uint, learnerID uuid.UUID) (*model.QuizAttempt, error)
	CountByQuizAndLearner(quizID uint, learnerID uuid.UUID) (int64, error)
	FindByIDWithAnswers(id uint) (*model.QuizAttempt, error)
	FindAllByQuizAndLearner(quizID uint, learnerID uuid.UUID) ([]model.QuizAttempt, error)
	// SubmitInProgress applies the one-way in_progress -> submitted transition.
	// Returns ErrNotInProgress when the attempt is already terminal.
	SubmitInProgress(attempt *model.QuizAttempt) error
	MarkAbandoned(attemptID uint) error
	// SubmittedStats returns count and mean score over submitted attempts.
	SubmittedStats(quizID uint) (int64, float64, error)
}

type quizAttemptRepository struct {
	db *gorm.DB
}

func NewQuizAttemptRepository(db *gorm.DB) QuizAttemptRepository {
	return &quizAttemptRepository{db: db}
}

func (r *quizAttemptRepository) CreateWithinLimit(attempt *model.QuizAttempt, maxAttempts int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Serialize concurrent starts for the same quiz on the quiz row.
		var quiz model.Quiz
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&quiz, attempt.QuizID).Error; err != nil {
			return err
		}

		var active int64
		if err := tx.Model(&model.QuizAttempt{}).
			Where("quiz_id = ? AND learner_id = ? AND status = ?", attempt.QuizID, attempt.LearnerID, model.AttemptStatusInProgress).
			Count(&active).Error; err != nil {
			return err
		}
		if active > 0 {
			return ErrActiveAttempt
		}

		var prior int64
		if err := tx.Model(&model.QuizAttempt{}).
			Where("quiz_id = ? AND learner_id = ?", attempt.QuizID, attempt.LearnerID).
			Count(&prior).Error; err != nil {
			return err
		}
		if maxAttempts > 0 && prior >= int64(maxAttempts) {
			return ErrAttemptLimitReached
		}

		attempt.AttemptNumber = int(prior) + 1
		attempt.Status = model.AttemptStatusInProgress
		return tx.Create(attempt).Error
	})
}

func (r *quizAttemptRepository) FindInProgress(quizID uint, learnerID uuid.UUID) (*model.QuizAttempt, error) {
	var attempt model.QuizAttempt
	err := r.db.
		Where("quiz_id = ? AND learner_id = ? AND status = ?", quizID, learnerID, model.AttemptStatusInProgress).
		First(&attempt).Error
	return &attempt, err
}

func (r *quizAttemptRepository) CountByQuizAndLearner(quizID uint, learnerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.QuizAttempt{}).
		Where("quiz_id = ? AND learner_id = ?", quizID, learnerID).
		Count(&count).Error
	return count, err
}

func (r *quizAttemptRepository) FindByIDWithAnswers(id uint) (*model.QuizAttempt, error) {
	var attempt model.QuizAttempt
	err := r.db.Preload("Answers").First(&attempt, id).Error
	return &attempt, err
}

func (r *quizAttemptRepository) FindAllByQuizAndLearner(quizID uint, learnerID uuid.UUID) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.db.
		Where("quiz_id = ? AND learner_id = ?", quizID, learnerID).
		Order("attempt_number ASC").
		Find(&attempts).Error
	return attempts, err
}

func (r *quizAttemptRepository) SubmitInProgress(attempt *model.QuizAttempt) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.QuizAttempt{}).
			Where("id = ? AND status = ?", attempt.ID, model.AttemptStatusInProgress).
			Updates(map[string]interface{}{
				"status":             model.AttemptStatusSubmitted,
				"submitted_at":       attempt.SubmittedAt,
				"score":              attempt.Score,
				"total_points":       attempt.TotalPoints,
				"percentage":         attempt.Percentage,
				"time_spent_seconds": attempt.TimeSpentSeconds,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotInProgress
		}

		for i := range attempt.Answers {
			attempt.Answers[i].AttemptID = attempt.ID
		}
		if len(attempt.Answers) > 0 {
			if err := tx.Create(&attempt.Answers).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *quizAttemptRepository) MarkAbandoned(attemptID uint) error {
	return r.db.Model(&model.QuizAttempt{}).
		Where("id = ? AND status = ?", attemptID, model.AttemptStatusInProgress).
		Update("status", model.AttemptStatusAbandoned).Error
}

func (r *quizAttemptRepository) SubmittedStats(quizID uint) (int64, float64, error) {
	var row struct {
		Count   int64
		Average float64
	}
	err := r.db.Model(&model.QuizAttempt{}).
		Select("COUNT(*) as count, COALESCE(AVG(score), 0) as average").
		Where("quiz_id = ? AND status = ?", quizID, model.AttemptStatusSubmitted).
		Scan(&row).Error
	return row.Count, row.Average, err
}
