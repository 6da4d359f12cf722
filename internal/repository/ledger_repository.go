package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/ptminh/learnhub/internal/model"
	"gorm.io/gorm"
)

type LedgerRepository interface {
	FindByLearner(learnerID uuid.UUID) (*model.PointsLedger, error)
	// FindOrCreate lazily creates the zero-balance ledger on first use.
	FindOrCreate(learnerID uuid.UUID) (*model.PointsLedger, error)
	HasEarnedFrom(ledgerID uint, source, sourceID string) (bool, error)
	// AppendEarn appends an earn transaction and bumps total and available.
	AppendEarn(ledgerID uint, entry *model.PointsTransaction) error
	// AppendSpend appends a spend transaction, moving points from available
	// to spent. Total is untouched.
	AppendSpend(ledgerID uint, entry *model.PointsTransaction) error
	Transactions(ledgerID uint, limit int) ([]model.PointsTransaction, error)
	// FindTop returns ledgers ranked by total points, learner id ascending on
	// ties, with achievements and badges preloaded.
	FindTop(limit int) ([]model.PointsLedger, error)
}

type ledgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) FindByLearner(learnerID uuid.UUID) (*model.PointsLedger, error) {
	var ledger model.PointsLedger
	err := r.db.Where("learner_id = ?", learnerID).First(&ledger).Error
	return &ledger, err
}

func (r *ledgerRepository) FindOrCreate(learnerID uuid.UUID) (*model.PointsLedger, error) {
	ledger, err := r.FindByLearner(learnerID)
	if err == nil {
		return ledger, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := &model.PointsLedger{LearnerID: learnerID}
	if err := r.db.Create(created).Error; err != nil {
		return nil, err
	}
	return created, nil
}

func (r *ledgerRepository) HasEarnedFrom(ledgerID uint, source, sourceID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.PointsTransaction{}).
		Where("ledger_id = ? AND direction = ? AND source = ? AND source_id = ?",
			ledgerID, model.TransactionEarn, source, sourceID).
		Count(&count).Error
	return count > 0, err
}

func (r *ledgerRepository) AppendEarn(ledgerID uint, entry *model.PointsTransaction) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		entry.LedgerID = ledgerID
		entry.Direction = model.TransactionEarn
		if err := tx.Create(entry).Error; err != nil {
			return err
		}
		return tx.Model(&model.PointsLedger{}).Where("id = ?", ledgerID).Updates(map[string]interface{}{
			"total_points":     gorm.Expr("total_points + ?", entry.Amount),
			"available_points": gorm.Expr("available_points + ?", entry.Amount),
		}).Error
	})
}

func (r *ledgerRepository) AppendSpend(ledgerID uint, entry *model.PointsTransaction) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		entry.LedgerID = ledgerID
		entry.Direction = model.TransactionSpend
		if err := tx.Create(entry).Error; err != nil {
			return err
		}
		return tx.Model(&model.PointsLedger{}).Where("id = ?", ledgerID).Updates(map[string]interface{}{
			"available_points": gorm.Expr("available_points - ?", entry.Amount),
			"spent_points":     gorm.Expr("spent_points + ?", entry.Amount),
		}).Error
	})
}

func (r *ledgerRepository) Transactions(ledgerID uint, limit int) ([]model.PointsTransaction, error) {
	var entries []model.PointsTransaction
	query := r.db.Where("ledger_id = ?", ledgerID).Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&entries).Error
	return entries, err
}

func (r *ledgerRepository) FindTop(limit int) ([]model.PointsLedger, error) {
	var ledgers []model.PointsLedger
	query := r.db.
		Preload("Achievements").
		Preload("Badges").
		Order("total_points DESC, learner_id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&ledgers).Error
	return ledgers, err
}
