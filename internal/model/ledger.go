package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TransactionEarn  = "earn"
	TransactionSpend = "spend"

	SourceAssignment    = "assignment"
	SourceQuiz          = "quiz"
	SourceLecture       = "lecture"
	SourceParticipation = "participation"
	SourceBonus         = "bonus"
	SourceOther         = "other"
)

// PointsLedger is the per-learner running balance. Invariants:
// total = sum of earn amounts, available = total - spent, available >= 0.
type PointsLedger struct {
	ID              uint                `gorm:"primarykey" json:"id"`
	LearnerID       uuid.UUID           `json:"learner_id" gorm:"type:uuid;not null;uniqueIndex"`
	TotalPoints     int                 `json:"total_points" gorm:"not null;default:0"`
	AvailablePoints int                 `json:"available_points" gorm:"not null;default:0"`
	SpentPoints     int                 `json:"spent_points" gorm:"not null;default:0"`
	Achievements    []Achievement       `json:"achievements,omitempty" gorm:"foreignKey:LedgerID"`
	Badges          []Badge             `json:"badges,omitempty" gorm:"foreignKey:LedgerID"`
	Transactions    []PointsTransaction `json:"transactions,omitempty" gorm:"foreignKey:LedgerID"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
	DeletedAt       gorm.DeletedAt      `gorm:"index" json:"-"`
}

// PointsTransaction is one append-only ledger entry. Earn entries double as
// idempotency records: at most one earn per (ledger, source, source_id).
type PointsTransaction struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	LedgerID    uint      `json:"ledger_id" gorm:"not null;index"`
	Amount      int       `json:"amount" gorm:"not null"`
	Direction   string    `json:"direction" gorm:"not null;index"` // earn, spend
	Source      string    `json:"source" gorm:"not null"`          // assignment, quiz, lecture, participation, bonus, other
	SourceID    string    `json:"source_id,omitempty" gorm:"index"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

type Achievement struct {
	ID       uint      `gorm:"primarykey" json:"id"`
	LedgerID uint      `json:"ledger_id" gorm:"not null;index"`
	Name     string    `json:"name" gorm:"not null"`
	EarnedAt time.Time `json:"earned_at" gorm:"autoCreateTime"`
}

type Badge struct {
	ID       uint      `gorm:"primarykey" json:"id"`
	LedgerID uint      `json:"ledger_id" gorm:"not null;index"`
	Name     string    `json:"name" gorm:"not null"`
	EarnedAt time.Time `json:"earned_at" gorm:"autoCreateTime"`
}
