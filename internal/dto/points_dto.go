package dto

import (
	"time"

	"github.com/google/uuid"
)

type EarnPointsDTO struct {
	Amount      int    `json:"amount" binding:"required"`
	Source      string `json:"source" binding:"required,oneof=assignment quiz lecture participation bonus other"`
	SourceID    string `json:"source_id,omitempty"`
	Description string `json:"description,omitempty"`
}

type SpendPointsDTO struct {
	Amount      int    `json:"amount" binding:"required"`
	Source      string `json:"source" binding:"required,oneof=assignment quiz lecture participation bonus other"`
	Description string `json:"description,omitempty"`
}

type LedgerBalanceDTO struct {
	LearnerID       uuid.UUID `json:"learner_id"`
	TotalPoints     int       `json:"total_points"`
	AvailablePoints int       `json:"available_points"`
	SpentPoints     int       `json:"spent_points"`
}

type TransactionDTO struct {
	ID          uint      `json:"id"`
	Amount      int       `json:"amount"`
	Direction   string    `json:"direction"`
	Source      string    `json:"source"`
	SourceID    string    `json:"source_id,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type LeaderboardEntryDTO struct {
	Rank             int       `json:"rank"`
	LearnerID        uuid.UUID `json:"learner_id"`
	TotalPoints      int       `json:"total_points"`
	AvailablePoints  int       `json:"available_points"`
	AchievementCount int       `json:"achievement_count"`
	BadgeCount       int       `json:"badge_count"`
}
