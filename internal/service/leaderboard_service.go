package service

import (
	"github.com/ptminh/learnhub/internal/apperr"
	"github.com/ptminh/learnhub/internal/dto"
	"github.com/ptminh/learnhub/internal/repository"
)

const defaultLeaderboardSize = 10

// LeaderboardService is a read-only ranked projection over the ledgers:
// total points descending, learner id ascending on ties.
type LeaderboardService interface {
	TopLearners(limit int) ([]dto.LeaderboardEntryDTO, error)
}

type leaderboardService struct {
	ledgerRepo repository.LedgerRepository
}

func NewLeaderboardService(ledgerRepo repository.LedgerRepository) LeaderboardService {
	return &leaderboardService{ledgerRepo: ledgerRepo}
}

func (s *leaderboardService) TopLearners(limit int) ([]dto.LeaderboardEntryDTO, error) {
	if limit <= 0 {
		limit = defaultLeaderboardSize
	}

	ledgers, err := s.ledgerRepo.FindTop(limit)
	if err != nil {
		return nil, apperr.Internal(err, "failed to load leaderboard")
	}

	entries := make([]dto.LeaderboardEntryDTO, 0, len(ledgers))
	for i, ledger := range ledgers {
		entries = append(entries, dto.LeaderboardEntryDTO{
			Rank:             i + 1,
			LearnerID:        ledger.LearnerID,
			TotalPoints:      ledger.TotalPoints,
			AvailablePoints:  ledger.AvailablePoints,
			AchievementCount: len(ledger.Achievements),
			BadgeCount:       len(ledger.Badges),
		})
	}
	return entries, nil
}
