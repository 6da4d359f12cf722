package service

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/ptminh/learnhub/internal/apperr"
	"github.com/ptminh/learnhub/internal/dto"
	"github.com/ptminh/learnhub/internal/model"
	"github.com/ptminh/learnhub/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// LedgerService owns all point mutations. Earn/spend for one learner are
// serialized through a per-learner mutex so balances cannot interleave
// unsafely; the ledger transaction log is the canonical guard against double
// awards (EarnOnce).
type LedgerService interface {
	Earn(learnerID uuid.UUID, req dto.EarnPointsDTO) (*dto.LedgerBalanceDTO, error)
	// EarnOnce awards amount at most once per (learner, source, sourceID).
	// Returns false without error when the award already happened.
	EarnOnce(learnerID uuid.UUID, amount int, source, sourceID, description string) (bool, error)
	Spend(learnerID uuid.UUID, req dto.SpendPointsDTO) (*dto.LedgerBalanceDTO, error)
	Balance(learnerID uuid.UUID) (*dto.LedgerBalanceDTO, error)
	History(learnerID uuid.UUID, limit int) ([]dto.TransactionDTO, error)
}

type ledgerService struct {
	ledgerRepo repository.LedgerRepository

	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func NewLedgerService(ledgerRepo repository.LedgerRepository) LedgerService {
	return &ledgerService{
		ledgerRepo: ledgerRepo,
		locks:      make(map[uuid.UUID]*sync.Mutex),
	}
}

// learnerLock returns the mutex serializing mutations for one learner.
func (s *ledgerService) learnerLock(learnerID uuid.UUID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[learnerID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[learnerID] = l
	}
	return l
}

func (s *ledgerService) Earn(learnerID uuid.UUID, req dto.EarnPointsDTO) (*dto.LedgerBalanceDTO, error) {
	if req.Amount <= 0 {
		return nil, apperr.Validation("amount", "earn amount must be positive, got %d", req.Amount)
	}

	lock := s.learnerLock(learnerID)
	lock.Lock()
	defer lock.Unlock()

	ledger, err := s.ledgerRepo.FindOrCreate(learnerID)
	if err != nil {
		log.Error().Err(err).Str("learnerID", learnerID.String()).Msg("Earn: failed to load ledger")
		return nil, apperr.Internal(err, "failed to load points ledger")
	}

	entry := model.PointsTransaction{
		Amount:      req.Amount,
		Source:      req.Source,
		SourceID:    req.SourceID,
		Description: req.Description,
	}
	if err := s.ledgerRepo.AppendEarn(ledger.ID, &entry); err != nil {
		log.Error().Err(err).Uint("ledgerID", ledger.ID).Msg("Earn: failed to append transaction")
		return nil, apperr.Internal(err, "failed to record earned points")
	}

	log.Info().Str("learnerID", learnerID.String()).Int("amount", req.Amount).Str("source", req.Source).Msg("Points earned")
	return s.balance(learnerID)
}

func (s *ledgerService) EarnOnce(learnerID uuid.UUID, amount int, source, sourceID, description string) (bool, error) {
	if amount <= 0 {
		return false, apperr.Validation("amount", "earn amount must be positive, got %d", amount)
	}

	lock := s.learnerLock(learnerID)
	lock.Lock()
	defer lock.Unlock()

	ledger, err := s.ledgerRepo.FindOrCreate(learnerID)
	if err != nil {
		return false, apperr.Internal(err, "failed to load points ledger")
	}

	earned, err := s.ledgerRepo.HasEarnedFrom(ledger.ID, source, sourceID)
	if err != nil {
		return false, apperr.Internal(err, "failed to check award history")
	}
	if earned {
		log.Info().Str("learnerID", learnerID.String()).Str("source", source).Str("sourceID", sourceID).
			Msg("EarnOnce: award already recorded, skipping")
		return false, nil
	}

	entry := model.PointsTransaction{
		Amount:      amount,
		Source:      source,
		SourceID:    sourceID,
		Description: description,
	}
	if err := s.ledgerRepo.AppendEarn(ledger.ID, &entry); err != nil {
		return false, apperr.Internal(err, "failed to record earned points")
	}

	log.Info().Str("learnerID", learnerID.String()).Int("amount", amount).Str("source", source).Str("sourceID", sourceID).Msg("Points awarded")
	return true, nil
}

func (s *ledgerService) Spend(learnerID uuid.UUID, req dto.SpendPointsDTO) (*dto.LedgerBalanceDTO, error) {
	if req.Amount <= 0 {
		return nil, apperr.Validation("amount", "spend amount must be positive, got %d", req.Amount)
	}

	lock := s.learnerLock(learnerID)
	lock.Lock()
	defer lock.Unlock()

	ledger, err := s.ledgerRepo.FindByLearner(learnerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("learner %s has no points ledger", learnerID)
		}
		return nil, apperr.Internal(err, "failed to load points ledger")
	}

	if req.Amount > ledger.AvailablePoints {
		return nil, apperr.Conflict("insufficient points: have %d available, want to spend %d", ledger.AvailablePoints, req.Amount)
	}

	entry := model.PointsTransaction{
		Amount:      req.Amount,
		Source:      req.Source,
		Description: req.Description,
	}
	if err := s.ledgerRepo.AppendSpend(ledger.ID, &entry); err != nil {
		log.Error().Err(err).Uint("ledgerID", ledger.ID).Msg("Spend: failed to append transaction")
		return nil, apperr.Internal(err, "failed to record spent points")
	}

	log.Info().Str("learnerID", learnerID.String()).Int("amount", req.Amount).Msg("Points spent")
	return s.balance(learnerID)
}

func (s *ledgerService) Balance(learnerID uuid.UUID) (*dto.LedgerBalanceDTO, error) {
	return s.balance(learnerID)
}

func (s *ledgerService) balance(learnerID uuid.UUID) (*dto.LedgerBalanceDTO, error) {
	ledger, err := s.ledgerRepo.FindByLearner(learnerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// No ledger yet: all balances are zero.
			return &dto.LedgerBalanceDTO{LearnerID: learnerID}, nil
		}
		return nil, apperr.Internal(err, "failed to load points ledger")
	}

	return &dto.LedgerBalanceDTO{
		LearnerID:       ledger.LearnerID,
		TotalPoints:     ledger.TotalPoints,
		AvailablePoints: ledger.AvailablePoints,
		SpentPoints:     ledger.SpentPoints,
	}, nil
}

func (s *ledgerService) History(learnerID uuid.UUID, limit int) ([]dto.TransactionDTO, error) {
	ledger, err := s.ledgerRepo.FindByLearner(learnerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []dto.TransactionDTO{}, nil
		}
		return nil, apperr.Internal(err, "failed to load points ledger")
	}

	entries, err := s.ledgerRepo.Transactions(ledger.ID, limit)
	if err != nil {
		return nil, apperr.Internal(err, "failed to load transaction history")
	}

	dtos := make([]dto.TransactionDTO, 0, len(entries))
	for _, entry := range entries {
		var d dto.TransactionDTO
		if err := copier.Copy(&d, &entry); err != nil {
			log.Error().Err(err).Uint("transactionID", entry.ID).Msg("History: failed to copy transaction to DTO")
			continue
		}
		dtos = append(dtos, d)
	}
	return dtos, nil
}
