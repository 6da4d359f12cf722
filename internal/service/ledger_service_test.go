package service

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/ptminh/learnhub/internal/apperr"
	"github.com/ptminh/learnhub/internal/dto"
	"github.com/ptminh/learnhub/internal/model"
)

func TestLedgerEarnSpendConservation(t *testing.T) {
	repo := newFakeLedgerRepo()
	svc := NewLedgerService(repo)
	learner := uuid.New()

	if _, err := svc.Earn(learner, dto.EarnPointsDTO{Amount: 100, Source: model.SourceBonus}); err != nil {
		t.Fatalf("Earn(100) failed: %v", err)
	}
	if _, err := svc.Earn(learner, dto.EarnPointsDTO{Amount: 50, Source: model.SourceBonus}); err != nil {
		t.Fatalf("Earn(50) failed: %v", err)
	}
	balance, err := svc.Spend(learner, dto.SpendPointsDTO{Amount: 30, Source: model.SourceOther})
	if err != nil {
		t.Fatalf("Spend(30) failed: %v", err)
	}

	if balance.TotalPoints != 150 {
		t.Errorf("TotalPoints = %d, want 150", balance.TotalPoints)
	}
	if balance.AvailablePoints != 120 {
		t.Errorf("AvailablePoints = %d, want 120", balance.AvailablePoints)
	}
	if balance.SpentPoints != 30 {
		t.Errorf("SpentPoints = %d, want 30", balance.SpentPoints)
	}
	if balance.TotalPoints != balance.AvailablePoints+balance.SpentPoints {
		t.Errorf("total %d != available %d + spent %d", balance.TotalPoints, balance.AvailablePoints, balance.SpentPoints)
	}
}

func TestLedgerSpendInsufficient(t *testing.T) {
	repo := newFakeLedgerRepo()
	svc := NewLedgerService(repo)
	learner := uuid.New()

	if _, err := svc.Earn(learner, dto.EarnPointsDTO{Amount: 100, Source: model.SourceBonus}); err != nil {
		t.Fatalf("Earn failed: %v", err)
	}

	_, err := svc.Spend(learner, dto.SpendPointsDTO{Amount: 150, Source: model.SourceOther})
	if err == nil {
		t.Fatal("Spend(150) with 100 available should fail")
	}
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Errorf("KindOf = %v, want KindConflict", apperr.KindOf(err))
	}

	// Balance must be untouched by the rejected spend.
	balance, err := svc.Balance(learner)
	if err != nil {
		t.Fatalf("Balance failed: %v", err)
	}
	if balance.AvailablePoints != 100 || balance.SpentPoints != 0 {
		t.Errorf("balance after rejected spend = %+v, want available 100, spent 0", balance)
	}
}

func TestLedgerSpendWithoutLedger(t *testing.T) {
	svc := NewLedgerService(newFakeLedgerRepo())

	_, err := svc.Spend(uuid.New(), dto.SpendPointsDTO{Amount: 10, Source: model.SourceOther})
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("KindOf = %v, want KindNotFound", apperr.KindOf(err))
	}
}

func TestLedgerInvalidAmounts(t *testing.T) {
	svc := NewLedgerService(newFakeLedgerRepo())
	learner := uuid.New()

	for _, amount := range []int{0, -5} {
		if _, err := svc.Earn(learner, dto.EarnPointsDTO{Amount: amount, Source: model.SourceBonus}); apperr.KindOf(err) != apperr.KindValidation {
			t.Errorf("Earn(%d): KindOf = %v, want KindValidation", amount, apperr.KindOf(err))
		}
		if _, err := svc.Spend(learner, dto.SpendPointsDTO{Amount: amount, Source: model.SourceOther}); apperr.KindOf(err) != apperr.KindValidation {
			t.Errorf("Spend(%d): KindOf = %v, want KindValidation", amount, apperr.KindOf(err))
		}
		if _, err := svc.EarnOnce(learner, amount, model.SourceQuiz, "1", ""); apperr.KindOf(err) != apperr.KindValidation {
			t.Errorf("EarnOnce(%d): KindOf = %v, want KindValidation", amount, apperr.KindOf(err))
		}
	}
}

func TestLedgerEarnOnceIdempotent(t *testing.T) {
	svc := NewLedgerService(newFakeLedgerRepo())
	learner := uuid.New()

	ok, err := svc.EarnOnce(learner, 25, model.SourceQuiz, "7", "Completed quiz")
	if err != nil || !ok {
		t.Fatalf("first EarnOnce = (%v, %v), want (true, nil)", ok, err)
	}
	ok, err = svc.EarnOnce(learner, 25, model.SourceQuiz, "7", "Completed quiz")
	if err != nil {
		t.Fatalf("second EarnOnce failed: %v", err)
	}
	if ok {
		t.Error("second EarnOnce for the same source awarded again")
	}

	// A different source id is a distinct award.
	ok, err = svc.EarnOnce(learner, 10, model.SourceQuiz, "8", "Completed quiz")
	if err != nil || !ok {
		t.Fatalf("EarnOnce for other quiz = (%v, %v), want (true, nil)", ok, err)
	}

	balance, err := svc.Balance(learner)
	if err != nil {
		t.Fatalf("Balance failed: %v", err)
	}
	if balance.TotalPoints != 35 {
		t.Errorf("TotalPoints = %d, want 35", balance.TotalPoints)
	}
}

func TestLedgerBalanceWithoutLedgerIsZero(t *testing.T) {
	svc := NewLedgerService(newFakeLedgerRepo())
	learner := uuid.New()

	balance, err := svc.Balance(learner)
	if err != nil {
		t.Fatalf("Balance failed: %v", err)
	}
	if balance.LearnerID != learner {
		t.Errorf("LearnerID = %s, want %s", balance.LearnerID, learner)
	}
	if balance.TotalPoints != 0 || balance.AvailablePoints != 0 || balance.SpentPoints != 0 {
		t.Errorf("fresh balance = %+v, want all zero", balance)
	}
}

func TestLedgerHistoryNewestFirst(t *testing.T) {
	svc := NewLedgerService(newFakeLedgerRepo())
	learner := uuid.New()

	for _, amount := range []int{10, 20, 30} {
		if _, err := svc.Earn(learner, dto.EarnPointsDTO{Amount: amount, Source: model.SourceBonus}); err != nil {
			t.Fatalf("Earn(%d) failed: %v", amount, err)
		}
	}

	history, err := svc.History(learner, 2)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("len(history) = %d, want 2", len(history))
	}
	if history[0].Amount != 30 || history[1].Amount != 20 {
		t.Errorf("history amounts = [%d, %d], want [30, 20]", history[0].Amount, history[1].Amount)
	}
}

func TestLedgerHistoryWithoutLedgerIsEmpty(t *testing.T) {
	svc := NewLedgerService(newFakeLedgerRepo())

	history, err := svc.History(uuid.New(), 0)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("len(history) = %d, want 0", len(history))
	}
}

func TestLedgerStoreFailureIsInternal(t *testing.T) {
	repo := newFakeLedgerRepo()
	repo.failAppend = errors.New("connection reset")
	svc := NewLedgerService(repo)

	_, err := svc.Earn(uuid.New(), dto.EarnPointsDTO{Amount: 10, Source: model.SourceBonus})
	if apperr.KindOf(err) != apperr.KindInternal {
		t.Errorf("KindOf = %v, want KindInternal", apperr.KindOf(err))
	}
}

func TestLedgerConcurrentEarns(t *testing.T) {
	svc := NewLedgerService(newFakeLedgerRepo())
	learner := uuid.New()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Earn(learner, dto.EarnPointsDTO{Amount: 5, Source: model.SourceParticipation}); err != nil {
				t.Errorf("concurrent Earn failed: %v", err)
			}
		}()
	}
	wg.Wait()

	balance, err := svc.Balance(learner)
	if err != nil {
		t.Fatalf("Balance failed: %v", err)
	}
	if balance.TotalPoints != 100 {
		t.Errorf("TotalPoints after 20 concurrent earns = %d, want 100", balance.TotalPoints)
	}
}
