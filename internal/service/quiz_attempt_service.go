package service

import (
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/ptminh/learnhub/internal/apperr"
	"github.com/ptminh/learnhub/internal/dto"
	"github.com/ptminh/learnhub/internal/model"
	"github.com/ptminh/learnhub/internal/repository"
	"github.com/ptminh/learnhub/internal/scoring"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// QuizAttemptService drives the attempt lifecycle: start (gate, availability
// window, attempt cap) and submit (score, one-way terminal transition,
// one-time point award, quiz statistics).
type QuizAttemptService interface {
	Start(quizID uint, learnerID uuid.UUID) (*dto.AttemptStartedDTO, error)
	Submit(quizID uint, learnerID uuid.UUID, req dto.AttemptSubmitDTO) (*dto.AttemptResultDTO, error)
	MyAttempts(quizID uint, learnerID uuid.UUID) ([]dto.AttemptSummaryDTO, error)
}

type quizAttemptService struct {
	quizRepo       repository.QuizRepository
	attemptRepo    repository.QuizAttemptRepository
	enrollmentRepo repository.EnrollmentRepository
	ledgerService  LedgerService

	now func() time.Time
}

func NewQuizAttemptService(
	quizRepo repository.QuizRepository,
	attemptRepo repository.QuizAttemptRepository,
	enrollmentRepo repository.EnrollmentRepository,
	ledgerService LedgerService,
) QuizAttemptService {
	return &quizAttemptService{
		quizRepo:       quizRepo,
		attemptRepo:    attemptRepo,
		enrollmentRepo: enrollmentRepo,
		ledgerService:  ledgerService,
		now:            time.Now,
	}
}

func (s *quizAttemptService) Start(quizID uint, learnerID uuid.UUID) (*dto.AttemptStartedDTO, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("quiz %d not found", quizID)
		}
		return nil, apperr.Internal(err, "failed to load quiz")
	}

	if err := s.requireEnrollment(quiz.CourseID, learnerID); err != nil {
		return nil, err
	}

	now := s.now()
	if quiz.AvailableFrom != nil && now.Before(*quiz.AvailableFrom) {
		return nil, apperr.Unavailable("quiz %d is not available until %s", quizID, quiz.AvailableFrom.Format(time.RFC3339))
	}
	if quiz.AvailableUntil != nil && now.After(*quiz.AvailableUntil) {
		return nil, apperr.Unavailable("quiz %d closed at %s", quizID, quiz.AvailableUntil.Format(time.RFC3339))
	}

	// A stale in-progress attempt whose time budget has run out is abandoned
	// rather than blocking the learner forever.
	if active, err := s.attemptRepo.FindInProgress(quizID, learnerID); err == nil {
		if !s.attemptExpired(quiz, active, now) {
			return nil, apperr.Conflict("attempt %d is still in progress for quiz %d", active.ID, quizID)
		}
		if err := s.attemptRepo.MarkAbandoned(active.ID); err != nil {
			return nil, apperr.Internal(err, "failed to abandon expired attempt")
		}
		log.Info().Uint("attemptID", active.ID).Uint("quizID", quizID).Msg("Expired attempt abandoned")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Internal(err, "failed to check active attempt")
	}

	attempt := model.QuizAttempt{
		QuizID:    quizID,
		LearnerID: learnerID,
		StartedAt: now,
	}
	if err := s.attemptRepo.CreateWithinLimit(&attempt, quiz.MaxAttempts); err != nil {
		switch {
		case errors.Is(err, repository.ErrAttemptLimitReached):
			return nil, apperr.Conflict("attempt limit of %d reached for quiz %d", quiz.MaxAttempts, quizID)
		case errors.Is(err, repository.ErrActiveAttempt):
			return nil, apperr.Conflict("an attempt is already in progress for quiz %d", quizID)
		default:
			return nil, apperr.Internal(err, "failed to create attempt")
		}
	}

	log.Info().Uint("quizID", quizID).Uint("attemptID", attempt.ID).Int("attemptNumber", attempt.AttemptNumber).
		Str("learnerID", learnerID.String()).Msg("Quiz attempt started")

	return &dto.AttemptStartedDTO{
		AttemptID:        attempt.ID,
		AttemptNumber:    attempt.AttemptNumber,
		StartedAt:        attempt.StartedAt,
		TimeLimitMinutes: quiz.TimeLimitMinutes,
		Questions:        sanitizeQuestions(quiz.Questions),
	}, nil
}

func (s *quizAttemptService) Submit(quizID uint, learnerID uuid.UUID, req dto.AttemptSubmitDTO) (*dto.AttemptResultDTO, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("quiz %d not found", quizID)
		}
		return nil, apperr.Internal(err, "failed to load quiz")
	}

	if err := s.requireEnrollment(quiz.CourseID, learnerID); err != nil {
		return nil, err
	}

	attempt, err := s.attemptRepo.FindInProgress(quizID, learnerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("no active attempt for quiz %d", quizID)
		}
		return nil, apperr.Internal(err, "failed to load active attempt")
	}

	questions := make([]scoring.Question, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		questions = append(questions, scoring.Question{ID: q.ID, CorrectAnswer: q.CorrectAnswer, Points: q.Points})
	}
	answers := make([]scoring.Answer, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, scoring.Answer{QuestionID: a.QuestionID, Value: a.Value})
	}
	result := scoring.Score(questions, answers)

	submittedAt := s.now()
	attempt.SubmittedAt = &submittedAt
	attempt.Score = result.Score
	attempt.TotalPoints = result.TotalPoints
	attempt.Percentage = result.Percentage
	attempt.TimeSpentSeconds = req.TimeSpentSeconds
	attempt.Answers = make([]model.AttemptAnswer, 0, len(result.Answers))
	for _, ar := range result.Answers {
		attempt.Answers = append(attempt.Answers, model.AttemptAnswer{
			AttemptID:      attempt.ID,
			QuestionID:     ar.QuestionID,
			SubmittedValue: ar.Value,
			IsCorrect:      ar.Correct,
			PointsEarned:   ar.PointsEarned,
		})
	}

	// One-way transition: a concurrent or repeated submit loses here.
	if err := s.attemptRepo.SubmitInProgress(attempt); err != nil {
		if errors.Is(err, repository.ErrNotInProgress) {
			return nil, apperr.Conflict("attempt %d is already submitted", attempt.ID)
		}
		return nil, apperr.Internal(err, "failed to submit attempt")
	}
	attempt.Status = model.AttemptStatusSubmitted

	awarded := 0
	if result.Score > 0 {
		ok, err := s.ledgerService.EarnOnce(learnerID, result.Score, model.SourceQuiz,
			strconv.FormatUint(uint64(quizID), 10), "Completed quiz: "+quiz.Title)
		if err != nil {
			log.Error().Err(err).Uint("quizID", quizID).Str("learnerID", learnerID.String()).
				Msg("Submit: point award failed")
			return nil, err
		}
		if ok {
			awarded = result.Score
		}
	}

	s.recordCompletion(quiz, learnerID, result)

	if count, avg, err := s.attemptRepo.SubmittedStats(quizID); err != nil {
		log.Error().Err(err).Uint("quizID", quizID).Msg("Submit: failed to compute quiz stats")
	} else if err := s.quizRepo.UpdateStats(quizID, int(count), avg); err != nil {
		log.Error().Err(err).Uint("quizID", quizID).Msg("Submit: failed to update quiz stats")
	}

	log.Info().Uint("quizID", quizID).Uint("attemptID", attempt.ID).Int("score", result.Score).
		Int("percentage", result.Percentage).Int("awarded", awarded).Msg("Quiz attempt submitted")

	resp := dto.AttemptResultDTO{
		AttemptID:     attempt.ID,
		AttemptNumber: attempt.AttemptNumber,
		SubmittedAt:   submittedAt,
		Score:         result.Score,
		TotalPoints:   result.TotalPoints,
		Percentage:    result.Percentage,
		CorrectCount:  result.CorrectCount,
		PointsAwarded: awarded,
	}
	if quiz.ShowAnswers {
		for _, a := range attempt.Answers {
			resp.Answers = append(resp.Answers, dto.AnswerResultDTO{
				QuestionID:     a.QuestionID,
				SubmittedValue: a.SubmittedValue,
				IsCorrect:      a.IsCorrect,
				PointsEarned:   a.PointsEarned,
			})
		}
	}
	return &resp, nil
}

func (s *quizAttemptService) MyAttempts(quizID uint, learnerID uuid.UUID) ([]dto.AttemptSummaryDTO, error) {
	attempts, err := s.attemptRepo.FindAllByQuizAndLearner(quizID, learnerID)
	if err != nil {
		return nil, apperr.Internal(err, "failed to load attempts")
	}

	dtos := make([]dto.AttemptSummaryDTO, 0, len(attempts))
	for _, attempt := range attempts {
		var d dto.AttemptSummaryDTO
		copier.Copy(&d, &attempt)
		dtos = append(dtos, d)
	}
	return dtos, nil
}

func (s *quizAttemptService) requireEnrollment(courseID uint, learnerID uuid.UUID) error {
	_, err := s.enrollmentRepo.FindByCourseAndLearner(courseID, learnerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Forbidden("learner %s is not enrolled in course %d", learnerID, courseID)
		}
		return apperr.Internal(err, "failed to check enrollment")
	}
	return nil
}

func (s *quizAttemptService) attemptExpired(quiz *model.Quiz, attempt *model.QuizAttempt, now time.Time) bool {
	if quiz.TimeLimitMinutes <= 0 {
		return false
	}
	deadline := attempt.StartedAt.Add(time.Duration(quiz.TimeLimitMinutes) * time.Minute)
	return now.After(deadline)
}

// recordCompletion maintains the enrollment's completed-quiz list. Display
// state only; failures are logged, not surfaced, since the ledger already
// holds the authoritative award record.
func (s *quizAttemptService) recordCompletion(quiz *model.Quiz, learnerID uuid.UUID, result scoring.Result) {
	enrollment, err := s.enrollmentRepo.FindByCourseAndLearner(quiz.CourseID, learnerID)
	if err != nil {
		log.Error().Err(err).Uint("quizID", quiz.ID).Msg("recordCompletion: failed to load enrollment")
		return
	}
	done, err := s.enrollmentRepo.HasCompletedQuiz(enrollment.ID, quiz.ID)
	if err != nil || done {
		return
	}
	if err := s.enrollmentRepo.AddCompletedQuiz(&model.CompletedQuiz{
		EnrollmentID: enrollment.ID,
		QuizID:       quiz.ID,
		Score:        result.Score,
		Percentage:   result.Percentage,
	}); err != nil {
		log.Error().Err(err).Uint("quizID", quiz.ID).Msg("recordCompletion: failed to record completed quiz")
	}
}
