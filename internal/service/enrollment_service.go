package service

import (
	"errors"
	"math"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/ptminh/learnhub/config"
	"github.com/ptminh/learnhub/internal/apperr"
	"github.com/ptminh/learnhub/internal/dto"
	"github.com/ptminh/learnhub/internal/model"
	"github.com/ptminh/learnhub/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// EnrollmentService manages the learner-course relationship: enrolling, the
// enrollment gate guarding all graded content, lecture completion with
// progress recomputation, and the learner dashboard.
type EnrollmentService interface {
	Enroll(courseID uint, learnerID uuid.UUID) (*dto.EnrollmentDTO, error)
	IsEnrolled(courseID uint, learnerID uuid.UUID) (bool, error)
	CompleteLecture(courseID, lectureID uint, learnerID uuid.UUID) (*dto.ProgressDTO, error)
	Dashboard(learnerID uuid.UUID) (*dto.DashboardDTO, error)
}

type enrollmentService struct {
	courseRepo     repository.CourseRepository
	enrollmentRepo repository.EnrollmentRepository
	ledgerService  LedgerService
	points         config.Points
}

func NewEnrollmentService(
	courseRepo repository.CourseRepository,
	enrollmentRepo repository.EnrollmentRepository,
	ledgerService LedgerService,
	cfg *config.Config,
) EnrollmentService {
	return &enrollmentService{
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		ledgerService:  ledgerService,
		points:         cfg.Points,
	}
}

func (s *enrollmentService) Enroll(courseID uint, learnerID uuid.UUID) (*dto.EnrollmentDTO, error) {
	if _, err := s.courseRepo.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("course %d not found", courseID)
		}
		return nil, apperr.Internal(err, "failed to load course")
	}

	if _, err := s.enrollmentRepo.FindByCourseAndLearner(courseID, learnerID); err == nil {
		return nil, apperr.Conflict("learner %s is already enrolled in course %d", learnerID, courseID)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Internal(err, "failed to check enrollment")
	}

	enrollment := model.Enrollment{CourseID: courseID, LearnerID: learnerID}
	if err := s.enrollmentRepo.Create(&enrollment); err != nil {
		log.Error().Err(err).Uint("courseID", courseID).Str("learnerID", learnerID.String()).Msg("Enroll: database error")
		return nil, apperr.Internal(err, "failed to enroll learner")
	}

	log.Info().Uint("courseID", courseID).Str("learnerID", learnerID.String()).Msg("Learner enrolled")
	var resp dto.EnrollmentDTO
	copier.Copy(&resp, &enrollment)
	return &resp, nil
}

func (s *enrollmentService) IsEnrolled(courseID uint, learnerID uuid.UUID) (bool, error) {
	_, err := s.enrollmentRepo.FindByCourseAndLearner(courseID, learnerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, apperr.Internal(err, "failed to check enrollment")
	}
	return true, nil
}

func (s *enrollmentService) CompleteLecture(courseID, lectureID uint, learnerID uuid.UUID) (*dto.ProgressDTO, error) {
	enrollment, err := s.enrollmentRepo.FindByCourseAndLearner(courseID, learnerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Forbidden("learner %s is not enrolled in course %d", learnerID, courseID)
		}
		return nil, apperr.Internal(err, "failed to check enrollment")
	}

	if _, err := s.courseRepo.FindLecture(courseID, lectureID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("lecture %d not found in course %d", lectureID, courseID)
		}
		return nil, apperr.Internal(err, "failed to load lecture")
	}

	done, err := s.enrollmentRepo.HasCompletedLecture(enrollment.ID, lectureID)
	if err != nil {
		return nil, apperr.Internal(err, "failed to check lecture completion")
	}
	if done {
		return nil, apperr.Conflict("lecture %d is already completed", lectureID)
	}

	if err := s.enrollmentRepo.AddCompletedLecture(&model.CompletedLecture{
		EnrollmentID: enrollment.ID,
		LectureID:    lectureID,
	}); err != nil {
		return nil, apperr.Internal(err, "failed to record lecture completion")
	}

	completed, err := s.enrollmentRepo.CountCompletedLectures(enrollment.ID)
	if err != nil {
		return nil, apperr.Internal(err, "failed to count completed lectures")
	}
	total, err := s.courseRepo.CountLectures(courseID)
	if err != nil {
		return nil, apperr.Internal(err, "failed to count course lectures")
	}

	progress := computeProgress(completed, total)
	if err := s.enrollmentRepo.UpdateProgress(enrollment.ID, progress); err != nil {
		return nil, apperr.Internal(err, "failed to update progress")
	}

	awarded := 0
	ok, err := s.ledgerService.EarnOnce(learnerID, s.points.LectureCompletion, model.SourceLecture,
		strconv.FormatUint(uint64(lectureID), 10), "Completed lecture")
	if err != nil {
		// Completion state is already recorded; surface the award failure.
		log.Error().Err(err).Uint("lectureID", lectureID).Str("learnerID", learnerID.String()).
			Msg("CompleteLecture: point award failed")
		return nil, err
	}
	if ok {
		awarded = s.points.LectureCompletion
	}

	log.Info().Uint("courseID", courseID).Uint("lectureID", lectureID).Str("learnerID", learnerID.String()).
		Int("progress", progress).Msg("Lecture completed")

	return &dto.ProgressDTO{
		CourseID:          courseID,
		CompletedLectures: int(completed),
		TotalLectures:     int(total),
		Progress:          progress,
		PointsAwarded:     awarded,
	}, nil
}

// computeProgress is the lecture-centric progress definition: percentage of
// the course's lectures completed, 0 for a course with no lectures.
func computeProgress(completed, total int64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}

func (s *enrollmentService) Dashboard(learnerID uuid.UUID) (*dto.DashboardDTO, error) {
	// The three reads are independent; gather them concurrently before
	// composing the response.
	var (
		wg          sync.WaitGroup
		enrollments []model.Enrollment
		balance     *dto.LedgerBalanceDTO
		activity    []dto.TransactionDTO
	)
	errs := make(chan error, 3)

	wg.Add(3)
	go func() {
		defer wg.Done()
		var err error
		enrollments, err = s.enrollmentRepo.FindAllByLearner(learnerID)
		if err != nil {
			errs <- apperr.Internal(err, "failed to load enrollments")
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		balance, err = s.ledgerService.Balance(learnerID)
		if err != nil {
			errs <- err
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		activity, err = s.ledgerService.History(learnerID, 10)
		if err != nil {
			errs <- err
		}
	}()
	wg.Wait()
	close(errs)
	if err := <-errs; err != nil {
		log.Error().Err(err).Str("learnerID", learnerID.String()).Msg("Dashboard: aggregation failed")
		return nil, err
	}

	resp := dto.DashboardDTO{
		LearnerID:      learnerID,
		Enrollments:    make([]dto.EnrollmentDTO, 0, len(enrollments)),
		Balance:        balance,
		RecentActivity: activity,
	}

	sum := 0
	for _, e := range enrollments {
		var d dto.EnrollmentDTO
		copier.Copy(&d, &e)
		resp.Enrollments = append(resp.Enrollments, d)
		sum += e.Progress
	}
	// Overall progress is the unweighted mean of per-enrollment progress.
	if len(enrollments) > 0 {
		resp.OverallProgress = int(math.Round(float64(sum) / float64(len(enrollments))))
	}

	return &resp, nil
}
