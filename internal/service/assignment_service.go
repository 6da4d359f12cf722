package service

import (
	"errors"
	"math"
	"strconv"
	"time"

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

type AssignmentService interface {
	CreateAssignment(req dto.AssignmentCreateDTO) (*dto.AssignmentResponseDTO, error)
	ListByCourse(courseID uint) ([]dto.AssignmentResponseDTO, error)
	Submit(assignmentID uint, learnerID uuid.UUID, req dto.SubmissionCreateDTO) (*dto.SubmissionResponseDTO, error)
	Grade(submissionID uint, graderID uuid.UUID, req dto.GradeSubmissionDTO) (*dto.SubmissionResponseDTO, error)
}

type assignmentService struct {
	assignmentRepo repository.AssignmentRepository
	enrollmentRepo repository.EnrollmentRepository
	ledgerService  LedgerService
	points         config.Points

	now func() time.Time
}

func NewAssignmentService(
	assignmentRepo repository.AssignmentRepository,
	enrollmentRepo repository.EnrollmentRepository,
	ledgerService LedgerService,
	cfg *config.Config,
) AssignmentService {
	return &assignmentService{
		assignmentRepo: assignmentRepo,
		enrollmentRepo: enrollmentRepo,
		ledgerService:  ledgerService,
		points:         cfg.Points,
		now:            time.Now,
	}
}

func (s *assignmentService) CreateAssignment(req dto.AssignmentCreateDTO) (*dto.AssignmentResponseDTO, error) {
	var assignment model.Assignment
	if err := copier.Copy(&assignment, &req); err != nil {
		return nil, apperr.Internal(err, "failed to map assignment payload")
	}

	if err := s.assignmentRepo.Create(&assignment); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("CreateAssignment: database error")
		return nil, apperr.Internal(err, "failed to create assignment")
	}

	log.Info().Uint("assignmentID", assignment.ID).Uint("courseID", assignment.CourseID).Msg("Assignment created")
	var resp dto.AssignmentResponseDTO
	copier.Copy(&resp, &assignment)
	return &resp, nil
}

func (s *assignmentService) ListByCourse(courseID uint) ([]dto.AssignmentResponseDTO, error) {
	assignments, err := s.assignmentRepo.FindAllByCourse(courseID)
	if err != nil {
		return nil, apperr.Internal(err, "failed to list assignments")
	}

	dtos := make([]dto.AssignmentResponseDTO, 0, len(assignments))
	for _, assignment := range assignments {
		var d dto.AssignmentResponseDTO
		copier.Copy(&d, &assignment)
		dtos = append(dtos, d)
	}
	return dtos, nil
}

func (s *assignmentService) Submit(assignmentID uint, learnerID uuid.UUID, req dto.SubmissionCreateDTO) (*dto.SubmissionResponseDTO, error) {
	assignment, err := s.assignmentRepo.FindByID(assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("assignment %d not found", assignmentID)
		}
		return nil, apperr.Internal(err, "failed to load assignment")
	}

	enrollment, err := s.enrollmentRepo.FindByCourseAndLearner(assignment.CourseID, learnerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Forbidden("learner %s is not enrolled in course %d", learnerID, assignment.CourseID)
		}
		return nil, apperr.Internal(err, "failed to check enrollment")
	}

	if _, err := s.assignmentRepo.FindSubmission(assignmentID, learnerID); err == nil {
		return nil, apperr.Conflict("learner %s already submitted assignment %d", learnerID, assignmentID)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Internal(err, "failed to check existing submission")
	}

	if err := validateSubmissionPayload(assignment.SubmissionType, req); err != nil {
		return nil, err
	}

	now := s.now()
	isLate := now.After(assignment.DueDate)
	if isLate && !assignment.AllowLate {
		return nil, apperr.Conflict("assignment %d deadline passed at %s", assignmentID, assignment.DueDate.Format(time.RFC3339))
	}

	submission := model.AssignmentSubmission{
		AssignmentID: assignmentID,
		LearnerID:    learnerID,
		Content:      req.Content,
		FileURL:      req.FileURL,
		SubmittedAt:  now,
		IsLate:       isLate,
		Status:       model.SubmissionStatusSubmitted,
	}
	if isLate {
		submission.Status = model.SubmissionStatusLate
		submission.LatePenalty = latePenalty(assignment, now)
	}

	if err := s.assignmentRepo.AddSubmission(&submission); err != nil {
		log.Error().Err(err).Uint("assignmentID", assignmentID).Msg("Submit: failed to add submission")
		return nil, apperr.Internal(err, "failed to record submission")
	}

	if err := s.assignmentRepo.IncrementSubmissionStats(assignmentID, isLate); err != nil {
		log.Error().Err(err).Uint("assignmentID", assignmentID).Msg("Submit: failed to update submission stats")
	}

	awarded := 0
	reward := assignment.PointsReward
	if reward == 0 {
		reward = s.points.AssignmentCompletion
	}
	if reward > 0 {
		ok, err := s.ledgerService.EarnOnce(learnerID, reward, model.SourceAssignment,
			strconv.FormatUint(uint64(assignmentID), 10), "Submitted assignment: "+assignment.Title)
		if err != nil {
			log.Error().Err(err).Uint("assignmentID", assignmentID).Msg("Submit: point award failed")
			return nil, err
		}
		if ok {
			awarded = reward
		}
	}

	if done, err := s.enrollmentRepo.HasCompletedAssignment(enrollment.ID, assignmentID); err == nil && !done {
		if err := s.enrollmentRepo.AddCompletedAssignment(&model.CompletedAssignment{
			EnrollmentID: enrollment.ID,
			AssignmentID: assignmentID,
		}); err != nil {
			log.Error().Err(err).Uint("assignmentID", assignmentID).Msg("Submit: failed to record completed assignment")
		}
	}

	log.Info().Uint("assignmentID", assignmentID).Str("learnerID", learnerID.String()).
		Bool("late", isLate).Int("awarded", awarded).Msg("Assignment submitted")

	var resp dto.SubmissionResponseDTO
	copier.Copy(&resp, &submission)
	resp.PointsAwarded = awarded
	return &resp, nil
}

func (s *assignmentService) Grade(submissionID uint, graderID uuid.UUID, req dto.GradeSubmissionDTO) (*dto.SubmissionResponseDTO, error) {
	submission, err := s.assignmentRepo.FindSubmissionByID(submissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("submission %d not found", submissionID)
		}
		return nil, apperr.Internal(err, "failed to load submission")
	}

	assignment, err := s.assignmentRepo.FindByID(submission.AssignmentID)
	if err != nil {
		return nil, apperr.Internal(err, "failed to load assignment")
	}
	if req.Score > float64(assignment.MaxScore) {
		return nil, apperr.Validation("score", "score %.1f exceeds max score %d", req.Score, assignment.MaxScore)
	}

	gradedAt := s.now()
	submission.GradeScore = &req.Score
	submission.Feedback = req.Feedback
	submission.GradedBy = &graderID
	submission.GradedAt = &gradedAt
	submission.Status = model.SubmissionStatusGraded

	if err := s.assignmentRepo.UpdateSubmission(submission); err != nil {
		log.Error().Err(err).Uint("submissionID", submissionID).Msg("Grade: failed to update submission")
		return nil, apperr.Internal(err, "failed to save grade")
	}

	if err := s.assignmentRepo.RecomputeAverageScore(submission.AssignmentID); err != nil {
		log.Error().Err(err).Uint("assignmentID", submission.AssignmentID).Msg("Grade: failed to recompute average score")
	}

	log.Info().Uint("submissionID", submissionID).Float64("score", req.Score).Str("gradedBy", graderID.String()).Msg("Submission graded")

	var resp dto.SubmissionResponseDTO
	copier.Copy(&resp, submission)
	return &resp, nil
}

func validateSubmissionPayload(submissionType string, req dto.SubmissionCreateDTO) error {
	switch submissionType {
	case model.SubmissionTypeText:
		if req.Content == "" {
			return apperr.Validation("content", "text submission requires content")
		}
	case model.SubmissionTypeFile, model.SubmissionTypeURL:
		if req.FileURL == "" {
			return apperr.Validation("file_url", "%s submission requires file_url", submissionType)
		}
	}
	return nil
}

// latePenalty is the percentage deducted for a late submission: the
// per-day penalty times the number of started days past the due date,
// capped at 100.
func latePenalty(assignment *model.Assignment, submittedAt time.Time) int {
	daysLate := int(math.Ceil(submittedAt.Sub(assignment.DueDate).Hours() / 24))
	if daysLate < 1 {
		daysLate = 1
	}
	penalty := daysLate * assignment.LatePenaltyPerDay
	if penalty > 100 {
		penalty = 100
	}
	return penalty
}
