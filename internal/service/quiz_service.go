package service

import (
	"errors"

	"github.com/jinzhu/copier"
	"github.com/ptminh/learnhub/internal/apperr"
	"github.com/ptminh/learnhub/internal/dto"
	"github.com/ptminh/learnhub/internal/model"
	"github.com/ptminh/learnhub/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type QuizService interface {
	CreateQuiz(req dto.QuizCreateDTO) (*dto.QuizResponseDTO, error)
	// GetQuiz returns the learner-facing view: questions without answer key.
	GetQuiz(quizID uint) (*dto.QuizResponseDTO, error)
	ListByCourse(courseID uint) ([]dto.QuizSummaryDTO, error)
}

type quizService struct {
	courseRepo repository.CourseRepository
	quizRepo   repository.QuizRepository
}

func NewQuizService(courseRepo repository.CourseRepository, quizRepo repository.QuizRepository) QuizService {
	return &quizService{courseRepo: courseRepo, quizRepo: quizRepo}
}

func (s *quizService) CreateQuiz(req dto.QuizCreateDTO) (*dto.QuizResponseDTO, error) {
	if _, err := s.courseRepo.FindByID(req.CourseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("course %d not found", req.CourseID)
		}
		return nil, apperr.Internal(err, "failed to load course")
	}

	if req.AvailableFrom != nil && req.AvailableUntil != nil && !req.AvailableUntil.After(*req.AvailableFrom) {
		return nil, apperr.Validation("available_until", "availability window must end after it starts")
	}

	positions := make(map[int]bool)
	for _, q := range req.Questions {
		if positions[q.Position] {
			return nil, apperr.Validation("questions", "duplicate question position %d", q.Position)
		}
		positions[q.Position] = true

		if q.Type == model.QuestionTypeMultipleChoice && len(q.Options) < 2 {
			return nil, apperr.Validation("questions", "multiple choice question at position %d needs at least 2 options", q.Position)
		}
	}

	var quiz model.Quiz
	if err := copier.Copy(&quiz, &req); err != nil {
		return nil, apperr.Internal(err, "failed to map quiz payload")
	}

	if err := s.quizRepo.Create(&quiz); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("CreateQuiz: database error")
		return nil, apperr.Internal(err, "failed to create quiz")
	}

	log.Info().Uint("quizID", quiz.ID).Uint("courseID", quiz.CourseID).Int("questions", len(quiz.Questions)).Msg("Quiz created")
	return s.GetQuiz(quiz.ID)
}

func (s *quizService) GetQuiz(quizID uint) (*dto.QuizResponseDTO, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("quiz %d not found", quizID)
		}
		return nil, apperr.Internal(err, "failed to load quiz")
	}

	var resp dto.QuizResponseDTO
	if err := copier.Copy(&resp, quiz); err != nil {
		return nil, apperr.Internal(err, "failed to map quiz response")
	}
	resp.Questions = sanitizeQuestions(quiz.Questions)
	return &resp, nil
}

func (s *quizService) ListByCourse(courseID uint) ([]dto.QuizSummaryDTO, error) {
	quizzes, err := s.quizRepo.FindAllByCourse(courseID)
	if err != nil {
		return nil, apperr.Internal(err, "failed to list quizzes")
	}

	dtos := make([]dto.QuizSummaryDTO, 0, len(quizzes))
	for _, quiz := range quizzes {
		var d dto.QuizSummaryDTO
		copier.Copy(&d, &quiz)
		dtos = append(dtos, d)
	}
	return dtos, nil
}

// sanitizeQuestions strips the answer key and explanation from the
// learner-facing question view. Never hand out the key before submission.
func sanitizeQuestions(questions []model.Question) []dto.SanitizedQuestionDTO {
	out := make([]dto.SanitizedQuestionDTO, 0, len(questions))
	for _, q := range questions {
		sq := dto.SanitizedQuestionDTO{
			ID:       q.ID,
			Text:     q.Text,
			Type:     q.Type,
			Points:   q.Points,
			Position: q.Position,
		}
		for _, o := range q.Options {
			sq.Options = append(sq.Options, dto.OptionDTO{ID: o.ID, Text: o.Text, Position: o.Position})
		}
		out = append(out, sq)
	}
	return out
}
