package learner

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ptminh/learnhub/internal/controller"
	"github.com/ptminh/learnhub/internal/dto"
	"github.com/ptminh/learnhub/internal/service"
	"github.com/rs/zerolog/log"
)

type QuizController struct {
	quizService    service.QuizService
	attemptService service.QuizAttemptService
}

func NewQuizController(quizService service.QuizService, attemptService service.QuizAttemptService) *QuizController {
	return &QuizController{quizService: quizService, attemptService: attemptService}
}

// ListQuizzes godoc
// @Summary (Learner) List quizzes of a course
// @Tags Learner - Quizzes
// @Produce json
// @Param course_id path int true "Course ID"
// @Success 200 {array} dto.QuizSummaryDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /courses/{course_id}/quizzes [get]
func (c *QuizController) ListQuizzes(ctx *gin.Context) {
	courseID, ok := controller.ParseID(ctx, "course_id")
	if !ok {
		return
	}
	quizzes, err := c.quizService.ListByCourse(courseID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, quizzes)
}

// GetQuiz godoc
// @Summary (Learner) Get quiz details
// @Description Questions are returned without the answer key.
// @Tags Learner - Quizzes
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {object} dto.QuizResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /quizzes/{quiz_id} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	quizID, ok := controller.ParseID(ctx, "quiz_id")
	if !ok {
		return
	}
	quiz, err := c.quizService.GetQuiz(quizID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, quiz)
}

// StartAttempt godoc
// @Summary (Learner) Start a quiz attempt
// @Description Creates an in-progress attempt and returns the sanitized question list.
// @Tags Learner - Quizzes
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Param X-Learner-ID header string true "Learner UUID"
// @Success 201 {object} dto.AttemptStartedDTO
// @Failure 403 {object} dto.ErrorResponse "Not enrolled or quiz unavailable"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Failure 409 {object} dto.ErrorResponse "Attempt limit reached or attempt already in progress"
// @Router /quizzes/{quiz_id}/attempts [post]
func (c *QuizController) StartAttempt(ctx *gin.Context) {
	quizID, ok := controller.ParseID(ctx, "quiz_id")
	if !ok {
		return
	}
	learnerID, ok := controller.LearnerID(ctx)
	if !ok {
		return
	}

	started, err := c.attemptService.Start(quizID, learnerID)
	if err != nil {
		log.Warn().Err(err).Uint("quizID", quizID).Str("learnerID", learnerID.String()).Msg("StartAttempt failed")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, started)
}

// SubmitAttempt godoc
// @Summary (Learner) Submit the active quiz attempt
// @Description Scores the answers, finalizes the attempt and awards points on first completion.
// @Tags Learner - Quizzes
// @Accept json
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Param X-Learner-ID header string true "Learner UUID"
// @Param submission body dto.AttemptSubmitDTO true "Submitted answers"
// @Success 200 {object} dto.AttemptResultDTO
// @Failure 404 {object} dto.ErrorResponse "Quiz or active attempt not found"
// @Failure 409 {object} dto.ErrorResponse "Attempt already submitted"
// @Router /quizzes/{quiz_id}/attempts/submit [post]
func (c *QuizController) SubmitAttempt(ctx *gin.Context) {
	quizID, ok := controller.ParseID(ctx, "quiz_id")
	if !ok {
		return
	}
	learnerID, ok := controller.LearnerID(ctx)
	if !ok {
		return
	}

	var req dto.AttemptSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitAttempt: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	result, err := c.attemptService.Submit(quizID, learnerID, req)
	if err != nil {
		log.Warn().Err(err).Uint("quizID", quizID).Str("learnerID", learnerID.String()).Msg("SubmitAttempt failed")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// MyAttempts godoc
// @Summary (Learner) List own attempts for a quiz
// @Tags Learner - Quizzes
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Param X-Learner-ID header string true "Learner UUID"
// @Success 200 {array} dto.AttemptSummaryDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /quizzes/{quiz_id}/my-attempts [get]
func (c *QuizController) MyAttempts(ctx *gin.Context) {
	quizID, ok := controller.ParseID(ctx, "quiz_id")
	if !ok {
		return
	}
	learnerID, ok := controller.LearnerID(ctx)
	if !ok {
		return
	}

	attempts, err := c.attemptService.MyAttempts(quizID, learnerID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, attempts)
}
