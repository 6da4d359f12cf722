package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ptminh/learnhub/internal/controller"
	"github.com/ptminh/learnhub/internal/dto"
	"github.com/ptminh/learnhub/internal/service"
	"github.com/rs/zerolog/log"
)

// GradingController handles manual grading and discretionary point awards.
type GradingController struct {
	assignmentService service.AssignmentService
	ledgerService     service.LedgerService
}

func NewGradingController(assignmentService service.AssignmentService, ledgerService service.LedgerService) *GradingController {
	return &GradingController{assignmentService: assignmentService, ledgerService: ledgerService}
}

// GradeSubmission godoc
// @Summary (Admin) Grade an assignment submission
// @Tags Admin - Grading
// @Accept json
// @Produce json
// @Param submission_id path int true "Submission ID"
// @Param X-Learner-ID header string true "Grader UUID"
// @Param grade body dto.GradeSubmissionDTO true "Score and feedback"
// @Success 200 {object} dto.SubmissionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Score exceeds max score"
// @Failure 404 {object} dto.ErrorResponse "Submission not found"
// @Router /admin/submissions/{submission_id}/grade [put]
func (c *GradingController) GradeSubmission(ctx *gin.Context) {
	submissionID, ok := controller.ParseID(ctx, "submission_id")
	if !ok {
		return
	}
	graderID, ok := controller.LearnerID(ctx)
	if !ok {
		return
	}

	var req dto.GradeSubmissionDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("GradeSubmission: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	submission, err := c.assignmentService.Grade(submissionID, graderID, req)
	if err != nil {
		log.Warn().Err(err).Uint("submissionID", submissionID).Msg("GradeSubmission failed")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, submission)
}

// AwardPoints godoc
// @Summary (Admin) Award bonus points to a learner
// @Tags Admin - Grading
// @Accept json
// @Produce json
// @Param learner_id path string true "Learner UUID"
// @Param award body dto.EarnPointsDTO true "Amount, source and description"
// @Success 200 {object} dto.LedgerBalanceDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid amount"
// @Router /admin/learners/{learner_id}/points [post]
func (c *GradingController) AwardPoints(ctx *gin.Context) {
	learnerID, err := uuid.Parse(ctx.Param("learner_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid learner ID format"})
		return
	}

	var req dto.EarnPointsDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("AwardPoints: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	balance, err := c.ledgerService.Earn(learnerID, req)
	if err != nil {
		log.Warn().Err(err).Str("learnerID", learnerID.String()).Int("amount", req.Amount).Msg("AwardPoints failed")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, balance)
}
