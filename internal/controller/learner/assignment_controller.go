package learner

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ptminh/learnhub/internal/controller"
	"github.com/ptminh/learnhub/internal/dto"
	"github.com/ptminh/learnhub/internal/service"
	"github.com/rs/zerolog/log"
)

type AssignmentController struct {
	assignmentService service.AssignmentService
}

func NewAssignmentController(assignmentService service.AssignmentService) *AssignmentController {
	return &AssignmentController{assignmentService: assignmentService}
}

// ListAssignments godoc
// @Summary (Learner) List assignments of a course
// @Tags Learner - Assignments
// @Produce json
// @Param course_id path int true "Course ID"
// @Success 200 {array} dto.AssignmentResponseDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /courses/{course_id}/assignments [get]
func (c *AssignmentController) ListAssignments(ctx *gin.Context) {
	courseID, ok := controller.ParseID(ctx, "course_id")
	if !ok {
		return
	}
	assignments, err := c.assignmentService.ListByCourse(courseID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, assignments)
}

// SubmitAssignment godoc
// @Summary (Learner) Submit an assignment
// @Description One submission per learner; late submissions are penalized or rejected per the assignment policy.
// @Tags Learner - Assignments
// @Accept json
// @Produce json
// @Param assignment_id path int true "Assignment ID"
// @Param X-Learner-ID header string true "Learner UUID"
// @Param submission body dto.SubmissionCreateDTO true "Submission payload"
// @Success 201 {object} dto.SubmissionResponseDTO
// @Failure 403 {object} dto.ErrorResponse "Not enrolled"
// @Failure 409 {object} dto.ErrorResponse "Duplicate submission or deadline passed"
// @Router /assignments/{assignment_id}/submissions [post]
func (c *AssignmentController) SubmitAssignment(ctx *gin.Context) {
	assignmentID, ok := controller.ParseID(ctx, "assignment_id")
	if !ok {
		return
	}
	learnerID, ok := controller.LearnerID(ctx)
	if !ok {
		return
	}

	var req dto.SubmissionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitAssignment: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	submission, err := c.assignmentService.Submit(assignmentID, learnerID, req)
	if err != nil {
		log.Warn().Err(err).Uint("assignmentID", assignmentID).Str("learnerID", learnerID.String()).Msg("SubmitAssignment failed")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, submission)
}
