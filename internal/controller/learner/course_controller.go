package learner

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ptminh/learnhub/internal/controller"
	"github.com/ptminh/learnhub/internal/service"
	"github.com/rs/zerolog/log"
)

type CourseController struct {
	courseService     service.CourseService
	enrollmentService service.EnrollmentService
}

func NewCourseController(courseService service.CourseService, enrollmentService service.EnrollmentService) *CourseController {
	return &CourseController{courseService: courseService, enrollmentService: enrollmentService}
}

// ListCourses godoc
// @Summary (Learner) List all courses
// @Tags Learner - Courses
// @Produce json
// @Success 200 {array} dto.CourseSummaryDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	courses, err := c.courseService.ListCourses()
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, courses)
}

// GetCourse godoc
// @Summary (Learner) Get course details with its lectures
// @Tags Learner - Courses
// @Produce json
// @Param course_id path int true "Course ID"
// @Success 200 {object} dto.CourseResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{course_id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	courseID, ok := controller.ParseID(ctx, "course_id")
	if !ok {
		return
	}
	course, err := c.courseService.GetCourse(courseID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, course)
}

// Enroll godoc
// @Summary (Learner) Enroll in a course
// @Tags Learner - Courses
// @Produce json
// @Param course_id path int true "Course ID"
// @Param X-Learner-ID header string true "Learner UUID"
// @Success 201 {object} dto.EnrollmentDTO
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 409 {object} dto.ErrorResponse "Already enrolled"
// @Router /courses/{course_id}/enroll [post]
func (c *CourseController) Enroll(ctx *gin.Context) {
	courseID, ok := controller.ParseID(ctx, "course_id")
	if !ok {
		return
	}
	learnerID, ok := controller.LearnerID(ctx)
	if !ok {
		return
	}

	enrollment, err := c.enrollmentService.Enroll(courseID, learnerID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, enrollment)
}

// CompleteLecture godoc
// @Summary (Learner) Mark a lecture as completed
// @Description Records the completion, recomputes course progress and awards lecture points once.
// @Tags Learner - Courses
// @Produce json
// @Param course_id path int true "Course ID"
// @Param lecture_id path int true "Lecture ID"
// @Param X-Learner-ID header string true "Learner UUID"
// @Success 200 {object} dto.ProgressDTO
// @Failure 403 {object} dto.ErrorResponse "Not enrolled"
// @Failure 404 {object} dto.ErrorResponse "Lecture not found"
// @Failure 409 {object} dto.ErrorResponse "Already completed"
// @Router /courses/{course_id}/lectures/{lecture_id}/complete [post]
func (c *CourseController) CompleteLecture(ctx *gin.Context) {
	courseID, ok := controller.ParseID(ctx, "course_id")
	if !ok {
		return
	}
	lectureID, ok := controller.ParseID(ctx, "lecture_id")
	if !ok {
		return
	}
	learnerID, ok := controller.LearnerID(ctx)
	if !ok {
		return
	}

	progress, err := c.enrollmentService.CompleteLecture(courseID, lectureID, learnerID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, progress)
}

// Dashboard godoc
// @Summary (Learner) Get the learner dashboard
// @Description Overall progress across enrollments plus point balances and recent activity.
// @Tags Learner - Courses
// @Produce json
// @Param X-Learner-ID header string true "Learner UUID"
// @Success 200 {object} dto.DashboardDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard [get]
func (c *CourseController) Dashboard(ctx *gin.Context) {
	learnerID, ok := controller.LearnerID(ctx)
	if !ok {
		return
	}

	dashboard, err := c.enrollmentService.Dashboard(learnerID)
	if err != nil {
		log.Error().Err(err).Str("learnerID", learnerID.String()).Msg("Dashboard: service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dashboard)
}
