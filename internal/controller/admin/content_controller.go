package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ptminh/learnhub/internal/controller"
	"github.com/ptminh/learnhub/internal/dto"
	"github.com/ptminh/learnhub/internal/service"
	"github.com/rs/zerolog/log"
)

// ContentController manages courses, lectures, quizzes and assignments.
type ContentController struct {
	courseService     service.CourseService
	quizService       service.QuizService
	assignmentService service.AssignmentService
}

func NewContentController(courseService service.CourseService, quizService service.QuizService, assignmentService service.AssignmentService) *ContentController {
	return &ContentController{
		courseService:     courseService,
		quizService:       quizService,
		assignmentService: assignmentService,
	}
}

// CreateCourse godoc
// @Summary (Admin) Create a new course
// @Tags Admin - Content
// @Accept json
// @Produce json
// @Param course body dto.CourseCreateDTO true "Course payload"
// @Success 201 {object} dto.CourseResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /admin/courses [post]
func (c *ContentController) CreateCourse(ctx *gin.Context) {
	var req dto.CourseCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateCourse: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	course, err := c.courseService.CreateCourse(req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, course)
}

// AddLecture godoc
// @Summary (Admin) Add a lecture to a course
// @Tags Admin - Content
// @Accept json
// @Produce json
// @Param course_id path int true "Course ID"
// @Param lecture body dto.LectureCreateDTO true "Lecture payload"
// @Success 201 {object} dto.LectureResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /admin/courses/{course_id}/lectures [post]
func (c *ContentController) AddLecture(ctx *gin.Context) {
	courseID, ok := controller.ParseID(ctx, "course_id")
	if !ok {
		return
	}

	var req dto.LectureCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("AddLecture: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	lecture, err := c.courseService.AddLecture(courseID, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, lecture)
}

// CreateQuiz godoc
// @Summary (Admin) Create a quiz with its questions
// @Tags Admin - Content
// @Accept json
// @Produce json
// @Param quiz body dto.QuizCreateDTO true "Quiz payload"
// @Success 201 {object} dto.QuizResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid questions or availability window"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /admin/quizzes [post]
func (c *ContentController) CreateQuiz(ctx *gin.Context) {
	var req dto.QuizCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateQuiz: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	quiz, err := c.quizService.CreateQuiz(req)
	if err != nil {
		log.Warn().Err(err).Str("title", req.Title).Msg("CreateQuiz failed")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, quiz)
}

// CreateAssignment godoc
// @Summary (Admin) Create an assignment
// @Tags Admin - Content
// @Accept json
// @Produce json
// @Param assignment body dto.AssignmentCreateDTO true "Assignment payload"
// @Success 201 {object} dto.AssignmentResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /admin/assignments [post]
func (c *ContentController) CreateAssignment(ctx *gin.Context) {
	var req dto.AssignmentCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateAssignment: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	assignment, err := c.assignmentService.CreateAssignment(req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, assignment)
}
