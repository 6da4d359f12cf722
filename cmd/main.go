package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ptminh/learnhub/config"
	"github.com/ptminh/learnhub/database"
	_ "github.com/ptminh/learnhub/docs" // Swagger docs - auto-generated
	adminctrl "github.com/ptminh/learnhub/internal/controller/admin"
	learnerctrl "github.com/ptminh/learnhub/internal/controller/learner"
	"github.com/ptminh/learnhub/internal/logger"
	"github.com/ptminh/learnhub/internal/model"
	"github.com/ptminh/learnhub/internal/repository"
	"github.com/ptminh/learnhub/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title LearnHub Progress & Points API
// @version 1.0
// @description Course progress tracking, quiz attempts, assignment submissions and a gamified points ledger.
// @contact.name API Support
// @contact.email support@learnhub.dev
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories layer
		fx.Provide(
			repository.NewCourseRepository,
			repository.NewEnrollmentRepository,
			repository.NewQuizRepository,
			repository.NewQuizAttemptRepository,
			repository.NewAssignmentRepository,
			repository.NewLedgerRepository,
		),

		// Services layer
		fx.Provide(
			service.NewLedgerService,
			service.NewCourseService,
			service.NewEnrollmentService,
			service.NewQuizService,
			service.NewQuizAttemptService,
			service.NewAssignmentService,
			service.NewLeaderboardService,
		),

		// API controllers layer
		fx.Provide(
			learnerctrl.NewCourseController,
			learnerctrl.NewQuizController,
			learnerctrl.NewAssignmentController,
			learnerctrl.NewPointsController,
			adminctrl.NewContentController,
			adminctrl.NewGradingController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.DebugMode)

	r := gin.New()

	// Request logging through zerolog instead of Gin's default logger
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Learner-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	courseCtrl *learnerctrl.CourseController,
	quizCtrl *learnerctrl.QuizController,
	assignmentCtrl *learnerctrl.AssignmentController,
	pointsCtrl *learnerctrl.PointsController,
	contentCtrl *adminctrl.ContentController,
	gradingCtrl *adminctrl.GradingController,
) {
	// Admin routes (prefixed with /api/v1/admin)
	adminGroup := router.Group("/api/v1/admin")
	{
		adminGroup.POST("/courses", contentCtrl.CreateCourse)
		adminGroup.POST("/courses/:course_id/lectures", contentCtrl.AddLecture)
		adminGroup.POST("/quizzes", contentCtrl.CreateQuiz)
		adminGroup.POST("/assignments", contentCtrl.CreateAssignment)

		adminGroup.PUT("/submissions/:submission_id/grade", gradingCtrl.GradeSubmission)
		adminGroup.POST("/learners/:learner_id/points", gradingCtrl.AwardPoints)
	}

	// Learner routes (prefixed with /api/v1)
	learnerGroup := router.Group("/api/v1")
	{
		// Courses and enrollment
		learnerGroup.GET("/courses", courseCtrl.ListCourses)
		learnerGroup.GET("/courses/:course_id", courseCtrl.GetCourse)
		learnerGroup.POST("/courses/:course_id/enroll", courseCtrl.Enroll)
		learnerGroup.POST("/courses/:course_id/lectures/:lecture_id/complete", courseCtrl.CompleteLecture)
		learnerGroup.GET("/dashboard", courseCtrl.Dashboard)

		// Quizzes and attempts
		learnerGroup.GET("/courses/:course_id/quizzes", quizCtrl.ListQuizzes)
		learnerGroup.GET("/quizzes/:quiz_id", quizCtrl.GetQuiz)
		learnerGroup.POST("/quizzes/:quiz_id/attempts", quizCtrl.StartAttempt)
		learnerGroup.POST("/quizzes/:quiz_id/attempts/submit", quizCtrl.SubmitAttempt)
		learnerGroup.GET("/quizzes/:quiz_id/my-attempts", quizCtrl.MyAttempts)

		// Assignments
		learnerGroup.GET("/courses/:course_id/assignments", assignmentCtrl.ListAssignments)
		learnerGroup.POST("/assignments/:assignment_id/submissions", assignmentCtrl.SubmitAssignment)

		// Points and leaderboard
		learnerGroup.GET("/points/balance", pointsCtrl.Balance)
		learnerGroup.GET("/points/history", pointsCtrl.History)
		learnerGroup.POST("/points/spend", pointsCtrl.Spend)
		learnerGroup.GET("/leaderboard", pointsCtrl.Leaderboard)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("LearnHub API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Course{},
		&model.Lecture{},
		&model.Enrollment{},
		&model.CompletedLecture{},
		&model.CompletedQuiz{},
		&model.CompletedAssignment{},
		&model.Quiz{},
		&model.Question{},
		&model.QuestionOption{},
		&model.QuizAttempt{},
		&model.AttemptAnswer{},
		&model.Assignment{},
		&model.AssignmentSubmission{},
		&model.PointsLedger{},
		&model.PointsTransaction{},
		&model.Achievement{},
		&model.Badge{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
