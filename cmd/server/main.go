package main

import (
	"log"

	"quizmaster/internal/config"
	"quizmaster/internal/database"
	"quizmaster/internal/handlers"
	"quizmaster/internal/middleware"
	"quizmaster/internal/models"
	"quizmaster/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found, using environment")
	}

	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)
	database.SeedAdmin(db, cfg)

	authService := services.NewAuthService(db)
	sessionService := services.NewSessionService(db, cfg.SessionSecret)
	contentService := services.NewContentService(db)
	attemptService := services.NewAttemptService(db)
	reportService := services.NewReportService(db)

	authHandler := handlers.NewAuthHandler(authService, sessionService)
	dashboardHandler := handlers.NewDashboardHandler(authService, contentService, reportService, sessionService)
	subjectHandler := handlers.NewSubjectHandler(contentService, sessionService)
	chapterHandler := handlers.NewChapterHandler(contentService, sessionService)
	quizHandler := handlers.NewQuizHandler(contentService, sessionService)
	questionHandler := handlers.NewQuestionHandler(contentService, sessionService)
	attemptHandler := handlers.NewAttemptHandler(attemptService, sessionService)
	reportHandler := handlers.NewReportHandler(reportService, sessionService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	r.LoadHTMLGlob("web/templates/*.tmpl")

	r.GET("/register", authHandler.ShowRegister)
	r.POST("/register", authHandler.Register)
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	admin := r.Group("/")
	admin.Use(middleware.RequireRole(sessionService, models.RoleAdmin))
	{
		admin.GET("/admin_dashboard", dashboardHandler.AdminDashboard)
		admin.GET("/admin/users", reportHandler.AdminUsers)
		admin.GET("/admin_search", reportHandler.AdminSearch)

		admin.GET("/admin/subjects", subjectHandler.List)
		admin.POST("/admin/subjects", subjectHandler.Create)
		admin.GET("/admin/subjects/delete/:id", subjectHandler.Delete)
		admin.GET("/admin/subjects/edit/:id", subjectHandler.ShowEdit)
		admin.POST("/admin/subjects/edit/:id", subjectHandler.Update)

		// The delete/edit paths share the wildcard routes and dispatch on
		// the first segment: gin's router rejects a static segment next
		// to a wildcard at the same position.
		admin.GET("/admin/chapters/:subject_id", chapterHandler.List)
		admin.POST("/admin/chapters/:subject_id", chapterHandler.Create)
		admin.GET("/admin/chapters/:subject_id/:id", chapterHandler.Dispatch)
		admin.POST("/admin/chapters/:subject_id/:id", chapterHandler.Dispatch)

		admin.GET("/admin/quizzes/:chapter_id", quizHandler.List)
		admin.POST("/admin/quizzes/:chapter_id", quizHandler.Create)
		admin.GET("/admin/quizzes/:chapter_id/:id", quizHandler.Dispatch)
		admin.POST("/admin/quizzes/:chapter_id/:id", quizHandler.Dispatch)

		admin.GET("/admin/questions/:quiz_id", questionHandler.List)
		admin.POST("/admin/questions/:quiz_id", questionHandler.Create)
		admin.GET("/admin/questions/:quiz_id/:id", questionHandler.Dispatch)
		admin.POST("/admin/questions/:quiz_id/:id", questionHandler.Dispatch)
	}

	user := r.Group("/")
	user.Use(middleware.RequireRole(sessionService, models.RoleUser))
	{
		user.GET("/user_dashboard", dashboardHandler.UserDashboard)
		user.GET("/view_quizzes/:subject_id", attemptHandler.ViewQuizzes)
		user.GET("/attempt_quiz/:quiz_id", attemptHandler.ShowAttempt)
		user.POST("/attempt_quiz/:quiz_id", attemptHandler.Submit)
		user.POST("/submit_quiz/:quiz_id", attemptHandler.Submit)
		user.GET("/quiz_results/:quiz_id", attemptHandler.Results)
		user.GET("/quiz_summary", reportHandler.QuizSummary)
		user.GET("/user_search", reportHandler.UserSearch)
	}

	log.Printf("server listening on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
