// @title TalentHR API
// @version 1.0
// @description Multi-tenant HR management API.
// @BasePath /
package main

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"talenthr/config"
	"talenthr/database"
	_ "talenthr/docs"
	"talenthr/internal/controllers"
	"talenthr/internal/middleware"
	"talenthr/internal/repository"
	"talenthr/internal/routes"
	"talenthr/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn(".env file not found, using system environment variables")
	}

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		logrus.Fatal("JWT_SECRET is required")
	}

	client, err := database.Connect(cfg.MongoURI)
	if err != nil {
		logrus.WithError(err).Fatal("MongoDB connection failed")
	}
	defer client.Disconnect(context.Background())

	db := client.Database(cfg.MongoDB)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.EnsureIndexes(ctx, db); err != nil {
		logrus.WithError(err).Fatal("ensure indexes failed")
	}

	userRepo := repository.NewUserRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	departmentRepo := repository.NewDepartmentRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	jobRepo := repository.NewJobPostingRepository(db)
	candidateRepo := repository.NewCandidateRepository(db)
	interviewRepo := repository.NewInterviewRepository(db)
	leaveRepo := repository.NewLeaveRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	invitationRepo := repository.NewInvitationRepository(db)
	otpRepo := repository.NewOTPRepository(db)

	authService := services.NewAuthService(cfg, userRepo, companyRepo, otpRepo, invitationRepo)
	reportService := services.NewReportService(employeeRepo, jobRepo, leaveRepo)

	authHandler := controllers.NewAuthHandler(authService)
	userHandler := controllers.NewUserHandler(userRepo)
	departmentHandler := controllers.NewDepartmentHandler(departmentRepo, userRepo, employeeRepo)
	employeeHandler := controllers.NewEmployeeHandler(employeeRepo, departmentRepo, userRepo)
	jobHandler := controllers.NewJobPostingHandler(jobRepo, departmentRepo, candidateRepo)
	candidateHandler := controllers.NewCandidateHandler(candidateRepo, jobRepo, interviewRepo)
	interviewHandler := controllers.NewInterviewHandler(interviewRepo, candidateRepo, userRepo)
	leaveHandler := controllers.NewLeaveHandler(leaveRepo, employeeRepo)
	reviewHandler := controllers.NewReviewHandler(reviewRepo, employeeRepo)
	reportHandler := controllers.NewReportHandler(reportService)

	app := fiber.New(fiber.Config{ErrorHandler: controllers.ErrorHandler})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/docs/*", swagger.HandlerDefault)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	api := app.Group("/api")
	routes.SetupAuthPublic(api, authHandler)

	secured := api.Group("", middleware.RequireJWT(cfg.JWTSecret), middleware.InjectViewer(userRepo))
	routes.SetupAuthProtected(secured, authHandler)
	routes.SetupUsers(secured, userHandler)
	routes.SetupDepartments(secured, departmentHandler)
	routes.SetupEmployees(secured, employeeHandler)
	routes.SetupJobPostings(secured, jobHandler)
	routes.SetupCandidates(secured, candidateHandler)
	routes.SetupInterviews(secured, interviewHandler)
	routes.SetupLeaves(secured, leaveHandler)
	routes.SetupReviews(secured, reviewHandler)
	routes.SetupReports(secured, reportHandler)

	logrus.Fatal(app.Listen(":" + cfg.Port))
}
