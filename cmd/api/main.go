package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"lifeline/internal/config"
	"lifeline/internal/database"
	"lifeline/internal/middleware"
	"lifeline/internal/modules/availability"
	"lifeline/internal/modules/donation"
	"lifeline/internal/modules/donor"
	"lifeline/internal/modules/feedback"
	"lifeline/internal/modules/notification"
	"lifeline/internal/modules/request"
	"lifeline/internal/modules/search"
	"lifeline/internal/modules/stats"
	"lifeline/internal/pkg/identity"
	"lifeline/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	donorRepo := repository.NewDonorRepository(db)
	donationRepo := repository.NewDonationRepository(db)
	requestRepo := repository.NewRequestRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)

	verifier := identity.NewVerifier(cfg.AuthSecret)
	engine := availability.Engine{MinIntervalDays: cfg.MinIntervalDays}

	donorHandler := donor.NewHandler(donor.NewService(donorRepo))
	donationHandler := donation.NewHandler(donation.NewService(donationRepo, donorRepo))
	searchHandler := search.NewHandler(search.NewService(donorRepo, engine))
	requestHandler := request.NewHandler(request.NewService(requestRepo))
	notificationHandler := notification.NewHandler(notification.NewService(notificationRepo, requestRepo))
	feedbackHandler := feedback.NewHandler(feedback.NewService(feedbackRepo))
	statsHandler := stats.NewHandler(stats.NewService(donorRepo, feedbackRepo))

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "LifeLine API running")
	})

	api := r.Group("/api")
	{
		// public
		searchHandler.RegisterRoutes(api)
		feedbackHandler.RegisterRoutes(api)
		statsHandler.RegisterRoutes(api)

		// protected
		protected := api.Group("/")
		protected.Use(middleware.Auth(verifier))
		{
			donorHandler.RegisterRoutes(protected)
			donationHandler.RegisterRoutes(protected)
			requestHandler.RegisterRoutes(protected)
			notificationHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
