package main

import (
	"context"
	"net/http"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/cors"
	"github.com/sendgrid/sendgrid-go"
	"github.com/twilio/twilio-go"
	_ "time/tzdata"

	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/app"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/config"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/constants"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/controllers"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/middleware"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/routes"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/services"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)
	cfg := config.LoadConfig()
	defer cfg.Close()

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize housekeeping-service:", err)
	}
	defer application.Close()

	// The board always exists; sample notes only when flagged
	if err := app.SeedHouses(context.Background(), application.HouseRepo); err != nil {
		utils.Logger.Fatal("Failed to seed houses:", err)
	}
	if cfg.LDFlag_SeedDbWithTestData {
		if err := app.SeedSampleNotes(context.Background(), application.HouseRepo, application.NoteRepo, time.Now()); err != nil {
			utils.Logger.Fatal("Failed to seed sample notes:", err)
		}
	}

	// Report sinks
	var emailSender services.EmailSender
	if cfg.SendGridAPIKey != "" {
		emailSender = sendgrid.NewSendClient(cfg.SendGridAPIKey)
	}
	var smsSender services.SMSSender
	if cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" {
		twClient := twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		})
		smsSender = twClient.Api
	}

	// Services
	housekeepingService := services.NewHousekeepingService(application.HouseRepo, application.NoteRepo)
	reportService := services.NewReportService(application.HouseRepo)
	deliveryService := services.NewReportDeliveryService(cfg, reportService, emailSender, smsSender)
	scheduler := services.NewCheckStateScheduler(application.HouseRepo)

	// Controllers
	router := controllers.NewRouter(controllers.Controllers{
		Health:  controllers.NewHealthController(application),
		Houses:  controllers.NewHousesController(housekeepingService),
		Notes:   controllers.NewNotesController(housekeepingService),
		Reports: controllers.NewReportsController(reportService, deliveryService),
	})

	// Cron job setup
	if cfg.LDFlag_CheckStateResetEnabled {
		loc, err := time.LoadLocation(constants.ReportTimezone)
		if err != nil {
			utils.Logger.WithError(err).Fatal("Failed to load report timezone")
		}
		c := cron.New(cron.WithLocation(loc))
		if _, err := scheduler.Register(c, cfg.CheckStateResetCron); err != nil {
			utils.Logger.WithError(err).Fatal("Failed to schedule check state reset cron")
		}
		c.Start()
		defer c.Stop()
		utils.Logger.Infof("Scheduled check state reset: '%s' (%s)", cfg.CheckStateResetCron, constants.ReportTimezone)
	}

	allowedOrigins := []string{cfg.AppUrl}
	if !cfg.LDFlag_CORSHighSecurity {
		allowedOrigins = append(allowedOrigins, utils.CORSLowSecurityAllowedOriginLocalhost)
	}

	co := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{routes.InvalidateHeader, middleware.RequestIDHeader},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, co.Handler(router)); err != nil {
		utils.Logger.Fatal("housekeeping-service failed to start:", err)
	}
}
