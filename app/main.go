package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"time"

	"gameden/config"
	"gameden/middleware"
	"gameden/services/membership/delivery"
	"gameden/services/membership/repository"
	"gameden/services/membership/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"go.mau.fi/whatsmeow"
)

const ucTimeout = 10 * time.Second

var log *logrus.Logger
var wg sync.WaitGroup

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, relying on process environment")
	}

	log = config.GetLogrusInstance()

	startHTTP()
}

func startHTTP() {
	log.Info("Starting HTTP")
	app := fiber.New(config.GetFiberConfig())

	// CORS Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	setupReady := registerRoutes(app)

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Infof("Starting HTTP server on port %s", config.GetFiberHttpPort())
		if err := app.Listen(config.GetFiberListenAddress()); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, os.Kill)

	<-signalChan

	log.Info("Shutting down the server...")

	if err := app.Shutdown(); err != nil {
		log.Errorf("Error during server shutdown: %v", err)
	}

	if setupReady != nil {
		setupReady()
	}

	wg.Wait()
	log.Info("Server shut down gracefully")
}

// registerRoutes wires the full service when the store is reachable and
// mounts the persistent setup-required answer when it is not. The
// returned func releases held resources on shutdown.
func registerRoutes(app *fiber.App) func() {
	ctx := context.Background()

	if !config.StoreConfigured() {
		log.Error("Store environment is incomplete, starting in setup-required mode")
		mountSetupRequired(app)
		return nil
	}

	pool, err := config.BootDB(ctx)
	if err != nil {
		log.Errorf("Failed to boot DB, starting in setup-required mode: %v", err)
		mountSetupRequired(app)
		return nil
	}

	gormDB, err := config.BootGorm()
	if err != nil {
		log.Errorf("Failed to boot gorm, starting in setup-required mode: %v", err)
		pool.Close()
		mountSetupRequired(app)
		return nil
	}

	var meowClient *whatsmeow.Client
	if config.WhatsAppEnabled() {
		meowClient, err = config.InitMeow(ctx)
		if err != nil {
			log.Warnf("WhatsApp client unavailable, deep links only: %v", err)
		}
	}

	// Regis repo and Usecase Here
	memberRepo := repository.NewMemberRepository(pool)
	playRepo := repository.NewPlayRepository(pool)
	authRepo := repository.NewAuthRepository(gormDB)
	senderRepo := repository.NewSenderRepository(meowClient)

	if email, password := os.Getenv("ADMIN_EMAIL"), os.Getenv("ADMIN_PASSWORD"); email != "" && password != "" {
		if err := authRepo.EnsureAdmin(ctx, email, password); err != nil {
			log.Errorf("Failed to seed admin account: %v", err)
		}
	}

	memberUC := usecase.NewMemberUseCase(memberRepo, senderRepo, ucTimeout)
	playUC := usecase.NewPlayUseCase(playRepo, ucTimeout)
	authUC := usecase.NewAuthUseCase(authRepo, ucTimeout)
	otpUC := usecase.NewOTPUseCase(usecase.DefaultOTPTTL)
	exportUC := usecase.NewExportUseCase(memberRepo, ucTimeout)

	// delivery here
	delivery.NewAuthHandler(app, authUC)
	delivery.NewMemberHandler(app, memberUC)
	delivery.NewPlayHandler(app, playUC)
	delivery.NewOTPHandler(app, otpUC)
	delivery.NewExportHandler(app, exportUC)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":          "ok",
			"whatsapp_linked": senderRepo.Linked(),
		})
	})

	return func() {
		if meowClient != nil {
			meowClient.Disconnect()
		}
		pool.Close()
	}
}

func mountSetupRequired(app *fiber.App) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "setup_required",
		})
	})
	app.Use(middleware.SetupRequired())
}
