package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"rental-backend/internal/auth"
	"rental-backend/internal/cache"
	"rental-backend/internal/config"
	"rental-backend/internal/database"
	"rental-backend/internal/db"
	"rental-backend/internal/handlers"
	"rental-backend/internal/health"
	h "rental-backend/internal/http"
	"rental-backend/internal/middleware"
	"rental-backend/internal/monitoring"
	"rental-backend/internal/repositories"
	"rental-backend/internal/services"
	"rental-backend/internal/sms"
	"rental-backend/migrations"
)

func main() {
	port := flag.Int("port", 0, "Server port (overrides config)")
	flag.Parse()

	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}

	pool := db.Connect(cfg)
	defer pool.Close()

	// Redis is optional; login falls back to bcrypt and reads recompute
	if err := cache.Init(); err != nil {
		log.Printf("[Redis] Cache unavailable: %v", err)
	} else {
		log.Println("[Redis] Cache connected successfully")
	}

	log.Println("Running database migrations...")
	migrator := database.NewMigrator(pool, migrations.FS)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := migrator.RunMigrations(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	healthChecker := health.NewHealthChecker(pool)

	// Operator dashboard on its own port
	go monitoring.NewMonitoringServer(pool, cfg.Server.MonitoringPort).Start()

	jwtManager := auth.NewJWTManager(cfg)

	// Repositories
	userRepo := repositories.NewUserRepository(pool)
	plotRepo := repositories.NewPlotRepository(pool)
	houseRepo := repositories.NewHouseRepository(pool)
	tenantRepo := repositories.NewTenantRepository(pool)
	paymentRepo := repositories.NewPaymentRepository(pool)
	onlineTransactionRepo := repositories.NewOnlineTransactionRepository(pool)
	totpRepo := repositories.NewTOTPRepository(pool)

	// Services
	userService := services.NewUserService(userRepo)
	plotService := services.NewPlotService(plotRepo)
	houseService := services.NewHouseService(houseRepo)
	tenantService := services.NewTenantService(tenantRepo, houseRepo)
	paymentService := services.NewPaymentService(pool, paymentRepo, tenantRepo, houseRepo)
	archiveService := services.NewArchiveService(cfg)
	receiptService := services.NewReceiptService(paymentRepo, tenantRepo, houseRepo, plotRepo, archiveService)
	razorpayService := services.NewRazorpayService(cfg, onlineTransactionRepo, paymentService)
	totpService := services.NewTOTPService(userRepo, totpRepo)

	// SMS confirmations go through a real gateway only when one is configured
	smsEndpoint := os.Getenv("SMS_GATEWAY_URL")
	smsAPIKey := os.Getenv("SMS_API_KEY")
	if smsEndpoint != "" && smsAPIKey != "" {
		paymentService.SetNotifier(sms.NewHTTPService(smsEndpoint, smsAPIKey))
		log.Println("[SMS] Gateway configured, payment confirmations enabled")
	} else {
		paymentService.SetNotifier(sms.NewMockService())
		log.Println("[SMS] No gateway configured, using mock provider")
	}

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, userRepo)
	corsMiddleware := middleware.NewCORS(cfg)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService, totpService, jwtManager)
	userHandler := handlers.NewUserHandler(userService)
	plotHandler := handlers.NewPlotHandler(plotService)
	houseHandler := handlers.NewHouseHandler(houseService)
	tenantHandler := handlers.NewTenantHandler(tenantService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	receiptHandler := handlers.NewReceiptHandler(receiptService)
	razorpayHandler := handlers.NewRazorpayHandler(razorpayService)
	totpHandler := handlers.NewTOTPHandler(totpService, userService)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	router := h.NewRouter(
		authHandler,
		userHandler,
		plotHandler,
		houseHandler,
		tenantHandler,
		paymentHandler,
		receiptHandler,
		razorpayHandler,
		totpHandler,
		healthHandler,
		authMiddleware,
	)

	handler := middleware.PanicRecovery(middleware.MetricsMiddleware(corsMiddleware(router)))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server running on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
