package http

import (
	"net/http"

	"rental-backend/internal/handlers"
	"rental-backend/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	plotHandler *handlers.PlotHandler,
	houseHandler *handlers.HouseHandler,
	tenantHandler *handlers.TenantHandler,
	paymentHandler *handlers.PaymentHandler,
	receiptHandler *handlers.ReceiptHandler,
	razorpayHandler *handlers.RazorpayHandler,
	totpHandler *handlers.TOTPHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Public API routes - Authentication
	r.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/auth/verify-2fa", authHandler.VerifyTwoFactor).Methods("POST")

	// Gateway webhook carries its own signature, no bearer token
	r.HandleFunc("/api/online-payments/webhook", razorpayHandler.Webhook).Methods("POST")

	// Protected API routes - Users (admin only except profile)
	usersAPI := r.PathPrefix("/api/users").Subrouter()
	usersAPI.Use(authMiddleware.Authenticate)
	usersAPI.HandleFunc("/me", userHandler.Me).Methods("GET")
	usersAPI.HandleFunc("", authMiddleware.RequireAdmin(http.HandlerFunc(userHandler.List)).ServeHTTP).Methods("GET")
	usersAPI.HandleFunc("", authMiddleware.RequireAdmin(http.HandlerFunc(userHandler.Create)).ServeHTTP).Methods("POST")
	usersAPI.HandleFunc("/{id}", authMiddleware.RequireAdmin(http.HandlerFunc(userHandler.Get)).ServeHTTP).Methods("GET")
	usersAPI.HandleFunc("/{id}", authMiddleware.RequireAdmin(http.HandlerFunc(userHandler.Update)).ServeHTTP).Methods("PUT")
	usersAPI.HandleFunc("/{id}/toggle-active", authMiddleware.RequireAdmin(http.HandlerFunc(userHandler.SetActive)).ServeHTTP).Methods("PATCH")
	usersAPI.HandleFunc("/{id}", authMiddleware.RequireAdmin(http.HandlerFunc(userHandler.Delete)).ServeHTTP).Methods("DELETE")

	// Protected API routes - Plots
	plotsAPI := r.PathPrefix("/api/plots").Subrouter()
	plotsAPI.Use(authMiddleware.Authenticate)
	plotsAPI.HandleFunc("", plotHandler.List).Methods("GET")
	plotsAPI.HandleFunc("", plotHandler.Create).Methods("POST")
	plotsAPI.HandleFunc("/dashboard", plotHandler.Dashboard).Methods("GET")
	plotsAPI.HandleFunc("/{id}", plotHandler.Get).Methods("GET")
	plotsAPI.HandleFunc("/{id}", plotHandler.Update).Methods("PUT")
	plotsAPI.HandleFunc("/{id}", plotHandler.Delete).Methods("DELETE")
	plotsAPI.HandleFunc("/{id}/houses", houseHandler.ListByPlot).Methods("GET")

	// Protected API routes - Houses
	housesAPI := r.PathPrefix("/api/houses").Subrouter()
	housesAPI.Use(authMiddleware.Authenticate)
	housesAPI.HandleFunc("", houseHandler.Create).Methods("POST")
	housesAPI.HandleFunc("/{id}", houseHandler.Get).Methods("GET")
	housesAPI.HandleFunc("/{id}", houseHandler.Update).Methods("PUT")
	housesAPI.HandleFunc("/{id}", houseHandler.Delete).Methods("DELETE")

	// Protected API routes - Tenants
	tenantsAPI := r.PathPrefix("/api/tenants").Subrouter()
	tenantsAPI.Use(authMiddleware.Authenticate)
	tenantsAPI.HandleFunc("", tenantHandler.List).Methods("GET")
	tenantsAPI.HandleFunc("", tenantHandler.MoveIn).Methods("POST")
	tenantsAPI.HandleFunc("/{id}", tenantHandler.Get).Methods("GET")
	tenantsAPI.HandleFunc("/{id}", tenantHandler.Update).Methods("PUT")
	tenantsAPI.HandleFunc("/{id}/move-out", tenantHandler.MoveOut).Methods("POST")
	tenantsAPI.HandleFunc("/{id}/schedule", paymentHandler.Schedule).Methods("GET")
	tenantsAPI.HandleFunc("/{id}/payments", paymentHandler.History).Methods("GET")

	// Protected API routes - Payments
	paymentsAPI := r.PathPrefix("/api/payments").Subrouter()
	paymentsAPI.Use(authMiddleware.Authenticate)
	paymentsAPI.HandleFunc("", paymentHandler.Create).Methods("POST")
	paymentsAPI.HandleFunc("/accrue", authMiddleware.RequireAdmin(http.HandlerFunc(paymentHandler.Accrue)).ServeHTTP).Methods("POST")
	paymentsAPI.HandleFunc("/{id}/receipt", receiptHandler.Get).Methods("GET")

	// Protected API routes - Online payments
	onlineAPI := r.PathPrefix("/api/online-payments").Subrouter()
	onlineAPI.Use(authMiddleware.Authenticate)
	onlineAPI.HandleFunc("/status", razorpayHandler.Status).Methods("GET")
	onlineAPI.HandleFunc("/orders", razorpayHandler.CreateOrder).Methods("POST")
	onlineAPI.HandleFunc("/verify", razorpayHandler.VerifyCheckout).Methods("POST")

	// Protected API routes - 2FA
	totpAPI := r.PathPrefix("/api/2fa").Subrouter()
	totpAPI.Use(authMiddleware.Authenticate)
	totpAPI.HandleFunc("/setup", totpHandler.Setup).Methods("POST")
	totpAPI.HandleFunc("/enable", totpHandler.Enable).Methods("POST")
	totpAPI.HandleFunc("/disable", totpHandler.Disable).Methods("POST")

	// Health endpoints (no auth required - for probes)
	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.ReadinessHealth).Methods("GET")

	// Metrics endpoint (Prometheus format)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
