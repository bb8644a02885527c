package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/threesixtycreation/mockup-funnel/internal/infra/database"
	"github.com/threesixtycreation/mockup-funnel/internal/infra/http/handlers"
	"github.com/threesixtycreation/mockup-funnel/internal/infra/http/middleware"
	"github.com/threesixtycreation/mockup-funnel/internal/infra/integration/geoip"
	"github.com/threesixtycreation/mockup-funnel/internal/infra/integration/places"
	"github.com/threesixtycreation/mockup-funnel/internal/infra/mail"
	"github.com/threesixtycreation/mockup-funnel/internal/infra/storage"
	"github.com/threesixtycreation/mockup-funnel/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// 1. Repositories
	leadRepo := database.NewLeadRepository(db)
	pageViewRepo := database.NewPageViewRepository(db)
	visitorRepo := database.NewLiveVisitorRepository(db)

	// 2. Gateways and adapters
	objectStore := storage.NewClient(os.Getenv("SUPABASE_URL"), os.Getenv("SUPABASE_SERVICE_KEY"))
	placesClient := places.NewClient(os.Getenv("GOOGLE_PLACES_API_KEY"))
	geoClient := geoip.NewClient()

	mailPort := 587
	if p, err := strconv.Atoi(os.Getenv("MAIL_PORT")); err == nil {
		mailPort = p
	}
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), mailPort, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		os.Getenv("MAIL_FROM"), os.Getenv("ADMIN_EMAIL"), os.Getenv("APP_URL"),
	)

	// 3. UseCases
	createLeadUC := usecase.NewCreateLeadUseCase(leadRepo, objectStore, mailSender)
	deliverMockupUC := usecase.NewDeliverMockupUseCase(leadRepo, objectStore, mailSender)
	viewMockupUC := usecase.NewViewMockupUseCase(leadRepo)
	interestUC := usecase.NewRecordInterestUseCase(leadRepo, mailSender)
	analyticsUC := usecase.NewAnalyticsUseCase(pageViewRepo, leadRepo)
	estimateUC := usecase.NewEstimateUseCase(placesClient)

	// 4. Handlers
	leadHandler := handlers.NewLeadHandler(createLeadUC, leadRepo)
	mockupHandler := handlers.NewMockupHandler(deliverMockupUC, viewMockupUC, interestUC)
	trackingHandler := handlers.NewTrackingHandler(pageViewRepo, visitorRepo, geoClient, analyticsUC)
	estimateHandler := handlers.NewEstimateHandler(estimateUC)
	healthHandler := handlers.NewHealthHandler(db)

	auth := middleware.NewStaticTokenAuthenticator(os.Getenv("ADMIN_PASSWORD"))

	// 5. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	// Public funnel surface
	r.Post("/submit", leadHandler.HandleSubmit)
	r.Get("/mockup/{id}", mockupHandler.HandleView)
	r.Post("/interest", mockupHandler.HandleInterest)
	r.Post("/track", trackingHandler.HandleTrack)
	r.Post("/heartbeat", trackingHandler.HandleHeartbeat)
	r.Post("/gbp-search", estimateHandler.HandleGbpSearch)
	r.Get("/spy-search", estimateHandler.HandleSpyStatus)
	r.Post("/spy-search", estimateHandler.HandleSpySearch)

	// Staff dashboard surface
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(auth))
		r.Get("/submissions", leadHandler.HandleList)
		r.Patch("/submissions", leadHandler.HandleUpdateStatus)
		r.Post("/upload-mockup", mockupHandler.HandleUpload)
		r.Get("/live-visitors", trackingHandler.HandleLiveVisitors)
		r.Get("/analytics", trackingHandler.HandleAnalytics)
	})

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("mockup funnel API listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal(err)
	}
}
