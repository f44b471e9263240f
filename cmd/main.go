package main

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/edulink/api-agency/internal/address"
	"github.com/edulink/api-agency/internal/agent"
	"github.com/edulink/api-agency/internal/application"
	"github.com/edulink/api-agency/internal/auth"
	"github.com/edulink/api-agency/internal/commission"
	"github.com/edulink/api-agency/internal/config"
	"github.com/edulink/api-agency/internal/dropdown"
	"github.com/edulink/api-agency/internal/rates"
	"github.com/edulink/api-agency/internal/storage"
	"github.com/edulink/api-agency/internal/student"
	"github.com/edulink/api-agency/internal/university"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config:", err)
	}
	if err := auth.SetSigningKey(cfg.JWTSecret); err != nil {
		log.Fatal("auth:", err)
	}

	db, err := storage.GetDB()
	if err != nil {
		log.Fatal("database:", err)
	}

	if err := db.AutoMigrate(
		&auth.Credential{},
		&student.Student{},
		&agent.Agent{},
		&application.Application{},
		&university.University{},
		&university.Course{},
		&commission.Commission{},
		&dropdown.DocOption{},
	); err != nil {
		log.Fatal("migrate:", err)
	}
	if err := auth.EnsureAdmin(db); err != nil {
		log.Fatal("admin seed:", err)
	}

	addressStore, err := address.Load(cfg.AddressDataFile)
	if err != nil {
		log.Fatal("address data:", err)
	}

	rateService := rates.NewService(cfg.RedisAddr)

	// Handlers
	authHandler := auth.NewHandler(db)
	studentHandler := student.NewHandler(db)
	agentHandler := agent.NewHandler(db)
	applicationHandler := application.NewHandler(db, rateService)
	universityHandler := university.NewHandler(db)
	trigger := commission.NewTrigger(db, cfg.Commission)
	calculator := commission.NewCalculator(db, cfg.PaymentSecret)
	commissionHandler := commission.NewHandler(db, trigger, calculator)
	dropdownHandler := dropdown.NewHandler(db)
	addressHandler := address.NewHandler(addressStore)
	ratesHandler := rates.NewHandler(rateService)

	// Router
	r := mux.NewRouter()

	// Public routes
	r.HandleFunc("/token", authHandler.Login).Methods("POST")
	r.HandleFunc("/countries", addressHandler.Countries).Methods("GET")
	r.HandleFunc("/countries/{id}/states", addressHandler.States).Methods("GET")
	r.HandleFunc("/states/{id}/cities", addressHandler.Cities).Methods("GET")

	// Everything else requires a valid token
	api := r.NewRoute().Subrouter()
	api.Use(auth.Middleware)

	// Students
	api.HandleFunc("/students", studentHandler.List).Methods("GET")
	api.HandleFunc("/students", studentHandler.Save).Methods("POST")
	api.HandleFunc("/students/{id}", studentHandler.Get).Methods("GET")
	api.HandleFunc("/students/{id}", studentHandler.Delete).Methods("DELETE")

	// Agents
	api.HandleFunc("/agents", agentHandler.List).Methods("GET")
	api.HandleFunc("/agents", agentHandler.Save).Methods("POST")
	api.HandleFunc("/agents/{id}", agentHandler.Get).Methods("GET")
	api.HandleFunc("/agents/{id}", agentHandler.Delete).Methods("DELETE")

	// Applications
	api.HandleFunc("/applications", applicationHandler.List).Methods("GET")
	api.HandleFunc("/applications", applicationHandler.Save).Methods("POST")
	api.HandleFunc("/applications/{id}", applicationHandler.Get).Methods("GET")
	api.HandleFunc("/applications/{id}", applicationHandler.Delete).Methods("DELETE")
	api.HandleFunc("/application_statuses", applicationHandler.Statuses).Methods("GET")

	// Universities and courses
	api.HandleFunc("/universities", universityHandler.Create).Methods("POST")
	api.HandleFunc("/universities", universityHandler.List).Methods("GET")
	api.HandleFunc("/universities/{id}", universityHandler.Get).Methods("GET")
	api.HandleFunc("/universities/{id}", universityHandler.Update).Methods("PUT")
	api.HandleFunc("/universities/{id}", universityHandler.Delete).Methods("DELETE")
	api.HandleFunc("/universities/{id}/courses", universityHandler.AddCourse).Methods("POST")
	api.HandleFunc("/courses/{id}", universityHandler.DeleteCourse).Methods("DELETE")

	// Commission settlement
	api.HandleFunc("/application_status_update", commissionHandler.UpdateApplicationStatus).Methods("POST")
	api.HandleFunc("/select_commission", commissionHandler.SelectCommission).Methods("POST")
	api.HandleFunc("/change_fee_status", commissionHandler.ChangeFeeStatus).Methods("POST")
	api.HandleFunc("/commission_get", commissionHandler.CommissionGet).Methods("POST")

	// Lookups
	api.HandleFunc("/docs", dropdownHandler.Create).Methods("POST")
	api.HandleFunc("/docs", dropdownHandler.List).Methods("GET")
	api.HandleFunc("/currency_rates", ratesHandler.List).Methods("GET")

	handler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(r)

	log.Printf("listening on %s", cfg.ListenAddr)
	log.Fatal(http.ListenAndServe(cfg.ListenAddr, handler))
}
