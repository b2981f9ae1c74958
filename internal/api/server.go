// Package api serves the cached pay-plan dataset over HTTP. The snapshot is
// loaded once at startup and served from memory; there is no write surface.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/baxromumarov/payplan/internal/payplan"
)

// Listing is the API-facing shape of one pay-plan row, with the title
// extracted and the salary ranges parsed. Fields that failed to parse are
// null in the JSON output.
type Listing struct {
	Title         *string  `json:"title"`
	JobID         string   `json:"job_id"`
	Category      string   `json:"category"`
	EffectiveDate string   `json:"effective_date"`
	AnnualMin     *float64 `json:"annual_min"`
	AnnualMax     *float64 `json:"annual_max"`
	MonthlyMin    *float64 `json:"monthly_min"`
	MonthlyMax    *float64 `json:"monthly_max"`
}

type Server struct {
	router   *chi.Mux
	listings []Listing
}

func NewServer(records []payplan.NamedRecord) *Server {
	s := &Server{
		router:   chi.NewRouter(),
		listings: buildListings(records),
	}

	s.setupRoutes()
	return s
}

func buildListings(records []payplan.NamedRecord) []Listing {
	listings := make([]Listing, 0, len(records))
	for _, rec := range records {
		job := payplan.NewJobListing(rec)
		listings = append(listings, Listing{
			Title:         job.Title(),
			JobID:         job.ID(),
			Category:      job.Category(),
			EffectiveDate: job.Date(),
			AnnualMin:     job.AnnualSalaryMin(),
			AnnualMax:     job.AnnualSalaryMax(),
			MonthlyMin:    job.MonthlySalaryMin(),
			MonthlyMax:    job.MonthlySalaryMax(),
		})
	}
	return listings
}

func (s *Server) setupRoutes() {
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	s.router.Get("/health", s.handleHealth)
	s.router.Get("/listings", s.handleListListings)
}

func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(response)
}
