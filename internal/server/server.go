package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"fitcoach/internal/app"
	"fitcoach/internal/config"
	"fitcoach/internal/plan"
)

// Server exposes the shopping list workflow as a JSON API for the web
// client.
type Server struct {
	app *app.App
	cfg *config.Config
}

// New creates a new Server.
func New(a *app.App, cfg *config.Config) *Server {
	return &Server{app: a, cfg: cfg}
}

// Router builds the HTTP handler with routing and CORS applied.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/health", s.handleHealth).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/plans/{userID}/{weekStart}", s.handleSavePlan).Methods("PUT")
	api.HandleFunc("/plans/{userID}/{weekStart}", s.handleGetPlan).Methods("GET")
	api.HandleFunc("/shopping-lists/generate", s.handleGenerateAdHoc).Methods("POST")
	api.HandleFunc("/shopping-lists/{userID}/{weekStart}/generate", s.handleGenerate).Methods("POST")
	api.HandleFunc("/shopping-lists/{userID}/{weekStart}/export", s.handleExport).Methods("GET")
	api.HandleFunc("/shopping-lists/{userID}/{weekStart}", s.handleGetList).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins: s.cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders: []string{"Content-Type"},
	})

	return c.Handler(r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.app.Health())
}

func (s *Server) handleSavePlan(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var wp plan.WeekPlan
	if err := json.NewDecoder(r.Body).Decode(&wp); err != nil {
		writeError(w, http.StatusBadRequest, "invalid week plan payload")
		return
	}

	if err := s.app.SavePlan(r.Context(), vars["userID"], vars["weekStart"], wp); err != nil {
		log.Printf("Error saving plan: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to save plan")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	wp, err := s.app.GetPlan(r.Context(), vars["userID"], vars["weekStart"])
	if err != nil {
		log.Printf("Error loading plan: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load plan")
		return
	}
	if wp == nil {
		writeError(w, http.StatusNotFound, "no plan stored for this week")
		return
	}

	writeJSON(w, http.StatusOK, wp)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	list, err := s.app.GenerateForWeek(r.Context(), vars["userID"], vars["weekStart"])
	if err != nil {
		log.Printf("Error generating shopping list: %v", err)
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGenerateAdHoc(w http.ResponseWriter, r *http.Request) {
	var wp plan.WeekPlan
	if err := json.NewDecoder(r.Body).Decode(&wp); err != nil {
		writeError(w, http.StatusBadRequest, "invalid week plan payload")
		return
	}

	writeJSON(w, http.StatusOK, s.app.GenerateFromPlan(r.Context(), wp))
}

func (s *Server) handleGetList(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	list, err := s.app.GetList(r.Context(), vars["userID"], vars["weekStart"])
	if err != nil {
		log.Printf("Error loading shopping list: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load shopping list")
		return
	}
	if list == nil {
		writeError(w, http.StatusNotFound, "no shopping list generated for this week")
		return
	}

	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	text, err := s.app.ExportText(r.Context(), vars["userID"], vars["weekStart"])
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(text))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
