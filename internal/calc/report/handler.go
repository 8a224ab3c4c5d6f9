package report

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"Stratum/internal/calc/bearing"
	"Stratum/internal/calc/httperr"
	"Stratum/internal/calc/liquefaction"
	"Stratum/internal/calc/settlement"
	"Stratum/internal/calc/sliding"
	"Stratum/internal/repo"
	"Stratum/internal/soil"
)

// Input is one site investigation plus one footing; the handler runs
// every calculator over it and aggregates.
type Input struct {
	Project string `json:"project"`
	Author  string `json:"author"`
	Title   string `json:"title"`

	Layers      []soil.Layer         `json:"layers"`
	WaterTableM float64              `json:"water_table_m"`
	Foundation  soil.Foundation      `json:"foundation"`
	Seismic     liquefaction.Seismic `json:"seismic"`
	Config      soil.Config          `json:"config"`

	IncludeSliding bool `json:"include_sliding,omitempty"`
}

// Run executes all calculators over the shared read-only profile and
// aggregates their results.
func Run(in Input) (Report, error) {
	profile, err := soil.NewProfile(in.Layers, in.WaterTableM)
	if err != nil {
		return Report{}, err
	}

	b, err := bearing.Compute(profile, in.Foundation, in.Config)
	if err != nil {
		return Report{}, err
	}
	s, err := settlement.Compute(profile, in.Foundation, in.Config)
	if err != nil {
		return Report{}, err
	}
	l, err := liquefaction.Analyze(profile, in.Seismic, in.Config)
	if err != nil {
		return Report{}, err
	}

	rep, err := Aggregate(&b, &s, &l)
	if err != nil {
		return Report{}, err
	}

	if in.IncludeSliding {
		sl, err := sliding.Compute(profile, in.Foundation, in.Config)
		if err != nil {
			return Report{}, err
		}
		rep = rep.WithSliding(&sl)
	}
	return rep, nil
}

type Handler struct {
	Repo repo.Repository
}

// Generate runs the full analysis and returns the combined report as
// JSON.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	rep, err := Run(input)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rep)
}

// Save runs the analysis and stores the report under the logged-in user.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(int)
	if !ok || userID == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	rep, err := Run(input)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	payload, err := json.Marshal(rep)
	if err != nil {
		http.Error(w, "Report encoding error", http.StatusInternalServerError)
		return
	}
	title := input.Title
	if title == "" {
		title = "Geotechnical Report"
	}
	id, err := h.Repo.SaveReport(r.Context(), userID, title, payload)
	if err != nil {
		log.Printf("SaveReport error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]int{"id": id})
}

// List returns the saved report metadata for the logged-in user.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(int)
	if !ok || userID == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	reports, err := h.Repo.ListReports(r.Context(), userID)
	if err != nil {
		log.Printf("ListReports error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(reports)
}

// Get returns one stored report payload.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(int)
	if !ok || userID == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid report id", http.StatusBadRequest)
		return
	}
	payload, err := h.Repo.GetReport(r.Context(), userID, id)
	if err != nil {
		http.Error(w, "Report not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(payload)
}
