// Package importer ingests borehole logs from XLSX worksheets: one row
// per stratum, in depth order. The parsed profile is run through the
// bearing and settlement calculators for the footing described in the
// form fields.
package importer

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/xuri/excelize/v2"

	"Stratum/internal/calc/bearing"
	"Stratum/internal/calc/httperr"
	"Stratum/internal/calc/settlement"
	"Stratum/internal/soil"
)

type Handler struct{}

type ImportResult struct {
	LayerCount int               `json:"layer_count"`
	Profile    *soil.Profile     `json:"profile"`
	Bearing    bearing.Result    `json:"bearing"`
	Settlement settlement.Result `json:"settlement"`
}

// Borehole expects a multipart form: "file" with the worksheet and the
// footing fields water_table_m, width_m, length_m, depth_m,
// pressure_kpa. Worksheet columns, starting at row 2:
// from_depth, to_depth, class, gamma, gamma_sat, cohesion, phi, n60, fines.
func (h *Handler) Borehole(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var layers []soil.Layer
	for i := 1; i < len(rows); i++ {
		layer, err := parseLayerRow(rows[i])
		if err != nil {
			http.Error(w, fmt.Sprintf("Row %d: %v", i+1, err), http.StatusBadRequest)
			return
		}
		layers = append(layers, layer)
	}

	foundation, waterTable, err := parseFoundationForm(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	profile, err := soil.NewProfile(layers, waterTable)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	var cfg soil.Config
	b, err := bearing.Compute(profile, foundation, cfg)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	s, err := settlement.Compute(profile, foundation, cfg)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ImportResult{
		LayerCount: len(layers),
		Profile:    profile,
		Bearing:    b,
		Settlement: s,
	})
}

func parseLayerRow(row []string) (soil.Layer, error) {
	if len(row) < 4 {
		return soil.Layer{}, fmt.Errorf("expected at least 4 columns, got %d", len(row))
	}
	from, err := toFloat(row[0])
	if err != nil {
		return soil.Layer{}, fmt.Errorf("from_depth: %v", err)
	}
	to, err := toFloat(row[1])
	if err != nil {
		return soil.Layer{}, fmt.Errorf("to_depth: %v", err)
	}
	class := soil.Class(row[2])
	gamma, err := toFloat(row[3])
	if err != nil {
		return soil.Layer{}, fmt.Errorf("gamma: %v", err)
	}

	layer := soil.Layer{
		FromDepthM: from,
		ToDepthM:   to,
		Class:      class,
		GammaKNM3:  gamma,
	}
	layer.GammaSatKNM3 = optFloat(row, 4)
	layer.CohesionKPa = optFloat(row, 5)
	layer.FrictionAngleDeg = optFloat(row, 6)
	layer.SPTBlowCount = optFloat(row, 7)
	layer.FinesContentPct = optFloat(row, 8)
	return layer, nil
}

func parseFoundationForm(r *http.Request) (soil.Foundation, float64, error) {
	get := func(name string) (float64, error) {
		v, err := strconv.ParseFloat(r.FormValue(name), 64)
		if err != nil {
			return 0, fmt.Errorf("form field %s: %v", name, err)
		}
		return v, nil
	}

	waterTable, err := get("water_table_m")
	if err != nil {
		return soil.Foundation{}, 0, err
	}
	width, err := get("width_m")
	if err != nil {
		return soil.Foundation{}, 0, err
	}
	length, err := get("length_m")
	if err != nil {
		return soil.Foundation{}, 0, err
	}
	depth, err := get("depth_m")
	if err != nil {
		return soil.Foundation{}, 0, err
	}
	pressure, err := get("pressure_kpa")
	if err != nil {
		return soil.Foundation{}, 0, err
	}

	return soil.Foundation{
		WidthM:      width,
		LengthM:     length,
		DepthM:      depth,
		PressureKPa: pressure,
	}, waterTable, nil
}

func toFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func optFloat(row []string, i int) float64 {
	if i >= len(row) || row[i] == "" {
		return 0
	}
	v, _ := toFloat(row[i])
	return v
}
