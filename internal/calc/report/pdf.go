package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/phpdave11/gofpdf"

	"Stratum/internal/calc/httperr"
)

// GeneratePDF runs the full analysis and streams the report as a PDF
// attachment.
func (h *Handler) GeneratePDF(w http.ResponseWriter, r *http.Request) {
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

	pdf := renderPDF(input, rep)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

func renderPDF(in Input, rep Report) *gofpdf.Fpdf {
	title := in.Title
	if title == "" {
		title = "Geotechnical Analysis Report"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", in.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", in.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	section := func(name string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, name)
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "", 10)
	}
	line := func(format string, args ...any) {
		pdf.Cell(0, 5, fmt.Sprintf(format, args...))
		pdf.Ln(5)
	}

	section("Bearing Capacity")
	line("Method: %s", rep.Bearing.Method)
	line("Ultimate: %.1f kPa   Allowable: %.1f kPa (FS = %.1f)",
		rep.Bearing.UltimateKPa, rep.Bearing.AllowableKPa, rep.Bearing.SafetyFactor)
	line("Nc = %.2f  Nq = %.2f  Ng = %.2f",
		rep.Bearing.Factors.Nc, rep.Bearing.Factors.Nq, rep.Bearing.Factors.Ng)
	line("Applied pressure safe: %v", rep.Bearing.IsSafe)
	pdf.Ln(4)

	section("Settlement")
	line("Elastic: %.1f mm   Consolidation: %.1f mm   Total: %.1f mm",
		rep.Settlement.ElasticM*1000, rep.Settlement.ConsolidationM*1000, rep.Settlement.TotalM*1000)
	pdf.Ln(4)

	section("Liquefaction")
	line("Magnitude scaling factor: %.2f", rep.Liquefaction.MSF)
	for _, l := range rep.Liquefaction.Layers {
		if l.Screened != "" {
			line("%.1f-%.1f m: not rated (%s)", l.FromDepthM, l.ToDepthM, l.Screened)
			continue
		}
		verdict := "not susceptible"
		if l.Susceptible {
			verdict = "SUSCEPTIBLE"
		}
		line("%.1f-%.1f m: CSR %.3f  CRR %.3f  FS %.2f  %s",
			l.FromDepthM, l.ToDepthM, l.CSR, l.CRR, l.FS, verdict)
	}
	pdf.Ln(4)

	if rep.Sliding != nil {
		section("Horizontal Sliding")
		line("Resistance X: %.1f kN (safe: %v)   Y: %.1f kN (safe: %v)",
			rep.Sliding.ResistanceXKN, rep.Sliding.IsSafeX,
			rep.Sliding.ResistanceYKN, rep.Sliding.IsSafeY)
		pdf.Ln(4)
	}

	if len(rep.Warnings) > 0 {
		section("Warnings")
		for _, warn := range rep.Warnings {
			pdf.MultiCell(0, 5, "- "+warn, "", "L", false)
		}
	}
	return pdf
}
