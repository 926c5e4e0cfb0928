package services

import (
	"bytes"
	"fmt"
	"time"

	"dsctravel/trip"

	"github.com/jung-kurt/gofpdf"
)

// BuildTripPDF renders the client-facing trip summary and returns raw
// bytes (no filesystem — the handler stores them in PostgreSQL).
func BuildTripPDF(t *trip.Trip) ([]byte, error) {
	summary := trip.Normalize(t.Data)
	cities := trip.ExtractCities(t.Data)
	budget := trip.Budget(t.Data)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// Core fonts are latin-1; the translator keeps the Portuguese accents.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// ── Header Bar ───────────────────────────────────────────
	pdf.SetFillColor(9, 7, 125) // DSC navy
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "DSC Travel", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(80, 207, 173) // DSC green
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, tr("Apresentação de Viagem"), "", 1, "L", false, 0, "")

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	// ── Section Helper ───────────────────────────────────────
	sectionHeader := func(title string) {
		pdf.SetFillColor(9, 7, 125)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+tr(title), "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(55, 7, tr(label), "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(115, 7, tr(value), "", 1, "L", false, 0, "")
	}

	// ── Trip Overview ─────────────────────────────────────────
	sectionHeader("Resumo da Viagem")
	row("Cliente", summary.ClientName)
	row("Destinos", summary.DestinationsText)
	row("Duração", summary.DurationText)
	row("Período", summary.PeriodText)
	row("Gerado em", time.Now().Format("02/01/2006 15:04 UTC"))
	pdf.Ln(4)

	if summary.SummaryText != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(40, 40, 40)
		pdf.MultiCell(170, 5, tr(summary.SummaryText), "", "L", false)
		pdf.Ln(4)
	}

	// ── Flights ───────────────────────────────────────────────
	if len(t.Data.Flights) > 0 {
		sectionHeader("Voos")
		for _, f := range t.Data.Flights {
			route := fmt.Sprintf("%s → %s", f.Origin, f.Destination)
			times := f.DepartureTime
			if f.ArrivalTime != "" {
				times += " → " + f.ArrivalTime
			}
			row(f.Date, fmt.Sprintf("%s  (%s)", route, times))
		}
		pdf.Ln(4)
	}

	// ── Hotels ────────────────────────────────────────────────
	if len(t.Data.Hotels) > 0 {
		sectionHeader("Hotéis")
		for _, h := range t.Data.Hotels {
			row(h.City, fmt.Sprintf("%s • %d noites • %s - %s",
				h.Name, h.Nights, h.CheckIn, h.CheckOut))
			if h.MealPlan != "" {
				row("", h.MealPlan)
			}
		}
		pdf.Ln(4)
	}

	// ── Cities ────────────────────────────────────────────────
	if len(cities) > 0 {
		sectionHeader("Cidades Incluídas")
		for _, c := range cities {
			row(c.Name, c.Description)
		}
		pdf.Ln(4)
	}

	// ── Budget ────────────────────────────────────────────────
	if !budget.Empty() {
		sectionHeader("Orçamento")
		if budget.Base != nil {
			row(budget.Base.Description, fmt.Sprintf("R$ %.2f (incluso)", budget.Base.Value))
		}
		for _, tour := range budget.Options {
			label := "opcional"
			if tour.Included {
				label = "incluído"
			}
			row(tour.Name, fmt.Sprintf("R$ %.2f por pessoa (%s)", tour.PricePerPerson, label))
		}
		pdf.Ln(4)
	}

	// ── Footer ────────────────────────────────────────────────
	pdf.SetY(-22)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.3)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(0, 8,
		tr("Gerado por DSC Travel · Documento de apresentação · Valores sujeitos a alteração"),
		"", 0, "C", false, 0, "")

	// ── Write to buffer ───────────────────────────────────────
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF output failed: %w", err)
	}
	return buf.Bytes(), nil
}
