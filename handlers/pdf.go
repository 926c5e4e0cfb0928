package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"dsctravel/database"
	"dsctravel/services"
	"dsctravel/trip"

	"github.com/gin-gonic/gin"
)

// TripPDFHandler serves the client-facing summary PDF for a trip,
// rendering it on first request and caching the bytes in the database.
func TripPDFHandler(c *gin.Context) {
	tripID := c.Param("trip_id")

	record, err := database.GetTrip(tripID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Viagem " + tripID + " não encontrada"})
		return
	}

	if len(record.PDFData) > 0 {
		servePDF(c, record.PDFData)
		return
	}

	if record.DataJSON == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Viagem ainda não possui dados extraídos"})
		return
	}

	var data trip.TripData
	if err := json.Unmarshal([]byte(record.DataJSON), &data); err != nil {
		log.Printf("❌ Corrupt extraction for trip %s: %v", tripID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao ler dados"})
		return
	}

	pdfBytes, err := services.BuildTripPDF(&trip.Trip{TripID: record.ID, Status: record.Status, Data: data})
	if err != nil {
		log.Printf("❌ PDF generation failed for trip %s: %v", tripID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao gerar PDF"})
		return
	}

	if err := database.UpdateTripPDF(tripID, pdfBytes); err != nil {
		// Serving still works; only the cache write failed.
		log.Printf("⚠️  Failed to cache PDF for trip %s: %v", tripID, err)
	}

	log.Printf("✅ PDF generated for trip %s (%d bytes)", tripID, len(pdfBytes))
	servePDF(c, pdfBytes)
}

func servePDF(c *gin.Context, data []byte) {
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", "attachment; filename=dsc-viagem.pdf")
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/pdf", data)
}
