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

type ExtractRequest struct {
	ClientName string `json:"cliente_nome"`
}

type ExtractResponse struct {
	TripID  string `json:"trip_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ExtractHandler runs AI extraction over the documents uploaded for a trip
// and stores the structured result. When the AI is unavailable or fails
// the trip gets simulated data instead — extraction never leaves a trip
// without a renderable document.
func ExtractHandler(c *gin.Context) {
	tripID := c.Param("trip_id")

	var req ExtractRequest
	// Body is optional; an absent cliente_nome just means no override.
	_ = c.ShouldBindJSON(&req)

	if _, err := database.GetTrip(tripID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trip " + tripID + " não encontrado"})
		return
	}

	files, err := database.GetTripFiles(tripID)
	if err != nil {
		log.Printf("❌ Failed to read files for trip %s: %v", tripID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro na extração: " + err.Error()})
		return
	}

	var docs []services.Document
	for _, f := range files {
		text, err := services.ExtractDocumentText(f.Filename, f.Content)
		if err != nil {
			log.Printf("⚠️  Skipping unreadable file %s: %v", f.Filename, err)
			continue
		}
		if text != "" {
			docs = append(docs, services.Document{Name: f.Filename, Text: text})
		}
	}

	extractor := services.GetExtractor()

	data, err := extractor.ExtractTripData(docs, req.ClientName)
	if err != nil {
		log.Printf("⚠️  AI extraction failed for trip %s, using simulated data: %v", tripID, err)
		data = services.MockTripData(req.ClientName)
	} else {
		// The roteiro drives the day-by-day screens; a trip without one
		// still renders, so generation failure is not an extraction failure.
		days, err := extractor.GenerateItinerary(data)
		if err != nil {
			log.Printf("⚠️  Itinerary generation failed for trip %s: %v", tripID, err)
		} else {
			data.Itinerary = days
			log.Printf("✅ Itinerary generated for trip %s (%d day(s))", tripID, len(days))
		}
	}

	enrichImages(&data)

	dataJSON, err := json.Marshal(data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro na extração: " + err.Error()})
		return
	}

	if err := database.UpdateTripData(tripID, "extracted", data.Client, string(dataJSON)); err != nil {
		log.Printf("❌ Failed to store extraction for trip %s: %v", tripID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro na extração: " + err.Error()})
		return
	}

	log.Printf("✅ Extraction stored for trip %s (%d document(s))", tripID, len(docs))

	c.JSON(http.StatusOK, ExtractResponse{
		TripID:  tripID,
		Status:  "extracted",
		Message: "Dados extraídos com sucesso",
	})
}

// enrichImages fills hero and per-city photos for the included cities.
func enrichImages(data *trip.TripData) {
	cities := trip.ExtractCities(*data)
	if len(cities) == 0 {
		return
	}

	names := make([]string, len(cities))
	for i, city := range cities {
		names[i] = city.Name
	}

	images := services.GetImageClient()
	data.HeroImage = images.HeroImage(names)
	data.CityImages = images.CityImages(names)
}
