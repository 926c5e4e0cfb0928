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

type TripResponse struct {
	TripID string        `json:"trip_id"`
	Status string        `json:"status"`
	Data   trip.TripData `json:"data"`
}

// TripHandler returns one trip record. The reserved id "demo" serves the
// simulated extraction so the panel can be demoed without uploading
// anything.
func TripHandler(c *gin.Context) {
	tripID := c.Param("trip_id")

	if tripID == "demo" {
		data := services.MockTripData("")
		enrichImages(&data)
		c.JSON(http.StatusOK, TripResponse{TripID: "demo", Status: "ok", Data: data})
		return
	}

	record, err := database.GetTrip(tripID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Viagem " + tripID + " não encontrada"})
		return
	}

	var data trip.TripData
	if record.DataJSON != "" {
		if err := json.Unmarshal([]byte(record.DataJSON), &data); err != nil {
			log.Printf("❌ Corrupt extraction for trip %s: %v", tripID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao ler dados"})
			return
		}
	}

	// Older extractions may predate the image catalog; fill on read.
	if data.HeroImage == "" {
		enrichImages(&data)
	}

	c.JSON(http.StatusOK, TripResponse{TripID: record.ID, Status: record.Status, Data: data})
}

func RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "DSC Seller API - Online",
		"status":  "ok",
		"version": "0.1.0",
	})
}

func PingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "dsc-seller-api online"})
}

func HealthHandler(c *gin.Context) {
	db := database.DB
	dbStatus := "ok"
	if db == nil {
		dbStatus = "not initialized"
	} else if err := db.Ping(); err != nil {
		dbStatus = "error: " + err.Error()
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"service":  "DSC Travel API",
		"database": dbStatus,
	})
}
