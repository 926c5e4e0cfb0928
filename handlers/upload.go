package handlers

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"dsctravel/database"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UploadResponse struct {
	TripID  string   `json:"trip_id"`
	Status  string   `json:"status"`
	Message string   `json:"message"`
	Files   []string `json:"files"`
}

// UploadHandler receives the trip documents and creates the trip they
// belong to. The upload is all-or-nothing: any failed file fails the whole
// request.
func UploadHandler(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form: " + err.Error()})
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No files provided"})
		return
	}

	tripID := newTripID()

	if err := database.SaveTrip(&database.Trip{ID: tripID, Status: "uploaded"}); err != nil {
		log.Printf("❌ Failed to create trip %s: %v", tripID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao fazer upload: " + err.Error()})
		return
	}

	var saved []string
	for _, fh := range files {
		src, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao fazer upload: " + err.Error()})
			return
		}
		content, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao fazer upload: " + err.Error()})
			return
		}

		// A failure mid-loop leaves the trip row and earlier files behind.
		// That partial trip stays in status "uploaded" and is never served;
		// a retry creates a fresh trip id rather than resuming this one.
		if err := database.SaveTripFile(&database.TripFile{
			TripID:   tripID,
			Filename: fh.Filename,
			Content:  content,
		}); err != nil {
			log.Printf("❌ Failed to store %s for trip %s: %v", fh.Filename, tripID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao fazer upload: " + err.Error()})
			return
		}
		saved = append(saved, fh.Filename)
	}

	log.Printf("✅ Trip %s created with %d file(s)", tripID, len(saved))

	c.JSON(http.StatusOK, UploadResponse{
		TripID:  tripID,
		Status:  "uploaded",
		Message: fmt.Sprintf("%d arquivo(s) enviado(s) com sucesso", len(saved)),
		Files:   saved,
	})
}

// newTripID builds ids like "trip_4f1c2b9a8d3e".
func newTripID() string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "trip_" + hex[:12]
}
