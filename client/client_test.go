package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dsctravel/trip"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/trips/trip_abc", r.URL.Path)
		json.NewEncoder(w).Encode(trip.Trip{
			TripID: "trip_abc",
			Status: "extracted",
			Data:   trip.TripData{Client: "Maria"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	got, err := c.GetTrip(context.Background(), "trip_abc")
	require.NoError(t, err)
	assert.Equal(t, "trip_abc", got.TripID)
	assert.Equal(t, "Maria", got.Data.Client)
}

func TestGetTrip_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.GetTrip(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, "Erro ao buscar viagem. Status 404", err.Error())
}

func TestUploadFiles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/upload", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.Len(t, r.MultipartForm.File["files"], 2)
		assert.Equal(t, "orcamento.pdf", r.MultipartForm.File["files"][0].Filename)

		json.NewEncoder(w).Encode(UploadResponse{
			TripID:  "trip_123",
			Status:  "uploaded",
			Message: "2 arquivo(s) enviado(s) com sucesso",
			Files:   []string{"orcamento.pdf", "voos.pdf"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	out, err := c.UploadFiles(context.Background(), []UploadFile{
		{Name: "orcamento.pdf", Content: strings.NewReader("pdf-a")},
		{Name: "voos.pdf", Content: strings.NewReader("pdf-b")},
	})
	require.NoError(t, err)
	assert.Equal(t, "trip_123", out.TripID)
	assert.Len(t, out.Files, 2)
}

func TestUploadFiles_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.UploadFiles(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, "Erro ao fazer upload. Status 502", err.Error())
}

func TestExtractTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/extract/trip_123", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Maria", body["cliente_nome"])

		json.NewEncoder(w).Encode(ExtractResponse{
			TripID: "trip_123", Status: "extracted", Message: "Dados extraídos com sucesso",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	out, err := c.ExtractTrip(context.Background(), "trip_123", "Maria")
	require.NoError(t, err)
	assert.Equal(t, "extracted", out.Status)
}

func TestExtractTrip_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.ExtractTrip(context.Background(), "trip_123", "")
	require.Error(t, err)
	assert.Equal(t, "Erro ao extrair dados. Status 500", err.Error())
}

func TestNew_DefaultBaseURL(t *testing.T) {
	assert.Equal(t, DefaultBaseURL, New("").baseURL)
	assert.Equal(t, "http://localhost:8080", New("http://localhost:8080/").baseURL)
}
