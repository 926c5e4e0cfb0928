// Package client talks to the DSC Travel API: trip fetch, document upload
// and extraction trigger, plus the fetch session used by the panel.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"dsctravel/trip"
)

// DefaultBaseURL is used when no base URL is configured.
const DefaultBaseURL = "https://api.dsctravel.com.br"

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// UploadFile is one document to send to the extraction pipeline.
type UploadFile struct {
	Name    string
	Content io.Reader
}

type UploadResponse struct {
	TripID  string   `json:"trip_id"`
	Status  string   `json:"status"`
	Message string   `json:"message"`
	Files   []string `json:"files"`
}

type ExtractResponse struct {
	TripID  string `json:"trip_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// GetTrip fetches one trip record. Any non-2xx status is surfaced as a
// displayable error message; the payload itself is never validated here —
// missing fields are the normalizer's problem, not a transport error.
func (c *Client) GetTrip(ctx context.Context, tripID string) (*trip.Trip, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/trips/"+tripID, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !is2xx(resp.StatusCode) {
		return nil, fmt.Errorf("Erro ao buscar viagem. Status %d", resp.StatusCode)
	}

	var t trip.Trip
	if err := json.NewDecoder(resp.Body).Decode(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

// UploadFiles sends trip documents as one multipart request. The upload is
// all-or-nothing at the transport level; there is no per-file status.
func (c *Client) UploadFiles(ctx context.Context, files []UploadFile) (*UploadResponse, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for _, f := range files {
		part, err := writer.CreateFormFile("files", f.Name)
		if err != nil {
			return nil, err
		}
		if _, err := io.Copy(part, f.Content); err != nil {
			return nil, err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !is2xx(resp.StatusCode) {
		return nil, fmt.Errorf("Erro ao fazer upload. Status %d", resp.StatusCode)
	}

	var out UploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExtractTrip triggers AI extraction over the documents already uploaded
// for tripID. clientName is optional and forwarded verbatim.
func (c *Client) ExtractTrip(ctx context.Context, tripID, clientName string) (*ExtractResponse, error) {
	payload, err := json.Marshal(map[string]string{"cliente_nome": clientName})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/extract/"+tripID, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !is2xx(resp.StatusCode) {
		return nil, fmt.Errorf("Erro ao extrair dados. Status %d", resp.StatusCode)
	}

	var out ExtractResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func is2xx(status int) bool {
	return status >= 200 && status < 300
}
