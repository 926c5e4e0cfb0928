package services

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// FallbackHeroImage keeps the preview rendering when no curated image is
// available for a destination.
const FallbackHeroImage = "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=800&q=80"

// ImageClient looks up curated destination photos in the Supabase
// destination_images table via its PostgREST endpoint.
type ImageClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var imageClient *ImageClient

func InitImages() {
	key := os.Getenv("SUPABASE_ANON_KEY")
	if key == "" {
		key = os.Getenv("SUPABASE_KEY")
	}

	imageClient = &ImageClient{
		baseURL: strings.TrimRight(os.Getenv("SUPABASE_URL"), "/"),
		apiKey:  key,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}

	if imageClient.baseURL == "" || imageClient.apiKey == "" {
		log.Println("ℹ️  SUPABASE_URL or SUPABASE_KEY not set — destination images will use fallbacks")
		return
	}
	log.Println("✅ Supabase image catalog configured")
}

func GetImageClient() *ImageClient {
	return imageClient
}

func (c *ImageClient) configured() bool {
	return c != nil && c.baseURL != "" && c.apiKey != ""
}

type imageRow struct {
	ImageURL string `json:"image_url"`
	Landmark string `json:"landmark"`
}

// cityImages returns the curated photo URLs for one city, best first.
func (c *ImageClient) cityImages(city string) ([]string, error) {
	endpoint := fmt.Sprintf("%s/rest/v1/destination_images?city=eq.%s&select=image_url,landmark&order=priority.asc",
		c.baseURL, url.QueryEscape(city))

	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image lookup failed (%d): %s", resp.StatusCode, string(body))
	}

	var rows []imageRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, err
	}

	var urls []string
	for _, r := range rows {
		if r.ImageURL != "" {
			urls = append(urls, r.ImageURL)
		}
	}
	return urls, nil
}

// HeroImage picks the cover photo for a trip: the first curated photo of
// the first destination.
func (c *ImageClient) HeroImage(cities []string) string {
	if !c.configured() || len(cities) == 0 {
		return FallbackHeroImage
	}

	urls, err := c.cityImages(cities[0])
	if err != nil || len(urls) == 0 {
		if err != nil {
			log.Printf("⚠️  Hero image lookup for %q failed: %v", cities[0], err)
		}
		return FallbackHeroImage
	}
	return urls[0]
}

// CityImages returns the curated photos for every destination that has
// any. Cities without curated photos are simply absent from the map.
func (c *ImageClient) CityImages(cities []string) map[string][]string {
	images := make(map[string][]string)
	if !c.configured() {
		return images
	}

	for _, city := range cities {
		urls, err := c.cityImages(city)
		if err != nil {
			log.Printf("⚠️  Image lookup for %q failed: %v", city, err)
			continue
		}
		if len(urls) > 0 {
			images[city] = urls
		}
	}
	return images
}
