package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
)

// WeatherService resolves current conditions for a coordinate. Lookup
// failures are handled by the caller, which substitutes zero values so
// the goal computation degrades silently instead of failing.
type WeatherService interface {
	Current(ctx context.Context, latitude, longitude float64) (Weather, error)
}

const defaultWeatherURL = "https://api.tomorrow.io/v4/weather/realtime"

// WeatherClient fetches realtime conditions over HTTP.
type WeatherClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewWeatherClient reads WEATHER_API_URL and WEATHER_API_KEY from the
// environment.
func NewWeatherClient() *WeatherClient {
	baseURL := os.Getenv("WEATHER_API_URL")
	if baseURL == "" {
		baseURL = defaultWeatherURL
	}
	return &WeatherClient{
		httpClient: http.DefaultClient,
		baseURL:    baseURL,
		apiKey:     os.Getenv("WEATHER_API_KEY"),
	}
}

func (c *WeatherClient) Current(ctx context.Context, latitude, longitude float64) (Weather, error) {
	if c.apiKey == "" {
		return Weather{}, errors.New("weather API key is missing")
	}

	url := fmt.Sprintf("%s?location=%f,%f&apikey=%s", c.baseURL, latitude, longitude, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Weather{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Weather{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Weather{}, fmt.Errorf("weather lookup returned status %d", resp.StatusCode)
	}

	var payload struct {
		Data struct {
			Values struct {
				Humidity    float64 `json:"humidity"`
				Temperature float64 `json:"temperature"`
			} `json:"values"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Weather{}, err
	}

	return Weather{
		Humidity:    payload.Data.Values.Humidity,
		Temperature: payload.Data.Values.Temperature,
	}, nil
}
