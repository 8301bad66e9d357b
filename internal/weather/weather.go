// Package weather looks up current conditions for signage widgets via
// the Open-Meteo public API. Name lookups are a two-step call: geocode
// the place name, then fetch conditions for the coordinates.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

const (
	defaultGeocodeURL  = "https://geocoding-api.open-meteo.com/"
	defaultForecastURL = "https://api.open-meteo.com/"

	currentFields = "temperature_2m,relative_humidity_2m,weather_code,wind_speed_10m"
)

// ErrNoGeocodeResults is returned when a place name matches nothing; the
// forecast request is not attempted in that case.
var ErrNoGeocodeResults = errors.New("no geocoding results")

// Client queries the geocoding and forecast endpoints.
type Client struct {
	client *http.Client

	// Endpoint roots, overridable for tests.
	GeocodeURL  *url.URL
	ForecastURL *url.URL
}

// NewClient returns a weather client. If a nil httpClient is provided, a
// new http.Client will be used.
func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	geocode, _ := url.Parse(defaultGeocodeURL)
	forecast, _ := url.Parse(defaultForecastURL)
	return &Client{
		client:      httpClient,
		GeocodeURL:  geocode,
		ForecastURL: forecast,
	}
}

// Location is one geocoding hit.
type Location struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country,omitempty"`
	Admin1    string  `json:"admin1,omitempty"`
}

// Current holds the current conditions block of a forecast response.
type Current struct {
	Time        string  `json:"time"`
	Temperature float64 `json:"temperature_2m"`
	Humidity    float64 `json:"relative_humidity_2m"`
	WeatherCode int     `json:"weather_code"`
	WindSpeed   float64 `json:"wind_speed_10m"`
}

// Report is a forecast response, optionally annotated with the geocoded
// location that produced it.
type Report struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timezone  string    `json:"timezone,omitempty"`
	Current   Current   `json:"current"`
	Location  *Location `json:"location,omitempty"`
}

// CurrentConditions fetches current conditions for coordinates. Exactly
// one outbound call.
func (c *Client) CurrentConditions(ctx context.Context, latitude, longitude float64) (*Report, error) {
	u := *c.ForecastURL
	u.Path = "/v1/forecast"
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	q.Set("current", currentFields)
	u.RawQuery = q.Encode()

	var report Report
	if err := c.get(ctx, u.String(), &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// CurrentConditionsByName geocodes name and fetches conditions for the
// first hit. A name that matches nothing returns ErrNoGeocodeResults
// without a second call.
func (c *Client) CurrentConditionsByName(ctx context.Context, name string) (*Report, error) {
	u := *c.GeocodeURL
	u.Path = "/v1/search"
	q := url.Values{}
	q.Set("name", name)
	q.Set("count", "1")
	u.RawQuery = q.Encode()

	var search struct {
		Results []Location `json:"results"`
	}
	if err := c.get(ctx, u.String(), &search); err != nil {
		return nil, err
	}
	if len(search.Results) == 0 {
		return nil, fmt.Errorf("%q: %w", name, ErrNoGeocodeResults)
	}

	loc := search.Results[0]
	report, err := c.CurrentConditions(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		return nil, err
	}
	report.Location = &loc
	return report, nil
}

func (c *Client) get(ctx context.Context, urlStr string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("weather api: %d %s", resp.StatusCode, string(body))
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("weather api: decoding response: %w", err)
	}
	return nil
}
