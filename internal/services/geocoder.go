package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/banit/househunt-backend/internal/geo"
	"github.com/banit/househunt-backend/pkg/logger"
)

// UnknownLocationName is stored when a point cannot be resolved.
const UnknownLocationName = "No Location Name"

// Geocoder resolves a point to a human-readable place name.
type Geocoder interface {
	LocationName(ctx context.Context, p geo.Point) string
}

type nominatimReverse struct {
	DisplayName string `json:"display_name"`
	Error       string `json:"error"`
}

// NominatimGeocoder calls the Nominatim reverse endpoint.
type NominatimGeocoder struct {
	httpClient *resty.Client
}

func NewNominatimGeocoder(baseURL, userAgent string) *NominatimGeocoder {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(10*time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500*time.Millisecond).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)

	return &NominatimGeocoder{httpClient: client}
}

// LocationName never fails: lookup errors are logged and yield
// UnknownLocationName.
func (g *NominatimGeocoder) LocationName(ctx context.Context, p geo.Point) string {
	var result nominatimReverse
	resp, err := g.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"format": "json",
			"lat":    fmt.Sprintf("%f", p.Lat),
			"lon":    fmt.Sprintf("%f", p.Lon),
		}).
		SetResult(&result).
		Get("/reverse")
	if err != nil {
		logger.WithFields(logger.Fields{"lat": p.Lat, "lon": p.Lon, "error": err}).Warn("reverse geocoding failed")
		return UnknownLocationName
	}
	if resp.IsError() || result.Error != "" || result.DisplayName == "" {
		logger.WithFields(logger.Fields{"lat": p.Lat, "lon": p.Lon, "status": resp.StatusCode()}).Debug("no location name for point")
		return UnknownLocationName
	}
	return result.DisplayName
}
