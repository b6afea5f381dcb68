package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banit/househunt-backend/internal/geo"
)

func TestNominatimGeocoder(t *testing.T) {
	var gotUA, gotLat string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/reverse", r.URL.Path)
		gotUA = r.Header.Get("User-Agent")
		gotLat = r.URL.Query().Get("lat")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"display_name":"Kilimani, Nairobi, Kenya"}`))
	}))
	defer srv.Close()

	g := NewNominatimGeocoder(srv.URL+"/", "househunt-test")
	name := g.LocationName(context.Background(), geo.Point{Lat: -1.29, Lon: 36.78})

	assert.Equal(t, "Kilimani, Nairobi, Kenya", name)
	assert.Equal(t, "househunt-test", gotUA)
	assert.Equal(t, "-1.290000", gotLat)
}

func TestNominatimGeocoder_Fallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"error":"Unable to geocode"}`))
	}))
	defer srv.Close()

	g := NewNominatimGeocoder(srv.URL, "househunt-test")
	assert.Equal(t, UnknownLocationName, g.LocationName(context.Background(), geo.Point{Lat: 0, Lon: 0}))

	srv.Close()
	assert.Equal(t, UnknownLocationName, g.LocationName(context.Background(), geo.Point{Lat: 0, Lon: 0}))
}
