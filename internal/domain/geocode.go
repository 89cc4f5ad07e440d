package domain

import (
	"context"
	"log/slog"
)

// EnrichWithGeocoding attempts to attach place details for the station
// coordinates. If geocoder is nil the observation is returned untouched; a
// failed lookup only sets GeoSource.
func EnrichWithGeocoding(ctx context.Context, obs Observation, geocoder Geocoder, logger *slog.Logger) Observation {
	if geocoder == nil {
		return obs
	}

	if obs.Geo == nil {
		obs.GeoSource = "original"
		return obs
	}

	result, err := geocoder.ReverseGeocode(ctx, obs.Geo.Lat, obs.Geo.Lon)
	if err != nil {
		logger.Warn("reverse geocoding failed",
			"observation_id", obs.ID,
			"station", obs.Station,
			"lat", obs.Geo.Lat,
			"lon", obs.Geo.Lon,
			"error", err,
		)
		obs.GeoSource = "failed"
		return obs
	}
	if result.FormattedAddress == "" {
		obs.GeoSource = "original"
		return obs
	}

	obs.FormattedAddress = result.FormattedAddress
	obs.PlaceName = result.PlaceName
	obs.GeoConfidence = result.Confidence
	obs.GeoSource = "reverse"
	return obs
}
