package pipeline

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/ish-observation-etl/internal/domain"
	"github.com/couchcryptid/ish-observation-etl/internal/ish"
)

// ObservationTransformer implements Transformer by decoding the ISH line and
// applying domain enrichment with optional geocoding.
type ObservationTransformer struct {
	decoder  *ish.Decoder
	geocoder domain.Geocoder
	logger   *slog.Logger
}

// NewTransformer creates an ObservationTransformer using the default
// description tables. Pass a nil geocoder to disable geocoding enrichment.
func NewTransformer(geocoder domain.Geocoder, logger *slog.Logger) *ObservationTransformer {
	return &ObservationTransformer{
		decoder:  ish.NewDecoder(ish.DefaultDescriptions()),
		geocoder: geocoder,
		logger:   logger,
	}
}

func (t *ObservationTransformer) Transform(ctx context.Context, raw domain.RawEvent) (domain.Observation, error) {
	obs, err := domain.ParseRawEventWith(t.decoder, raw)
	if err != nil {
		return domain.Observation{}, err
	}

	if len(obs.SkippedCodes) > 0 {
		t.logger.Debug("skipped unknown additional-data codes",
			"observation_id", obs.ID,
			"codes", obs.SkippedCodes,
		)
	}

	obs = domain.EnrichObservation(obs)
	obs = domain.EnrichWithGeocoding(ctx, obs, t.geocoder, t.logger)

	return obs, nil
}
