package domain

import (
	"context"
	"time"

	"github.com/couchcryptid/ish-observation-etl/internal/ish"
)

// RawEvent represents an unprocessed message from the source topic.
// Value carries exactly one ISH record line.
type RawEvent struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// Geo represents a WGS-84 latitude/longitude coordinate pair.
type Geo struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Observation is a decoded ISH record plus the fields derived from it for
// downstream consumers.
type Observation struct {
	ID                    string    `json:"id"`
	Station               string    `json:"station"`
	CallSign              string    `json:"call_sign,omitempty"`
	ReportType            string    `json:"report_type"`
	ReportTypeDescription string    `json:"report_type_description,omitempty"`
	ObservedAt            time.Time `json:"observed_at"`
	Geo                   *Geo      `json:"geo,omitempty"` // nil when the record has no coordinates
	TimeBucket            string    `json:"time_bucket,omitempty"`

	RelativeHumidity *float64 `json:"relative_humidity,omitempty"`
	PresentWeather   []string `json:"present_weather,omitempty"`
	AdditionalCodes  []string `json:"additional_codes,omitempty"`
	SkippedCodes     []string `json:"skipped_codes,omitempty"`

	Report *ish.Report `json:"report"`

	// Geocoding enrichment fields.
	FormattedAddress string  `json:"formatted_address,omitempty"`
	PlaceName        string  `json:"place_name,omitempty"`
	GeoConfidence    float64 `json:"geo_confidence,omitempty"`
	GeoSource        string  `json:"geo_source,omitempty"` // "reverse", "original", "failed"

	RawPayload  []byte    `json:"-"`
	ProcessedAt time.Time `json:"processed_at"`
}
