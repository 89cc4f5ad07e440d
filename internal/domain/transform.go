package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"time"

	"github.com/couchcryptid/ish-observation-etl/internal/ish"
)

// ParseRawEvent decodes the ISH line carried by a RawEvent into an
// Observation. Decode failures keep the ish sentinel errors reachable through
// errors.Is.
func ParseRawEvent(raw RawEvent) (Observation, error) {
	return parseWith(ish.Decode, raw)
}

// ParseRawEventWith is ParseRawEvent with a caller-supplied decoder.
func ParseRawEventWith(d *ish.Decoder, raw RawEvent) (Observation, error) {
	return parseWith(d.Decode, raw)
}

func parseWith(decode func(string) (*ish.Report, error), raw RawEvent) (Observation, error) {
	report, err := decode(string(raw.Value))
	if err != nil {
		return Observation{}, fmt.Errorf("parse raw event: %w", err)
	}

	observedAt, err := report.ObservedAt()
	if err != nil {
		return Observation{}, fmt.Errorf("parse raw event: %w", err)
	}

	obs := Observation{
		ID:                    generateID(report.Mandatory),
		Station:               report.Station(),
		CallSign:              report.CallSign,
		ReportType:            report.ReportType,
		ReportTypeDescription: report.ReportTypeDescription(),
		ObservedAt:            observedAt,
		Geo:                   stationGeo(report.Mandatory),
		RelativeHumidity:      presentValue(report.RelativeHumidity()),
		PresentWeather:        report.PresentWeather(),
		AdditionalCodes:       report.Codes(),
		SkippedCodes:          report.Skipped,
		Report:                report,
		RawPayload:            raw.Value,
	}
	return obs, nil
}

func stationGeo(m ish.Mandatory) *Geo {
	if m.Latitude.Missing() || m.Longitude.Missing() {
		return nil
	}
	return &Geo{Lat: m.Latitude.Value(), Lon: m.Longitude.Value()}
}

func presentValue(m ish.Measurement) *float64 {
	v := m.Value()
	if math.IsNaN(v) {
		return nil
	}
	return &v
}

// generateID produces a deterministic ID from the record's identifying
// columns. Replaying the same line yields the same ID, so downstream stores
// can ignore duplicates.
func generateID(m ish.Mandatory) string {
	input := fmt.Sprintf("%s|%s|%s|%s|%s", m.USAF, m.WBAN, m.Date, m.Time, m.ReportType)
	hash := sha256.Sum256([]byte(input))
	return m.Station() + "-" + hex.EncodeToString(hash[:8])
}

// EnrichObservation assigns the hourly time bucket and the processing time.
func EnrichObservation(obs Observation) Observation {
	obs.TimeBucket = deriveTimeBucket(obs.ObservedAt)
	obs.ProcessedAt = processingTime()
	return obs
}

// deriveTimeBucket truncates the observation time to the hour in UTC.
// Returns "" if the input is zero.
func deriveTimeBucket(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Truncate(time.Hour).Format(time.RFC3339)
}
