package ish

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"
)

// Report is a decoded ISH record. The embedded Mandatory section is always
// populated; additional-data entries are reached through the accessors.
type Report struct {
	Mandatory

	Remarks             []Remark
	QualityElements     []QualityElement
	OriginalObservation string
	// Unparsed holds trailer text that matched no known section layout.
	Unparsed string
	// Skipped lists unknown additional-data identifiers in encounter order.
	Skipped []string
	// Metar is set when the record carries a MET remark.
	Metar *MetarRemarks

	entries map[string][]Entry
	present map[string]struct{}
	desc    Descriptions
}

// AdditionalField returns the entries for a two-letter code ("GA") or a
// three-character identifier ("GA1"). A code that appeared with a truncated
// body yields an empty slice. A code that never appeared yields an error
// wrapping ErrFieldNotPresent.
func (r *Report) AdditionalField(code string) ([]Entry, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if _, ok := r.present[code]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrFieldNotPresent, code)
	}
	all := r.entries[code[:min(2, len(code))]]
	if len(code) != 3 {
		return slices.Clone(all), nil
	}
	out := []Entry{}
	for _, e := range all {
		if e.ID() == code {
			out = append(out, e)
		}
	}
	return out, nil
}

// Entries returns a copy of every decoded additional-data entry keyed by
// two-letter code.
func (r *Report) Entries() map[string][]Entry {
	out := make(map[string][]Entry, len(r.entries))
	for code, list := range r.entries {
		out[code] = slices.Clone(list)
	}
	return out
}

// Codes returns the additional-data codes present in the record, sorted.
func (r *Report) Codes() []string {
	return slices.Sorted(maps.Keys(r.entries))
}

func payloadsOf[T Payload](r *Report, codes ...string) []T {
	out := []T{}
	for _, code := range codes {
		for _, e := range r.entries[code] {
			if v, ok := e.Value.(T); ok {
				out = append(out, v)
			}
		}
	}
	return out
}

func (r *Report) LiquidPrecipitation() []LiquidPrecipitation {
	return payloadsOf[LiquidPrecipitation](r, "AA")
}

func (r *Report) SnowDepth() []SnowDepth { return payloadsOf[SnowDepth](r, "AJ") }

func (r *Report) WeatherOccurrence() []WeatherOccurrence {
	return payloadsOf[WeatherOccurrence](r, "AU")
}

// WeatherCondition returns the automated (AW) present weather entries.
func (r *Report) WeatherCondition() []WeatherCondition {
	return payloadsOf[WeatherCondition](r, "AW")
}

// ManualWeather returns the manual (MW) present weather entries.
func (r *Report) ManualWeather() []WeatherCondition {
	return payloadsOf[WeatherCondition](r, "MW")
}

func (r *Report) PastWeather() []PastWeather { return payloadsOf[PastWeather](r, "AY", "AZ") }

func (r *Report) SkyCover() []SkyCoverLayer { return payloadsOf[SkyCoverLayer](r, "GA") }

func (r *Report) SkyCoverSummation() []SkyCoverSummation {
	return payloadsOf[SkyCoverSummation](r, "GD")
}

func (r *Report) SkyCondition() []SkyCondition { return payloadsOf[SkyCondition](r, "GF") }

func (r *Report) SolarIrradiance() []SolarIrradiance {
	return payloadsOf[SolarIrradiance](r, "GM")
}

func (r *Report) ExtremeTemperature() []ExtremeTemperature {
	return payloadsOf[ExtremeTemperature](r, "KA")
}

func (r *Report) AverageTemperature() []AverageTemperature {
	return payloadsOf[AverageTemperature](r, "KB")
}

func (r *Report) AtmosphericPressure() []AtmosphericPressure {
	return payloadsOf[AtmosphericPressure](r, "MA")
}

func (r *Report) PressureTendency() []PressureTendency {
	return payloadsOf[PressureTendency](r, "MD")
}

func (r *Report) WindGust() []WindGust { return payloadsOf[WindGust](r, "OC") }

func (r *Report) SupplementaryWind() []SupplementaryWind {
	return payloadsOf[SupplementaryWind](r, "OD")
}

func (r *Report) SeaSurfaceTemperature() []SeaSurfaceTemperature {
	return payloadsOf[SeaSurfaceTemperature](r, "SA")
}

// StationPressure returns the first MA station pressure, or a missing value.
func (r *Report) StationPressure() Measurement {
	if ps := r.AtmosphericPressure(); len(ps) > 0 {
		return ps[0].StationPressure
	}
	return MissingMeasurement(Hectopascals)
}

// RelativeHumidity derives relative humidity in whole percent from the air
// temperature and dew point using the Magnus approximation.
func (r *Report) RelativeHumidity() Measurement {
	t, td := r.AirTemperature, r.DewPoint
	if t.Missing() || td.Missing() {
		return MissingMeasurement(Dimensionless)
	}
	rh := 100 * math.Exp(magnus(td.Value())) / math.Exp(magnus(t.Value()))
	return Measurement{value: math.Min(math.Round(rh), 100), unit: Dimensionless}
}

func magnus(c float64) float64 { return 17.625 * c / (243.04 + c) }

// ReportTypeDescription renders the report type code, or returns the code
// itself when the table has no entry.
func (r *Report) ReportTypeDescription() string {
	if d, ok := r.desc.ReportTypes[r.ReportType]; ok {
		return d
	}
	return r.ReportType
}

// ExtremeTemperatureKinds renders the code of each KA entry, such as
// "Maximum". Codes outside the table are returned as-is.
func (r *Report) ExtremeTemperatureKinds() []string {
	extremes := r.ExtremeTemperature()
	out := make([]string, 0, len(extremes))
	for _, e := range extremes {
		if d, ok := r.desc.ExtremeTemperatureCodes[e.Code]; ok {
			out = append(out, d)
			continue
		}
		out = append(out, e.Code)
	}
	return out
}

// PresentWeather renders each AU entry as text such as "Light Snow". A
// record without AU entries falls back to its AW descriptions.
func (r *Report) PresentWeather() []string {
	out := []string{}
	for _, w := range r.WeatherOccurrence() {
		parts := make([]string, 0, 5)
		for _, d := range []string{
			r.desc.Intensity[w.Intensity],
			r.desc.Descriptor[w.Descriptor],
			r.desc.Precipitation[w.Precipitation],
			r.desc.Obscuration[w.Obscuration],
			r.desc.OtherWeather[w.Other],
		} {
			if d != "" {
				parts = append(parts, d)
			}
		}
		if len(parts) > 0 {
			out = append(out, strings.Join(parts, " "))
		}
	}
	if len(out) > 0 {
		return out
	}
	for _, w := range r.WeatherCondition() {
		out = append(out, r.describeCondition(w))
	}
	return out
}

func (r *Report) describeCondition(w WeatherCondition) string {
	if d, ok := r.desc.AutomatedWeather[w.Code]; ok {
		return d
	}
	return unknownCondition
}
