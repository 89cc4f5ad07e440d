package ish

import (
	"encoding/json"
	"time"
)

type reportJSON struct {
	WeatherStation     string                  `json:"weather_station"`
	Latitude           *float64                `json:"latitude"`
	Longitude          *float64                `json:"longitude"`
	Elevation          *float64                `json:"elevation"`
	Time               *string                 `json:"time"`
	AirTemperature     Measurement             `json:"air_temperature"`
	DewPoint           Measurement             `json:"dew_point"`
	WindSpeed          Measurement             `json:"wind_speed"`
	WindDirection      Measurement             `json:"wind_direction"`
	SeaLevelPressure   Measurement             `json:"sea_level_pressure"`
	SkyCeiling         Measurement             `json:"sky_ceiling"`
	VisibilityDistance Measurement             `json:"visibility_distance"`
	LiquidPrecip       []liquidPrecipJSON      `json:"liquid_precip,omitempty"`
	WeatherOccurrence  []weatherOccurrenceJSON `json:"weather_occurrence,omitempty"`
	WeatherCondition   []weatherConditionJSON  `json:"weather_condition,omitempty"`
	SkyCoverCondition  []skyCoverJSON          `json:"sky_cover_condition,omitempty"`
	ExtremeTemperature []ExtremeTemperature    `json:"extreme_temperature,omitempty"`
}

type liquidPrecipJSON struct {
	Hours int      `json:"hours"`
	Depth *float64 `json:"depth"`
}

type weatherOccurrenceJSON struct {
	Intensity     string `json:"intensity"`
	Precipitation string `json:"precipitation"`
}

type weatherConditionJSON struct {
	PresentWeatherCondition string `json:"present_weather_condition"`
}

type skyCoverJSON struct {
	Coverage   *float64 `json:"coverage"`
	BaseHeight *float64 `json:"base_height"`
	CloudType  string   `json:"cloud_type"`
}

// MarshalJSON renders the canonical report document. Keys keep a fixed
// order and list keys without entries are left out.
func (r *Report) MarshalJSON() ([]byte, error) {
	out := reportJSON{
		WeatherStation:     r.USAF,
		Latitude:           valueOrNil(r.Latitude),
		Longitude:          valueOrNil(r.Longitude),
		Elevation:          valueOrNil(r.Elevation),
		AirTemperature:     r.AirTemperature,
		DewPoint:           r.DewPoint,
		WindSpeed:          r.WindSpeed,
		WindDirection:      r.WindDirection,
		SeaLevelPressure:   r.SeaLevelPressure,
		SkyCeiling:         r.SkyCeiling,
		VisibilityDistance: r.Visibility,
		ExtremeTemperature: r.ExtremeTemperature(),
	}
	if t, err := r.ObservedAt(); err == nil {
		s := t.Format(time.RFC3339)
		out.Time = &s
	}
	for _, p := range r.LiquidPrecipitation() {
		out.LiquidPrecip = append(out.LiquidPrecip, liquidPrecipJSON{Hours: p.Hours, Depth: valueOrNil(p.Depth)})
	}
	for _, w := range r.WeatherOccurrence() {
		out.WeatherOccurrence = append(out.WeatherOccurrence, weatherOccurrenceJSON{
			Intensity:     r.desc.Intensity[w.Intensity],
			Precipitation: r.desc.Precipitation[w.Precipitation],
		})
	}
	for _, w := range r.WeatherCondition() {
		out.WeatherCondition = append(out.WeatherCondition, weatherConditionJSON{
			PresentWeatherCondition: r.describeCondition(w),
		})
	}
	for _, l := range r.SkyCover() {
		out.SkyCoverCondition = append(out.SkyCoverCondition, skyCoverJSON{
			Coverage:   valueOrNil(l.Coverage),
			BaseHeight: valueOrNil(l.BaseHeight),
			CloudType:  l.CloudType,
		})
	}
	return json.Marshal(out)
}

func valueOrNil(m Measurement) *float64 {
	if m.Missing() {
		return nil
	}
	v := m.Value()
	return &v
}
