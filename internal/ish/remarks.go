package ish

import (
	"strconv"
	"strings"
)

const (
	remarkHeaderWidth  = 6
	qualityEntryWidth  = 16
	metarRemarkKind    = "MET"
	metarRemarkSection = "RMK"
)

// Remark is one typed free-text remark, e.g. MET, SYN, AWY, SOD, SOM or HPD.
// A remark whose length prefix could not be read has an empty Kind and holds
// the rest of the section verbatim.
type Remark struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// QualityElement is one 16-character EQD entry.
type QualityElement struct {
	ID        string `json:"id"`
	Original  string `json:"original"`
	Reason    string `json:"reason"`
	Parameter string `json:"parameter"`
}

// trailer is the decoded REM, EQD and QNN sections.
type trailer struct {
	remarks  []Remark
	quality  []QualityElement
	original string
	unparsed string
}

// parseTrailer walks the sections after the additional data. The walk only
// moves forward and never interprets remark text as a record.
func parseTrailer(s string) trailer {
	var t trailer
	pos := 0
	for pos < len(s) {
		marker := ""
		if pos+3 <= len(s) {
			marker = s[pos : pos+3]
		}
		switch marker {
		case remarksMarker:
			pos = t.readRemarks(s, pos+3)
		case qualityMarker:
			pos = t.readQuality(s, pos+3)
		case originalMarker:
			t.original = s[pos+3:]
			pos = len(s)
		default:
			t.unparsed = s[pos:]
			pos = len(s)
		}
	}
	return t
}

func (t *trailer) readRemarks(s string, pos int) int {
	for pos < len(s) {
		if pos+3 <= len(s) && isTrailerMarker(s[pos:pos+3]) {
			return pos
		}
		if pos+remarkHeaderWidth > len(s) {
			t.remarks = append(t.remarks, Remark{Text: s[pos:]})
			return len(s)
		}
		kind := s[pos : pos+3]
		n, err := strconv.Atoi(s[pos+3 : pos+remarkHeaderWidth])
		end := pos + remarkHeaderWidth + n
		if err != nil || n < 0 || end > len(s) {
			stop := nextSection(s, pos)
			t.remarks = append(t.remarks, Remark{Text: s[pos:stop]})
			return stop
		}
		t.remarks = append(t.remarks, Remark{Kind: kind, Text: s[pos+remarkHeaderWidth : end]})
		pos = end
	}
	return pos
}

func (t *trailer) readQuality(s string, pos int) int {
	for pos < len(s) {
		if pos+3 <= len(s) && isTrailerMarker(s[pos:pos+3]) {
			return pos
		}
		if pos+qualityEntryWidth > len(s) {
			t.unparsed = s[pos:]
			return len(s)
		}
		e := s[pos : pos+qualityEntryWidth]
		t.quality = append(t.quality, QualityElement{
			ID:        e[0:3],
			Original:  e[3:9],
			Reason:    e[9:10],
			Parameter: e[10:16],
		})
		pos += qualityEntryWidth
	}
	return pos
}

// nextSection returns the offset of the next EQD or QNN marker after pos.
func nextSection(s string, pos int) int {
	stop := len(s)
	for _, marker := range []string{qualityMarker, originalMarker} {
		if i := strings.Index(s[pos:], marker); i >= 0 && pos+i < stop {
			stop = pos + i
		}
	}
	return stop
}

// MetarRemarks holds the sub-fields carried in the remarks of a METAR
// remark. Fields not found are missing.
type MetarRemarks struct {
	HourlyPrecipitation   Measurement `json:"hourly_precipitation"`
	PeriodPrecipitation   Measurement `json:"period_precipitation"`
	DailyPrecipitation    Measurement `json:"daily_precipitation"`
	SeaLevelPressure      Measurement `json:"sea_level_pressure"`
	Temperature           Measurement `json:"temperature"`
	DewPoint              Measurement `json:"dew_point"`
	SixHourMaxTemperature Measurement `json:"six_hour_max_temperature"`
	SixHourMinTemperature Measurement `json:"six_hour_min_temperature"`
	DailyMaxTemperature   Measurement `json:"daily_max_temperature"`
	DailyMinTemperature   Measurement `json:"daily_min_temperature"`
}

func emptyMetarRemarks() MetarRemarks {
	return MetarRemarks{
		HourlyPrecipitation:   MissingMeasurement(Inches),
		PeriodPrecipitation:   MissingMeasurement(Inches),
		DailyPrecipitation:    MissingMeasurement(Inches),
		SeaLevelPressure:      MissingMeasurement(Hectopascals),
		Temperature:           MissingMeasurement(Celsius),
		DewPoint:              MissingMeasurement(Celsius),
		SixHourMaxTemperature: MissingMeasurement(Celsius),
		SixHourMinTemperature: MissingMeasurement(Celsius),
		DailyMaxTemperature:   MissingMeasurement(Celsius),
		DailyMinTemperature:   MissingMeasurement(Celsius),
	}
}

// scanMetarRemarks makes a single pass over the groups after RMK.
func scanMetarRemarks(text string) MetarRemarks {
	m := emptyMetarRemarks()
	groups := strings.Fields(text)
	for i, g := range groups {
		if g == metarRemarkSection {
			groups = groups[i+1:]
			break
		}
	}

	for _, g := range groups {
		switch {
		case len(g) == 5 && g[0] == 'P' && allDigits(g[1:]):
			m.HourlyPrecipitation = NewMeasurement(g[1:], Inches, 100, "")
		case len(g) == 5 && g[0] == '6' && allDigits(g[1:]):
			m.PeriodPrecipitation = NewMeasurement(g[1:], Inches, 100, "")
		case len(g) == 5 && g[0] == '7' && allDigits(g[1:]):
			m.DailyPrecipitation = NewMeasurement(g[1:], Inches, 100, "")
		case len(g) == 5 && g[0] == '1' && allDigits(g[1:]):
			m.SixHourMaxTemperature = signedTenths(g[1:5])
		case len(g) == 5 && g[0] == '2' && allDigits(g[1:]):
			m.SixHourMinTemperature = signedTenths(g[1:5])
		case len(g) == 9 && g[0] == '4' && allDigits(g[1:]):
			m.DailyMaxTemperature = signedTenths(g[1:5])
			m.DailyMinTemperature = signedTenths(g[5:9])
		case len(g) == 6 && strings.HasPrefix(g, "SLP") && allDigits(g[3:]):
			m.SeaLevelPressure = seaLevelPressure(g[3:])
		case len(g) == 9 && g[0] == 'T' && allDigits(g[1:]):
			m.Temperature = signedTenths(g[1:5])
			m.DewPoint = signedTenths(g[5:9])
		}
	}
	return m
}

// signedTenths decodes the snnn temperature group, where s is 1 for negative.
func signedTenths(group string) Measurement {
	sign := "+"
	if group[0] == '1' {
		sign = "-"
	}
	return NewMeasurement(sign+group[1:], Celsius, 10, "")
}

// seaLevelPressure restores the dropped leading digits of an SLPppp group.
func seaLevelPressure(ppp string) Measurement {
	n, _ := strconv.Atoi(ppp)
	hundreds := 1000
	if n >= 500 {
		hundreds = 900
	}
	return NewMeasurement(strconv.Itoa(hundreds*10+n), Hectopascals, 10, "")
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return s != ""
}
