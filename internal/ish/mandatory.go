package ish

import (
	"fmt"
	"strings"
	"time"
)

// span is a half-open [start, end) column range within the mandatory block.
type span struct{ start, end int }

func (s span) of(block string) string { return block[s.start:s.end] }

func col(i int) span { return span{i, i + 1} }

// Column layout of the control and mandatory data sections.
var (
	usafCol               = span{4, 10}
	wbanCol               = span{10, 15}
	dateCol               = span{15, 23}
	timeCol               = span{23, 27}
	sourceFlagCol         = col(27)
	latitudeCol           = span{28, 34}
	longitudeCol          = span{34, 41}
	reportTypeCol         = span{41, 46}
	elevationCol          = span{46, 51}
	callSignCol           = span{51, 56}
	qcProcessCol          = span{56, 60}
	windDirectionCol      = span{60, 63}
	windDirectionQCol     = col(63)
	windTypeCol           = col(64)
	windSpeedCol          = span{65, 69}
	windSpeedQCol         = col(69)
	ceilingCol            = span{70, 75}
	ceilingQCol           = col(75)
	ceilingDeterminCol    = col(76)
	cavokCol              = col(77)
	visibilityCol         = span{78, 84}
	visibilityQCol        = col(84)
	visibilityVarCol      = col(85)
	visibilityVarQCol     = col(86)
	airTemperatureCol     = span{87, 92}
	airTemperatureQCol    = col(92)
	dewPointCol           = span{93, 98}
	dewPointQCol          = col(98)
	seaLevelPressureCol   = span{99, 104}
	seaLevelPressureQCol  = col(104)
	geoScale              = 1000.0
	speedScale            = 10.0
	temperatureScale      = 10.0
	pressureScale         = 10.0
	observationTimeLayout = "200601021504"
)

// Mandatory holds the decoded control and mandatory data sections.
type Mandatory struct {
	USAF       string
	WBAN       string
	Date       string // YYYYMMDD digits
	Time       string // HHMM digits, UTC
	SourceFlag string
	ReportType string
	CallSign   string
	QCProcess  string

	Latitude  Measurement
	Longitude Measurement
	Elevation Measurement

	WindDirection        Measurement
	WindType             string
	WindSpeed            Measurement
	SkyCeiling           Measurement
	CeilingDetermination string
	CAVOK                string
	Visibility           Measurement
	VisibilityVariable   string
	VisibilityVarQuality string
	AirTemperature       Measurement
	DewPoint             Measurement
	SeaLevelPressure     Measurement
}

// Station returns the USAF-WBAN station key.
func (m Mandatory) Station() string { return m.USAF + "-" + m.WBAN }

// ObservedAt converts the raw date and time digits to a UTC timestamp.
// Old records write midnight as hour 24 of the previous day.
func (m Mandatory) ObservedAt() (time.Time, error) {
	hhmm, rollover := m.Time, false
	if hhmm == "2400" {
		hhmm, rollover = "0000", true
	}
	t, err := time.ParseInLocation(observationTimeLayout, m.Date+hhmm, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse observation time %q: %w", m.Date+m.Time, err)
	}
	if rollover {
		t = t.AddDate(0, 0, 1)
	}
	return t, nil
}

// decodeMandatory extracts the fixed-offset fields of a block that the
// tokenizer has already checked to be MandatoryLength long.
func decodeMandatory(block string) Mandatory {
	return Mandatory{
		USAF:       usafCol.of(block),
		WBAN:       wbanCol.of(block),
		Date:       dateCol.of(block),
		Time:       timeCol.of(block),
		SourceFlag: sourceFlagCol.of(block),
		ReportType: strings.TrimSpace(reportTypeCol.of(block)),
		CallSign:   strings.TrimSpace(callSignCol.of(block)),
		QCProcess:  strings.TrimSpace(qcProcessCol.of(block)),

		Latitude:  NewMeasurement(latitudeCol.of(block), Degrees, geoScale, ""),
		Longitude: NewMeasurement(longitudeCol.of(block), Degrees, geoScale, ""),
		Elevation: NewMeasurement(elevationCol.of(block), Meters, 1, ""),

		WindDirection:        flagged(block, windDirectionCol, windDirectionQCol, Degrees, 1),
		WindType:             windTypeCol.of(block),
		WindSpeed:            flagged(block, windSpeedCol, windSpeedQCol, MetersPerSecond, speedScale),
		SkyCeiling:           flagged(block, ceilingCol, ceilingQCol, Meters, 1),
		CeilingDetermination: ceilingDeterminCol.of(block),
		CAVOK:                cavokCol.of(block),
		Visibility:           flagged(block, visibilityCol, visibilityQCol, Meters, 1),
		VisibilityVariable:   visibilityVarCol.of(block),
		VisibilityVarQuality: visibilityVarQCol.of(block),
		AirTemperature:       flagged(block, airTemperatureCol, airTemperatureQCol, Celsius, temperatureScale),
		DewPoint:             flagged(block, dewPointCol, dewPointQCol, Celsius, temperatureScale),
		SeaLevelPressure:     flagged(block, seaLevelPressureCol, seaLevelPressureQCol, Hectopascals, pressureScale),
	}
}

// flagged decodes a value column followed by its quality column. A blank
// quality column marks a legacy record. Flagged or not, a mandatory sentinel
// such as "+9999" still equals its magnitude (999.9).
func flagged(block string, value, quality span, unit Unit, scale float64) Measurement {
	q := strings.TrimSpace(quality.of(block))
	if q == "" {
		return NewLegacyMeasurement(value.of(block), unit, scale)
	}
	return NewMeasurement(value.of(block), unit, scale, q).withSentinelEquality()
}
