package ish

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrIncompatibleUnit is returned when converting between units of different dimensions.
var ErrIncompatibleUnit = errors.New("incompatible unit")

// missingText is the display form of a missing measurement.
const missingText = "MISSING"

// Unit identifies the unit a Measurement is expressed in.
type Unit int

const (
	Dimensionless Unit = iota
	Degrees
	Celsius
	Fahrenheit
	Hectopascals
	InchesOfMercury
	MetersPerSecond
	MilesPerHour
	Knots
	Meters
	Kilometers
	StatuteMiles
	Millimeters
	Centimeters
	Inches
	Feet
)

type dimension int

const (
	dimNone dimension = iota
	dimTemperature
	dimPressure
	dimSpeed
	dimDistance
)

type unitInfo struct {
	name      string
	dim       dimension
	toBase    func(float64) float64
	fromBase  func(float64) float64
	precision int
}

func linear(factor float64) (func(float64) float64, func(float64) float64) {
	return func(v float64) float64 { return v / factor }, func(v float64) float64 { return v * factor }
}

func identity(v float64) float64 { return v }

var units = func() map[Unit]unitInfo {
	mph, mphBack := linear(2.23694)
	kt, ktBack := linear(1.94384)
	inhg, inhgBack := linear(0.02953)
	km, kmBack := linear(0.001)
	mi, miBack := linear(1 / 1609.344)
	mm, mmBack := linear(1000)
	cm, cmBack := linear(100)
	in, inBack := linear(39.3701)
	ft, ftBack := linear(3.28084)

	return map[Unit]unitInfo{
		Dimensionless: {name: "", dim: dimNone, toBase: identity, fromBase: identity, precision: -1},
		Degrees:       {name: "deg", dim: dimNone, toBase: identity, fromBase: identity, precision: -1},
		Celsius:       {name: "C", dim: dimTemperature, toBase: identity, fromBase: identity, precision: 1},
		Fahrenheit: {
			name: "F", dim: dimTemperature, precision: 1,
			toBase:   func(f float64) float64 { return (f - 32) * 5 / 9 },
			fromBase: func(c float64) float64 { return c*9/5 + 32 },
		},
		Hectopascals:    {name: "hPa", dim: dimPressure, toBase: identity, fromBase: identity, precision: 1},
		InchesOfMercury: {name: "inHg", dim: dimPressure, toBase: inhg, fromBase: inhgBack, precision: 2},
		MetersPerSecond: {name: "m/s", dim: dimSpeed, toBase: identity, fromBase: identity, precision: 1},
		MilesPerHour:    {name: "mph", dim: dimSpeed, toBase: mph, fromBase: mphBack, precision: 4},
		Knots:           {name: "kt", dim: dimSpeed, toBase: kt, fromBase: ktBack, precision: 4},
		Meters:          {name: "m", dim: dimDistance, toBase: identity, fromBase: identity, precision: 0},
		Kilometers:      {name: "km", dim: dimDistance, toBase: km, fromBase: kmBack, precision: 3},
		StatuteMiles:    {name: "mi", dim: dimDistance, toBase: mi, fromBase: miBack, precision: 3},
		Millimeters:     {name: "mm", dim: dimDistance, toBase: mm, fromBase: mmBack, precision: 1},
		Centimeters:     {name: "cm", dim: dimDistance, toBase: cm, fromBase: cmBack, precision: 1},
		Inches:          {name: "in", dim: dimDistance, toBase: in, fromBase: inBack, precision: 2},
		Feet:            {name: "ft", dim: dimDistance, toBase: ft, fromBase: ftBack, precision: 0},
	}
}()

// String returns the unit symbol.
func (u Unit) String() string {
	if info, ok := units[u]; ok {
		return info.name
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// legacySentinels are the scaled magnitudes that pre-quality-flag records use
// for "not reported".
var legacySentinels = []float64{99.9, 999.9, 9999, 9999.9, 99999, 999999}

// Measurement is a scaled numeric reading with its unit and quality flag.
// The zero value is a missing dimensionless reading.
type Measurement struct {
	raw     string
	value   float64
	unit    Unit
	quality string
	missing bool
	legacy  bool
}

// NewMeasurement decodes a fixed-width signed digit field. The value is the
// parsed integer divided by scale. Raw digits made only of nines (the
// sentinel for the field's width) or containing non-digits mark the reading
// missing.
func NewMeasurement(raw string, unit Unit, scale float64, quality string) Measurement {
	m := Measurement{raw: raw, unit: unit, quality: strings.TrimSpace(quality)}

	digits := strings.TrimSpace(raw)
	negative := false
	switch {
	case strings.HasPrefix(digits, "+"):
		digits = digits[1:]
	case strings.HasPrefix(digits, "-"):
		digits = digits[1:]
		negative = true
	}

	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil || digits == "" {
		m.missing = true
		return m
	}
	if scale == 0 {
		scale = 1
	}
	m.value = float64(n) / scale
	// "-0000" reads as zero, not negative zero.
	if negative && n != 0 {
		m.value = -m.value
	}
	if strings.Trim(digits, "9") == "" {
		m.missing = true
	}
	return m
}

// NewLegacyMeasurement decodes a field from a record variant that predates
// quality flags. Besides the all-nines rule, a value whose magnitude equals
// one of the legacy sentinel constants is missing, and it still compares
// equal to that constant through Equals.
func NewLegacyMeasurement(raw string, unit Unit, scale float64) Measurement {
	m := NewMeasurement(raw, unit, scale, "")
	m.legacy = true
	if !m.missing {
		for _, s := range legacySentinels {
			if math.Abs(m.value) == s {
				m.missing = true
				break
			}
		}
	}
	return m
}

// withSentinelEquality keeps the missing rules of m but lets a missing
// reading compare equal to the magnitude of its sentinel digits.
func (m Measurement) withSentinelEquality() Measurement {
	m.legacy = true
	return m
}

// MissingMeasurement returns a missing reading in the given unit.
func MissingMeasurement(unit Unit) Measurement {
	return Measurement{unit: unit, missing: true}
}

// Missing reports whether the reading was not reported.
func (m Measurement) Missing() bool { return m.missing }

// Quality returns the quality flag, or "" when the field has none.
func (m Measurement) Quality() string { return m.quality }

// Unit returns the declared unit.
func (m Measurement) Unit() Unit { return m.unit }

// Raw returns the digits the reading was decoded from.
func (m Measurement) Raw() string { return m.raw }

// Value returns the reading in its declared unit, or NaN when missing.
func (m Measurement) Value() float64 {
	if m.missing {
		return math.NaN()
	}
	return m.value
}

// Scaled returns the scaled magnitude of the raw digits even when they are
// a sentinel (e.g. 999.9 for a missing temperature).
func (m Measurement) Scaled() float64 { return m.value }

// In converts the reading to target. A missing reading converts to NaN.
func (m Measurement) In(target Unit) (float64, error) {
	from, ok := units[m.unit]
	if !ok {
		return math.NaN(), fmt.Errorf("%w: unknown unit %v", ErrIncompatibleUnit, m.unit)
	}
	to, ok := units[target]
	if !ok || from.dim != to.dim || (from.dim == dimNone && m.unit != target) {
		return math.NaN(), fmt.Errorf("%w: %v to %v", ErrIncompatibleUnit, m.unit, target)
	}
	if m.missing {
		return math.NaN(), nil
	}
	if m.unit == target {
		return m.value, nil
	}
	return round(to.fromBase(from.toBase(m.value)), to.precision), nil
}

// Equals compares the reading with v. A missing reading equals nothing,
// except that a legacy reading still equals its sentinel constant.
func (m Measurement) Equals(v float64) bool {
	if m.missing {
		return m.legacy && m.value == v
	}
	return m.value == v
}

// String returns "MISSING" or the locale-invariant numeric value.
func (m Measurement) String() string {
	if m.missing {
		return missingText
	}
	return strconv.FormatFloat(m.value, 'f', -1, 64)
}

type measurementJSON struct {
	Value   *float64 `json:"value"`
	Quality string   `json:"quality"`
}

// MarshalJSON renders {"value", "quality"}, with a null value when missing.
func (m Measurement) MarshalJSON() ([]byte, error) {
	out := measurementJSON{Quality: m.quality}
	if !m.missing {
		v := m.value
		out.Value = &v
	}
	return json.Marshal(out)
}

func round(v float64, precision int) float64 {
	if precision < 0 {
		return v
	}
	p := math.Pow10(precision)
	return math.Round(v*p) / p
}
