package ish

import (
	"strconv"
	"strings"
)

// Payload is the decoded body of one additional-data entry. The set of
// implementations is closed; Opaque stands for codes kept raw.
type Payload interface {
	payload()
}

// Entry is one occurrence of an additional-data code.
type Entry struct {
	Code    string  `json:"code"`
	Variant int     `json:"variant"`
	Raw     string  `json:"raw"`
	Value   Payload `json:"value"`
}

// ID returns the three-character identifier, e.g. "GA1".
func (e Entry) ID() string { return e.Code + strconv.Itoa(e.Variant) }

// Opaque is a width-known code without a typed decoder.
type Opaque struct {
	Body string `json:"body"`
}

// LiquidPrecipitation is an AA entry.
type LiquidPrecipitation struct {
	Hours     int         `json:"hours"`
	Depth     Measurement `json:"depth"`
	Condition string      `json:"condition"`
}

// SnowDepth is an AJ entry.
type SnowDepth struct {
	Depth                    Measurement `json:"depth"`
	Condition                string      `json:"condition"`
	WaterEquivalent          Measurement `json:"water_equivalent"`
	WaterEquivalentCondition string      `json:"water_equivalent_condition"`
}

// WeatherOccurrence is an AU entry. Fields hold raw codes; descriptions come
// from the decoder's tables.
type WeatherOccurrence struct {
	Intensity     string `json:"intensity"`
	Descriptor    string `json:"descriptor"`
	Precipitation string `json:"precipitation"`
	Obscuration   string `json:"obscuration"`
	Other         string `json:"other"`
	Combination   string `json:"combination"`
	Quality       string `json:"quality"`
}

// WeatherCondition is an AW (automated), MW (manual) or MV (vicinity) entry.
type WeatherCondition struct {
	Code    string `json:"code"`
	Quality string `json:"quality"`
}

// PastWeather is an AY (manual) or AZ (automated) entry.
type PastWeather struct {
	Condition        string      `json:"condition"`
	ConditionQuality string      `json:"condition_quality"`
	Period           Measurement `json:"period"`
}

// SkyCoverLayer is a GA entry. Coverage is in oktas, with codes above 8
// describing obscured or partially obscured skies.
type SkyCoverLayer struct {
	Coverage   Measurement `json:"coverage"`
	BaseHeight Measurement `json:"base_height"`
	CloudType  string      `json:"cloud_type"`
}

// SkyCoverSummation is a GD entry.
type SkyCoverSummation struct {
	Coverage       string      `json:"coverage"`
	CoverageOktas  Measurement `json:"coverage_oktas"`
	Height         Measurement `json:"height"`
	Characteristic string      `json:"characteristic"`
}

// SkyCondition is a GF entry.
type SkyCondition struct {
	TotalCoverage    Measurement `json:"total_coverage"`
	OpaqueCoverage   Measurement `json:"opaque_coverage"`
	LowestCoverage   Measurement `json:"lowest_coverage"`
	LowCloudGenus    string      `json:"low_cloud_genus"`
	LowestBaseHeight Measurement `json:"lowest_base_height"`
	MidCloudGenus    string      `json:"mid_cloud_genus"`
	HighCloudGenus   string      `json:"high_cloud_genus"`
}

// SolarIrradiance is a GM entry. Irradiance values are in W/m².
type SolarIrradiance struct {
	TimePeriod  int         `json:"time_period"`
	Global      Measurement `json:"global"`
	GlobalFlag  string      `json:"global_flag"`
	Direct      Measurement `json:"direct"`
	DirectFlag  string      `json:"direct_flag"`
	Diffuse     Measurement `json:"diffuse"`
	DiffuseFlag string      `json:"diffuse_flag"`
	UVBGlobal   Measurement `json:"uvb_global"`
}

// ExtremeTemperature is a KA entry. Code is N (minimum), M (maximum),
// O (estimated minimum) or P (estimated maximum).
type ExtremeTemperature struct {
	Hours       int         `json:"hours"`
	Code        string      `json:"code"`
	Temperature Measurement `json:"temperature"`
}

// AverageTemperature is a KB entry.
type AverageTemperature struct {
	Hours       int         `json:"hours"`
	Code        string      `json:"code"`
	Temperature Measurement `json:"temperature"`
}

// AtmosphericPressure is an MA entry.
type AtmosphericPressure struct {
	Altimeter       Measurement `json:"altimeter"`
	StationPressure Measurement `json:"station_pressure"`
}

// PressureTendency is an MD entry.
type PressureTendency struct {
	Tendency       string      `json:"tendency"`
	Quality        string      `json:"quality"`
	ThreeHour      Measurement `json:"three_hour"`
	TwentyFourHour Measurement `json:"twenty_four_hour"`
}

// PressureSummary is an MG (average station, minimum sea level) or MH
// (monthly average station and sea level) entry.
type PressureSummary struct {
	StationPressure  Measurement `json:"station_pressure"`
	SeaLevelPressure Measurement `json:"sea_level_pressure"`
}

// WindGust is an OC entry.
type WindGust struct {
	Speed Measurement `json:"speed"`
}

// SupplementaryWind is an OD entry.
type SupplementaryWind struct {
	Type      string      `json:"type"`
	Hours     int         `json:"hours"`
	Speed     Measurement `json:"speed"`
	Direction Measurement `json:"direction"`
}

// RelativeHumidityEntry is an RH entry.
type RelativeHumidityEntry struct {
	Hours      int         `json:"hours"`
	Code       string      `json:"code"`
	Percentage Measurement `json:"percentage"`
	Derived    string      `json:"derived"`
}

// SeaSurfaceTemperature is an SA entry.
type SeaSurfaceTemperature struct {
	Temperature Measurement `json:"temperature"`
}

func (Opaque) payload()                {}
func (LiquidPrecipitation) payload()   {}
func (SnowDepth) payload()             {}
func (WeatherOccurrence) payload()     {}
func (WeatherCondition) payload()      {}
func (PastWeather) payload()           {}
func (SkyCoverLayer) payload()         {}
func (SkyCoverSummation) payload()     {}
func (SkyCondition) payload()          {}
func (SolarIrradiance) payload()       {}
func (ExtremeTemperature) payload()    {}
func (AverageTemperature) payload()    {}
func (AtmosphericPressure) payload()   {}
func (PressureTendency) payload()      {}
func (PressureSummary) payload()       {}
func (WindGust) payload()              {}
func (SupplementaryWind) payload()     {}
func (RelativeHumidityEntry) payload() {}
func (SeaSurfaceTemperature) payload() {}

// decodeFunc turns a body of exactly the registered width into a payload.
type decodeFunc func(body string) Payload

type codeSpec struct {
	width  int
	decode decodeFunc
}

// codeTable maps a two-letter code, or a three-character identifier where
// variants differ in layout, to the body width and decoder.
var codeTable = map[string]codeSpec{
	"AA": {8, decodeLiquidPrecipitation},
	"AB": {7, nil},
	"AC": {3, nil},
	"AD": {19, nil},
	"AE": {12, nil},
	"AG": {4, nil},
	"AH": {15, nil},
	"AI": {15, nil},
	"AJ": {14, decodeSnowDepth},
	"AK": {12, nil},
	"AL": {7, nil},
	"AM": {18, nil},
	"AN": {9, nil},
	"AO": {8, nil},
	"AP": {6, nil},
	"AT": {9, nil},
	"AU": {8, decodeWeatherOccurrence},
	"AW": {3, decodeWeatherCondition},
	"AX": {6, nil},
	"AY": {5, decodePastWeather},
	"AZ": {5, decodePastWeather},

	"CB":  {10, nil},
	"CF":  {6, nil},
	"CG":  {8, nil},
	"CH":  {15, nil},
	"CI":  {28, nil},
	"CN1": {18, nil},
	"CN2": {18, nil},
	"CN3": {16, nil},
	"CN4": {19, nil},
	"CO1": {5, nil},
	"CO":  {8, nil},
	"CR":  {7, nil},
	"CT":  {7, nil},
	"CU":  {13, nil},
	"CV":  {26, nil},
	"CW":  {14, nil},
	"CX":  {26, nil},

	"ED": {8, nil},

	"GA": {13, decodeSkyCoverLayer},
	"GD": {12, decodeSkyCoverSummation},
	"GE": {19, nil},
	"GF": {23, decodeSkyCondition},
	"GG": {15, nil},
	"GH": {28, nil},
	"GJ": {5, nil},
	"GK": {4, nil},
	"GL": {6, nil},
	"GM": {30, decodeSolarIrradiance},
	"GN": {28, nil},
	"GO": {19, nil},
	"GP": {31, nil},
	"GQ": {14, nil},
	"GR": {14, nil},

	"HL":  {4, nil},
	"IA1": {3, nil},
	"IA2": {9, nil},
	"IB1": {27, nil},
	"IB2": {13, nil},
	"IC":  {25, nil},

	"KA": {10, decodeExtremeTemperature},
	"KB": {10, decodeAverageTemperature},
	"KC": {14, nil},
	"KD": {9, nil},
	"KE": {12, nil},
	"KF": {6, nil},
	"KG": {11, nil},

	"MA": {12, decodeAtmosphericPressure},
	"MD": {11, decodePressureTendency},
	"ME": {6, nil},
	"MF": {12, nil},
	"MG": {12, decodePressureSummary},
	"MH": {12, decodePressureSummary},
	"MK": {24, nil},
	"MV": {3, decodeWeatherCondition},
	"MW": {3, decodeWeatherCondition},

	"OA": {8, nil},
	"OB": {28, nil},
	"OC": {5, decodeWindGust},
	"OD": {11, decodeSupplementaryWind},
	"OE": {16, nil},

	"RH": {9, decodeRelativeHumidity},
	"SA": {5, decodeSeaSurfaceTemperature},
	"ST": {17, nil},
	"UA": {10, nil},
	"UG": {9, nil},
	"WA": {6, nil},
	"WD": {20, nil},
	"WG": {11, nil},
}

// lookupCode resolves a three-character identifier against the table.
func lookupCode(id string) (codeSpec, bool) {
	if spec, ok := codeTable[id]; ok {
		return spec, true
	}
	spec, ok := codeTable[id[:2]]
	return spec, ok
}

// fields reads consecutive fixed-width columns from a body.
type fields struct {
	s   string
	pos int
}

func (f *fields) take(n int) string {
	start := min(f.pos, len(f.s))
	end := min(f.pos+n, len(f.s))
	f.pos += n
	return f.s[start:end]
}

// measure reads an n-wide value column followed by its quality column.
func (f *fields) measure(n int, unit Unit, scale float64) Measurement {
	raw := f.take(n)
	return NewMeasurement(raw, unit, scale, f.take(1))
}

// bare reads an n-wide value column that has no quality column.
func (f *fields) bare(n int, unit Unit, scale float64) Measurement {
	return NewMeasurement(f.take(n), unit, scale, "")
}

func (f *fields) count(n int) int {
	v, err := strconv.Atoi(strings.TrimSpace(f.take(n)))
	if err != nil {
		return 0
	}
	return v
}

func decodeLiquidPrecipitation(body string) Payload {
	f := fields{s: body}
	p := LiquidPrecipitation{Hours: f.count(2)}
	raw := f.take(4)
	p.Condition = f.take(1)
	p.Depth = NewMeasurement(raw, Millimeters, 10, f.take(1))
	return p
}

func decodeSnowDepth(body string) Payload {
	f := fields{s: body}
	var p SnowDepth
	depth := f.take(4)
	p.Condition = f.take(1)
	p.Depth = NewMeasurement(depth, Centimeters, 1, f.take(1))
	water := f.take(6)
	p.WaterEquivalentCondition = f.take(1)
	p.WaterEquivalent = NewMeasurement(water, Millimeters, 10, f.take(1))
	return p
}

func decodeWeatherOccurrence(body string) Payload {
	f := fields{s: body}
	return WeatherOccurrence{
		Intensity:     f.take(1),
		Descriptor:    f.take(1),
		Precipitation: f.take(2),
		Obscuration:   f.take(1),
		Other:         f.take(1),
		Combination:   f.take(1),
		Quality:       f.take(1),
	}
}

func decodeWeatherCondition(body string) Payload {
	f := fields{s: body}
	return WeatherCondition{Code: f.take(2), Quality: f.take(1)}
}

func decodePastWeather(body string) Payload {
	f := fields{s: body}
	return PastWeather{
		Condition:        f.take(1),
		ConditionQuality: f.take(1),
		Period:           f.measure(2, Dimensionless, 1),
	}
}

func decodeSkyCoverLayer(body string) Payload {
	f := fields{s: body}
	coverage := f.measure(2, Dimensionless, 1)
	height := f.measure(6, Meters, 1)
	cloud := f.take(2)
	return SkyCoverLayer{Coverage: coverage, BaseHeight: height, CloudType: cloud}
}

func decodeSkyCoverSummation(body string) Payload {
	f := fields{s: body}
	coverage := f.take(1)
	oktas := f.measure(2, Dimensionless, 1)
	height := f.measure(6, Meters, 1)
	return SkyCoverSummation{
		Coverage:       coverage,
		CoverageOktas:  oktas,
		Height:         height,
		Characteristic: f.take(1),
	}
}

func decodeSkyCondition(body string) Payload {
	f := fields{s: body}
	var p SkyCondition
	total := f.take(2)
	opaque := f.take(2)
	q := f.take(1)
	p.TotalCoverage = NewMeasurement(total, Dimensionless, 1, q)
	p.OpaqueCoverage = NewMeasurement(opaque, Dimensionless, 1, q)
	p.LowestCoverage = f.measure(2, Dimensionless, 1)
	p.LowCloudGenus = f.take(2)
	f.take(1)
	p.LowestBaseHeight = f.measure(5, Meters, 1)
	p.MidCloudGenus = f.take(2)
	f.take(1)
	p.HighCloudGenus = f.take(2)
	return p
}

func decodeSolarIrradiance(body string) Payload {
	f := fields{s: body}
	var p SolarIrradiance
	p.TimePeriod = f.count(4)
	global := f.take(4)
	p.GlobalFlag = f.take(2)
	p.Global = NewMeasurement(global, Dimensionless, 1, f.take(1))
	direct := f.take(4)
	p.DirectFlag = f.take(2)
	p.Direct = NewMeasurement(direct, Dimensionless, 1, f.take(1))
	diffuse := f.take(4)
	p.DiffuseFlag = f.take(2)
	p.Diffuse = NewMeasurement(diffuse, Dimensionless, 1, f.take(1))
	p.UVBGlobal = f.measure(4, Dimensionless, 1)
	return p
}

func decodeExtremeTemperature(body string) Payload {
	f := fields{s: body}
	return ExtremeTemperature{
		Hours:       f.count(3),
		Code:        f.take(1),
		Temperature: f.measure(5, Celsius, 10),
	}
}

// KB temperatures are in hundredths of a degree.
func decodeAverageTemperature(body string) Payload {
	f := fields{s: body}
	return AverageTemperature{
		Hours:       f.count(3),
		Code:        f.take(1),
		Temperature: f.measure(5, Celsius, 100),
	}
}

func decodeAtmosphericPressure(body string) Payload {
	f := fields{s: body}
	return AtmosphericPressure{
		Altimeter:       f.measure(5, Hectopascals, 10),
		StationPressure: f.measure(5, Hectopascals, 10),
	}
}

func decodePressureTendency(body string) Payload {
	f := fields{s: body}
	return PressureTendency{
		Tendency:       f.take(1),
		Quality:        f.take(1),
		ThreeHour:      f.measure(3, Hectopascals, 10),
		TwentyFourHour: f.measure(4, Hectopascals, 10),
	}
}

func decodePressureSummary(body string) Payload {
	f := fields{s: body}
	return PressureSummary{
		StationPressure:  f.measure(5, Hectopascals, 10),
		SeaLevelPressure: f.measure(5, Hectopascals, 10),
	}
}

func decodeWindGust(body string) Payload {
	f := fields{s: body}
	return WindGust{Speed: f.measure(4, MetersPerSecond, 10)}
}

func decodeSupplementaryWind(body string) Payload {
	f := fields{s: body}
	return SupplementaryWind{
		Type:      f.take(1),
		Hours:     f.count(2),
		Speed:     f.measure(4, MetersPerSecond, 10),
		Direction: f.bare(3, Degrees, 1),
	}
}

func decodeRelativeHumidity(body string) Payload {
	f := fields{s: body}
	p := RelativeHumidityEntry{Hours: f.count(3), Code: f.take(1)}
	pct := f.take(3)
	p.Derived = f.take(1)
	p.Percentage = NewMeasurement(pct, Dimensionless, 1, f.take(1))
	return p
}

func decodeSeaSurfaceTemperature(body string) Payload {
	f := fields{s: body}
	return SeaSurfaceTemperature{Temperature: f.measure(4, Celsius, 10)}
}
